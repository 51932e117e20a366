package api

import (
	"log/slog"
	"net/http"

	"cheff-backend/internal/middleware"
)

type addIngredientRequest struct {
	IngredientID int64 `json:"ingredienteId"`
}

// handleAddShoppingListItem appends one ingredient to the caller's shopping
// list. Repeated adds produce repeated rows.
func (s *Server) handleAddShoppingListItem(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req addIngredientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.store.AddShoppingListItem(r.Context(), userID, req.IngredientID); err != nil {
		slog.Error("Failed to add shopping list item",
			"user_id", userID, "ingrediente_id", req.IngredientID, "error", err)
		respondError(w, http.StatusInternalServerError, "Erro ao adicionar ingrediente à lista de compras")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Ingrediente adicionado à lista de compras com sucesso",
	})
}

// handleGetShoppingList returns the caller's shopping list as
// {nome, quantidade} pairs.
func (s *Server) handleGetShoppingList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	items, err := s.store.GetShoppingList(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to get shopping list", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Erro ao buscar lista de compras")
		return
	}

	respondJSON(w, http.StatusOK, items)
}
