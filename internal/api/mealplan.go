package api

import (
	"log/slog"
	"net/http"

	"cheff-backend/internal/middleware"
)

type addMealPlanRequest struct {
	RecipeID int64  `json:"receitaId"`
	Date     string `json:"data"`
}

// handleAddMealPlanEntry appends one (recipe, date) entry to the caller's
// weekly plan.
func (s *Server) handleAddMealPlanEntry(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req addMealPlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.store.AddMealPlanEntry(r.Context(), userID, req.RecipeID, req.Date); err != nil {
		slog.Error("Failed to add meal plan entry",
			"user_id", userID, "receita_id", req.RecipeID, "data", req.Date, "error", err)
		respondError(w, http.StatusInternalServerError, "Erro ao adicionar receita ao planejamento semanal")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Receita adicionada ao planejamento semanal com sucesso",
	})
}

// handleGetMealPlan returns the caller's plan as {data, titulo} pairs,
// ordered by date ascending.
func (s *Server) handleGetMealPlan(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	entries, err := s.store.GetMealPlan(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to get meal plan", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Erro ao buscar planejamento")
		return
	}

	respondJSON(w, http.StatusOK, entries)
}
