package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"cheff-backend/internal/middleware"
	"cheff-backend/internal/models"
)

// maxUploadSize bounds the in-memory portion of multipart parsing.
const maxUploadSize = 32 << 20 // 32 MB

// handleCreateRecipe creates a recipe from a multipart form: text fields,
// a JSON-encoded ingredient array, and an optional image file.
func (s *Server) handleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	var ingredients []models.Ingredient
	if raw := r.FormValue("ingredientes"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &ingredients); err != nil {
			respondError(w, http.StatusBadRequest, "Ingredientes inválidos")
			return
		}
	}

	recipe := &models.Recipe{
		Title:       r.FormValue("titulo"),
		Difficulty:  r.FormValue("dificuldade"),
		PrepTime:    r.FormValue("tempoPreparo"),
		Servings:    r.FormValue("porcoes"),
		Utensils:    r.FormValue("utensilios"),
		Preparation: r.FormValue("modoPreparo"),
		UserID:      userID,
		Ingredients: ingredients,
	}

	// Store the image before the recipe row so the row never references a
	// file that was not written.
	file, header, err := r.FormFile("imagem")
	switch {
	case err == nil:
		defer file.Close()
		filename, err := s.images.Save(file, header.Filename)
		if err != nil {
			slog.Error("Failed to store recipe image", "user_id", userID, "error", err)
			respondError(w, http.StatusInternalServerError, "Erro ao cadastrar receita")
			return
		}
		recipe.Image = filename
	case errors.Is(err, http.ErrMissingFile):
		// Image is optional.
	default:
		respondError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	if err := s.store.CreateRecipe(r.Context(), recipe); err != nil {
		slog.Error("Failed to create recipe", "user_id", userID, "titulo", recipe.Title, "error", err)
		respondError(w, http.StatusInternalServerError, "Erro ao cadastrar receita")
		return
	}

	slog.Info("Recipe created",
		"recipe_id", recipe.ID,
		"user_id", userID,
		"ingredients", len(recipe.Ingredients),
	)
	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Receita cadastrada com sucesso",
	})
}

// handleListRecipes lists recipes with their nested ingredients, optionally
// filtered by a title search term.
func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	recipes, err := s.store.ListRecipes(r.Context(), search)
	if err != nil {
		slog.Error("Failed to list recipes", "search", search, "error", err)
		respondError(w, http.StatusInternalServerError, "Erro ao buscar receitas")
		return
	}

	respondJSON(w, http.StatusOK, recipes)
}
