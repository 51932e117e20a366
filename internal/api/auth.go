package api

import (
	"log/slog"
	"net/http"

	"cheff-backend/internal/auth"
)

type credentialsRequest struct {
	Name     string `json:"nome"`
	Password string `json:"senha"`
}

// handleRegister creates a new user account and seeds its empty shopping
// list and meal plan rows.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Name == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Por favor, forneça um nome e uma senha")
		return
	}

	ctx := r.Context()
	user, err := s.authenticator.Register(ctx, req.Name, req.Password)
	if err != nil {
		slog.Error("Registration failed", "nome", req.Name, "error", err)
		respondError(w, http.StatusInternalServerError, "Erro ao registrar usuário")
		return
	}

	// Seed the empty list and plan rows. Failures are logged but don't
	// fail the registration; the rows are a schema convenience, not a
	// domain requirement.
	if err := s.store.CreateShoppingListPlaceholder(ctx, user.ID); err != nil {
		slog.Error("Failed to create shopping list placeholder", "user_id", user.ID, "error", err)
	}
	if err := s.store.CreateMealPlanPlaceholder(ctx, user.ID); err != nil {
		slog.Error("Failed to create meal plan placeholder", "user_id", user.ID, "error", err)
	}

	slog.Info("User registered", "user_id", user.ID, "nome", user.Name)
	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Usuário registrado com sucesso",
		"userId":  user.ID,
	})
}

// handleLogin authenticates a user and returns a signed token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Name == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Por favor, forneça um nome e uma senha")
		return
	}

	user, err := s.authenticator.Authenticate(r.Context(), req.Name, req.Password)
	if err != nil {
		slog.Warn("Login failed", "nome", req.Name, "error", err)
		respondError(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
		return
	}

	token, err := s.jwtManager.Generate(user.ID)
	if err != nil {
		slog.Error("Failed to generate token", "user_id", user.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Erro ao fazer login")
		return
	}

	slog.Info("User logged in", "user_id", user.ID)
	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Login realizado com sucesso",
		"token":   token,
	})
}
