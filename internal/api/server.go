// Package api binds the HTTP routes to the storage and auth layers.
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"cheff-backend/internal/auth"
	"cheff-backend/internal/images"
	"cheff-backend/internal/metrics"
	"cheff-backend/internal/middleware"
	"cheff-backend/internal/storage"
)

// Server holds the collaborators the handlers need.
type Server struct {
	store         storage.Store
	authenticator *auth.PasswordAuthenticator
	jwtManager    *auth.JWTManager
	images        *images.Store
}

// NewServer creates a Server over the given store, authenticator, token
// manager and image store.
func NewServer(store storage.Store, authenticator *auth.PasswordAuthenticator, jwtManager *auth.JWTManager, imgStore *images.Store) *Server {
	return &Server{
		store:         store,
		authenticator: authenticator,
		jwtManager:    jwtManager,
		images:        imgStore,
	}
}

// Router builds the route table. Protected routes sit behind the bearer
// token gate; uploaded images and metrics are served openly.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Metrics)

	r.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)

	authGate := middleware.RequireAuth(s.jwtManager)
	r.Handle("/cadastrar-receita", authGate(http.HandlerFunc(s.handleCreateRecipe))).Methods(http.MethodPost)
	r.Handle("/receitas", authGate(http.HandlerFunc(s.handleListRecipes))).Methods(http.MethodGet)
	r.Handle("/adicionar-ingrediente", authGate(http.HandlerFunc(s.handleAddShoppingListItem))).Methods(http.MethodPost)
	r.Handle("/adicionar-planejamento", authGate(http.HandlerFunc(s.handleAddMealPlanEntry))).Methods(http.MethodPost)
	r.Handle("/lista", authGate(http.HandlerFunc(s.handleGetShoppingList))).Methods(http.MethodGet)
	r.Handle("/planejamento", authGate(http.HandlerFunc(s.handleGetMealPlan))).Methods(http.MethodGet)

	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	r.PathPrefix("/imagens/").Handler(
		http.StripPrefix("/imagens/", http.FileServer(http.Dir(s.images.Dir()))),
	).Methods(http.MethodGet)

	return r
}
