// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"cheff-backend/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Store defines the persistence operations for the recipe backend.
// This abstraction allows swapping storage backends (SQLite, MySQL, etc.)
// without changing the handler layer.
type Store interface {
	// CreateUser persists a new user. The user.ID field will be
	// populated by the store.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByName retrieves the first user with the given name.
	// Returns ErrNotFound if no user matches.
	GetUserByName(ctx context.Context, name string) (*models.User, error)

	// CreateShoppingListPlaceholder inserts the empty shopping-list row
	// created for every new user at registration.
	CreateShoppingListPlaceholder(ctx context.Context, userID int64) error

	// CreateMealPlanPlaceholder inserts the empty meal-plan row created
	// for every new user at registration.
	CreateMealPlanPlaceholder(ctx context.Context, userID int64) error

	// CreateRecipe persists a recipe and all its ingredients in a single
	// transaction. Recipe and ingredient IDs are populated on success;
	// on failure nothing is written.
	CreateRecipe(ctx context.Context, recipe *models.Recipe) error

	// ListRecipes returns all recipes whose title contains search
	// (all recipes when search is empty), each with its full ingredient
	// list in insertion order. Any ingredient fetch failure fails the
	// whole call; there are no partial results.
	ListRecipes(ctx context.Context, search string) ([]models.Recipe, error)

	// AddShoppingListItem appends one ingredient reference to the user's
	// shopping list. Duplicates are allowed.
	AddShoppingListItem(ctx context.Context, userID, ingredientID int64) error

	// GetShoppingList returns the user's shopping list joined with
	// ingredient names and quantities, in storage order.
	GetShoppingList(ctx context.Context, userID int64) ([]models.ShoppingListItem, error)

	// AddMealPlanEntry appends one (recipe, date) entry to the user's
	// weekly plan. Multiple recipes on the same date are allowed.
	AddMealPlanEntry(ctx context.Context, userID, recipeID int64, date string) error

	// GetMealPlan returns the user's plan joined with recipe titles,
	// ordered by date ascending.
	GetMealPlan(ctx context.Context, userID int64) ([]models.MealPlanEntry, error)

	// Close releases any resources held by the store.
	Close() error
}
