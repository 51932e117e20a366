// Package models defines the core domain models for the cheff backend.
//
// Field names on the wire are Portuguese to stay compatible with the
// existing mobile client; Go names are idiomatic English.
package models

// User represents a registered account.
type User struct {
	// ID is the unique identifier, assigned by the store on creation.
	ID int64 `json:"id"`

	// Name is the login name. Uniqueness is not enforced by the schema;
	// login resolves to the first matching row.
	Name string `json:"nome"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"-"`
}

// Recipe is a user-submitted recipe with its ingredient line items.
type Recipe struct {
	ID          int64  `json:"id"`
	Title       string `json:"titulo"`
	Difficulty  string `json:"dificuldade"`
	PrepTime    string `json:"tempo"`
	Servings    string `json:"porcoes"`
	Utensils    string `json:"utensilios"`
	Preparation string `json:"modoPreparo"`

	// UserID is the owning user. Set from the authenticated request,
	// never from the client payload.
	UserID int64 `json:"-"`

	// Image is the generated filename of the uploaded image, empty if
	// the recipe was created without one.
	Image string `json:"imagem"`

	// Ingredients holds the line items, in insertion order.
	Ingredients []Ingredient `json:"ingredientes"`

	CreatedAt int64 `json:"-"`
}

// Ingredient is one line item of a recipe.
type Ingredient struct {
	ID       int64  `json:"id"`
	Name     string `json:"nome"`
	Quantity string `json:"quantidade"`
	RecipeID int64  `json:"-"`
}

// ShoppingListItem is one joined row of a user's shopping list:
// the referenced ingredient's name and quantity.
type ShoppingListItem struct {
	Name     string `json:"nome"`
	Quantity string `json:"quantidade"`
}

// MealPlanEntry is one joined row of a user's weekly plan:
// the scheduled date and the recipe title.
type MealPlanEntry struct {
	Date  string `json:"data"`
	Title string `json:"titulo"`
}
