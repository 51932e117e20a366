package sqlite

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"cheff-backend/internal/models"
)

// CreateRecipe persists a recipe and its ingredients in one transaction, so
// a failed ingredient insert cannot leave an orphaned recipe behind.
func (s *Store) CreateRecipe(ctx context.Context, recipe *models.Recipe) error {
	if recipe.CreatedAt == 0 {
		recipe.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO receitas (titulo, dificuldade, tempo, porcoes, utensilios, modo_preparo, user_id, imagem, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		recipe.Title, recipe.Difficulty, recipe.PrepTime, recipe.Servings,
		recipe.Utensils, recipe.Preparation, recipe.UserID, nullableString(recipe.Image), recipe.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert recipe: %w", err)
	}

	recipeID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get recipe id: %w", err)
	}
	recipe.ID = recipeID

	for i := range recipe.Ingredients {
		ing := &recipe.Ingredients[i]
		ing.RecipeID = recipeID

		res, err := tx.ExecContext(ctx,
			"INSERT INTO ingredientes (nome, quantidade, receita_id) VALUES (?, ?, ?)",
			ing.Name, ing.Quantity, recipeID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert ingredient: %w", err)
		}
		if ing.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("failed to get ingredient id: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListRecipes returns recipes whose title contains search (all recipes when
// search is empty), each with its full ingredient list. The per-recipe
// ingredient fetches are fanned out concurrently and joined; any failure
// fails the whole listing.
func (s *Store) ListRecipes(ctx context.Context, search string) ([]models.Recipe, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, titulo, dificuldade, tempo, porcoes, utensilios, modo_preparo, user_id, COALESCE(imagem, ''), created_at
		 FROM receitas WHERE titulo LIKE ? ORDER BY id`,
		"%"+search+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	recipes := []models.Recipe{}
	for rows.Next() {
		var r models.Recipe
		if err := rows.Scan(&r.ID, &r.Title, &r.Difficulty, &r.PrepTime, &r.Servings,
			&r.Utensils, &r.Preparation, &r.UserID, &r.Image, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		r.Ingredients = []models.Ingredient{}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := range recipes {
		i := i
		g.Go(func() error {
			ingredients, err := s.getIngredients(ctx, recipes[i].ID)
			if err != nil {
				return err
			}
			recipes[i].Ingredients = ingredients
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return recipes, nil
}

// getIngredients fetches the ingredients of one recipe in insertion order.
func (s *Store) getIngredients(ctx context.Context, recipeID int64) ([]models.Ingredient, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, nome, quantidade, receita_id FROM ingredientes WHERE receita_id = ? ORDER BY id",
		recipeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := []models.Ingredient{}
	for rows.Next() {
		var ing models.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Quantity, &ing.RecipeID); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ingredients: %w", err)
	}

	return ingredients, nil
}

// nullableString maps "" to NULL so the imagem column stays NULL for
// recipes created without an upload.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
