package sqlite

import (
	"context"
	"fmt"

	"cheff-backend/internal/models"
)

// AddShoppingListItem appends one ingredient reference to the user's
// shopping list. No dedup: adding the same ingredient twice yields two rows.
func (s *Store) AddShoppingListItem(ctx context.Context, userID, ingredientID int64) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO lista (user_id, ingrediente_id) VALUES (?, ?)",
		userID, ingredientID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert shopping list item: %w", err)
	}
	return nil
}

// GetShoppingList returns the user's shopping list joined with ingredient
// names and quantities. Placeholder rows have no ingredient reference and
// drop out of the inner join.
func (s *Store) GetShoppingList(ctx context.Context, userID int64) ([]models.ShoppingListItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ingredientes.nome, ingredientes.quantidade
		 FROM lista
		 JOIN ingredientes ON lista.ingrediente_id = ingredientes.id
		 WHERE lista.user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query shopping list: %w", err)
	}
	defer rows.Close()

	items := []models.ShoppingListItem{}
	for rows.Next() {
		var item models.ShoppingListItem
		if err := rows.Scan(&item.Name, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan shopping list item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shopping list: %w", err)
	}

	return items, nil
}
