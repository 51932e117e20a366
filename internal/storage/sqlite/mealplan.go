package sqlite

import (
	"context"
	"fmt"

	"cheff-backend/internal/models"
)

// AddMealPlanEntry appends one (recipe, date) entry to the user's weekly
// plan. Multiple recipes on the same date are allowed.
func (s *Store) AddMealPlanEntry(ctx context.Context, userID, recipeID int64, date string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO planejamento (user_id, receita_id, data) VALUES (?, ?, ?)",
		userID, recipeID, date,
	)
	if err != nil {
		return fmt.Errorf("failed to insert meal plan entry: %w", err)
	}
	return nil
}

// GetMealPlan returns the user's plan joined with recipe titles, ordered by
// date ascending. Placeholder rows drop out of the inner join.
func (s *Store) GetMealPlan(ctx context.Context, userID int64) ([]models.MealPlanEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT p.data, r.titulo
		 FROM planejamento p
		 JOIN receitas r ON p.receita_id = r.id
		 WHERE p.user_id = ?
		 ORDER BY p.data`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query meal plan: %w", err)
	}
	defer rows.Close()

	entries := []models.MealPlanEntry{}
	for rows.Next() {
		var entry models.MealPlanEntry
		if err := rows.Scan(&entry.Date, &entry.Title); err != nil {
			return nil, fmt.Errorf("failed to scan meal plan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meal plan: %w", err)
	}

	return entries, nil
}
