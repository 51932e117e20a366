package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cheff-backend/internal/models"
	"cheff-backend/internal/storage"
)

// CreateUser persists a new user and populates its ID.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().Unix()
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (nome, senha_hash, created_at) VALUES (?, ?, ?)",
		user.Name, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get user id: %w", err)
	}
	user.ID = id

	return nil
}

// GetUserByName retrieves the first user with the given name.
func (s *Store) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, nome, senha_hash, created_at FROM users WHERE nome = ? ORDER BY id LIMIT 1",
		name,
	).Scan(&user.ID, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// CreateShoppingListPlaceholder inserts the empty shopping-list row for a
// freshly registered user.
func (s *Store) CreateShoppingListPlaceholder(ctx context.Context, userID int64) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO lista (user_id) VALUES (?)",
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert shopping list placeholder: %w", err)
	}
	return nil
}

// CreateMealPlanPlaceholder inserts the empty meal-plan row for a freshly
// registered user.
func (s *Store) CreateMealPlanPlaceholder(ctx context.Context, userID int64) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO planejamento (user_id) VALUES (?)",
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert meal plan placeholder: %w", err)
	}
	return nil
}
