package auth

import (
	"context"
	"errors"
	"testing"

	"cheff-backend/internal/models"
	"cheff-backend/internal/storage"
)

// memoryUserStorage is a minimal in-memory UserStorage for tests.
type memoryUserStorage struct {
	users  []*models.User
	nextID int64
}

func (m *memoryUserStorage) CreateUser(_ context.Context, user *models.User) error {
	m.nextID++
	user.ID = m.nextID
	m.users = append(m.users, user)
	return nil
}

func (m *memoryUserStorage) GetUserByName(_ context.Context, name string) (*models.User, error) {
	for _, u := range m.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func TestPasswordAuthenticator(t *testing.T) {
	store := &memoryUserStorage{}
	authn := NewPasswordAuthenticator(store)
	ctx := context.Background()

	t.Run("Register hashes the password", func(t *testing.T) {
		user, err := authn.Register(ctx, "ana", "pw1")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if user.ID == 0 {
			t.Error("Expected user ID to be assigned")
		}
		if user.PasswordHash == "pw1" {
			t.Error("Password stored in the clear")
		}
	})

	t.Run("Authenticate succeeds with the right password", func(t *testing.T) {
		user, err := authn.Authenticate(ctx, "ana", "pw1")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if user.Name != "ana" {
			t.Errorf("Got user %q, want ana", user.Name)
		}
	})

	t.Run("Authenticate fails with the wrong password", func(t *testing.T) {
		_, err := authn.Authenticate(ctx, "ana", "pw2")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("Authenticate fails for unknown user", func(t *testing.T) {
		_, err := authn.Authenticate(ctx, "zeca", "pw1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})
}
