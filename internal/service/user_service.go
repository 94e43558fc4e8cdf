// Package service wires the storage layer to the calculator engine and
// exposes the operations the HTTP handlers call.
package service

import (
	"context"
	"log/slog"

	"github.com/tzuhao-hung/expense-tracker/internal/models"
	"github.com/tzuhao-hung/expense-tracker/internal/storage"
)

// UserService manages user registration and removal.
type UserService struct {
	store storage.Store
}

// NewUserService creates a new UserService with the given storage backend.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// Register creates a new user with the given display name.
func (s *UserService) Register(ctx context.Context, name string) (*models.User, error) {
	user, err := s.store.CreateUser(ctx, name)
	if err != nil {
		return nil, err
	}
	slog.Info("User registered", "user_id", user.ID, "name", user.Name)
	return user, nil
}

// List returns all users ordered by name.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}

// Delete removes a user together with their personal transactions, the
// shared expenses they paid for, and their split rows everywhere.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteUser(ctx, id); err != nil {
		return err
	}
	slog.Info("User deleted", "user_id", id)
	return nil
}
