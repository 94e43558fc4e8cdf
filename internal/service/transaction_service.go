package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tzuhao-hung/expense-tracker/internal/models"
	"github.com/tzuhao-hung/expense-tracker/internal/storage"
)

// TransactionService manages personal income/expense records.
type TransactionService struct {
	store storage.Store
}

// NewTransactionService creates a new TransactionService with the given
// storage backend.
func NewTransactionService(store storage.Store) *TransactionService {
	return &TransactionService{store: store}
}

func validateTransaction(tx *models.PersonalTransaction) error {
	if tx.Type != models.TransactionIncome && tx.Type != models.TransactionExpense {
		return fmt.Errorf("type must be 'income' or 'expense'")
	}
	if tx.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if tx.Date == "" {
		return fmt.Errorf("date is required")
	}
	return nil
}

// Create validates and persists a new personal transaction.
func (s *TransactionService) Create(ctx context.Context, tx *models.PersonalTransaction) error {
	if err := validateTransaction(tx); err != nil {
		return err
	}
	if _, err := s.store.GetUser(ctx, tx.UserID); err != nil {
		return err
	}
	if tx.Category == "" {
		tx.Category = "others"
	}
	if err := s.store.CreatePersonalTransaction(ctx, tx); err != nil {
		return err
	}
	slog.Info("Personal transaction created",
		"transaction_id", tx.ID,
		"user_id", tx.UserID,
		"type", tx.Type,
		"amount", tx.Amount,
	)
	return nil
}

// Get retrieves a personal transaction by ID.
func (s *TransactionService) Get(ctx context.Context, id int64) (*models.PersonalTransaction, error) {
	return s.store.GetPersonalTransaction(ctx, id)
}

// Update validates and replaces a personal transaction's mutable fields.
func (s *TransactionService) Update(ctx context.Context, tx *models.PersonalTransaction) error {
	if err := validateTransaction(tx); err != nil {
		return err
	}
	if err := s.store.UpdatePersonalTransaction(ctx, tx); err != nil {
		return err
	}
	slog.Info("Personal transaction updated", "transaction_id", tx.ID)
	return nil
}

// Delete removes a personal transaction.
func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeletePersonalTransaction(ctx, id); err != nil {
		return err
	}
	slog.Info("Personal transaction deleted", "transaction_id", id)
	return nil
}

// List returns a user's transactions, newest first, optionally restricted
// to an inclusive date range.
func (s *TransactionService) List(ctx context.Context, userID int64, startDate, endDate string) ([]models.PersonalTransaction, error) {
	return s.store.ListPersonalTransactions(ctx, userID, startDate, endDate)
}
