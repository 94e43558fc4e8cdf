package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tzuhao-hung/expense-tracker/internal/calculator"
	"github.com/tzuhao-hung/expense-tracker/internal/models"
	"github.com/tzuhao-hung/expense-tracker/internal/storage"
)

// ExpenseService manages shared expenses and their split declarations.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage
// backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// toDeclarations converts persisted split rows into calculator input. The
// conversion happens exactly here, so the calculator only ever sees one
// normalized shape.
func toDeclarations(splits []models.SplitDeclaration) []calculator.Declaration {
	declarations := make([]calculator.Declaration, len(splits))
	for i, split := range splits {
		declarations[i] = calculator.Declaration{
			UserID: split.UserID,
			Kind:   split.Kind,
			Value:  split.Value,
		}
	}
	return declarations
}

// validate checks an expense before it touches storage. Allocation is run
// once as a dry run so every split error surfaces now, not during a later
// balance pass.
func (s *ExpenseService) validate(ctx context.Context, expense *models.SharedExpense) error {
	if expense.TotalAmount <= 0 {
		return fmt.Errorf("total_amount must be positive")
	}

	if _, err := s.store.GetUser(ctx, expense.PaidByUserID); err != nil {
		return err
	}

	payerIncluded := false
	for _, split := range expense.Splits {
		if split.UserID == expense.PaidByUserID {
			payerIncluded = true
		}
	}
	if len(expense.Splits) == 0 {
		return calculator.ErrNoParticipants
	}
	if !payerIncluded {
		return calculator.ErrPayerNotIncluded
	}

	_, err := calculator.Allocate(expense.TotalAmount, toDeclarations(expense.Splits))
	return err
}

// Create validates and persists a new shared expense, returning the expense
// with its computed shares.
func (s *ExpenseService) Create(ctx context.Context, expense *models.SharedExpense) (*models.ExpenseDetail, error) {
	if err := s.validate(ctx, expense); err != nil {
		return nil, err
	}
	if expense.Category == "" {
		expense.Category = "others"
	}
	if err := s.store.CreateSharedExpense(ctx, expense); err != nil {
		return nil, err
	}
	slog.Info("Shared expense created",
		"expense_id", expense.ID,
		"total_amount", expense.TotalAmount,
		"payer_id", expense.PaidByUserID,
		"splits", len(expense.Splits),
	)
	return s.detail(expense)
}

// Update validates and replaces an existing shared expense, including its
// splits.
func (s *ExpenseService) Update(ctx context.Context, expense *models.SharedExpense) (*models.ExpenseDetail, error) {
	if err := s.validate(ctx, expense); err != nil {
		return nil, err
	}
	if expense.Category == "" {
		expense.Category = "others"
	}
	if err := s.store.UpdateSharedExpense(ctx, expense); err != nil {
		return nil, err
	}
	slog.Info("Shared expense updated", "expense_id", expense.ID)
	return s.detail(expense)
}

// Delete removes a shared expense and its splits.
func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteSharedExpense(ctx, id); err != nil {
		return err
	}
	slog.Info("Shared expense deleted", "expense_id", id)
	return nil
}

// Get retrieves one shared expense with its computed shares.
func (s *ExpenseService) Get(ctx context.Context, id int64) (*models.ExpenseDetail, error) {
	expense, err := s.store.GetSharedExpense(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(expense)
}

// List returns all shared expenses ordered by date.
func (s *ExpenseService) List(ctx context.Context) ([]models.SharedExpense, error) {
	return s.store.ListSharedExpenses(ctx)
}

func (s *ExpenseService) detail(expense *models.SharedExpense) (*models.ExpenseDetail, error) {
	shares, err := calculator.Allocate(expense.TotalAmount, toDeclarations(expense.Splits))
	if err != nil {
		return nil, err
	}
	return &models.ExpenseDetail{Expense: *expense, Shares: shares}, nil
}
