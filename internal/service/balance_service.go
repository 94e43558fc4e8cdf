package service

import (
	"context"
	"log/slog"

	"github.com/tzuhao-hung/expense-tracker/internal/calculator"
	"github.com/tzuhao-hung/expense-tracker/internal/models"
	"github.com/tzuhao-hung/expense-tracker/internal/storage"
)

// BalanceService computes net balances and settlement suggestions across
// all shared expenses. It only reads; settlements are derived fresh on
// every call and never stored.
type BalanceService struct {
	store storage.Store
}

// NewBalanceService creates a new BalanceService with the given storage
// backend.
func NewBalanceService(store storage.Store) *BalanceService {
	return &BalanceService{store: store}
}

// SharedBalances loads every shared expense with its splits, folds them
// into net balances and reduces those to pairwise settlement transfers.
func (s *BalanceService) SharedBalances(ctx context.Context) (*models.BalanceReport, error) {
	expenses, err := s.store.ListSharedExpenses(ctx)
	if err != nil {
		return nil, err
	}

	forBalance := make([]calculator.ExpenseForBalance, len(expenses))
	for i, expense := range expenses {
		forBalance[i] = calculator.ExpenseForBalance{
			TotalAmount:  expense.TotalAmount,
			PayerID:      expense.PaidByUserID,
			Declarations: toDeclarations(expense.Splits),
		}
	}

	net, err := calculator.Accumulate(forBalance)
	if err != nil {
		slog.Error("Balance accumulation failed", "error", err)
		return nil, err
	}

	transfers := calculator.Settle(net)
	settlements := make([]models.Settlement, len(transfers))
	for i, transfer := range transfers {
		settlements[i] = models.Settlement{
			PayerID:    transfer.PayerID,
			ReceiverID: transfer.ReceiverID,
			Amount:     transfer.Amount,
		}
	}

	slog.Debug("Shared balances computed",
		"expenses", len(expenses),
		"users", len(net),
		"settlements", len(settlements),
	)
	return &models.BalanceReport{NetByUser: net, Settlements: settlements}, nil
}
