// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/tzuhao-hung/expense-tracker/internal/models"
)

// Referential lookup failures. Implementations wrap these so callers can
// match with errors.Is.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user name already exists")
	ErrExpenseNotFound     = errors.New("shared expense not found")
	ErrTransactionNotFound = errors.New("personal transaction not found")
)

// Store defines the interface for expense tracker storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
//
// Implementations must return snapshot-consistent (expense, splits) pairs:
// a balance computation never observes an expense with only some of its
// split rows written. Multi-row writes are wrapped in transactions.
type Store interface {
	// CreateUser inserts a new user with the given display name and
	// returns it with the assigned ID. Names are unique.
	CreateUser(ctx context.Context, name string) (*models.User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, id int64) (*models.User, error)

	// GetUserByName retrieves a user by display name, case-insensitively.
	GetUserByName(ctx context.Context, name string) (*models.User, error)

	// ListUsers returns all users ordered by name.
	ListUsers(ctx context.Context) ([]models.User, error)

	// DeleteUser removes a user. Their personal transactions, the shared
	// expenses they paid for, and their split rows on anyone's expenses
	// are removed with them.
	DeleteUser(ctx context.Context, id int64) error

	// CreatePersonalTransaction persists a new personal transaction.
	// The tx.ID field is populated by the store.
	CreatePersonalTransaction(ctx context.Context, tx *models.PersonalTransaction) error

	// GetPersonalTransaction retrieves a personal transaction by ID.
	GetPersonalTransaction(ctx context.Context, id int64) (*models.PersonalTransaction, error)

	// UpdatePersonalTransaction updates an existing personal transaction.
	UpdatePersonalTransaction(ctx context.Context, tx *models.PersonalTransaction) error

	// DeletePersonalTransaction removes a personal transaction by ID.
	DeletePersonalTransaction(ctx context.Context, id int64) error

	// ListPersonalTransactions returns a user's transactions, newest
	// first. startDate/endDate (YYYY-MM-DD, inclusive) are optional; an
	// empty string leaves that bound open.
	ListPersonalTransactions(ctx context.Context, userID int64, startDate, endDate string) ([]models.PersonalTransaction, error)

	// PersonalSums returns a user's income and expense totals for the
	// inclusive date range.
	PersonalSums(ctx context.Context, userID int64, startDate, endDate string) (income, expenses float64, err error)

	// PersonalExpenseCategoryTotals returns, across all users, the sum of
	// personal expense amounts per category for the inclusive date range.
	PersonalExpenseCategoryTotals(ctx context.Context, startDate, endDate string) (map[string]float64, error)

	// CreateSharedExpense persists a new shared expense and its split
	// declarations in one transaction. The expense.ID field is populated
	// by the store.
	CreateSharedExpense(ctx context.Context, expense *models.SharedExpense) error

	// GetSharedExpense retrieves a shared expense by ID, including its
	// split declarations.
	GetSharedExpense(ctx context.Context, id int64) (*models.SharedExpense, error)

	// UpdateSharedExpense updates an expense and atomically replaces its
	// split declarations.
	UpdateSharedExpense(ctx context.Context, expense *models.SharedExpense) error

	// DeleteSharedExpense removes a shared expense and its splits.
	DeleteSharedExpense(ctx context.Context, id int64) error

	// ListSharedExpenses returns all shared expenses ordered by date,
	// each with its split declarations attached.
	ListSharedExpenses(ctx context.Context) ([]models.SharedExpense, error)

	// ListSharedExpensesByDateRange is ListSharedExpenses restricted to
	// an inclusive date range.
	ListSharedExpensesByDateRange(ctx context.Context, startDate, endDate string) ([]models.SharedExpense, error)

	// ListSplits returns the split declarations for one expense.
	ListSplits(ctx context.Context, expenseID int64) ([]models.SplitDeclaration, error)

	// Close releases any resources held by the store.
	Close() error
}
