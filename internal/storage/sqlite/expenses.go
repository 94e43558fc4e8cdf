package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tzuhao-hung/expense-tracker/internal/models"
	"github.com/tzuhao-hung/expense-tracker/internal/storage"
)

// CreateSharedExpense persists a new shared expense and its split
// declarations in a single transaction, so a concurrent balance computation
// never sees the expense with only some of its splits.
func (s *SQLiteStore) CreateSharedExpense(ctx context.Context, expense *models.SharedExpense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO shared_expenses (title, total_amount, date, paid_by_user_id, category, note)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		expense.Title, expense.TotalAmount, expense.Date, expense.PaidByUserID, expense.Category, expense.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to insert shared expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read expense id: %w", err)
	}

	if err := insertSplits(ctx, tx, id, expense.Splits); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	expense.ID = id
	return nil
}

// GetSharedExpense retrieves a shared expense by ID, including its splits.
func (s *SQLiteStore) GetSharedExpense(ctx context.Context, id int64) (*models.SharedExpense, error) {
	expense := &models.SharedExpense{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, total_amount, date, paid_by_user_id, category, note
		 FROM shared_expenses WHERE id = ?`, id,
	).Scan(&expense.ID, &expense.Title, &expense.TotalAmount, &expense.Date,
		&expense.PaidByUserID, &expense.Category, &expense.Note)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %d", storage.ErrExpenseNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shared expense: %w", err)
	}

	splits, err := s.ListSplits(ctx, id)
	if err != nil {
		return nil, err
	}
	expense.Splits = splits
	return expense, nil
}

// UpdateSharedExpense updates an expense and replaces its splits atomically.
func (s *SQLiteStore) UpdateSharedExpense(ctx context.Context, expense *models.SharedExpense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE shared_expenses
		 SET title = ?, total_amount = ?, date = ?, paid_by_user_id = ?, category = ?, note = ?
		 WHERE id = ?`,
		expense.Title, expense.TotalAmount, expense.Date, expense.PaidByUserID,
		expense.Category, expense.Note, expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shared expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %d", storage.ErrExpenseNotFound, expense.ID)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM shared_expense_splits WHERE shared_expense_id = ?", expense.ID,
	); err != nil {
		return fmt.Errorf("failed to clear old splits: %w", err)
	}
	if err := insertSplits(ctx, tx, expense.ID, expense.Splits); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteSharedExpense removes a shared expense; splits cascade with it.
func (s *SQLiteStore) DeleteSharedExpense(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM shared_expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete shared expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %d", storage.ErrExpenseNotFound, id)
	}
	return nil
}

// ListSharedExpenses returns all shared expenses ordered by date, each with
// its splits attached.
func (s *SQLiteStore) ListSharedExpenses(ctx context.Context) ([]models.SharedExpense, error) {
	return s.listSharedExpenses(ctx,
		`SELECT id, title, total_amount, date, paid_by_user_id, category, note
		 FROM shared_expenses ORDER BY date, id`)
}

// ListSharedExpensesByDateRange returns the shared expenses dated within the
// inclusive range, each with its splits attached.
func (s *SQLiteStore) ListSharedExpensesByDateRange(ctx context.Context, startDate, endDate string) ([]models.SharedExpense, error) {
	return s.listSharedExpenses(ctx,
		`SELECT id, title, total_amount, date, paid_by_user_id, category, note
		 FROM shared_expenses WHERE date BETWEEN ? AND ? ORDER BY date, id`,
		startDate, endDate)
}

func (s *SQLiteStore) listSharedExpenses(ctx context.Context, query string, args ...any) ([]models.SharedExpense, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.SharedExpense
	for rows.Next() {
		var e models.SharedExpense
		if err := rows.Scan(&e.ID, &e.Title, &e.TotalAmount, &e.Date,
			&e.PaidByUserID, &e.Category, &e.Note); err != nil {
			return nil, fmt.Errorf("failed to scan shared expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shared expenses: %w", err)
	}

	for i := range expenses {
		splits, err := s.ListSplits(ctx, expenses[i].ID)
		if err != nil {
			return nil, err
		}
		expenses[i].Splits = splits
	}
	return expenses, nil
}

// ListSplits returns the split declarations for one expense in insertion
// order.
func (s *SQLiteStore) ListSplits(ctx context.Context, expenseID int64) ([]models.SplitDeclaration, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, split_kind, split_value
		 FROM shared_expense_splits WHERE shared_expense_id = ? ORDER BY id`,
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}
	defer rows.Close()

	var splits []models.SplitDeclaration
	for rows.Next() {
		var d models.SplitDeclaration
		if err := rows.Scan(&d.UserID, &d.Kind, &d.Value); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}
	return splits, nil
}

func insertSplits(ctx context.Context, tx *sql.Tx, expenseID int64, splits []models.SplitDeclaration) error {
	for _, d := range splits {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO shared_expense_splits (shared_expense_id, user_id, split_kind, split_value)
			 VALUES (?, ?, ?, ?)`,
			expenseID, d.UserID, d.Kind, d.Value,
		); err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}
	return nil
}
