package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tzuhao-hung/expense-tracker/internal/models"
	"github.com/tzuhao-hung/expense-tracker/internal/storage"
)

// CreatePersonalTransaction persists a new personal transaction.
func (s *SQLiteStore) CreatePersonalTransaction(ctx context.Context, tx *models.PersonalTransaction) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO personal_transactions (user_id, type, amount, category, note, date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		tx.UserID, tx.Type, tx.Amount, tx.Category, tx.Note, tx.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to insert personal transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read transaction id: %w", err)
	}
	tx.ID = id
	return nil
}

// GetPersonalTransaction retrieves a personal transaction by ID.
func (s *SQLiteStore) GetPersonalTransaction(ctx context.Context, id int64) (*models.PersonalTransaction, error) {
	tx := &models.PersonalTransaction{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, type, amount, category, note, date
		 FROM personal_transactions WHERE id = ?`, id,
	).Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Category, &tx.Note, &tx.Date)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %d", storage.ErrTransactionNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get personal transaction: %w", err)
	}
	return tx, nil
}

// UpdatePersonalTransaction updates an existing personal transaction.
// The transaction keeps its identity; every other field is replaced.
func (s *SQLiteStore) UpdatePersonalTransaction(ctx context.Context, tx *models.PersonalTransaction) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE personal_transactions
		 SET user_id = ?, type = ?, amount = ?, category = ?, note = ?, date = ?
		 WHERE id = ?`,
		tx.UserID, tx.Type, tx.Amount, tx.Category, tx.Note, tx.Date, tx.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update personal transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %d", storage.ErrTransactionNotFound, tx.ID)
	}
	return nil
}

// DeletePersonalTransaction removes a personal transaction by ID.
func (s *SQLiteStore) DeletePersonalTransaction(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM personal_transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete personal transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %d", storage.ErrTransactionNotFound, id)
	}
	return nil
}

// ListPersonalTransactions returns a user's transactions, newest first.
func (s *SQLiteStore) ListPersonalTransactions(ctx context.Context, userID int64, startDate, endDate string) ([]models.PersonalTransaction, error) {
	query := "SELECT id, user_id, type, amount, category, note, date FROM personal_transactions WHERE user_id = ?"
	args := []any{userID}
	if startDate != "" {
		query += " AND date >= ?"
		args = append(args, startDate)
	}
	if endDate != "" {
		query += " AND date <= ?"
		args = append(args, endDate)
	}
	query += " ORDER BY date DESC, id DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list personal transactions: %w", err)
	}
	defer rows.Close()

	var txs []models.PersonalTransaction
	for rows.Next() {
		var tx models.PersonalTransaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Category, &tx.Note, &tx.Date); err != nil {
			return nil, fmt.Errorf("failed to scan personal transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate personal transactions: %w", err)
	}
	return txs, nil
}

// PersonalSums returns a user's income and expense totals for the inclusive
// date range.
func (s *SQLiteStore) PersonalSums(ctx context.Context, userID int64, startDate, endDate string) (float64, float64, error) {
	var income, expenses sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT
		     SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END),
		     SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END)
		 FROM personal_transactions
		 WHERE user_id = ? AND date BETWEEN ? AND ?`,
		userID, startDate, endDate,
	).Scan(&income, &expenses)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum personal transactions: %w", err)
	}
	return income.Float64, expenses.Float64, nil
}

// PersonalExpenseCategoryTotals sums personal expense amounts per category
// across all users for the inclusive date range.
func (s *SQLiteStore) PersonalExpenseCategoryTotals(ctx context.Context, startDate, endDate string) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, SUM(amount)
		 FROM personal_transactions
		 WHERE type = 'expense' AND date BETWEEN ? AND ?
		 GROUP BY category`,
		startDate, endDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expense categories: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var category string
		var total sql.NullFloat64
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		totals[category] += total.Float64
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category totals: %w", err)
	}
	return totals, nil
}
