package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
//
// Deleting a user cascades everywhere: their personal transactions, the
// shared expenses they paid for, and their split rows on other expenses.
// Splits also cascade with their owning expense.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS personal_transactions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    type TEXT NOT NULL CHECK (type IN ('income', 'expense')),
    amount REAL NOT NULL CHECK (amount > 0),
    category TEXT NOT NULL,
    note TEXT DEFAULT '',
    date TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS shared_expenses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    total_amount REAL NOT NULL CHECK (total_amount > 0),
    date TEXT NOT NULL,
    paid_by_user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    category TEXT NOT NULL DEFAULT 'others',
    note TEXT DEFAULT ''
);

CREATE TABLE IF NOT EXISTS shared_expense_splits (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    shared_expense_id INTEGER NOT NULL REFERENCES shared_expenses(id) ON DELETE CASCADE,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    split_kind TEXT NOT NULL CHECK (split_kind IN ('percentage', 'fixed')),
    split_value REAL NOT NULL CHECK (split_value >= 0)
);

CREATE INDEX IF NOT EXISTS idx_personal_transactions_user_date
    ON personal_transactions(user_id, date);

CREATE INDEX IF NOT EXISTS idx_shared_expenses_date
    ON shared_expenses(date);

CREATE INDEX IF NOT EXISTS idx_shared_expense_splits_expense_id
    ON shared_expense_splits(shared_expense_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
