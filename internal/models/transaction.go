package models

// Transaction types for personal records.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// PersonalTransaction is one income or expense record belonging to a single
// user. Dates are stored as YYYY-MM-DD strings so range queries stay plain
// lexicographic comparisons.
type PersonalTransaction struct {
	// ID is the unique identifier for the transaction (sqlite rowid).
	ID int64 `json:"id"`

	// UserID is the owning user.
	UserID int64 `json:"user_id"`

	// Type is either "income" or "expense".
	Type string `json:"type"`

	// Amount is the transaction amount. Always positive.
	Amount float64 `json:"amount"`

	// Category is a free-form label; DefaultCategories offers suggestions.
	Category string `json:"category"`

	// Note is an optional description.
	Note string `json:"note"`

	// Date is the calendar date of the transaction (YYYY-MM-DD).
	Date string `json:"date"`
}
