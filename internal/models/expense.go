package models

// Split kinds for shared expense declarations.
const (
	SplitFixed      = "fixed"
	SplitPercentage = "percentage"
)

// SharedExpense is a group expense paid by one user and split among the
// declared participants. It owns its SplitDeclaration rows; deleting the
// expense deletes them.
type SharedExpense struct {
	// ID is the unique identifier for the expense (sqlite rowid).
	ID int64 `json:"id"`

	// Title is the human-readable name for the expense.
	Title string `json:"title"`

	// TotalAmount is the full amount the payer covered. Always positive.
	TotalAmount float64 `json:"total_amount"`

	// Date is the calendar date of the expense (YYYY-MM-DD).
	Date string `json:"date"`

	// PaidByUserID is the user who paid the total amount. The payer must
	// also appear among the split declarations.
	PaidByUserID int64 `json:"paid_by_user_id"`

	// Category is a free-form label used in the monthly breakdown.
	Category string `json:"category"`

	// Note is an optional description.
	Note string `json:"note"`

	// Splits are the participant declarations for this expense.
	Splits []SplitDeclaration `json:"splits"`
}

// SplitDeclaration is one participant's stated contribution rule for a
// shared expense. A user may appear in several rows of the same expense;
// their rows are summed during allocation, never overwritten.
//
// Declarations are normalized into this shape once at the storage boundary,
// so downstream code never needs to sniff alternative field names.
type SplitDeclaration struct {
	// UserID is the participant.
	UserID int64 `json:"user_id"`

	// Kind is "fixed" (a monetary amount) or "percentage" (a relative
	// weight over whatever remains after fixed allocations).
	Kind string `json:"split_kind"`

	// Value is the declared amount or weight. Never negative.
	Value float64 `json:"split_value"`
}

// Settlement is a single recommended transfer that moves net balances toward
// zero. Settlements are recomputed from scratch on every balance request and
// are never stored.
type Settlement struct {
	// PayerID is the debtor making the transfer.
	PayerID int64 `json:"payer_id"`

	// ReceiverID is the creditor being paid.
	ReceiverID int64 `json:"receiver_id"`

	// Amount is the transfer amount, rounded to 2 decimal places.
	Amount float64 `json:"amount"`
}
