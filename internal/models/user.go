// Package models defines the core domain models for the expense tracker.
//
// Two ledgers coexist:
//   - PersonalTransaction: a single user's own income/expense records.
//   - SharedExpense: a group expense paid by one user and split among
//     participants via SplitDeclaration rows.
//
// Settlements are derived from shared expenses on demand and never persisted.
package models

// User is a registered participant.
type User struct {
	// ID is the unique identifier for the user (sqlite rowid).
	ID int64 `json:"id"`

	// Name is the display name. Unique; lookups are case-insensitive.
	Name string `json:"name"`
}
