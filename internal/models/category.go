package models

// DefaultCategories are the suggested spending categories. Categories are
// free-form text; this list only seeds the UI dropdowns.
var DefaultCategories = []string{
	"grocery",
	"clothing",
	"entertainment",
	"dining",
	"rent",
	"transportation",
	"others",
}
