package models

// BalanceReport is the output of a full shared-balance computation.
type BalanceReport struct {
	// NetByUser maps user ID to net balance. Positive means the user is
	// owed money, negative means the user owes money. Users with no shared
	// activity have no entry.
	NetByUser map[int64]float64 `json:"net_by_user"`

	// Settlements are the transfers that clear all balances, in the order
	// the greedy matcher generated them.
	Settlements []Settlement `json:"settlements"`
}

// ExpenseDetail is a shared expense together with its computed per-user
// monetary shares.
type ExpenseDetail struct {
	Expense SharedExpense     `json:"expense"`
	Shares  map[int64]float64 `json:"shares"`
}

// UserMonthly is one user's slice of the monthly analysis, combining
// personal sums with their shared-expense shares for the month.
type UserMonthly struct {
	UserID           int64   `json:"user_id"`
	Name             string  `json:"name"`
	PersonalIncome   float64 `json:"personal_income"`
	PersonalExpenses float64 `json:"personal_expenses"`
	SharedShare      float64 `json:"shared_share"`
	TotalExpenses    float64 `json:"total_expenses"`
	Savings          float64 `json:"savings"`
}

// MonthlyTotals aggregates income, expenses and savings across all users.
type MonthlyTotals struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
}

// MonthlyAnalysis is the combined monthly view for all users.
type MonthlyAnalysis struct {
	Year     int           `json:"year"`
	Month    int           `json:"month"`
	PerUser  []UserMonthly `json:"per_user"`
	Combined MonthlyTotals `json:"combined"`

	// CategoryBreakdown sums personal expense categories and shared
	// expense totals by category label.
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
}
