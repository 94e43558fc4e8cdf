package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tzuhao-hung/expense-tracker/internal/calculator"
	"github.com/tzuhao-hung/expense-tracker/internal/models"
	"github.com/tzuhao-hung/expense-tracker/internal/storage"
)

// ReportService builds the combined monthly view: personal sums plus each
// user's shared-expense shares, with a category breakdown. It reuses the
// allocator per shared expense and adds no algorithm of its own.
type ReportService struct {
	store storage.Store
}

// NewReportService creates a new ReportService with the given storage
// backend.
func NewReportService(store storage.Store) *ReportService {
	return &ReportService{store: store}
}

// monthBounds returns the first and last day (YYYY-MM-DD) of a month.
func monthBounds(year, month int) (string, string) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}

// MonthlyAnalysis combines, for the given month, each user's personal
// income/expense sums with their shared shares, overall totals, and
// spending by category (personal expense categories plus each shared
// expense's category).
func (s *ReportService) MonthlyAnalysis(ctx context.Context, year, month int) (*models.MonthlyAnalysis, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}
	start, end := monthBounds(year, month)

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	perUser := make([]models.UserMonthly, len(users))
	index := make(map[int64]int, len(users))
	for i, user := range users {
		income, expenses, err := s.store.PersonalSums(ctx, user.ID, start, end)
		if err != nil {
			return nil, err
		}
		perUser[i] = models.UserMonthly{
			UserID:           user.ID,
			Name:             user.Name,
			PersonalIncome:   income,
			PersonalExpenses: expenses,
		}
		index[user.ID] = i
	}

	shared, err := s.store.ListSharedExpensesByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	for _, expense := range shared {
		shares, err := calculator.Allocate(expense.TotalAmount, toDeclarations(expense.Splits))
		if err != nil {
			return nil, fmt.Errorf("allocate shares for expense %d: %w", expense.ID, err)
		}
		for uid, share := range shares {
			if i, ok := index[uid]; ok {
				perUser[i].SharedShare += share
			}
		}
	}

	var combined models.MonthlyTotals
	for i := range perUser {
		perUser[i].TotalExpenses = perUser[i].PersonalExpenses + perUser[i].SharedShare
		perUser[i].Savings = perUser[i].PersonalIncome - perUser[i].TotalExpenses
		combined.Income += perUser[i].PersonalIncome
		combined.Expenses += perUser[i].TotalExpenses
	}
	combined.Savings = combined.Income - combined.Expenses

	breakdown, err := s.store.PersonalExpenseCategoryTotals(ctx, start, end)
	if err != nil {
		return nil, err
	}
	for _, expense := range shared {
		breakdown[expense.Category] += expense.TotalAmount
	}

	return &models.MonthlyAnalysis{
		Year:              year,
		Month:             month,
		PerUser:           perUser,
		Combined:          combined,
		CategoryBreakdown: breakdown,
	}, nil
}
