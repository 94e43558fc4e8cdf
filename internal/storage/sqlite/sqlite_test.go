package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tzuhao-hung/expense-tracker/internal/models"
	"github.com/tzuhao-hung/expense-tracker/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "expense-tracker-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateUser assigns an ID", func(t *testing.T) {
		user, err := store.CreateUser(ctx, "Alice")
		if err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		if user.ID == 0 {
			t.Error("Expected user ID to be assigned")
		}
		if user.Name != "Alice" {
			t.Errorf("Name = %q, want %q", user.Name, "Alice")
		}
	})

	t.Run("duplicate names are rejected case-insensitively", func(t *testing.T) {
		if _, err := store.CreateUser(ctx, "alice"); !errors.Is(err, storage.ErrUserExists) {
			t.Errorf("CreateUser error = %v, want ErrUserExists", err)
		}
	})

	t.Run("GetUserByName is case-insensitive", func(t *testing.T) {
		user, err := store.GetUserByName(ctx, "ALICE")
		if err != nil {
			t.Fatalf("GetUserByName failed: %v", err)
		}
		if user == nil || user.Name != "Alice" {
			t.Errorf("GetUserByName = %+v, want Alice", user)
		}
	})

	t.Run("GetUser of unknown ID reports not found", func(t *testing.T) {
		if _, err := store.GetUser(ctx, 9999); !errors.Is(err, storage.ErrUserNotFound) {
			t.Errorf("GetUser error = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("ListUsers orders by name", func(t *testing.T) {
		if _, err := store.CreateUser(ctx, "Bob"); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		users, err := store.ListUsers(ctx)
		if err != nil {
			t.Fatalf("ListUsers failed: %v", err)
		}
		if len(users) != 2 || users[0].Name != "Alice" || users[1].Name != "Bob" {
			t.Errorf("ListUsers = %+v, want [Alice Bob]", users)
		}
	})
}

func TestPersonalTransactions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice, err := store.CreateUser(ctx, "Alice")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	tx := &models.PersonalTransaction{
		UserID:   alice.ID,
		Type:     models.TransactionIncome,
		Amount:   2000,
		Category: "salary",
		Note:     "Monthly paycheck",
		Date:     "2023-12-01",
	}
	if err := store.CreatePersonalTransaction(ctx, tx); err != nil {
		t.Fatalf("CreatePersonalTransaction failed: %v", err)
	}
	if tx.ID == 0 {
		t.Fatal("Expected transaction ID to be assigned")
	}

	groceries := &models.PersonalTransaction{
		UserID:   alice.ID,
		Type:     models.TransactionExpense,
		Amount:   150.5,
		Category: "grocery",
		Date:     "2023-12-05",
	}
	if err := store.CreatePersonalTransaction(ctx, groceries); err != nil {
		t.Fatalf("CreatePersonalTransaction failed: %v", err)
	}

	t.Run("Get returns the stored record", func(t *testing.T) {
		got, err := store.GetPersonalTransaction(ctx, tx.ID)
		if err != nil {
			t.Fatalf("GetPersonalTransaction failed: %v", err)
		}
		if *got != *tx {
			t.Errorf("GetPersonalTransaction = %+v, want %+v", got, tx)
		}
	})

	t.Run("Update replaces mutable fields", func(t *testing.T) {
		groceries.Amount = 160
		groceries.Note = "corrected"
		if err := store.UpdatePersonalTransaction(ctx, groceries); err != nil {
			t.Fatalf("UpdatePersonalTransaction failed: %v", err)
		}
		got, err := store.GetPersonalTransaction(ctx, groceries.ID)
		if err != nil {
			t.Fatalf("GetPersonalTransaction failed: %v", err)
		}
		if got.Amount != 160 || got.Note != "corrected" {
			t.Errorf("updated transaction = %+v", got)
		}
	})

	t.Run("List filters by date and orders newest first", func(t *testing.T) {
		txs, err := store.ListPersonalTransactions(ctx, alice.ID, "", "")
		if err != nil {
			t.Fatalf("ListPersonalTransactions failed: %v", err)
		}
		if len(txs) != 2 || txs[0].Date != "2023-12-05" {
			t.Errorf("ListPersonalTransactions = %+v", txs)
		}

		txs, err = store.ListPersonalTransactions(ctx, alice.ID, "2023-12-02", "2023-12-31")
		if err != nil {
			t.Fatalf("ListPersonalTransactions failed: %v", err)
		}
		if len(txs) != 1 || txs[0].Category != "grocery" {
			t.Errorf("filtered transactions = %+v", txs)
		}
	})

	t.Run("PersonalSums splits income and expenses", func(t *testing.T) {
		income, expenses, err := store.PersonalSums(ctx, alice.ID, "2023-12-01", "2023-12-31")
		if err != nil {
			t.Fatalf("PersonalSums failed: %v", err)
		}
		if income != 2000 || expenses != 160 {
			t.Errorf("PersonalSums = (%v, %v), want (2000, 160)", income, expenses)
		}
	})

	t.Run("Delete removes the record", func(t *testing.T) {
		if err := store.DeletePersonalTransaction(ctx, groceries.ID); err != nil {
			t.Fatalf("DeletePersonalTransaction failed: %v", err)
		}
		if _, err := store.GetPersonalTransaction(ctx, groceries.ID); !errors.Is(err, storage.ErrTransactionNotFound) {
			t.Errorf("GetPersonalTransaction error = %v, want ErrTransactionNotFound", err)
		}
	})
}

func TestSharedExpenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice, _ := store.CreateUser(ctx, "Alice")
	bob, _ := store.CreateUser(ctx, "Bob")

	dinner := &models.SharedExpense{
		Title:        "Dinner",
		TotalAmount:  80,
		Date:         "2023-12-02",
		PaidByUserID: alice.ID,
		Category:     "dining",
		Splits: []models.SplitDeclaration{
			{UserID: alice.ID, Kind: models.SplitPercentage, Value: 60},
			{UserID: bob.ID, Kind: models.SplitPercentage, Value: 40},
		},
	}
	if err := store.CreateSharedExpense(ctx, dinner); err != nil {
		t.Fatalf("CreateSharedExpense failed: %v", err)
	}
	if dinner.ID == 0 {
		t.Fatal("Expected expense ID to be assigned")
	}

	t.Run("Get returns the expense with splits", func(t *testing.T) {
		got, err := store.GetSharedExpense(ctx, dinner.ID)
		if err != nil {
			t.Fatalf("GetSharedExpense failed: %v", err)
		}
		if got.Title != "Dinner" || got.TotalAmount != 80 || got.PaidByUserID != alice.ID {
			t.Errorf("GetSharedExpense = %+v", got)
		}
		if len(got.Splits) != 2 {
			t.Fatalf("got %d splits, want 2", len(got.Splits))
		}
		if got.Splits[0].UserID != alice.ID || got.Splits[0].Value != 60 {
			t.Errorf("splits[0] = %+v", got.Splits[0])
		}
	})

	t.Run("Update replaces splits atomically", func(t *testing.T) {
		dinner.TotalAmount = 90
		dinner.Splits = []models.SplitDeclaration{
			{UserID: alice.ID, Kind: models.SplitFixed, Value: 50},
			{UserID: bob.ID, Kind: models.SplitPercentage, Value: 100},
		}
		if err := store.UpdateSharedExpense(ctx, dinner); err != nil {
			t.Fatalf("UpdateSharedExpense failed: %v", err)
		}
		got, err := store.GetSharedExpense(ctx, dinner.ID)
		if err != nil {
			t.Fatalf("GetSharedExpense failed: %v", err)
		}
		if got.TotalAmount != 90 || len(got.Splits) != 2 || got.Splits[0].Kind != models.SplitFixed {
			t.Errorf("updated expense = %+v", got)
		}
	})

	t.Run("List by date range", func(t *testing.T) {
		trip := &models.SharedExpense{
			Title:        "Gas",
			TotalAmount:  45,
			Date:         "2024-01-10",
			PaidByUserID: bob.ID,
			Category:     "transportation",
			Splits: []models.SplitDeclaration{
				{UserID: alice.ID, Kind: models.SplitPercentage, Value: 50},
				{UserID: bob.ID, Kind: models.SplitPercentage, Value: 50},
			},
		}
		if err := store.CreateSharedExpense(ctx, trip); err != nil {
			t.Fatalf("CreateSharedExpense failed: %v", err)
		}

		all, err := store.ListSharedExpenses(ctx)
		if err != nil {
			t.Fatalf("ListSharedExpenses failed: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("got %d expenses, want 2", len(all))
		}

		december, err := store.ListSharedExpensesByDateRange(ctx, "2023-12-01", "2023-12-31")
		if err != nil {
			t.Fatalf("ListSharedExpensesByDateRange failed: %v", err)
		}
		if len(december) != 1 || december[0].Title != "Dinner" {
			t.Errorf("december expenses = %+v", december)
		}
	})

	t.Run("Delete cascades to splits", func(t *testing.T) {
		if err := store.DeleteSharedExpense(ctx, dinner.ID); err != nil {
			t.Fatalf("DeleteSharedExpense failed: %v", err)
		}
		if _, err := store.GetSharedExpense(ctx, dinner.ID); !errors.Is(err, storage.ErrExpenseNotFound) {
			t.Errorf("GetSharedExpense error = %v, want ErrExpenseNotFound", err)
		}
		splits, err := store.ListSplits(ctx, dinner.ID)
		if err != nil {
			t.Fatalf("ListSplits failed: %v", err)
		}
		if len(splits) != 0 {
			t.Errorf("expected splits to cascade, got %+v", splits)
		}
	})
}

func TestDeleteUserCascades(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice, _ := store.CreateUser(ctx, "Alice")
	bob, _ := store.CreateUser(ctx, "Bob")

	// Bob pays for an expense Alice participates in, and Alice pays for one
	// of her own.
	bobsExpense := &models.SharedExpense{
		Title: "Rent", TotalAmount: 1000, Date: "2023-12-01", PaidByUserID: bob.ID,
		Category: "rent",
		Splits: []models.SplitDeclaration{
			{UserID: alice.ID, Kind: models.SplitPercentage, Value: 50},
			{UserID: bob.ID, Kind: models.SplitPercentage, Value: 50},
		},
	}
	alicesExpense := &models.SharedExpense{
		Title: "Groceries", TotalAmount: 60, Date: "2023-12-03", PaidByUserID: alice.ID,
		Category: "grocery",
		Splits: []models.SplitDeclaration{
			{UserID: alice.ID, Kind: models.SplitPercentage, Value: 0},
			{UserID: bob.ID, Kind: models.SplitPercentage, Value: 0},
		},
	}
	for _, e := range []*models.SharedExpense{bobsExpense, alicesExpense} {
		if err := store.CreateSharedExpense(ctx, e); err != nil {
			t.Fatalf("CreateSharedExpense failed: %v", err)
		}
	}
	if err := store.CreatePersonalTransaction(ctx, &models.PersonalTransaction{
		UserID: alice.ID, Type: models.TransactionExpense, Amount: 20,
		Category: "others", Date: "2023-12-04",
	}); err != nil {
		t.Fatalf("CreatePersonalTransaction failed: %v", err)
	}

	if err := store.DeleteUser(ctx, alice.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	// Alice's own expense is gone entirely.
	if _, err := store.GetSharedExpense(ctx, alicesExpense.ID); !errors.Is(err, storage.ErrExpenseNotFound) {
		t.Errorf("GetSharedExpense error = %v, want ErrExpenseNotFound", err)
	}

	// Bob's expense survives, but Alice's split row on it is removed.
	got, err := store.GetSharedExpense(ctx, bobsExpense.ID)
	if err != nil {
		t.Fatalf("GetSharedExpense failed: %v", err)
	}
	if len(got.Splits) != 1 || got.Splits[0].UserID != bob.ID {
		t.Errorf("surviving splits = %+v, want only Bob's", got.Splits)
	}

	// Alice's personal transactions are gone.
	txs, err := store.ListPersonalTransactions(ctx, alice.ID, "", "")
	if err != nil {
		t.Fatalf("ListPersonalTransactions failed: %v", err)
	}
	if len(txs) != 0 {
		t.Errorf("expected personal transactions to cascade, got %+v", txs)
	}
}
