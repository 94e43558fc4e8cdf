package calculator

import (
	"math"
	"testing"
)

func TestAccumulate(t *testing.T) {
	t.Run("payer keeps total minus own share", func(t *testing.T) {
		// Alice pays 80, owes 48 of it herself; Bob owes 32.
		net, err := Accumulate([]ExpenseForBalance{
			{
				TotalAmount: 80,
				PayerID:     1,
				Declarations: []Declaration{
					{UserID: 1, Kind: KindPercentage, Value: 60},
					{UserID: 2, Kind: KindPercentage, Value: 40},
				},
			},
		})
		if err != nil {
			t.Fatalf("Accumulate failed: %v", err)
		}
		if math.Abs(net[1]-32.0) > 1e-9 {
			t.Errorf("user 1 balance = %v, want 32.0", net[1])
		}
		if math.Abs(net[2]+32.0) > 1e-9 {
			t.Errorf("user 2 balance = %v, want -32.0", net[2])
		}
	})

	t.Run("inactive users have no entry", func(t *testing.T) {
		net, err := Accumulate([]ExpenseForBalance{
			{
				TotalAmount: 10,
				PayerID:     1,
				Declarations: []Declaration{
					{UserID: 2, Kind: KindPercentage, Value: 100},
				},
			},
		})
		if err != nil {
			t.Fatalf("Accumulate failed: %v", err)
		}
		if _, ok := net[3]; ok {
			t.Error("expected no entry for user 3")
		}
	})

	t.Run("allocation failure aborts the pass", func(t *testing.T) {
		_, err := Accumulate([]ExpenseForBalance{
			{TotalAmount: 10, PayerID: 1, Declarations: nil},
		})
		if err == nil {
			t.Fatal("expected error for expense without declarations")
		}
	})

	expenses := []ExpenseForBalance{
		{
			TotalAmount: 80,
			PayerID:     1,
			Declarations: []Declaration{
				{UserID: 1, Kind: KindPercentage, Value: 60},
				{UserID: 2, Kind: KindPercentage, Value: 40},
			},
		},
		{
			TotalAmount: 100,
			PayerID:     2,
			Declarations: []Declaration{
				{UserID: 1, Kind: KindFixed, Value: 20},
				{UserID: 2, Kind: KindPercentage, Value: 75},
				{UserID: 3, Kind: KindPercentage, Value: 25},
			},
		},
		{
			TotalAmount: 45,
			PayerID:     3,
			Declarations: []Declaration{
				{UserID: 1, Kind: KindPercentage, Value: 0},
				{UserID: 2, Kind: KindPercentage, Value: 0},
				{UserID: 3, Kind: KindPercentage, Value: 0},
			},
		},
	}

	t.Run("balances sum to zero", func(t *testing.T) {
		net, err := Accumulate(expenses)
		if err != nil {
			t.Fatalf("Accumulate failed: %v", err)
		}
		var sum float64
		for _, bal := range net {
			sum += bal
		}
		if math.Abs(sum) > 1e-6 {
			t.Errorf("balance sum = %v, want 0", sum)
		}
	})

	t.Run("order of expenses does not matter", func(t *testing.T) {
		want, err := Accumulate(expenses)
		if err != nil {
			t.Fatalf("Accumulate failed: %v", err)
		}
		for _, perm := range [][]int{{0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}} {
			permuted := make([]ExpenseForBalance, len(expenses))
			for i, idx := range perm {
				permuted[i] = expenses[idx]
			}
			got, err := Accumulate(permuted)
			if err != nil {
				t.Fatalf("Accumulate failed for permutation %v: %v", perm, err)
			}
			if len(got) != len(want) {
				t.Fatalf("permutation %v: got %d balances, want %d", perm, len(got), len(want))
			}
			for uid, bal := range want {
				if math.Abs(got[uid]-bal) > 1e-9 {
					t.Errorf("permutation %v: user %d balance = %v, want %v", perm, uid, got[uid], bal)
				}
			}
		}
	})
}

func TestSettle(t *testing.T) {
	t.Run("three-user greedy matching", func(t *testing.T) {
		transfers := Settle(map[int64]float64{1: 50, 2: -20, 3: -30})
		want := []Transfer{
			{PayerID: 3, ReceiverID: 1, Amount: 30},
			{PayerID: 2, ReceiverID: 1, Amount: 20},
		}
		if len(transfers) != len(want) {
			t.Fatalf("got %d transfers, want %d: %+v", len(transfers), len(want), transfers)
		}
		for i, w := range want {
			if transfers[i] != w {
				t.Errorf("transfer[%d] = %+v, want %+v", i, transfers[i], w)
			}
		}
	})

	t.Run("equal amounts break ties by user id", func(t *testing.T) {
		transfers := Settle(map[int64]float64{1: 10, 3: -5, 2: -5})
		want := []Transfer{
			{PayerID: 2, ReceiverID: 1, Amount: 5},
			{PayerID: 3, ReceiverID: 1, Amount: 5},
		}
		if len(transfers) != len(want) {
			t.Fatalf("got %d transfers, want %d: %+v", len(transfers), len(want), transfers)
		}
		for i, w := range want {
			if transfers[i] != w {
				t.Errorf("transfer[%d] = %+v, want %+v", i, transfers[i], w)
			}
		}
	})

	t.Run("empty balances settle to nothing", func(t *testing.T) {
		if transfers := Settle(map[int64]float64{}); len(transfers) != 0 {
			t.Errorf("expected no transfers, got %+v", transfers)
		}
	})

	t.Run("noise below threshold is already settled", func(t *testing.T) {
		if transfers := Settle(map[int64]float64{1: 0.001, 2: -0.001}); len(transfers) != 0 {
			t.Errorf("expected no transfers, got %+v", transfers)
		}
	})

	t.Run("applying transfers drives balances to zero", func(t *testing.T) {
		net := map[int64]float64{
			1: 123.47,
			2: -61.2,
			3: -12.27,
			4: -50.0,
			5: 0.005,
		}
		remaining := make(map[int64]float64, len(net))
		for uid, bal := range net {
			remaining[uid] = bal
		}
		for _, tr := range Settle(net) {
			remaining[tr.PayerID] += tr.Amount
			remaining[tr.ReceiverID] -= tr.Amount
		}
		for uid, bal := range remaining {
			if math.Abs(bal) > 0.01 {
				t.Errorf("user %d balance after settlement = %v, want ~0", uid, bal)
			}
		}
	})

	t.Run("one debtor pays several creditors", func(t *testing.T) {
		transfers := Settle(map[int64]float64{1: 30, 2: 20, 3: -50})
		want := []Transfer{
			{PayerID: 3, ReceiverID: 1, Amount: 30},
			{PayerID: 3, ReceiverID: 2, Amount: 20},
		}
		if len(transfers) != len(want) {
			t.Fatalf("got %d transfers, want %d: %+v", len(transfers), len(want), transfers)
		}
		for i, w := range want {
			if transfers[i] != w {
				t.Errorf("transfer[%d] = %+v, want %+v", i, transfers[i], w)
			}
		}
	})
}
