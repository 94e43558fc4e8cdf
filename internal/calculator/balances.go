package calculator

import (
	"fmt"
	"math"
	"sort"
)

// settledThreshold is the band around zero inside which a balance counts as
// settled. It is wider than amountTolerance because net balances carry the
// accumulated noise of many allocations.
const settledThreshold = 0.009

// ExpenseForBalance carries the minimal expense information needed for
// balance accumulation.
type ExpenseForBalance struct {
	TotalAmount  float64
	PayerID      int64
	Declarations []Declaration
}

// Transfer is a single payer-to-receiver payment produced by Settle.
type Transfer struct {
	PayerID    int64
	ReceiverID int64
	Amount     float64
}

// Accumulate folds shared expenses into a net balance per user: the payer is
// credited the full amount, every participant is debited their allocated
// share. A payer who also participates keeps total minus their own share as
// credit.
//
// The fold is commutative, so expense order does not matter. Users with no
// shared activity get no map entry. The returned balances sum to zero within
// floating-point tolerance; allocation failure on any expense aborts the
// whole pass.
func Accumulate(expenses []ExpenseForBalance) (map[int64]float64, error) {
	net := make(map[int64]float64)
	for _, e := range expenses {
		shares, err := Allocate(e.TotalAmount, e.Declarations)
		if err != nil {
			return nil, fmt.Errorf("allocate shares: %w", err)
		}
		net[e.PayerID] += e.TotalAmount
		for uid, share := range shares {
			net[uid] -= share
		}
	}
	return net, nil
}

// party is one side of a settlement: a creditor or a debtor with the
// positive amount still outstanding.
type party struct {
	userID int64
	amount float64
}

// Settle reduces net balances to a list of pairwise transfers using greedy
// largest-first matching: the biggest debtor pays the biggest creditor the
// smaller of the two outstanding amounts, and whichever side drops inside
// the settled band advances.
//
// Transfer amounts are rounded to 2 decimal places; the running remainders
// shrink by the unrounded amount so rounding error never drifts into later
// transfers. Equal amounts are ordered by user ID ascending to keep the
// output deterministic despite map iteration order.
func Settle(net map[int64]float64) []Transfer {
	var creditors, debtors []party
	for uid, bal := range net {
		switch {
		case bal > settledThreshold:
			creditors = append(creditors, party{userID: uid, amount: bal})
		case bal < -settledThreshold:
			debtors = append(debtors, party{userID: uid, amount: -bal})
		}
	}

	sortLargestFirst(creditors)
	sortLargestFirst(debtors)

	var transfers []Transfer
	ci, di := 0, 0
	for ci < len(creditors) && di < len(debtors) {
		pay := math.Min(creditors[ci].amount, debtors[di].amount)
		transfers = append(transfers, Transfer{
			PayerID:    debtors[di].userID,
			ReceiverID: creditors[ci].userID,
			Amount:     roundCents(pay),
		})

		creditors[ci].amount -= pay
		debtors[di].amount -= pay
		if creditors[ci].amount <= settledThreshold {
			ci++
		}
		if debtors[di].amount <= settledThreshold {
			di++
		}
	}
	return transfers
}

func sortLargestFirst(parties []party) {
	sort.Slice(parties, func(i, j int) bool {
		if parties[i].amount != parties[j].amount {
			return parties[i].amount > parties[j].amount
		}
		return parties[i].userID < parties[j].userID
	})
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
