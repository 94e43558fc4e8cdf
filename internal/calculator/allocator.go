// Package calculator implements the shared-expense settlement engine: share
// allocation, balance accumulation and greedy settlement matching.
//
// Everything here is pure and stateless. No I/O, no shared mutable state;
// the functions are safe to call concurrently on independent inputs.
package calculator

import "errors"

// amountTolerance absorbs floating-point error in allocation arithmetic.
// Monetary rounding happens only when settlement transfers are recorded,
// never during allocation.
const amountTolerance = 1e-6

// Split kinds accepted by the allocator.
const (
	KindFixed      = "fixed"
	KindPercentage = "percentage"
)

// Validation errors. All are deterministic and recoverable; retrying the
// same input cannot succeed.
var (
	ErrNoParticipants         = errors.New("at least one participant is required")
	ErrInvalidSplitKind       = errors.New("split kind must be 'fixed' or 'percentage'")
	ErrNegativeSplitValue     = errors.New("split value cannot be negative")
	ErrPayerNotIncluded       = errors.New("payer must be included in the splits")
	ErrFixedExceedsTotal      = errors.New("fixed splits exceed the total amount")
	ErrAllocationExceedsTotal = errors.New("allocated amount exceeds the total")
)

// Declaration is one participant's contribution rule for a shared expense:
// either a fixed monetary amount or a percentage weight.
type Declaration struct {
	UserID int64
	Kind   string
	Value  float64
}

// Allocate converts split declarations into exact monetary shares for a
// single expense.
//
// Fixed declarations are applied first. The remainder is distributed across
// percentage declarations proportionally to their values; percentages are
// relative weights and need not sum to 100, so removing a participant does
// not force re-entering everyone else's share. If no percentage rows exist
// and fixed splits under-cover the total, the remainder is split evenly per
// declaration row.
//
// A user appearing in several rows accumulates all of them. The returned
// shares always sum to totalAmount within 1e-6, or an error is returned and
// no partial result is produced.
func Allocate(totalAmount float64, declarations []Declaration) (map[int64]float64, error) {
	if len(declarations) == 0 {
		return nil, ErrNoParticipants
	}

	var fixedTotal, percentTotal float64
	for _, d := range declarations {
		if d.Value < 0 {
			return nil, ErrNegativeSplitValue
		}
		switch d.Kind {
		case KindFixed:
			fixedTotal += d.Value
		case KindPercentage:
			percentTotal += d.Value
		default:
			return nil, ErrInvalidSplitKind
		}
	}

	if fixedTotal-totalAmount > amountTolerance {
		return nil, ErrFixedExceedsTotal
	}

	shares := make(map[int64]float64, len(declarations))
	for _, d := range declarations {
		if d.Kind == KindFixed {
			shares[d.UserID] += d.Value
		}
	}

	remaining := totalAmount - fixedTotal
	if remaining < -amountTolerance {
		// Unreachable given the fixed-total check above, but accumulation
		// error must never turn into a negative allocation.
		return nil, ErrAllocationExceedsTotal
	}

	if remaining > amountTolerance {
		if percentTotal > 0 {
			for _, d := range declarations {
				if d.Kind == KindPercentage {
					shares[d.UserID] += remaining * (d.Value / percentTotal)
				}
			}
		} else {
			// Equal split per declaration row, not per distinct user: a
			// user listed twice collects two even shares.
			evenShare := remaining / float64(len(declarations))
			for _, d := range declarations {
				shares[d.UserID] += evenShare
			}
		}
	}

	return shares, nil
}
