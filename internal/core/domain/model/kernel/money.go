package kernel

import (
	"fmt"

	"buildmarket/internal/pkg/errs"
)

// Money is a value object for contract amounts. Amounts in this market are
// whole yen, so Money wraps a non-negative int64 and performs no fractional
// arithmetic.
//
// The zero value is a valid zero amount; negative amounts cannot be constructed.
type Money struct {
	amount int64
}

// NewMoney creates a Money value from a whole-yen amount.
// Returns an error if amount is negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// Amount returns the whole-yen amount.
func (m Money) Amount() int64 {
	return m.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsEqual compares two Money values.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String implements fmt.Stringer.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
