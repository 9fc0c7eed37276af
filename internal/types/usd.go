package types

import (
	"encoding/json"
	"fmt"
)

// USD is a US dollar amount stored as whole cents for exact arithmetic.
//
// All arithmetic operates on the underlying int64 cent value, avoiding the
// floating-point rounding errors common in financial code. Overflow is not
// checked: int64 max cents is roughly $92 quadrillion, a value no tax return
// will ever approach.
type USD struct {
	cents int64
}

// Zero dollars.
var USDZero = USD{}

// FromDollars creates a USD value from a whole-dollar amount.
func FromDollars(dollars int64) USD {
	return USD{cents: dollars * 100}
}

// FromCents creates a USD value from a cent amount.
func FromCents(cents int64) USD {
	return USD{cents: cents}
}

// Cents returns the total value in cents.
func (u USD) Cents() int64 {
	return u.cents
}

// IsZero reports whether the amount is exactly zero.
func (u USD) IsZero() bool {
	return u.cents == 0
}

// IsNegative reports whether the amount is below zero.
func (u USD) IsNegative() bool {
	return u.cents < 0
}

// Add returns u + v.
func (u USD) Add(v USD) USD {
	return USD{cents: u.cents + v.cents}
}

// Sub returns u - v.
func (u USD) Sub(v USD) USD {
	return USD{cents: u.cents - v.cents}
}

// Neg returns -u.
func (u USD) Neg() USD {
	return USD{cents: -u.cents}
}

// MulInt returns u multiplied by an integer scalar.
func (u USD) MulInt(n int64) USD {
	return USD{cents: u.cents * n}
}

// LessThan reports whether u < v.
func (u USD) LessThan(v USD) bool {
	return u.cents < v.cents
}

// GreaterThan reports whether u > v.
func (u USD) GreaterThan(v USD) bool {
	return u.cents > v.cents
}

// Sum adds a sequence of amounts.
func Sum(amounts ...USD) USD {
	total := USDZero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// MaxUSD returns the larger of two amounts.
func MaxUSD(a, b USD) USD {
	if a.cents > b.cents {
		return a
	}
	return b
}

// MinUSD returns the smaller of two amounts.
func MinUSD(a, b USD) USD {
	if a.cents < b.cents {
		return a
	}
	return b
}

// nonNegativeRemainder returns cents mod 100 using the non-negative
// remainder convention, so -150 yields 50.
func nonNegativeRemainder(cents int64) int64 {
	rem := cents % 100
	if rem < 0 {
		rem += 100
	}
	return rem
}

// RoundUp rounds toward positive infinity to the nearest whole dollar.
// A zero cent remainder leaves the amount unchanged.
func (u USD) RoundUp() USD {
	rem := nonNegativeRemainder(u.cents)
	if rem == 0 {
		return u
	}
	return USD{cents: u.cents + (100 - rem)}
}

// RoundDown rounds toward negative infinity to the nearest whole dollar.
// Negative amounts move further negative: -$1.50 becomes -$2.
func (u USD) RoundDown() USD {
	return USD{cents: u.cents - nonNegativeRemainder(u.cents)}
}

// IRSRound rounds to the nearest whole dollar using the IRS whole-dollar
// method: the absolute value rounds to the nearest dollar with 50 cents or
// more advancing to the next dollar, then the original sign is reapplied.
// Negative amounts therefore round away from zero. Idempotent.
//
// See: https://www.irs.gov/instructions/i1040gi
func (u USD) IRSRound() USD {
	abs := u.cents
	if abs < 0 {
		abs = -abs
	}
	rem := abs % 100
	if rem >= 50 {
		abs += 100 - rem
	} else {
		abs -= rem
	}
	if u.cents < 0 {
		return USD{cents: -abs}
	}
	return USD{cents: abs}
}

// String renders as [-]$D.CC with exactly two fractional digits. Zero
// renders as $0.00.
func (u USD) String() string {
	sign := ""
	abs := u.cents
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	return fmt.Sprintf("%s$%d.%02d", sign, abs/100, abs%100)
}

// MarshalJSON encodes the amount as an integer cent count so wire payloads
// stay exact.
func (u USD) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.cents)
}

// UnmarshalJSON decodes an integer cent count.
func (u *USD) UnmarshalJSON(data []byte) error {
	var cents int64
	if err := json.Unmarshal(data, &cents); err != nil {
		return fmt.Errorf("invalid USD cent value: %w", err)
	}
	u.cents = cents
	return nil
}
