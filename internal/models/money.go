package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrAmountOutOfRange is returned when an amount does not fit in Money.
var ErrAmountOutOfRange = errors.New("amount out of range")

// Money is a fixed-point amount in cents. Monetary arithmetic never goes
// through float64.
type Money int64

// basisPoints is the scale of rates expressed in basis points (1% == 100).
const basisPoints = 10000

// Cents returns the raw number of cents.
func (m Money) Cents() int64 { return int64(m) }

// String formats m as "1234.50" (with a leading '-' for negative amounts).
func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// ApplyRate returns m * (1 + bps/10000) rounded half away from zero to the cent.
// A rate of 1000 bps adds 10%. It fails with ErrAmountOutOfRange when the
// result does not fit in Money or the rate is below -100%.
func (m Money) ApplyRate(bps int64) (Money, error) {
	factor := basisPoints + bps
	if bps > math.MaxInt64-basisPoints || factor < 0 {
		return 0, fmt.Errorf("%w: rate %d bps", ErrAmountOutOfRange, bps)
	}

	v := int64(m)
	half := int64(basisPoints / 2)
	if factor > 0 && (v > (math.MaxInt64-half)/factor || v < (math.MinInt64+half)/factor) {
		return 0, fmt.Errorf("%w: %s at %d bps", ErrAmountOutOfRange, m, bps)
	}

	num := v * factor
	if num < 0 {
		return Money((num - half) / basisPoints), nil
	}
	return Money((num + half) / basisPoints), nil
}

// ParseMoney parses "1234", "1234.5" or "1234.50" into Money.
// At most two fractional digits are accepted; thousands separators are not.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || (hasFrac && (frac == "" || len(frac) > 2)) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	w, err := strconv.ParseUint(whole, 10, 62)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	var f uint64
	if hasFrac {
		if len(frac) == 1 {
			frac += "0"
		}
		f, err = strconv.ParseUint(frac, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", s, err)
		}
	}

	if w > (math.MaxInt64-99)/100 {
		return 0, fmt.Errorf("invalid amount %q: %w", s, ErrAmountOutOfRange)
	}

	v := int64(w)*100 + int64(f)
	if neg {
		v = -v
	}
	return Money(v), nil
}
