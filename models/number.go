package models

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// maxNumberExponent bounds the decimal exponent accepted from input.
	maxNumberExponent = 18
	maxNumberLength   = 64
)

// MaxOrder is the largest stored sort order; bigger inputs are clamped.
const MaxOrder = math.MaxInt32

var maxOrder = decimal.NewFromInt(MaxOrder)

// FormNumber is a lenient numeric input as submitted by admin forms. Numbers,
// numeric strings, null and unparseable values all decode without error;
// anything that is not a finite number is treated as absent.
type FormNumber struct {
	value decimal.Decimal
	valid bool
}

// NumberOf returns a valid FormNumber holding n.
func NumberOf(n int64) FormNumber {
	return FormNumber{value: decimal.NewFromInt(n), valid: true}
}

// NumberFromDecimal returns a valid FormNumber holding d.
func NumberFromDecimal(d decimal.Decimal) FormNumber {
	return FormNumber{value: d, valid: true}
}

// NumberFromString parses s, yielding an invalid FormNumber when s is not numeric.
// Overlong input and exponents beyond ±18 are treated as not numeric.
func NumberFromString(s string) FormNumber {
	s = strings.TrimSpace(s)
	if len(s) > maxNumberLength {
		return FormNumber{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return FormNumber{}
	}
	if exp := d.Exponent(); exp > maxNumberExponent || exp < -maxNumberExponent {
		return FormNumber{}
	}
	return FormNumber{value: d, valid: true}
}

// UnmarshalJSON never fails: bad input leaves the number invalid.
func (n *FormNumber) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "" || raw == "null" || raw == "true" || raw == "false":
		*n = FormNumber{}
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*n = FormNumber{}
			return nil
		}
		*n = NumberFromString(s)
	default:
		*n = NumberFromString(raw)
	}
	return nil
}

// MarshalJSON writes null for invalid numbers.
func (n FormNumber) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return []byte("null"), nil
	}
	return []byte(n.value.String()), nil
}

// Valid reports whether the input held a number.
func (n FormNumber) Valid() bool {
	return n.valid
}

// NonNegativeInt coerces the number to an integer in [0, MaxOrder]. Invalid
// and negative inputs become 0, fractions are truncated and larger values
// are clamped.
func (n FormNumber) NonNegativeInt() int {
	if !n.valid || n.value.IsNegative() {
		return 0
	}
	if n.value.GreaterThan(maxOrder) {
		return MaxOrder
	}
	return int(n.value.IntPart())
}

// NonNegativeDecimal coerces the number to a non-negative decimal, 0 when
// invalid or negative.
func (n FormNumber) NonNegativeDecimal() decimal.Decimal {
	if !n.valid || n.value.IsNegative() {
		return decimal.Zero
	}
	return n.value
}
