package domain

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Numeric is a decimal that may be missing. Record fields arrive from
// several collaborators that do not agree on types, so decoding never fails:
// anything that is not a number or a numeric string becomes a missing value.
type Numeric struct {
	decimal.NullDecimal
}

// Bounds for values the ledger will do arithmetic on. Stored amounts are
// NUMERIC(18,4), far inside them.
const (
	maxNumericExponent = 28
	maxNumericDigits   = 38
)

// WithinLimits reports whether d is small enough to multiply and sum safely.
func WithinLimits(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp < -maxNumericExponent || exp > maxNumericExponent {
		return false
	}
	return d.NumDigits() <= maxNumericDigits
}

// NewNumeric wraps a present decimal value.
func NewNumeric(d decimal.Decimal) Numeric {
	return Numeric{NullDecimal: decimal.NewNullDecimal(d)}
}

// NumericFromInt wraps a present integer value.
func NumericFromInt(v int64) Numeric {
	return NewNumeric(decimal.NewFromInt(v))
}

// OrZero returns the value, or zero when it is missing.
func (n Numeric) OrZero() decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	return n.Decimal
}

// UnmarshalJSON accepts numbers and numeric strings. Everything else,
// including malformed or out-of-range input, decodes to a missing value
// without error.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	n.NullDecimal = decimal.NullDecimal{}

	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	text := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		text = strings.TrimSpace(s)
	}

	d, err := decimal.NewFromString(text)
	if err != nil || !WithinLimits(d) {
		return nil
	}
	n.NullDecimal = decimal.NewNullDecimal(d)
	return nil
}
