// Package amount holds the fixed two-decimal money type stored in NUMERIC(10,2) columns.
package amount

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	places = 2

	// MaxCents is the largest magnitude a NUMERIC(10,2) column holds (99999999.99).
	MaxCents = 9_999_999_999
)

var ErrInvalidAmount = errors.New("invalid amount")

var maxValue = decimal.New(MaxCents, -places)

// Amount is a monetary value with exactly two fraction digits. The zero value is 0.00.
// Every constructor yields the same representation for equal values, so amounts compare with ==
// semantics under reflect.DeepEqual.
type Amount struct {
	value decimal.Decimal
}

func FromCents(cents int64) Amount {
	if cents == 0 {
		return Amount{}
	}

	return Amount{value: decimal.New(cents, -places)}
}

// FromFloat rounds value half away from zero to two fraction digits.
func FromFloat(value float64) Amount {
	return fromDecimal(decimal.NewFromFloat(value).Round(places))
}

func fromDecimal(d decimal.Decimal) Amount {
	return FromCents(d.Shift(places).IntPart())
}

// Parse reads values such as "100", "100.5" or "-12.25". More than two fraction digits or a
// magnitude beyond 99999999.99 is an error.
func Parse(value string) (Amount, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Amount{}, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(value)
	if err != nil || strings.ContainsAny(value, "eE") {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}

	if d.Exponent() < -places {
		return Amount{}, fmt.Errorf("%w: %q has more than two decimals", ErrInvalidAmount, value)
	}

	if d.Abs().GreaterThan(maxValue) {
		return Amount{}, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, value)
	}

	return fromDecimal(d), nil
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

func (a Amount) Cents() int64 {
	return a.value.Shift(places).IntPart()
}

func (a Amount) IsNegative() bool {
	return a.value.IsNegative()
}

func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

func (a Amount) String() string {
	return a.value.StringFixed(places)
}

// Value implements driver.Valuer.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan implements sql.Scanner for NUMERIC columns.
func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = Amount{}

		return nil
	case []byte:
		return a.parseInto(string(v))
	case string:
		return a.parseInto(v)
	case float64:
		*a = FromFloat(v)

		return nil
	case int64:
		return a.parseInto(decimal.NewFromInt(v).String())
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidAmount, src)
	}
}

func (a *Amount) parseInto(value string) error {
	parsed, err := Parse(value)
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and numeric strings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAmount, err)
		}

		return a.parseInto(str)
	}

	return a.parseInto(string(data))
}
