package forms

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidPrice is returned for input that is not a decimal number.
var ErrInvalidPrice = errors.New("invalid price")

// ErrNonPositivePrice is returned for zero or negative prices.
var ErrNonPositivePrice = errors.New("price must be greater than zero")

var oneHundred = decimal.NewFromInt(100)

// ParsePrice converts user price input to the canonical fixed-point
// representation the API stores: integer cents. Fractions beyond two
// decimal places are rounded half away from zero.
func ParsePrice(input string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrInvalidPrice
	}
	if !d.IsPositive() {
		return 0, ErrNonPositivePrice
	}
	return d.Mul(oneHundred).Round(0).IntPart(), nil
}

// FormatPrice renders integer cents back into the decimal string shown
// in edit forms.
func FormatPrice(cents int64) string {
	return decimal.NewFromInt(cents).Div(oneHundred).StringFixed(2)
}
