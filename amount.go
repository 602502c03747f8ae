package ledger

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultUnit is the unit of account used when none is configured.
const DefaultUnit = "AUD"

// fraction is the number of minor-unit digits of every amount.
const fraction = 2

// bounds of a quantity of minor units.
var (
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64)
)

// dollars formats quantities of minor units as "$1,234.56".
var dollars = money.NewFormatter(fraction, ".", ",", "$", "$1")

// Amount is a fixed-point signed quantity of minor units (hundredths) of a unit
// of account.
//
// The zero value is the nil amount: it has no unit, and stands for "no amount"
// in the journal ("-").
type Amount struct {
	unit     string
	quantity int64
}

// A is a convenient factory for an Amount of quantity minor units.
func A(quantity int64, unit string) Amount { return Amount{unit: unit, quantity: quantity} }

func (a Amount) Unit() string    { return a.unit }
func (a Amount) Quantity() int64 { return a.quantity }
func (a Amount) IsNil() bool     { return a.unit == "" }
func (a Amount) IsZero() bool    { return a.quantity == 0 }
func (a Amount) Neg() Amount     { return Amount{unit: a.unit, quantity: -a.quantity} }

// Add returns a+b. The nil amount is neutral, other amounts must share the same unit.
func (a Amount) Add(b Amount) (Amount, error) {
	unit, err := sameUnit(a, b)
	if err != nil {
		return Amount{}, err
	}
	return Amount{unit: unit, quantity: a.quantity + b.quantity}, nil
}

// Sub returns a-b. The nil amount is neutral, other amounts must share the same unit.
func (a Amount) Sub(b Amount) (Amount, error) { return a.Add(b.Neg()) }

// makes the nil unit totally weak.
func sameUnit(a, b Amount) (string, error) {
	switch {
	case a.unit == "":
		return b.unit, nil
	case b.unit == "":
		return a.unit, nil
	case a.unit != b.unit:
		return "", fmt.Errorf("%w: %s and %s", ErrMultiCurrency, a.unit, b.unit)
	}
	return a.unit, nil
}

// String formats the amount as a dollar string like "-$2,073.68", or "-" for
// the nil amount.
func (a Amount) String() string {
	if a.IsNil() {
		return "-"
	}
	return dollars.Format(a.quantity)
}

// ParseAmount converts text to an amount of unit. Dollar signs and thousands
// separators are ignored and the value is rounded to the nearest cent, half
// away from zero. The literal "-" is the nil amount.
func ParseAmount(unit, text string) (Amount, error) {
	clean := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(text))
	if clean == "-" {
		return Amount{}, nil
	}
	value, err := decimal.NewFromString(clean)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	if unit == "" {
		unit = DefaultUnit
	}
	cents := value.Shift(fraction).Round(0)
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return Amount{}, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, text)
	}
	return Amount{unit: unit, quantity: cents.IntPart()}, nil
}

// ParseAmountSigned is like ParseAmount, and then applies the sign of account's
// root, so that debit-style input is stored with the account's natural sign.
func ParseAmountSigned(unit, account, text string) (Amount, error) {
	sign, err := RootSign(account)
	if err != nil {
		return Amount{}, err
	}
	a, err := ParseAmount(unit, text)
	if err != nil {
		return Amount{}, err
	}
	a.quantity *= int64(sign)
	return a, nil
}

// Difference returns a-b, where either amount may be nil. A nil operand counts
// as zero in the unit of the other one.
func Difference(a, b Amount) (Amount, error) { return a.Sub(b) }

// ValidateUnit checks that unit is a known currency code.
func ValidateUnit(unit string) error {
	if money.GetCurrency(unit) == nil {
		return fmt.Errorf("unknown unit of account %q", unit)
	}
	return nil
}

// Balances maps a unit to the amount held in that unit.
type Balances map[string]Amount

// Add accumulates a into the entry of its unit, creating it if absent.
// Adding the nil amount does nothing.
func (b Balances) Add(a Amount) {
	if a.IsNil() {
		return
	}
	acc := b[a.unit]
	acc.unit = a.unit
	acc.quantity += a.quantity
	b[a.unit] = acc
}

// Units returns the units present, sorted.
func (b Balances) Units() []string {
	units := make([]string, 0, len(b))
	for unit := range b {
		units = append(units, unit)
	}
	slices.Sort(units)
	return units
}

// SingleUnit makes sure there is exactly one unit present and returns that amount.
func (b Balances) SingleUnit() (Amount, error) {
	if len(b) != 1 {
		return Amount{}, fmt.Errorf("%w: %v", ErrMultiCurrency, b.Units())
	}
	for _, a := range b {
		return a, nil
	}
	panic("unreachable")
}

// NilOrSingleUnit is like SingleUnit but returns the nil amount when no unit
// is present.
func (b Balances) NilOrSingleUnit() (Amount, error) {
	if len(b) == 0 {
		return Amount{}, nil
	}
	return b.SingleUnit()
}
