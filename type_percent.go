package estate

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Percent float64

var hundred = decimal.NewFromInt(100)

// ratio returns num/den*100 rounded to places decimals, and 0 when den is zero.
func ratio(num, den Money, places int32) Percent {
	if den.IsZero() {
		return 0
	}
	return Percent(num.value.Div(den.value).Mul(hundred).Round(places).InexactFloat64())
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// Fixed formats the percent with the given number of decimals and no sign, e.g. "7.2".
func (p Percent) Fixed(places int) string {
	return fmt.Sprintf("%.*f", places, p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
