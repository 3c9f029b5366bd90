package estate

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "USD"

var (
	oneThousand = decimal.NewFromInt(1_000)
	oneMillion  = decimal.NewFromInt(1_000_000)
)

// Formatter turns amounts into display strings for one currency.
//
// Output only depends on the currency code, never on the system locale.
type Formatter struct {
	code     string
	grapheme string
	template string
	long     *money.Formatter
}

// NewFormatter returns a Formatter for an ISO currency code. Unknown codes
// fall back to DefaultCurrency.
func NewFormatter(code string) Formatter {
	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, strings.ToUpper(code)).Currency()
	if cur.Template == "" {
		cur = money.New(0, DefaultCurrency).Currency()
	}
	return Formatter{
		code:     cur.Code,
		grapheme: cur.Grapheme,
		template: cur.Template,
		// whole units only, hence no fraction digits.
		long: money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template),
	}
}

// Currency returns the currency code.
func (f Formatter) Currency() string { return f.code }

// Format returns the amount with thousands grouping and no decimals, e.g.
// "$1,234,567". Negative amounts are written "-$600".
func (f Formatter) Format(m Money) string {
	return f.long.Format(m.Int())
}

// FormatOptional is like Format but a nil amount is written as zero.
func (f Formatter) FormatOptional(m *Money) string {
	if m == nil {
		return f.Format(M(0))
	}
	return f.Format(*m)
}

// FormatShort abbreviates the amount: "$1.5M" from a million on, "$8K"
// from a thousand on, and the plain amount otherwise.
func (f Formatter) FormatShort(m Money) string {
	v := m.value
	sign := ""
	if v.IsNegative() {
		sign, v = "-", v.Neg()
	}
	var s string
	switch {
	case v.GreaterThanOrEqual(oneMillion):
		s = v.Div(oneMillion).StringFixed(1) + "M"
	case v.GreaterThanOrEqual(oneThousand):
		s = v.Div(oneThousand).StringFixed(0) + "K"
	default:
		s = v.String()
	}
	return sign + f.apply(s)
}

// apply places s in the currency template, like go-money does.
func (f Formatter) apply(s string) string {
	s = strings.Replace(f.template, "1", s, 1)
	return strings.Replace(s, "$", f.grapheme, 1)
}

var defaultFormatter = NewFormatter(DefaultCurrency)

// FormatCurrency formats m with the default currency, e.g. "$340,000".
func FormatCurrency(m Money) string { return defaultFormatter.Format(m) }

// FormatCurrencyShort abbreviates m with the default currency, e.g. "$1.5M".
func FormatCurrencyShort(m Money) string { return defaultFormatter.FormatShort(m) }
