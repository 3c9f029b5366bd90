package renderer

import (
	"bytes"
	"io"
	"strings"

	"github.com/etnz/estate"
	"github.com/shopspring/decimal"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// barWidth is the number of cells of the longest bar.
const barWidth = 20

// bar draws v as a horizontal bar relative to max. Non positive values get
// an empty bar.
func bar(v, max estate.Money) string {
	if !v.IsPositive() || !max.IsPositive() {
		return ""
	}
	n := v.Decimal().Div(max.Decimal()).Mul(decimal.NewFromInt(barWidth)).Round(0).IntPart()
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", int(n))
}

// largest returns the largest amount, or zero.
func largest(values ...estate.Money) estate.Money {
	max := estate.M(0)
	for _, v := range values {
		if v.GreaterThan(max) {
			max = v
		}
	}
	return max
}

// equityPercent renders the property equity percent, "n/a" without a purchase price.
func equityPercent(p estate.Property) string {
	pct, ok := p.EquityPercent()
	if !ok {
		return "n/a"
	}
	return pct.Fixed(1) + "%"
}

// orDash returns s, or "-" when s is empty.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
