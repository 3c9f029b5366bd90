package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/estate"
	md "github.com/nao1215/markdown"
)

// PropertiesMarkdown renders the property list with the portfolio totals.
func PropertiesMarkdown(ps estate.Properties, rs estate.Renovations, f estate.Formatter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Properties")
	if len(ps) == 0 {
		doc.PlainText("No properties yet. Add one with `est add-property`.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("%d properties, %s total value.", len(ps), f.FormatShort(ps.Value())))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ID", "Name", "Type", "Value", "Equity", "Cash Flow", "Open Projects"},
		Rows:   [][]string{},
	}
	for _, row := range estate.PropertyRows(ps, rs) {
		table.Rows = append(table.Rows, []string{
			row.ID,
			row.Name,
			string(row.Type),
			f.FormatShort(row.CurrentValue),
			fmt.Sprintf("%s (%s)", f.Format(row.Equity()), equityPercent(row.Property)),
			f.Format(row.MonthlyCashflow()) + "/mo",
			strconv.Itoa(row.OpenRenovations),
		})
	}
	doc.Table(table)
	return doc.String()
}

// PropertyMarkdown renders a single property with its open renovations.
func PropertyMarkdown(p estate.Property, rs estate.Renovations, f estate.Formatter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(p.Name)
	doc.PlainText(fmt.Sprintf("%s, %s", orDash(p.Address), p.Type))

	details := [][]string{
		{"Purchase Price", f.Format(p.PurchasePrice)},
		{"Current Value", f.Format(p.CurrentValue)},
		{"Equity", fmt.Sprintf("%s (%s)", f.Format(p.Equity()), equityPercent(p))},
		{"Monthly Rent", f.Format(p.MonthlyRent)},
		{"Monthly Expenses", f.Format(p.MonthlyExpenses)},
		{md.Bold("Monthly Cash Flow"), md.Bold(f.Format(p.MonthlyCashflow()))},
		{"Annual Cash Flow", f.Format(p.AnnualCashflow())},
		{"Units", strconv.Itoa(p.UnitCount())},
	}
	if p.Sqft > 0 {
		details = append(details, []string{"Sqft", strconv.Itoa(p.Sqft)})
	}
	if p.YearPurchased > 0 {
		details = append(details, []string{"Purchased", strconv.Itoa(p.YearPurchased)})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", p.ID},
		Rows:      details,
	})

	open := rs.ForProperty(p.ID)
	doc.H2(fmt.Sprintf("Open Renovations (%d)", len(open)))
	if len(open) == 0 {
		doc.PlainText("Nothing planned.")
		return doc.String()
	}
	doc.Table(renovationTable(open, nil, f))
	return doc.String()
}
