package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/estate"
	md "github.com/nao1215/markdown"
)

// FinancialsMarkdown renders the portfolio financials: key ratios, monthly
// and annual figures, cash flow per property and the renovation budget.
func FinancialsMarkdown(ps estate.Properties, rs estate.Renovations, f estate.Formatter) string {
	s := estate.NewSummary(ps, rs)

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Financials")

	doc.H2("Key Metrics")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Cap Rate", s.CapRate.Fixed(2) + "%"},
			{"Cash-on-Cash", s.CashOnCash.Fixed(2) + "%"},
		},
	})

	doc.H2("Monthly Breakdown")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Monthly"},
		Rows: [][]string{
			{"Income", f.Format(s.MonthlyIncome)},
			{"Expenses", f.Format(s.MonthlyExpenses)},
			{md.Bold("Net Cash Flow"), md.Bold(f.Format(s.MonthlyCashflow))},
		},
	})

	doc.H2("Annual Summary")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"", "Annual", ""},
		Rows: [][]string{
			{"Revenue", f.FormatShort(s.AnnualIncome), ""},
			{"Expenses", f.FormatShort(s.AnnualExpenses), ""},
			{"Net Profit", f.FormatShort(s.AnnualCashflow), ""},
			{"Equity", f.FormatShort(s.Equity), fmt.Sprintf("%s%% gain", s.ROI.Fixed(1))},
		},
	})

	if len(ps) > 0 {
		doc.H2("Cash Flow by Property")
		flows := make([]estate.Money, 0, len(ps))
		values := make([]estate.Money, 0, len(ps))
		for _, p := range ps {
			flows = append(flows, p.MonthlyCashflow())
			values = append(values, p.CurrentValue)
		}
		maxFlow, maxValue := largest(flows...), largest(values...)
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignLeft},
			Header:    []string{"Property", "Cash Flow", "", "Value", ""},
			Rows:      [][]string{},
		}
		for _, p := range ps {
			table.Rows = append(table.Rows, []string{
				p.Name,
				f.Format(p.MonthlyCashflow()) + "/mo",
				bar(p.MonthlyCashflow(), maxFlow),
				f.FormatShort(p.CurrentValue),
				bar(p.CurrentValue, maxValue),
			})
		}
		doc.Table(table)
	}

	doc.H2("Renovation Budget")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Amount"},
		Rows: [][]string{
			{"Spent (Completed)", f.Format(s.RenovationSpend)},
			{"Remaining Budget", f.Format(s.RenovationBudget)},
		},
	})
	doc.PlainText(fmt.Sprintf("%s%% of the renovation budget is spent.", s.SpentShare.Fixed(0)))

	if len(s.BudgetByCategory) > 0 {
		doc.H3("Budget by Category")
		maxBudget := s.BudgetByCategory[0].Budget
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
			Header:    []string{"Category", "Budget", ""},
			Rows:      [][]string{},
		}
		for _, c := range s.BudgetByCategory {
			table.Rows = append(table.Rows, []string{string(c.Category), f.FormatShort(c.Budget), bar(c.Budget, maxBudget)})
		}
		doc.Table(table)
	}

	return doc.String()
}
