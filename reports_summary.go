package estate

import "time"

// Summary provides an at-a-glance overview of the portfolio: valuation, cash
// flow, return ratios and renovation finances.
type Summary struct {
	Properties  int `json:"properties"`
	Renovations int `json:"renovations"`

	Value    Money   `json:"value"`
	Invested Money   `json:"invested"`
	Equity   Money   `json:"equity"`
	ROI      Percent `json:"roi"`

	MonthlyIncome   Money `json:"monthlyIncome"`
	MonthlyExpenses Money `json:"monthlyExpenses"`
	MonthlyCashflow Money `json:"monthlyCashflow"`
	AnnualIncome    Money `json:"annualIncome"`
	AnnualExpenses  Money `json:"annualExpenses"`
	AnnualCashflow  Money `json:"annualCashflow"`

	CapRate    Percent `json:"capRate"`
	CashOnCash Percent `json:"cashOnCash"`

	RenovationSpend  Money            `json:"renovationSpend"`
	RenovationBudget Money            `json:"renovationBudget"`
	SpentShare       Percent          `json:"spentShare"`
	BudgetByCategory []CategoryBudget `json:"budgetByCategory"`

	Pending          int `json:"pending"`
	InProgress       int `json:"inProgress"`
	Active           int `json:"active"`
	HighPriorityOpen int `json:"highPriorityOpen"`
}

// NewSummary computes the summary of a portfolio. It never fails: empty
// collections give a zero summary.
func NewSummary(ps Properties, rs Renovations) *Summary {
	return &Summary{
		Properties:  len(ps),
		Renovations: len(rs),

		Value:    ps.Value(),
		Invested: ps.Invested(),
		Equity:   ps.Equity(),
		ROI:      ps.ROI(),

		MonthlyIncome:   ps.MonthlyIncome(),
		MonthlyExpenses: ps.MonthlyExpenses(),
		MonthlyCashflow: ps.MonthlyCashflow(),
		AnnualIncome:    ps.AnnualIncome(),
		AnnualExpenses:  ps.AnnualExpenses(),
		AnnualCashflow:  ps.AnnualCashflow(),

		CapRate:    ps.CapRate(),
		CashOnCash: ps.CashOnCash(),

		RenovationSpend:  rs.Spend(),
		RenovationBudget: rs.RemainingBudget(),
		SpentShare:       rs.SpentShare(),
		BudgetByCategory: rs.BudgetByCategory(),

		Pending:          len(rs.ByStatus(Pending)),
		InProgress:       len(rs.ByStatus(InProgress)),
		Active:           len(rs.Active()),
		HighPriorityOpen: len(rs.HighPriorityOpen()),
	}
}

// Dashboard is the home screen content: the summary, the renovations that
// need attention and a greeting for the time of day.
type Dashboard struct {
	Greeting  string        `json:"greeting"`
	Summary   *Summary      `json:"summary"`
	Attention []Attention   `json:"attention"`
	Portfolio []PropertyRow `json:"portfolio"`
}

// Attention is a renovation of the attention list with its property name resolved.
type Attention struct {
	Renovation
	PropertyName string `json:"propertyName"`
}

func (a Attention) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(a.Renovation)
	w.Append("propertyName", a.PropertyName)
	return w.MarshalJSON()
}

// PropertyRow is a property with the number of its open renovations.
type PropertyRow struct {
	Property
	OpenRenovations int `json:"openRenovations"`
}

func (r PropertyRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(r.Property)
	w.Append("openRenovations", r.OpenRenovations)
	return w.MarshalJSON()
}

// NewDashboard computes the dashboard at time now.
func NewDashboard(ps Properties, rs Renovations, now time.Time) *Dashboard {
	d := &Dashboard{
		Greeting:  Greeting(now),
		Summary:   NewSummary(ps, rs),
		Attention: make([]Attention, 0, maxAttention),
		Portfolio: PropertyRows(ps, rs),
	}
	for _, r := range rs.AttentionList() {
		d.Attention = append(d.Attention, Attention{Renovation: r, PropertyName: ps.NameOf(r.PropertyID)})
	}
	return d
}

// PropertyRows pairs each property with its open renovation count.
func PropertyRows(ps Properties, rs Renovations) []PropertyRow {
	rows := make([]PropertyRow, 0, len(ps))
	for _, p := range ps {
		rows = append(rows, PropertyRow{Property: p, OpenRenovations: len(rs.ForProperty(p.ID))})
	}
	return rows
}

// Greeting returns "Good Morning" before noon, "Good Afternoon" before 5pm,
// and "Good Evening" otherwise.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good Morning"
	case h < 17:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}
