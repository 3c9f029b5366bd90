package estate

import "slices"

// Portfolio wide metrics. Every function is a pure function of the
// collection it is called on.

// Value is the sum of current values.
func (ps Properties) Value() Money {
	return sumOf(ps, func(p Property) Money { return p.CurrentValue })
}

// Invested is the sum of purchase prices.
func (ps Properties) Invested() Money {
	return sumOf(ps, func(p Property) Money { return p.PurchasePrice })
}

// Equity is Value minus Invested.
func (ps Properties) Equity() Money { return ps.Value().Sub(ps.Invested()) }

// MonthlyIncome is the sum of monthly rents.
func (ps Properties) MonthlyIncome() Money {
	return sumOf(ps, func(p Property) Money { return p.MonthlyRent })
}

// MonthlyExpenses is the sum of monthly expenses.
func (ps Properties) MonthlyExpenses() Money {
	return sumOf(ps, func(p Property) Money { return p.MonthlyExpenses })
}

// MonthlyCashflow is the sum over properties of rent minus expenses.
func (ps Properties) MonthlyCashflow() Money {
	return sumOf(ps, Property.MonthlyCashflow)
}

func (ps Properties) AnnualIncome() Money   { return ps.MonthlyIncome().Mul(monthsPerYear) }
func (ps Properties) AnnualExpenses() Money { return ps.MonthlyExpenses().Mul(monthsPerYear) }
func (ps Properties) AnnualCashflow() Money { return ps.MonthlyCashflow().Mul(monthsPerYear) }

// CapRate is the annual cash flow as a percent of the portfolio value,
// rounded to 2 decimals. It is 0 for a portfolio without value.
func (ps Properties) CapRate() Percent {
	return ratio(ps.AnnualCashflow(), ps.Value(), 2)
}

// CashOnCash is the annual cash flow as a percent of the invested capital,
// rounded to 2 decimals. It is 0 when nothing was invested.
func (ps Properties) CashOnCash() Percent {
	return ratio(ps.AnnualCashflow(), ps.Invested(), 2)
}

// ROI is the equity as a percent of the invested capital, rounded to 1
// decimal. It is 0 when nothing was invested.
func (ps Properties) ROI() Percent {
	return ratio(ps.Equity(), ps.Invested(), 1)
}

// Renovation finances.

// Spend is what completed renovations cost, using the actual cost when known
// and the estimate otherwise.
func (rs Renovations) Spend() Money {
	return sumOf(rs.ByStatus(Completed), Renovation.Cost)
}

// RemainingBudget is the estimated cost of all renovations not completed yet.
func (rs Renovations) RemainingBudget() Money {
	return sumOf(rs.Active(), func(r Renovation) Money { return r.EstimatedCost })
}

// SpentShare is Spend as a percent of Spend plus RemainingBudget, 0 when both are 0.
func (rs Renovations) SpentShare() Percent {
	spent := rs.Spend()
	return ratio(spent, spent.Add(rs.RemainingBudget()), 2)
}

// CategoryBudget is the estimated cost of open renovations in a category.
type CategoryBudget struct {
	Category Category `json:"category"`
	Budget   Money    `json:"budget"`
}

// maxCategoryBudgets is how many categories BudgetByCategory reports.
const maxCategoryBudgets = 5

// BudgetByCategory sums the estimated cost of open renovations per category.
// Entries are sorted by decreasing budget, categories with the same budget
// keep the order in which they first appear, and only the top 5 are returned.
func (rs Renovations) BudgetByCategory() []CategoryBudget {
	return rs.Active().budgetByCategory(maxCategoryBudgets)
}

func (rs Renovations) budgetByCategory(limit int) []CategoryBudget {
	budgets := make([]CategoryBudget, 0)
	for _, r := range rs {
		i := slices.IndexFunc(budgets, func(b CategoryBudget) bool { return b.Category == r.Category })
		if i < 0 {
			budgets = append(budgets, CategoryBudget{Category: r.Category, Budget: M(0)})
			i = len(budgets) - 1
		}
		budgets[i].Budget = budgets[i].Budget.Add(r.EstimatedCost)
	}
	slices.SortStableFunc(budgets, func(a, b CategoryBudget) int {
		return b.Budget.value.Cmp(a.Budget.value)
	})
	if len(budgets) > limit {
		budgets = budgets[:limit]
	}
	return budgets
}
