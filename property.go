package estate

import (
	"encoding/json"
	"errors"
	"slices"
)

// ErrUnknownProperty is returned when an id does not match any property.
var ErrUnknownProperty = errors.New("unknown property")

// UnknownPropertyName is displayed for renovations whose property was removed.
const UnknownPropertyName = "Unknown"

// Property is a rental building in the portfolio.
//
// Properties are never edited in place: they are added or removed.
type Property struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Address         string       `json:"address"`
	Type            PropertyType `json:"type"`
	PurchasePrice   Money        `json:"purchasePrice"`
	CurrentValue    Money        `json:"currentValue"`
	MonthlyRent     Money        `json:"monthlyRent"`
	MonthlyExpenses Money        `json:"monthlyExpenses"`
	YearPurchased   int          `json:"yearPurchased,omitempty"`
	Sqft            int          `json:"sqft,omitempty"`
	Units           int          `json:"units,omitempty"`
}

// Equity returns the value gained since the purchase, negative on a loss.
func (p Property) Equity() Money { return p.CurrentValue.Sub(p.PurchasePrice) }

// EquityPercent returns the equity as a percent of the purchase price,
// rounded to 1 decimal.
//
// ok is false when the purchase price is zero, the percent is then
// not applicable and reported as 0.
func (p Property) EquityPercent() (pct Percent, ok bool) {
	if p.PurchasePrice.IsZero() {
		return 0, false
	}
	return ratio(p.Equity(), p.PurchasePrice, 1), true
}

// MonthlyCashflow is the rent minus the expenses.
func (p Property) MonthlyCashflow() Money { return p.MonthlyRent.Sub(p.MonthlyExpenses) }

// AnnualCashflow is the monthly cash flow over twelve months.
func (p Property) AnnualCashflow() Money { return p.MonthlyCashflow().Mul(monthsPerYear) }

// UnitCount returns the number of units, 1 when unspecified.
func (p Property) UnitCount() int {
	if p.Units <= 0 {
		return 1
	}
	return p.Units
}

// MarshalJSON writes the property with a stable field order.
func (p Property) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("name", p.Name)
	w.Append("address", p.Address)
	w.Append("type", p.Type)
	w.Append("purchasePrice", p.PurchasePrice)
	w.Append("currentValue", p.CurrentValue)
	w.Append("monthlyRent", p.MonthlyRent)
	w.Append("monthlyExpenses", p.MonthlyExpenses)
	w.Optional("yearPurchased", p.YearPurchased)
	w.Optional("sqft", p.Sqft)
	w.Optional("units", p.Units)
	return w.MarshalJSON()
}

var _ json.Marshaler = Property{}

// Properties is the ordered collection of properties in a portfolio.
type Properties []Property

// Find returns the property with this id.
func (ps Properties) Find(id string) (Property, bool) {
	i := slices.IndexFunc(ps, func(p Property) bool { return p.ID == id })
	if i < 0 {
		return Property{}, false
	}
	return ps[i], true
}

// NameOf returns the name of the property with this id, or UnknownPropertyName.
func (ps Properties) NameOf(id string) string {
	if p, ok := ps.Find(id); ok {
		return p.Name
	}
	return UnknownPropertyName
}

// WithAdded returns a new collection with p appended.
func (ps Properties) WithAdded(p Property) Properties {
	return append(slices.Clip(ps), p)
}

// WithRemoved returns a new collection without the property id.
//
// Renovations referencing it are left untouched.
func (ps Properties) WithRemoved(id string) Properties {
	return slices.DeleteFunc(slices.Clone(ps), func(p Property) bool { return p.ID == id })
}
