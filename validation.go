package estate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/estate/date"
)

// ValidationError lists the problems that prevented a record creation.
type ValidationError struct {
	Record string // "property" or "renovation"
	Err    error  // all failures, joined
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Record, strings.ReplaceAll(e.Err.Error(), "\n", "; "))
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(record string, errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Record: record, Err: errors.Join(errs...)}
}

// NewID returns a new record id: the creation time in Unix milliseconds.
func NewID(now time.Time) string { return strconv.FormatInt(now.UnixMilli(), 10) }

// digits parses the digits in s, ignoring every other character ("$285,000"
// is 285000). It returns 0 when s has no digit.
func digits(s string) int64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// PropertyForm holds the raw user input for a new property.
type PropertyForm struct {
	Name            string
	Address         string
	Type            string
	PurchasePrice   string
	CurrentValue    string
	MonthlyRent     string
	MonthlyExpenses string
	Sqft            string
	Units           string
}

// Property validates the form and returns the new property created at now.
//
// The name and the purchase price are required. The current value defaults
// to the purchase price, the type to Single Family and the units to 1.
func (f PropertyForm) Property(now time.Time) (Property, error) {
	var errs []error
	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs = append(errs, errors.New("please enter a property name"))
	}
	if strings.TrimSpace(f.PurchasePrice) == "" {
		errs = append(errs, errors.New("please enter the purchase price"))
	}
	if err := invalid("property", errs); err != nil {
		return Property{}, err
	}

	typ := PropertyType(strings.TrimSpace(f.Type))
	if typ == "" {
		typ = SingleFamily
	}
	purchase := digits(f.PurchasePrice)
	current := digits(f.CurrentValue)
	if current == 0 {
		current = purchase
	}
	units := digits(f.Units)
	if units == 0 {
		units = 1
	}

	return Property{
		ID:              NewID(now),
		Name:            name,
		Address:         strings.TrimSpace(f.Address),
		Type:            typ,
		PurchasePrice:   M(purchase),
		CurrentValue:    M(current),
		MonthlyRent:     M(digits(f.MonthlyRent)),
		MonthlyExpenses: M(digits(f.MonthlyExpenses)),
		YearPurchased:   now.Year(),
		Sqft:            int(digits(f.Sqft)),
		Units:           int(units),
	}, nil
}

// RenovationForm holds the raw user input for a new renovation.
type RenovationForm struct {
	PropertyID    string
	Title         string
	Description   string
	EstimatedCost string
	Priority      string
	Category      string
	DueDate       string
	Notes         string
}

// Renovation validates the form and returns the new pending renovation
// created at now.
//
// The title and the property are required; the property is not checked
// against the portfolio. Priority defaults to medium and category to Other.
func (f RenovationForm) Renovation(now time.Time) (Renovation, error) {
	var errs []error
	title := strings.TrimSpace(f.Title)
	if title == "" {
		errs = append(errs, errors.New("please enter a renovation title"))
	}
	propertyID := strings.TrimSpace(f.PropertyID)
	if propertyID == "" {
		errs = append(errs, errors.New("please select a property"))
	}

	priority := Medium
	if s := strings.TrimSpace(f.Priority); s != "" {
		p, err := ParsePriority(s)
		if err != nil {
			errs = append(errs, err)
		}
		priority = p
	}

	category := Category(strings.TrimSpace(f.Category))
	if category == "" {
		category = Other
	}

	var due *date.Date
	if s := strings.TrimSpace(f.DueDate); s != "" {
		d, err := date.Parse(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("due date: %w", err))
		}
		due = &d
	}

	if err := invalid("renovation", errs); err != nil {
		return Renovation{}, err
	}

	return Renovation{
		ID:            NewID(now),
		PropertyID:    propertyID,
		Title:         title,
		Description:   strings.TrimSpace(f.Description),
		EstimatedCost: M(digits(f.EstimatedCost)),
		Priority:      priority,
		Status:        Pending,
		Category:      category,
		CreatedAt:     date.Of(now),
		DueDate:       due,
		Notes:         strings.TrimSpace(f.Notes),
	}, nil
}
