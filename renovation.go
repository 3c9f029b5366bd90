package estate

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/estate/date"
)

// ErrUnknownRenovation is returned when an id does not match any renovation.
var ErrUnknownRenovation = errors.New("unknown renovation")

// Renovation is a work project on a property.
//
// Only the status (and the actual cost that comes with completion) changes
// after creation.
type Renovation struct {
	ID            string     `json:"id"`
	PropertyID    string     `json:"propertyId"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	EstimatedCost Money      `json:"estimatedCost"`
	ActualCost    *Money     `json:"actualCost"`
	Priority      Priority   `json:"priority"`
	Status        Status     `json:"status"`
	Category      Category   `json:"category"`
	CreatedAt     date.Date  `json:"createdAt"`
	DueDate       *date.Date `json:"dueDate"`
	Notes         string     `json:"notes"`
}

// IsCompleted reports whether the renovation is done.
func (r Renovation) IsCompleted() bool { return r.Status == Completed }

// IsOpen reports whether the renovation still needs work.
func (r Renovation) IsOpen() bool { return r.Status != Completed }

// Cost returns the actual cost when known, the estimate otherwise.
func (r Renovation) Cost() Money {
	if r.ActualCost != nil {
		return *r.ActualCost
	}
	return r.EstimatedCost
}

// WithStatus returns a copy of r in the status s. It does not check that
// the status actually changes.
func (r Renovation) WithStatus(s Status) Renovation {
	r.Status = s
	return r
}

// WithActualCost returns a copy of r with its actual cost set.
func (r Renovation) WithActualCost(cost Money) Renovation {
	r.ActualCost = &cost
	return r
}

// MarshalJSON writes the renovation with a stable field order. Absent
// actual cost and due date are written as null.
func (r Renovation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.Append("propertyId", r.PropertyID)
	w.Append("title", r.Title)
	w.Append("description", r.Description)
	w.Append("estimatedCost", r.EstimatedCost)
	w.Append("actualCost", r.ActualCost)
	w.Append("priority", r.Priority)
	w.Append("status", r.Status)
	w.Append("category", r.Category)
	w.Append("createdAt", r.CreatedAt)
	w.Append("dueDate", r.DueDate)
	w.Append("notes", r.Notes)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a renovation. The status and the priority are
// required, an empty due date reads as none.
func (r *Renovation) UnmarshalJSON(b []byte) error {
	type plain Renovation
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if _, err := ParseStatus(string(v.Status)); err != nil {
		return fmt.Errorf("renovation %q: %w", v.ID, err)
	}
	if _, err := ParsePriority(string(v.Priority)); err != nil {
		return fmt.Errorf("renovation %q: %w", v.ID, err)
	}
	if v.DueDate != nil && v.DueDate.IsZero() {
		v.DueDate = nil
	}
	*r = Renovation(v)
	return nil
}

var _ json.Marshaler = Renovation{}
var _ json.Unmarshaler = (*Renovation)(nil)

// Renovations is the ordered collection of renovations in a portfolio.
type Renovations []Renovation

// Find returns the renovation with this id.
func (rs Renovations) Find(id string) (Renovation, bool) {
	i := slices.IndexFunc(rs, func(r Renovation) bool { return r.ID == id })
	if i < 0 {
		return Renovation{}, false
	}
	return rs[i], true
}

// WithAdded returns a new collection with r appended.
func (rs Renovations) WithAdded(r Renovation) Renovations {
	return append(slices.Clip(rs), r)
}

// WithRemoved returns a new collection without the renovation id.
func (rs Renovations) WithRemoved(id string) Renovations {
	return slices.DeleteFunc(slices.Clone(rs), func(r Renovation) bool { return r.ID == id })
}

// WithStatusChanged returns a new collection where the renovation id is in status s.
func (rs Renovations) WithStatusChanged(id string, s Status) (Renovations, error) {
	return rs.update(id, func(r Renovation) Renovation { return r.WithStatus(s) })
}

// WithActualCost returns a new collection where the renovation id has its actual cost set.
func (rs Renovations) WithActualCost(id string, cost Money) (Renovations, error) {
	return rs.update(id, func(r Renovation) Renovation { return r.WithActualCost(cost) })
}

func (rs Renovations) update(id string, f func(Renovation) Renovation) (Renovations, error) {
	i := slices.IndexFunc(rs, func(r Renovation) bool { return r.ID == id })
	if i < 0 {
		return rs, fmt.Errorf("%w %q", ErrUnknownRenovation, id)
	}
	out := slices.Clone(rs)
	out[i] = f(out[i])
	return out, nil
}
