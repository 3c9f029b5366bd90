package estate

import (
	"encoding/json"
	"fmt"
)

// PropertyType is the kind of building.
type PropertyType string

const (
	SingleFamily PropertyType = "Single Family"
	Duplex       PropertyType = "Duplex"
	Triplex      PropertyType = "Triplex"
	Fourplex     PropertyType = "Fourplex"
	Condo        PropertyType = "Condo"
	Townhome     PropertyType = "Townhome"
	Apartment    PropertyType = "Apartment"
)

// PropertyTypes lists the known property types in display order.
var PropertyTypes = []PropertyType{SingleFamily, Duplex, Triplex, Fourplex, Condo, Townhome, Apartment}

// Category groups renovations by the part of the building they touch.
type Category string

const (
	Kitchen     Category = "Kitchen"
	Bathroom    Category = "Bathroom"
	Exterior    Category = "Exterior"
	Interior    Category = "Interior"
	HVAC        Category = "HVAC"
	Plumbing    Category = "Plumbing"
	Electrical  Category = "Electrical"
	Flooring    Category = "Flooring"
	Landscaping Category = "Landscaping"
	Other       Category = "Other"
)

// Categories lists the known renovation categories in display order.
var Categories = []Category{Kitchen, Bathroom, Exterior, Interior, HVAC, Plumbing, Electrical, Flooring, Landscaping, Other}

// Priority of a renovation.
type Priority string

const (
	Low    Priority = "low"
	Medium Priority = "medium"
	High   Priority = "high"
)

// Priorities lists priorities from the least to the most urgent.
var Priorities = []Priority{Low, Medium, High}

// ParsePriority parses a string into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(s); p {
	case Low, Medium, High:
		return p, nil
	default:
		return "", fmt.Errorf("unknown priority: %q", s)
	}
}

// Label returns the capitalized priority, e.g. "High".
func (p Priority) Label() string {
	switch p {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	default:
		return string(p)
	}
}

func (p *Priority) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParsePriority(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Status is the progress of a renovation.
//
// Any status can be reached from any other, a completed renovation can be
// reopened.
type Status string

const (
	Pending    Status = "pending"
	InProgress Status = "in_progress"
	Completed  Status = "completed"
)

// Statuses lists all statuses in their natural order.
var Statuses = []Status{Pending, InProgress, Completed}

// ParseStatus parses a string into a Status.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case Pending, InProgress, Completed:
		return st, nil
	default:
		return "", fmt.Errorf("unknown status: %q", s)
	}
}

// Label returns the human name of the status, e.g. "In Progress".
func (s Status) Label() string {
	switch s {
	case Pending:
		return "Pending"
	case InProgress:
		return "In Progress"
	case Completed:
		return "Completed"
	default:
		return string(s)
	}
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	v, err := ParseStatus(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
