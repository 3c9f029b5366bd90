package estate

import "fmt"

// where returns, in order, the renovations matching keep.
func (rs Renovations) where(keep func(Renovation) bool) Renovations {
	out := make(Renovations, 0)
	for _, r := range rs {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// ByStatus returns the renovations in status s, in their original order.
func (rs Renovations) ByStatus(s Status) Renovations {
	return rs.where(func(r Renovation) bool { return r.Status == s })
}

// ByPriority returns the renovations with priority p, in their original order.
func (rs Renovations) ByPriority(p Priority) Renovations {
	return rs.where(func(r Renovation) bool { return r.Priority == p })
}

// Active returns the renovations that are not completed.
func (rs Renovations) Active() Renovations {
	return rs.where(Renovation.IsOpen)
}

// HighPriorityOpen returns the high priority renovations not completed yet.
func (rs Renovations) HighPriorityOpen() Renovations {
	return rs.where(func(r Renovation) bool { return r.Priority == High && r.IsOpen() })
}

// ForProperty returns the open renovations of the property id.
//
// The property does not need to exist anymore: deleting a property keeps its
// renovations.
func (rs Renovations) ForProperty(id string) Renovations {
	return rs.where(func(r Renovation) bool { return r.PropertyID == id && r.IsOpen() })
}

// maxAttention is how many renovations AttentionList reports.
const maxAttention = 3

// AttentionList returns up to 3 renovations that need attention: all the
// renovations in progress, then the pending ones with a high priority, each
// group in its original order.
func (rs Renovations) AttentionList() Renovations {
	list := rs.ByStatus(InProgress)
	list = append(list, rs.where(func(r Renovation) bool { return r.Status == Pending && r.Priority == High })...)
	if len(list) > maxAttention {
		list = list[:maxAttention]
	}
	return list
}

// FilterKey identifies one of the renovation filter chips.
type FilterKey string

const (
	FilterAll        FilterKey = "all"
	FilterPending    FilterKey = "pending"
	FilterInProgress FilterKey = "in_progress"
	FilterHigh       FilterKey = "high"
	FilterCompleted  FilterKey = "completed"
)

// FilterKeys lists the filters in display order.
var FilterKeys = []FilterKey{FilterAll, FilterPending, FilterInProgress, FilterHigh, FilterCompleted}

// ParseFilterKey parses a string into a FilterKey. The empty string is FilterAll.
func ParseFilterKey(s string) (FilterKey, error) {
	if s == "" {
		return FilterAll, nil
	}
	switch k := FilterKey(s); k {
	case FilterAll, FilterPending, FilterInProgress, FilterHigh, FilterCompleted:
		return k, nil
	default:
		return "", fmt.Errorf("unknown filter: %q", s)
	}
}

// Label returns the short chip label.
func (k FilterKey) Label() string {
	switch k {
	case FilterAll:
		return "All"
	case FilterPending:
		return "Pending"
	case FilterInProgress:
		return "Active"
	case FilterHigh:
		return "Urgent"
	case FilterCompleted:
		return "Done"
	default:
		return string(k)
	}
}

// Filter returns the renovations selected by the filter k.
func (rs Renovations) Filter(k FilterKey) Renovations {
	switch k {
	case FilterPending:
		return rs.ByStatus(Pending)
	case FilterInProgress:
		return rs.ByStatus(InProgress)
	case FilterCompleted:
		return rs.ByStatus(Completed)
	case FilterHigh:
		return rs.HighPriorityOpen()
	default:
		return rs
	}
}

// FilterChip is a filter with the number of renovations it selects.
type FilterChip struct {
	Key   FilterKey `json:"key"`
	Label string    `json:"label"`
	Count int       `json:"count"`
}

// FilterChips computes every filter's count from rs. Counts are never cached,
// call it again after each change.
func (rs Renovations) FilterChips() []FilterChip {
	chips := make([]FilterChip, 0, len(FilterKeys))
	for _, k := range FilterKeys {
		chips = append(chips, FilterChip{Key: k, Label: k.Label(), Count: len(rs.Filter(k))})
	}
	return chips
}
