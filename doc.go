// Package estate provides the types and the computations behind a small
// real-estate investment tracker: rental properties with their valuation and
// cash flow, and the renovation projects planned on them.
//
// The core functionalities include:
//   - Records: Property and Renovation, with their JSON representation and
//     immutable collection updates (WithAdded, WithRemoved, WithStatusChanged).
//   - Metrics: pure functions deriving equity, cash flow, cap rate,
//     cash-on-cash return and renovation budgets from the collections.
//   - Filters: status, priority and per-property selections, the attention
//     list and the filter chip counts.
//   - Formatting: deterministic currency strings, long ("$1,234,567") and
//     short ("$1.2M").
//   - Forms: validation of user input into new records.
//
// Persistence lives in the store package; this package never performs I/O.
package estate
