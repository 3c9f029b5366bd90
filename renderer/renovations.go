package renderer

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/etnz/estate"
	md "github.com/nao1215/markdown"
)

// RenovationsMarkdown renders the renovations selected by the filter k, with
// the filter chips on top. ps resolves property names, a nil ps omits the
// property column.
func RenovationsMarkdown(rs estate.Renovations, ps estate.Properties, k estate.FilterKey, f estate.Formatter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Renovations")

	chips := make([]string, 0, len(estate.FilterKeys))
	for _, c := range rs.FilterChips() {
		label := fmt.Sprintf("%s (%d)", c.Label, c.Count)
		if c.Key == k {
			label = md.Bold(label)
		}
		chips = append(chips, label)
	}
	doc.PlainText(strings.Join(chips, " | "))

	selected := rs.Filter(k)
	if len(selected) == 0 {
		doc.PlainText("No renovations match this filter.")
		return doc.String()
	}
	doc.Table(renovationTable(selected, ps, f))
	doc.PlainText(fmt.Sprintf("Estimated total: %s", f.Format(selected.Spend().Add(selected.RemainingBudget()))))
	return doc.String()
}

// renovationTable lists rs, with the property column when ps is not nil.
func renovationTable(rs estate.Renovations, ps estate.Properties, f estate.Formatter) md.TableSet {
	header := []string{"ID", "Title", "Category", "Priority", "Status", "Cost", "Due"}
	align := []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft}
	if ps != nil {
		header = slices.Insert(header, 2, "Property")
		align = append(align, md.AlignLeft)
	}
	table := md.TableSet{Alignment: align, Header: header, Rows: [][]string{}}
	for _, r := range rs {
		due := "-"
		if r.DueDate != nil {
			due = r.DueDate.String()
		}
		row := []string{r.ID, r.Title, string(r.Category), r.Priority.Label(), r.Status.Label(), f.Format(r.Cost()), due}
		if ps != nil {
			row = slices.Insert(row, 2, ps.NameOf(r.PropertyID))
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// RenovationMarkdown renders a single renovation.
func RenovationMarkdown(r estate.Renovation, ps estate.Properties, f estate.Formatter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(r.Title)
	doc.PlainText(fmt.Sprintf("%s, %s priority, %s", r.Status.Label(), r.Priority.Label(), r.Category))

	rows := [][]string{
		{"Property", ps.NameOf(r.PropertyID)},
		{"Estimated Cost", f.Format(r.EstimatedCost)},
	}
	if r.ActualCost != nil {
		rows = append(rows, []string{"Actual Cost", f.FormatOptional(r.ActualCost)})
	}
	rows = append(rows, []string{"Created", r.CreatedAt.String()})
	if r.DueDate != nil {
		rows = append(rows, []string{"Due", r.DueDate.String()})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"", r.ID},
		Rows:      rows,
	})

	var out strings.Builder
	out.WriteString(doc.String())

	ConditionalBlock(&out, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Description\n\n%s\n", r.Description)
		return strings.TrimSpace(r.Description) != ""
	})
	ConditionalBlock(&out, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Notes\n\n%s\n", r.Notes)
		return strings.TrimSpace(r.Notes) != ""
	})
	return out.String()
}
