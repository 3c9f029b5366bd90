package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/estate"
	"github.com/etnz/estate/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type renovationsCmd struct {
	filter   string
	property string
}

func (*renovationsCmd) Name() string     { return "renovations" }
func (*renovationsCmd) Synopsis() string { return "list the renovations" }
func (*renovationsCmd) Usage() string {
	return `est renovations [-filter <all|pending|in_progress|high|completed>] [-property <id>]

  Lists the renovations selected by the filter, with the count of every
  filter. With -property, only the open renovations of that property are
  listed.
`
}

func (c *renovationsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filter, "filter", "all", "Filter: all, pending, in_progress, high or completed.")
	f.StringVar(&c.property, "property", "", "Only list the open renovations of this property.")
}

func (c *renovationsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	k, err := estate.ParseFilterKey(c.filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ps := a.store.LoadProperties(ctx).Value
	rs := a.store.LoadRenovations(ctx).Value
	if c.property != "" {
		rs = rs.ForProperty(c.property)
	}
	printMarkdown(renderer.RenovationsMarkdown(rs, ps, k, a.format))
	return subcommands.ExitSuccess
}

type renovationCmd struct{}

func (*renovationCmd) Name() string     { return "renovation" }
func (*renovationCmd) Synopsis() string { return "display a renovation" }
func (*renovationCmd) Usage() string {
	return `est renovation <id>

  Displays the details of a renovation.
`
}

func (*renovationCmd) SetFlags(f *flag.FlagSet) {}

func (*renovationCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: renovation requires exactly one renovation id.")
		return subcommands.ExitUsageError
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	r, ok := a.store.LoadRenovations(ctx).Value.Find(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %v %q\n", estate.ErrUnknownRenovation, f.Arg(0))
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenovationMarkdown(r, a.store.LoadProperties(ctx).Value, a.format))
	return subcommands.ExitSuccess
}

type addRenovationCmd struct {
	form estate.RenovationForm
}

func (*addRenovationCmd) Name() string     { return "add-renovation" }
func (*addRenovationCmd) Synopsis() string { return "plan a renovation on a property" }
func (*addRenovationCmd) Usage() string {
	return `est add-renovation -property <id> -title <title> [-cost <amount>] [-priority <low|medium|high>] ...

  Adds a pending renovation. The property and the title are required. The
  priority defaults to medium and the category to Other.

Usage Examples:
$ est add-renovation -property 2 -title "Deck Stain" -cost 900 -category Exterior -due 2024-09-01
`
}

func (c *addRenovationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.form.PropertyID, "property", "", "Id of the property.")
	f.StringVar(&c.form.Title, "title", "", "Title of the renovation.")
	f.StringVar(&c.form.Description, "description", "", "Description of the work.")
	f.StringVar(&c.form.EstimatedCost, "cost", "", "Estimated cost.")
	f.StringVar(&c.form.Priority, "priority", "", "Priority: low, medium or high.")
	f.StringVar(&c.form.Category, "category", "", "Category: Kitchen, Bathroom, Exterior, Interior, HVAC, Plumbing, Electrical, Flooring, Landscaping or Other.")
	f.StringVar(&c.form.DueDate, "due", "", "Due date, YYYY-MM-DD.")
	f.StringVar(&c.form.Notes, "notes", "", "Notes.")
}

func (c *addRenovationCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.form.Renovation(now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if _, ok := a.store.LoadProperties(ctx).Value.Find(r.PropertyID); !ok {
		fmt.Fprintf(os.Stderr, "Warning: %v %q\n", estate.ErrUnknownProperty, r.PropertyID)
	}
	_, o := a.store.AddRenovation(ctx, r)
	if status := saved(o); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(out, "Added renovation %s: %s.\n", r.ID, r.Title)
	return subcommands.ExitSuccess
}

type statusCmd struct {
	actualCost string
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "change the status of a renovation" }
func (*statusCmd) Usage() string {
	return `est status [-actual-cost <amount>] <id> <pending|in_progress|completed>

  Moves a renovation to another status. Any status can follow any other.
  -actual-cost records what the work really cost.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.actualCost, "actual-cost", "", "Actual cost of the renovation.")
}

func (c *statusCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: status requires a renovation id and a status.")
		return subcommands.ExitUsageError
	}
	status, err := estate.ParseStatus(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var actual *estate.Money
	if c.actualCost != "" {
		d, err := decimal.NewFromString(c.actualCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid actual cost %q: %v\n", c.actualCost, err)
			return subcommands.ExitUsageError
		}
		m := estate.M(d)
		actual = &m
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	_, o, err := a.store.ChangeStatus(ctx, f.Arg(0), status, actual)
	if errors.Is(err, estate.ErrUnknownRenovation) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if s := saved(o); s != subcommands.ExitSuccess {
		return s
	}
	fmt.Fprintf(out, "Renovation %s is now %s.\n", f.Arg(0), status.Label())
	return subcommands.ExitSuccess
}

type rmRenovationCmd struct{}

func (*rmRenovationCmd) Name() string     { return "rm-renovation" }
func (*rmRenovationCmd) Synopsis() string { return "remove a renovation" }
func (*rmRenovationCmd) Usage() string {
	return `est rm-renovation <id>

  Removes a renovation.
`
}

func (*rmRenovationCmd) SetFlags(f *flag.FlagSet) {}

func (*rmRenovationCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: rm-renovation requires exactly one renovation id.")
		return subcommands.ExitUsageError
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	_, o, err := a.store.RemoveRenovation(ctx, f.Arg(0))
	if errors.Is(err, estate.ErrUnknownRenovation) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if s := saved(o); s != subcommands.ExitSuccess {
		return s
	}
	fmt.Fprintf(out, "Removed renovation %s.\n", f.Arg(0))
	return subcommands.ExitSuccess
}
