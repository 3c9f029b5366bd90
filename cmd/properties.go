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
)

type propertiesCmd struct{}

func (*propertiesCmd) Name() string     { return "properties" }
func (*propertiesCmd) Synopsis() string { return "list the properties" }
func (*propertiesCmd) Usage() string {
	return `est properties

  Lists the properties with their value, equity and cash flow.
`
}

func (*propertiesCmd) SetFlags(f *flag.FlagSet) {}

func (*propertiesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ps := a.store.LoadProperties(ctx).Value
	rs := a.store.LoadRenovations(ctx).Value
	printMarkdown(renderer.PropertiesMarkdown(ps, rs, a.format))
	return subcommands.ExitSuccess
}

type propertyCmd struct{}

func (*propertyCmd) Name() string     { return "property" }
func (*propertyCmd) Synopsis() string { return "display a property" }
func (*propertyCmd) Usage() string {
	return `est property <id>

  Displays the details of a property and its open renovations.
`
}

func (*propertyCmd) SetFlags(f *flag.FlagSet) {}

func (*propertyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: property requires exactly one property id.")
		return subcommands.ExitUsageError
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	p, ok := a.store.LoadProperties(ctx).Value.Find(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %v %q\n", estate.ErrUnknownProperty, f.Arg(0))
		return subcommands.ExitFailure
	}
	rs := a.store.LoadRenovations(ctx).Value
	printMarkdown(renderer.PropertyMarkdown(p, rs, a.format))
	return subcommands.ExitSuccess
}

type addPropertyCmd struct {
	form estate.PropertyForm
}

func (*addPropertyCmd) Name() string     { return "add-property" }
func (*addPropertyCmd) Synopsis() string { return "add a property to the portfolio" }
func (*addPropertyCmd) Usage() string {
	return `est add-property -name <name> -price <amount> [-value <amount>] [-rent <amount>] [-expenses <amount>] ...

  Adds a property. The name and the purchase price are required, the current
  value defaults to the purchase price. Amounts keep their digits only, so
  "285,000" and "$285000" are the same.

Usage Examples:
$ est add-property -name "Elm Court" -type Fourplex -price 410000 -rent 5200 -expenses 2100 -units 4
`
}

func (c *addPropertyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.form.Name, "name", "", "Name of the property.")
	f.StringVar(&c.form.Address, "address", "", "Street address.")
	f.StringVar(&c.form.Type, "type", "", "Property type: Single Family, Duplex, Triplex, Fourplex, Condo, Townhome or Apartment.")
	f.StringVar(&c.form.PurchasePrice, "price", "", "Purchase price.")
	f.StringVar(&c.form.CurrentValue, "value", "", "Current value. Defaults to the purchase price.")
	f.StringVar(&c.form.MonthlyRent, "rent", "", "Monthly rent.")
	f.StringVar(&c.form.MonthlyExpenses, "expenses", "", "Monthly expenses.")
	f.StringVar(&c.form.Sqft, "sqft", "", "Living area in square feet.")
	f.StringVar(&c.form.Units, "units", "", "Number of units. Defaults to 1.")
}

func (c *addPropertyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := c.form.Property(now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	_, o := a.store.AddProperty(ctx, p)
	if status := saved(o); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(out, "Added property %s: %s.\n", p.ID, p.Name)
	return subcommands.ExitSuccess
}

type rmPropertyCmd struct{}

func (*rmPropertyCmd) Name() string     { return "rm-property" }
func (*rmPropertyCmd) Synopsis() string { return "remove a property" }
func (*rmPropertyCmd) Usage() string {
	return `est rm-property <id>

  Removes a property. Its renovations are kept and shown with an Unknown
  property.
`
}

func (*rmPropertyCmd) SetFlags(f *flag.FlagSet) {}

func (*rmPropertyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: rm-property requires exactly one property id.")
		return subcommands.ExitUsageError
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	_, o, err := a.store.RemoveProperty(ctx, f.Arg(0))
	if errors.Is(err, estate.ErrUnknownProperty) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := saved(o); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(out, "Removed property %s.\n", f.Arg(0))
	return subcommands.ExitSuccess
}
