package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/estate"
	"github.com/etnz/estate/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the portfolio overview" }
func (*dashboardCmd) Usage() string {
	return `est dashboard

  Displays the portfolio value, equity, cash flow, the renovations needing
  attention and a line per property.
`
}

func (*dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (*dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ps := a.store.LoadProperties(ctx).Value
	rs := a.store.LoadRenovations(ctx).Value
	printMarkdown(renderer.RenderDashboard(estate.NewDashboard(ps, rs, now()), a.format))
	return subcommands.ExitSuccess
}

type financialsCmd struct{}

func (*financialsCmd) Name() string     { return "financials" }
func (*financialsCmd) Synopsis() string { return "display the portfolio return ratios and budgets" }
func (*financialsCmd) Usage() string {
	return `est financials

  Displays cap rate, cash-on-cash return, the monthly and annual breakdown,
  the cash flow per property and the renovation budget by category.
`
}

func (*financialsCmd) SetFlags(f *flag.FlagSet) {}

func (*financialsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ps := a.store.LoadProperties(ctx).Value
	rs := a.store.LoadRenovations(ctx).Value
	printMarkdown(renderer.FinancialsMarkdown(ps, rs, a.format))
	return subcommands.ExitSuccess
}
