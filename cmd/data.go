package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/estate"
	"github.com/etnz/estate/docs"
	"github.com/etnz/estate/store"
	"github.com/google/subcommands"
)

type onboardCmd struct {
	reset bool
}

func (*onboardCmd) Name() string     { return "onboard" }
func (*onboardCmd) Synopsis() string { return "complete or reset the onboarding" }
func (*onboardCmd) Usage() string {
	return `est onboard [-reset]

  Shows the user manual the first time and records that the onboarding was
  completed. -reset forgets it.
`
}

func (c *onboardCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.reset, "reset", false, "Forget that the onboarding was completed.")
}

func (c *onboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.reset {
		if s := saved(a.store.ResetOnboarding(ctx)); s != subcommands.ExitSuccess {
			return s
		}
		fmt.Fprintln(out, "Onboarding reset.")
		return subcommands.ExitSuccess
	}
	if a.store.Onboarded(ctx) {
		fmt.Fprintln(out, "Onboarding already completed.")
		return subcommands.ExitSuccess
	}
	doc, err := docs.GetTopic("readme")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return saved(a.store.SetOnboarded(ctx))
}

type clearCmd struct {
	empty bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "remove all the stored data" }
func (*clearCmd) Usage() string {
	return `est clear [-empty]

  Removes the properties, the renovations and the onboarding flag. The next
  command starts over with the sample portfolio, or with an empty one when
  -empty is set.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.empty, "empty", false, "Start over with an empty portfolio instead of the sample one.")
}

func (c *clearCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if s := saved(a.store.Clear(ctx)); s != subcommands.ExitSuccess {
		return s
	}
	if c.empty {
		if s := saved(a.store.SaveProperties(ctx, estate.Properties{})); s != subcommands.ExitSuccess {
			return s
		}
		if s := saved(a.store.SaveRenovations(ctx, estate.Renovations{})); s != subcommands.ExitSuccess {
			return s
		}
	}
	fmt.Fprintln(out, "All data cleared.")
	return subcommands.ExitSuccess
}

type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "print the whole portfolio as JSON" }
func (*exportCmd) Usage() string {
	return `est export

  Prints the properties, the renovations and the onboarding flag as a JSON
  document.
`
}

func (*exportCmd) SetFlags(f *flag.FlagSet) {}

func (*exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := writeJSON(a.store.Portfolio(ctx)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the portfolio with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `est query <jsonpath>

  Evaluates a JSONPath expression on the document printed by 'est export'.
  Strings are printed as is, anything else as JSON.

Usage Examples:
$ est query '$.properties[*].name'
$ est query '$.renovations[?(@.status == "pending")].title'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (*queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query requires exactly one JSONPath expression.")
		return subcommands.ExitUsageError
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	v, err := query(a.store.Portfolio(ctx), f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if s, ok := v.(string); ok {
		fmt.Fprintln(out, s)
		return subcommands.ExitSuccess
	}
	if err := writeJSON(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// query evaluates path on the JSON document of p.
func query(p store.Portfolio, path string) (any, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate %q: %w", path, err)
	}
	return v, nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
