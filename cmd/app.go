// Package cmd implements the est command line application to manage a
// property portfolio.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/estate"
	"github.com/etnz/estate/config"
	"github.com/etnz/estate/store"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
)

const (
	EnvConfig      = "ESTATE_CONFIG"
	EnvDataDir     = "ESTATE_DATA_DIR"
	EnvCurrency    = "ESTATE_CURRENCY"
	EnvVerbose     = "ESTATE_VERBOSE"
	EnvTestingNow  = "ESTATE_TESTING_NOW"
	testingNowForm = time.DateTime
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configPath = flag.String("config", "", "Path to the YAML configuration file. Defaults to $"+EnvConfig+".")
var dataDir = flag.String("data-dir", "", "Directory holding the portfolio, or "+config.MemoryDataDir+" for a throwaway one.")
var currency = flag.String("currency", "", "Currency code used to format amounts.")

// Verbose turns on debug logs.
var Verbose = flag.Bool("v", false, "Verbose logs.")

// out receives the commands output.
var out io.Writer = os.Stdout

// Commands lists every est subcommand with its group.
var Commands = []struct {
	Group   string
	Command subcommands.Command
}{
	{"reports", &dashboardCmd{}},
	{"reports", &financialsCmd{}},

	{"properties", &propertiesCmd{}},
	{"properties", &propertyCmd{}},
	{"properties", &addPropertyCmd{}},
	{"properties", &rmPropertyCmd{}},

	{"renovations", &renovationsCmd{}},
	{"renovations", &renovationCmd{}},
	{"renovations", &addRenovationCmd{}},
	{"renovations", &statusCmd{}},
	{"renovations", &rmRenovationCmd{}},

	{"data", &onboardCmd{}},
	{"data", &clearCmd{}},
	{"data", &exportCmd{}},
	{"data", &queryCmd{}},

	{"tools", &serveCmd{}},
	{"tools", &assistCmd{}},
	{"tools", &topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, e := range Commands {
		c.Register(e.Command, e.Group)
	}
}

// settings loads the configuration and applies the global flags on top.
func settings() (*config.Config, error) {
	path := *configPath
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if *dataDir != "" {
		c.DataDir = *dataDir
	}
	if *currency != "" {
		c.Currency = strings.ToUpper(*currency)
	}
	if *Verbose {
		c.Verbose = true
	}
	return c, nil
}

// app is what a command needs to run.
type app struct {
	cfg    *config.Config
	store  *store.Store
	format estate.Formatter
}

func newApp() (*app, error) {
	c, err := settings()
	if err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}
	debugf(c, "data dir %q, currency %s", c.DataDir, c.Currency)
	return &app{cfg: c, store: openStore(c), format: estate.NewFormatter(c.Currency)}, nil
}

// openStore opens the portfolio at the configured data dir.
func openStore(c *config.Config) *store.Store {
	var b store.Backend
	if c.DataDir == config.MemoryDataDir {
		b = store.NewMemoryBackend()
	} else {
		b = store.NewDirBackend(c.DataDir)
	}
	return store.New(b, store.SampleSeed{}, log.New(os.Stderr, "est: ", 0))
}

func debugf(c *config.Config, format string, args ...any) {
	if c.Verbose {
		log.Printf(format, args...)
	}
}

// now returns the current time, or the fixed UTC time in $ESTATE_TESTING_NOW.
func now() time.Time {
	if v := os.Getenv(EnvTestingNow); v != "" {
		if t, err := time.Parse(testingNowForm, v); err == nil {
			return t
		}
		log.Printf("ignoring invalid %s=%q", EnvTestingNow, v)
	}
	return time.Now()
}

// saved reports a failed write to the user.
func saved(o store.Outcome) subcommands.ExitStatus {
	if o == store.Failed {
		fmt.Fprintln(os.Stderr, "Error: the change could not be saved.")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown writes md to the output, rendered for the terminal when the
// output is one.
func printMarkdown(md string) {
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
		if err == nil {
			if s, err := r.Render(md); err == nil {
				fmt.Fprint(out, s)
				return
			}
		}
	}
	fmt.Fprint(out, md)
}
