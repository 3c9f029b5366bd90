package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"strings"

	"github.com/etnz/estate"
	"github.com/etnz/estate/config"
	"github.com/etnz/estate/docs"
	"github.com/etnz/estate/store"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of est: global flags, every
// command with its flags, and ids or keywords as arguments.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command, len(Commands)),
		Flags: flags(flag.CommandLine),
	}
	root.Flags["config"] = predict.Files("*.yaml")
	root.Flags["data-dir"] = predict.Dirs("*")
	root.Flags["currency"] = predict.Set{"USD", "EUR", "GBP", "CAD", "AUD", "CHF", "JPY"}

	for _, e := range Commands {
		fs := flag.NewFlagSet(e.Command.Name(), flag.ContinueOnError)
		e.Command.SetFlags(fs)
		root.Sub[e.Command.Name()] = &complete.Command{Flags: flags(fs), Args: predict.Nothing}
	}

	properties := complete.PredictFunc(func(string) []string { return propertyIDs() })
	renovations := complete.PredictFunc(func(string) []string { return renovationIDs() })

	root.Sub["property"].Args = properties
	root.Sub["rm-property"].Args = properties
	root.Sub["renovation"].Args = renovations
	root.Sub["rm-renovation"].Args = renovations
	root.Sub["status"].Args = predict.Or(renovations, predict.Set{string(estate.Pending), string(estate.InProgress), string(estate.Completed)})
	root.Sub["renovations"].Flags["filter"] = predict.Set(filterKeys())
	root.Sub["renovations"].Flags["property"] = properties
	root.Sub["add-renovation"].Flags["property"] = properties
	root.Sub["add-renovation"].Flags["priority"] = predict.Set{string(estate.Low), string(estate.Medium), string(estate.High)}
	root.Sub["topic"].Args = complete.PredictFunc(func(string) []string {
		topics, _ := docs.GetAllTopics()
		return topics
	})
	root.Sub["query"].Args = predict.Something
	root.Sub["assist"].Args = predict.Something
	return root
}

// flags predicts anything for value flags and nothing for boolean ones.
func flags(fs *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			m[f.Name] = predict.Nothing
			return
		}
		m[f.Name] = predict.Something
	})
	return m
}

func filterKeys() []string {
	keys := make([]string, 0, len(estate.FilterKeys))
	for _, k := range estate.FilterKeys {
		keys = append(keys, string(k))
	}
	return keys
}

// stored reads the entry key of the configured data dir into v without
// seeding anything: completion must not write nor print.
func stored(key string, v any) bool {
	c, err := settings()
	if err != nil || c.DataDir == config.MemoryDataDir {
		return false
	}
	data, err := store.NewDirBackend(c.DataDir).Get(context.Background(), key)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

func propertyIDs() []string {
	var ps estate.Properties
	if !stored(store.PropertiesKey, &ps) {
		ps = estate.SampleProperties()
	}
	ids := make([]string, 0, len(ps))
	for _, p := range ps {
		ids = append(ids, p.ID)
	}
	return ids
}

func renovationIDs() []string {
	var rs estate.Renovations
	if !stored(store.RenovationsKey, &rs) {
		rs = estate.SampleRenovations()
	}
	ids := make([]string, 0, len(rs))
	for _, r := range rs {
		ids = append(ids, r.ID)
	}
	return ids
}

// IsCommand reports whether name is a registered command or a subcommands builtin.
func IsCommand(name string) bool {
	switch strings.TrimLeft(name, "-") {
	case "help", "flags", "commands":
		return true
	}
	for _, e := range Commands {
		if e.Command.Name() == name {
			return true
		}
	}
	return false
}
