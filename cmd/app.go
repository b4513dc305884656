// Package cmd implements the CLI application to browse Welsh statistics.
package cmd

import (
	"flag"
	"fmt"

	"github.com/dyfed/walstat"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&datasetsCmd{}, "data")
	c.Register(&showCmd{}, "data")
	c.Register(&jsonCmd{}, "data")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("dir", "datasets", "Path to the folder holding the dataset files")

// filterFlags holds the selection flags shared by every command that
// imports data.
type filterFlags struct {
	datasets string
	areas    string
	measures string
	years    string
}

func (p *filterFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.datasets, "datasets", "", "Comma-separated dataset codes to import ('all' or empty for every dataset)")
	f.StringVar(&p.areas, "areas", "all", "Comma-separated local authority codes to keep")
	f.StringVar(&p.measures, "measures", "all", "Comma-separated measure codes to keep")
	f.StringVar(&p.years, "years", "0", "Year selection: 0 for all, a single YYYY, or YYYY-ZZZZ")
}

// load imports the selected datasets from the data directory into a fresh
// store, honouring the filter flags.
func (p *filterFlags) load() (*walstat.Areas, error) {
	areas := walstat.ParseStringSet(p.areas)
	measures := walstat.ParseStringSet(p.measures)
	years, err := walstat.ParseYearRange(p.years)
	if err != nil {
		return nil, fmt.Errorf("invalid input for years argument: %w", err)
	}
	filter := walstat.Filter{Areas: areas, Measures: measures, Years: years}

	datasets, err := walstat.ParseDatasetsArg(p.datasets)
	if err != nil {
		return nil, err
	}

	store := walstat.NewAreas()
	if err := walstat.LoadAreas(store, *dataDir, filter); err != nil {
		return nil, err
	}
	if err := walstat.LoadDatasets(store, *dataDir, datasets, filter); err != nil {
		return nil, err
	}
	return store, nil
}
