package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type showCmd struct {
	filterFlags
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "print the imported statistics as text tables" }
func (*showCmd) Usage() string {
	return `wls show [-datasets <codes>] [-areas <codes>] [-measures <codes>] [-years <range>]

  Import the selected datasets and print every area with its measures as
  plain text tables, one table per measure with the average, difference and
  percentage difference across the selected years.

Usage Examples:
# Show the population density measures of Cardiff.
$ wls show -datasets popden -areas W06000015 -measures dens

`
}

func (p *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := p.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(store.String())
	return subcommands.ExitSuccess
}
