package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type jsonCmd struct {
	filterFlags
}

func (*jsonCmd) Name() string     { return "json" }
func (*jsonCmd) Synopsis() string { return "print the imported statistics as a JSON document" }
func (*jsonCmd) Usage() string {
	return `wls json [-datasets <codes>] [-areas <codes>] [-measures <codes>] [-years <range>]

  Import the selected datasets and print the whole store as a single JSON
  object keyed by local authority code. An empty selection prints {}.

Usage Examples:
# Export the rail passenger journeys of every area.
$ wls json -datasets trains

`
}

func (p *jsonCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := p.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	doc, err := store.ToJSON()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(doc)
	return subcommands.ExitSuccess
}
