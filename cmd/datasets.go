package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/dyfed/walstat"
	"github.com/google/subcommands"
)

type datasetsCmd struct{}

func (*datasetsCmd) Name() string     { return "datasets" }
func (*datasetsCmd) Synopsis() string { return "list the datasets the tool can import" }
func (*datasetsCmd) Usage() string {
	return `wls datasets

  List every dataset code the -datasets flag accepts, with the dataset
  name and the file it is read from.
`
}

func (*datasetsCmd) SetFlags(f *flag.FlagSet) {}

func (c *datasetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var b strings.Builder
	b.WriteString("# Datasets\n\n")
	b.WriteString("| Code | Name | File |\n")
	b.WriteString("|------|------|------|\n")
	for _, d := range walstat.Datasets {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", d.Code, d.Name, d.File)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
