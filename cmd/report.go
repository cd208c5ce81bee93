package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/mkeita/micropro"
	"github.com/mkeita/micropro/renderer"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the business performance report" }
func (*reportCmd) Usage() string {
	return `mpro report

  Displays total revenue, the number of completed orders, the average order
  value, and the top clients by revenue.
`
}

func (*reportCmd) SetFlags(f *flag.FlagSet) {}

func (*reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openSession().Store()
	r := micropro.NewReport(store.Orders(), store.Clients())
	printMarkdown(renderer.ReportMarkdown(r))
	return subcommands.ExitSuccess
}
