package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/mkeita/micropro"
	"github.com/mkeita/micropro/renderer"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the daily business overview" }
func (*dashboardCmd) Usage() string {
	return `mpro dashboard

  Displays total revenue, active orders, the client quota, orders waiting
  for an invoice, and the most recent orders.
`
}

func (*dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (*dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openSession().Store()
	d := micropro.NewDashboard(store.Clients(), store.Orders(), store.Invoices())
	printMarkdown(renderer.DashboardMarkdown(d))
	return subcommands.ExitSuccess
}
