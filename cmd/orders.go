package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/mkeita/micropro"
	"github.com/mkeita/micropro/renderer"
)

type ordersCmd struct{}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "list the orders" }
func (*ordersCmd) Usage() string {
	return `mpro orders

  Lists the orders, in creation order, with client names resolved.
`
}

func (*ordersCmd) SetFlags(f *flag.FlagSet) {}

func (*ordersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openSession().Store()
	lines := micropro.ResolveOrders(store.Orders(), store.Clients())
	printMarkdown(renderer.OrdersMarkdown(lines))
	return subcommands.ExitSuccess
}
