package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/mkeita/micropro"
	"github.com/mkeita/micropro/renderer"
)

type clientsCmd struct{}

func (*clientsCmd) Name() string     { return "clients" }
func (*clientsCmd) Synopsis() string { return "list the clients" }
func (*clientsCmd) Usage() string {
	return `mpro clients

  Lists the clients, in creation order, with the free-tier quota.
`
}

func (*clientsCmd) SetFlags(f *flag.FlagSet) {}

func (*clientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openSession().Store()
	printMarkdown(renderer.ClientsMarkdown(store.Clients(), micropro.ClientLimit))
	return subcommands.ExitSuccess
}
