package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mkeita/micropro"
)

type rmClientCmd struct {
	id string
}

func (*rmClientCmd) Name() string     { return "rm-client" }
func (*rmClientCmd) Synopsis() string { return "delete a client" }
func (*rmClientCmd) Usage() string {
	return `mpro rm-client -id <id>

  Deletes a client. Its orders are kept and display as "Anonyme".
`
}

func (c *rmClientCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Client id (required)")
}

func (c *rmClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openSession()
	if !requireLogin(s) {
		return subcommands.ExitFailure
	}
	err := s.Store().DeleteClient(c.id)
	if errors.Is(err, micropro.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: client %q not found\n", c.id)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	fmt.Printf("Client %s supprimé.\n", c.id)
	return subcommands.ExitSuccess
}
