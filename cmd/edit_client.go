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

type editClientCmd struct {
	id      string
	name    string
	phone   string
	email   string
	address string
}

func (*editClientCmd) Name() string     { return "edit-client" }
func (*editClientCmd) Synopsis() string { return "update a client" }
func (*editClientCmd) Usage() string {
	return `mpro edit-client -id <id> -name <name> -phone <phone> [-email <email>] [-address <address>]

  Replaces the editable fields of a client. The id and creation date never
  change.
`
}

func (c *editClientCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Client id (required)")
	f.StringVar(&c.name, "name", "", "Client name (required)")
	f.StringVar(&c.phone, "phone", "", "Client phone (required)")
	f.StringVar(&c.email, "email", "", "Client email")
	f.StringVar(&c.address, "address", "", "Client address")
}

func (c *editClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openSession()
	if !requireLogin(s) {
		return subcommands.ExitFailure
	}
	client, err := s.Store().UpdateClient(c.id, micropro.ClientDraft{
		Name: c.name, Phone: c.phone, Email: c.email, Address: c.address,
	})
	if errors.Is(err, micropro.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: client %q not found\n", c.id)
		return subcommands.ExitFailure
	}
	var verr *micropro.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	fmt.Printf("Client %s mis à jour : %s\n", client.ID, client.Name)
	return subcommands.ExitSuccess
}
