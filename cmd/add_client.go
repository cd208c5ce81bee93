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

type addClientCmd struct {
	name    string
	phone   string
	email   string
	address string
}

func (*addClientCmd) Name() string     { return "add-client" }
func (*addClientCmd) Synopsis() string { return "create a client" }
func (*addClientCmd) Usage() string {
	return `mpro add-client -name <name> -phone <phone> [-email <email>] [-address <address>]

  Creates a client. The free tier is capped at 10 clients; past the cap,
  run "mpro upgrade" to request the premium plan.

Usage Examples:
$ mpro add-client -name "Moussa Garba" -phone "+227 90 11 22 33"
`
}

func (c *addClientCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Client name (required)")
	f.StringVar(&c.phone, "phone", "", "Client phone (required)")
	f.StringVar(&c.email, "email", "", "Client email")
	f.StringVar(&c.address, "address", "", "Client address")
}

func (c *addClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openSession()
	if !requireLogin(s) {
		return subcommands.ExitFailure
	}
	client, err := s.Store().CreateClient(micropro.ClientDraft{
		Name: c.name, Phone: c.phone, Email: c.email, Address: c.address,
	})
	if errors.Is(err, micropro.ErrQuotaExceeded) {
		fmt.Fprintln(os.Stderr, "Error: limite de 10 clients atteinte. Lancez « mpro upgrade » pour passer au plan supérieur.")
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
	fmt.Printf("Client %s créé : %s\n", client.ID, client.Name)
	return subcommands.ExitSuccess
}
