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

type payCmd struct {
	order string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "mark an order completed and paid, issuing its invoice" }
func (*payCmd) Usage() string {
	return `mpro pay -order <id>

  Marks an order completed and paid in one step. An invoice due in 7 days
  is issued, unless the order already has one: that invoice is kept as-is.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.order, "order", "", "Order id (required)")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openSession()
	if !requireLogin(s) {
		return subcommands.ExitFailure
	}
	o, inv, err := s.Store().MarkPaid(c.order)
	if errors.Is(err, micropro.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: order %q not found\n", c.order)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	fmt.Printf("Commande %s payée. Facture %s, échéance %s.\n", o.ID, inv.ID, inv.DueDate)
	return subcommands.ExitSuccess
}
