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

type billCmd struct {
	order string
}

func (*billCmd) Name() string     { return "bill" }
func (*billCmd) Synopsis() string { return "create the invoice of an order" }
func (*billCmd) Usage() string {
	return `mpro bill -order <id>

  Issues the invoice of an order, due in 15 days. The amount is frozen at
  creation: editing the order afterwards does not change the invoice. An
  order can only be billed once.
`
}

func (c *billCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.order, "order", "", "Order id (required)")
}

func (c *billCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openSession()
	if !requireLogin(s) {
		return subcommands.ExitFailure
	}
	inv, err := s.Store().CreateInvoiceFor(c.order)
	if errors.Is(err, micropro.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: order %q not found\n", c.order)
		return subcommands.ExitFailure
	}
	if errors.Is(err, micropro.ErrDuplicateInvoice) {
		fmt.Fprintf(os.Stderr, "Error: order %q is already billed: %v\n", c.order, err)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	fmt.Printf("Facture %s créée : %s, échéance %s.\n", inv.ID, inv.Amount, inv.DueDate)
	return subcommands.ExitSuccess
}
