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

type editOrderCmd struct {
	id      string
	service string
	amount  float64
	status  string
	payment string
}

func (*editOrderCmd) Name() string     { return "edit-order" }
func (*editOrderCmd) Synopsis() string { return "update an order" }
func (*editOrderCmd) Usage() string {
	return `mpro edit-order -id <id> [-service <service>] [-amount <amount>] [-status <status>] [-payment <payment>]

  Patches an order: only the provided flags change. Statuses accept the
  display labels ("En cours", "Payé") or plain names (processing, paid).

Usage Examples:
$ mpro edit-order -id K4J2P9 -status processing
$ mpro edit-order -id K4J2P9 -amount 15000 -payment partial
`
}

func (c *editOrderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Order id (required)")
	f.StringVar(&c.service, "service", "", "New service description")
	f.Float64Var(&c.amount, "amount", 0, "New amount in CFA francs")
	f.StringVar(&c.status, "status", "", "New status: pending, processing, completed, cancelled")
	f.StringVar(&c.payment, "payment", "", "New payment status: unpaid, partial, paid")
}

func (c *editOrderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openSession()
	if !requireLogin(s) {
		return subcommands.ExitFailure
	}

	var patch micropro.OrderPatch
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "service":
			patch.Service = &c.service
		case "amount":
			m := micropro.F(c.amount)
			patch.Amount = &m
		}
	})
	if c.status != "" {
		st, err := micropro.ParseOrderStatus(c.status)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		patch.Status = &st
	}
	if c.payment != "" {
		ps, err := micropro.ParsePaymentStatus(c.payment)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		patch.PaymentStatus = &ps
	}

	o, err := s.Store().UpdateOrder(c.id, patch)
	if errors.Is(err, micropro.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: order %q not found\n", c.id)
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
	fmt.Printf("Commande %s mise à jour : %s / %s\n", o.ID, o.Status, o.PaymentStatus)
	return subcommands.ExitSuccess
}
