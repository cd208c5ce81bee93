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

type addOrderCmd struct {
	client  string
	service string
	amount  float64
	date    string
}

func (*addOrderCmd) Name() string     { return "add-order" }
func (*addOrderCmd) Synopsis() string { return "create an order" }
func (*addOrderCmd) Usage() string {
	return `mpro add-order -client <id> -service <service> -amount <amount> [-d <date>]

  Creates a pending, unpaid order for a client. The client id is not
  checked against the directory: an order may reference a client created
  elsewhere or since deleted.

Usage Examples:
$ mpro add-order -client k3x9m2p4q -service "Couture" -amount 12500
`
}

func (c *addOrderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "client", "", "Client id (required)")
	f.StringVar(&c.service, "service", "", "Service description (required)")
	f.Float64Var(&c.amount, "amount", 0, "Amount in CFA francs (required, positive)")
	f.StringVar(&c.date, "d", "", "Order date (defaults to today)")
}

func (c *addOrderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openSession()
	if !requireLogin(s) {
		return subcommands.ExitFailure
	}
	var day micropro.Date
	if c.date != "" {
		var err error
		day, err = micropro.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	o, err := s.Store().CreateOrder(micropro.OrderDraft{
		ClientID: c.client,
		Service:  c.service,
		Amount:   micropro.F(c.amount),
		Date:     day,
	})
	var verr *micropro.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	fmt.Printf("Commande %s créée : %s, %s\n", o.ID, o.Service, o.Amount)
	return subcommands.ExitSuccess
}
