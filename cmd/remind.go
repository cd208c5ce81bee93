package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mkeita/micropro"
)

type remindCmd struct {
	invoice string
}

func (*remindCmd) Name() string     { return "remind" }
func (*remindCmd) Synopsis() string { return "print the WhatsApp reminder link for an invoice" }
func (*remindCmd) Usage() string {
	return `mpro remind -invoice <id>

  Prints a wa.me link opening a WhatsApp conversation with the client, with
  the payment reminder message pre-filled. Sending is up to you.
`
}

func (c *remindCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.invoice, "invoice", "", "Invoice id (required)")
}

func (c *remindCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openSession().Store()

	inv, ok := store.Invoice(c.invoice)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: invoice %q not found\n", c.invoice)
		return subcommands.ExitFailure
	}
	order, _ := store.Order(inv.OrderID)
	client, ok := store.Client(order.ClientID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: invoice %q has no reachable client\n", c.invoice)
		return subcommands.ExitFailure
	}

	msg := micropro.ReminderMessage(client.Name, inv)
	fmt.Println(micropro.WhatsAppLink(client.Phone, msg))
	return subcommands.ExitSuccess
}
