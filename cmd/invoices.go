package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mkeita/micropro"
	"github.com/mkeita/micropro/renderer"
)

type invoicesCmd struct {
	id string
}

func (*invoicesCmd) Name() string     { return "invoices" }
func (*invoicesCmd) Synopsis() string { return "list invoices or render one invoice document" }
func (*invoicesCmd) Usage() string {
	return `mpro invoices [-id <invoice>]

  Without a flag, lists the invoices, newest first. With -id, renders the
  printable document of one invoice: business header, client, service line,
  dates and total.
`
}

func (c *invoicesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Invoice id to render as a document")
}

func (c *invoicesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openSession().Store()

	if c.id == "" {
		printMarkdown(renderer.InvoicesMarkdown(store.Invoices()))
		return subcommands.ExitSuccess
	}

	inv, ok := store.Invoice(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: invoice %q not found\n", c.id)
		return subcommands.ExitFailure
	}
	// The order or the client may be gone; the document degrades gracefully.
	order, _ := store.Order(inv.OrderID)
	clientName := micropro.UnknownClientName
	if client, ok := store.Client(order.ClientID); ok {
		clientName = client.Name
	}
	printMarkdown(renderer.InvoiceMarkdown(store.Profile(), inv, order, clientName))
	return subcommands.ExitSuccess
}
