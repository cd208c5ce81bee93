package micropro

import (
	"fmt"
	"io"
)

// ExportHeader is the first line of the invoice export.
const ExportHeader = "ID,Date,Client,Service,Montant"

// ExportInvoicesCSV writes one row per invoice, resolving each row through
// Invoice -> Order -> Client. Client and Service are always quoted, the way
// downstream spreadsheets expect the file; a dangling reference leaves the
// field empty. The output format is a contract, so the rows are formatted by
// hand rather than with encoding/csv and its conditional quoting.
func ExportInvoicesCSV(w io.Writer, invoices []Invoice, orders []Order, clients []Client) error {
	if _, err := fmt.Fprintln(w, ExportHeader); err != nil {
		return fmt.Errorf("export error: %w", err)
	}
	for _, inv := range invoices {
		var clientName, service string
		if o, ok := orderByID(orders, inv.OrderID); ok {
			service = o.Service
			if c, ok := clientByID(clients, o.ClientID); ok {
				clientName = c.Name
			}
		}
		if _, err := fmt.Fprintf(w, "%s,%s,%q,%q,%s\n",
			inv.ID, inv.Date, clientName, service, inv.Amount.Plain()); err != nil {
			return fmt.Errorf("export error: %w", err)
		}
	}
	return nil
}

func orderByID(orders []Order, id string) (Order, bool) {
	for _, o := range orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

func clientByID(clients []Client, id string) (Client, bool) {
	for _, c := range clients {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}
