package renderer

import (
	"bytes"
	"fmt"

	"github.com/mkeita/micropro"
	md "github.com/nao1215/markdown"
)

// ClientsMarkdown renders the client directory.
func ClientsMarkdown(clients []micropro.Client, limit int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Clients (%d / %d)", len(clients), limit))
	if len(clients) == 0 {
		doc.PlainText("Aucun client pour le moment.")
		return doc.String()
	}

	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{c.ID, c.Name, c.Phone, c.Email, c.Address, c.CreatedAt.String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Nom", "Téléphone", "Email", "Adresse", "Depuis"},
		Rows:   rows,
	})
	return doc.String()
}

// OrdersMarkdown renders the order book with client names resolved.
func OrdersMarkdown(lines []micropro.OrderLine) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Commandes")
	if len(lines) == 0 {
		doc.PlainText("Aucune commande pour le moment.")
		return doc.String()
	}

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []string{
			line.ID, line.Date.String(), line.ClientName, line.Service,
			line.Amount.String(), line.Status.String(), line.PaymentStatus.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"N°", "Date", "Client", "Service", "Montant", "Statut", "Paiement"},
		Rows:   rows,
	})
	return doc.String()
}

// InvoicesMarkdown renders the invoice list, newest first as stored.
func InvoicesMarkdown(invoices []micropro.Invoice) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Factures")
	if len(invoices) == 0 {
		doc.PlainText("Aucune facture pour le moment.")
		return doc.String()
	}

	rows := make([][]string, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, []string{inv.ID, inv.OrderID, inv.Date.String(), inv.DueDate.String(), inv.Amount.String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"N°", "Commande", "Date", "Échéance", "Montant"},
		Rows:   rows,
	})
	return doc.String()
}

// ProfileMarkdown renders the business identity card.
func ProfileMarkdown(p micropro.BusinessProfile) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(p.BusinessName)
	doc.Table(md.TableSet{
		Header: []string{"Champ", "Valeur"},
		Rows: [][]string{
			{"NIF", p.NIF},
			{"RCCM", p.RCCM},
			{"Adresse", p.Address},
			{"Téléphone", p.Phone},
			{"Email", p.Email},
		},
	})
	return doc.String()
}
