package renderer

import (
	"bytes"
	"fmt"

	"github.com/mkeita/micropro"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the daily overview.
func DashboardMarkdown(d *micropro.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Tableau de bord — %s", d.Date))

	doc.Table(md.TableSet{
		Header: []string{"Indicateur", "Valeur"},
		Rows: [][]string{
			{"Revenu total", d.TotalRevenue.String()},
			{"Commandes actives", fmt.Sprintf("%d", d.ActiveOrders)},
			{"Clients", fmt.Sprintf("%d / %d", d.ClientCount, d.ClientLimit)},
			{"Commandes à facturer", fmt.Sprintf("%d", d.PendingInvoices)},
		},
	})

	if len(d.Recent) > 0 {
		doc.H2("Commandes récentes")
		rows := make([][]string, 0, len(d.Recent))
		for _, line := range d.Recent {
			rows = append(rows, []string{
				line.ID, line.Date.String(), line.ClientName, line.Service,
				line.Amount.String(), line.Status.String(), line.PaymentStatus.String(),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"N°", "Date", "Client", "Service", "Montant", "Statut", "Paiement"},
			Rows:   rows,
		})
	}

	if d.ClientCount >= d.ClientLimit {
		doc.PlainText(fmt.Sprintf("Limite de %d clients atteinte. Passez au plan supérieur pour en ajouter.", d.ClientLimit))
	}

	return doc.String()
}
