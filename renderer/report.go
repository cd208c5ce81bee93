package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mkeita/micropro"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the performance report.
func ReportMarkdown(r *micropro.ReportData) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Rapport de performance")

	doc.Table(md.TableSet{
		Header: []string{"Indicateur", "Valeur"},
		Rows: [][]string{
			{"Revenu total", r.TotalRevenue.String()},
			{"Commandes terminées", fmt.Sprintf("%d", r.CompletedCount)},
			{"Panier moyen", r.AverageOrderValue.String()},
		},
	})

	if len(r.TopClients) > 0 {
		doc.H2("Meilleurs clients")
		rows := make([][]string, 0, len(r.TopClients))
		for i, row := range r.TopClients {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				row.Name,
				row.Total.String(),
				shareBar(row.Total.Share(r.TotalRevenue)),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Rang", "Client", "Revenu", "Part"},
			Rows:   rows,
		})
	}

	return doc.String()
}

// shareBar renders a ratio in [0,1] as a ten-slot bar, e.g. "████······ 40%".
func shareBar(ratio float64) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio*10 + 0.5)
	return fmt.Sprintf("%s%s %.0f%%",
		strings.Repeat("█", filled),
		strings.Repeat("·", 10-filled),
		ratio*100)
}
