package renderer

import "github.com/mkeita/micropro"

// InvoiceMarkdown renders the printable invoice document. The order may be
// the zero value when it has been deleted since billing; the document still
// comes out with the frozen invoice amount.
func InvoiceMarkdown(profile micropro.BusinessProfile, inv micropro.Invoice, order micropro.Order, clientName string) string {
	p := newPrinter()

	p.Printf("# Facture %s\n\n", inv.ID)

	p.Printf("**%s**\n\n", profile.BusinessName)
	p.Printf("%s\n\n", profile.Address)
	p.Printf("NIF : %s — RCCM : %s\n\n", profile.NIF, profile.RCCM)
	p.Printf("Tél : %s — %s\n\n", profile.Phone, profile.Email)

	p.Printf("---\n\n")

	p.Printf("Facturé à : **%s**\n\n", clientName)
	p.Printf("| Date | Échéance |\n")
	p.Printf("|:---|:---|\n")
	p.Printf("| %s | %s |\n\n", inv.Date, inv.DueDate)

	p.Printf("| Prestation | Montant |\n")
	p.Printf("|:---|---:|\n")
	p.Printf("| %s | %s |\n\n", order.Service, inv.Amount)

	p.Printf("**Total à payer : %s**\n", inv.Amount)

	return p.String()
}
