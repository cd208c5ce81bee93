package renderer

import (
	"strings"
	"testing"

	"github.com/mkeita/micropro"
)

func order(id, clientID string, amount int, status micropro.OrderStatus, day string) micropro.Order {
	return micropro.Order{
		ID:       id,
		ClientID: clientID,
		Service:  "Couture",
		Amount:   micropro.F(amount),
		Status:   status,
		Date:     micropro.MustParse(day),
	}
}

func TestDashboardMarkdown(t *testing.T) {
	clients := []micropro.Client{{ID: "c1", Name: "Aïcha Diallo"}}
	orders := []micropro.Order{
		order("K4J2P9", "c1", 12500, micropro.Completed, "2024-04-01"),
		order("B7M1Q2", "c1", 3000, micropro.Pending, "2024-04-03"),
	}
	d := micropro.NewDashboard(clients, orders, nil)
	got := DashboardMarkdown(d)

	for _, want := range []string{
		"# Tableau de bord",
		"Revenu total",
		micropro.F(12500).String(),
		"1 / 10",
		"Commandes récentes",
		"Aïcha Diallo",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DashboardMarkdown() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Limite de") {
		t.Errorf("DashboardMarkdown() shows the quota banner below the limit:\n%s", got)
	}
}

func TestDashboardMarkdown_QuotaBanner(t *testing.T) {
	clients := make([]micropro.Client, micropro.ClientLimit)
	for i := range clients {
		clients[i] = micropro.Client{ID: micropro.NewClientID(), Name: "Client"}
	}
	got := DashboardMarkdown(micropro.NewDashboard(clients, nil, nil))
	if !strings.Contains(got, "Limite de 10 clients atteinte") {
		t.Errorf("DashboardMarkdown() at the limit misses the quota banner:\n%s", got)
	}
}

func TestReportMarkdown(t *testing.T) {
	clients := []micropro.Client{{ID: "c1", Name: "Aïcha"}, {ID: "c2", Name: "Moussa"}}
	orders := []micropro.Order{
		order("A00001", "c1", 7500, micropro.Completed, "2024-04-01"),
		order("A00002", "c2", 2500, micropro.Completed, "2024-04-02"),
	}
	got := ReportMarkdown(micropro.NewReport(orders, clients))

	for _, want := range []string{
		"# Rapport de performance",
		"Meilleurs clients",
		"Aïcha",
		"Moussa",
		"75%",
		"25%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ReportMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestShareBar(t *testing.T) {
	if got := shareBar(0); got != "·········· 0%" {
		t.Errorf("shareBar(0) = %q", got)
	}
	if got := shareBar(1); got != "██████████ 100%" {
		t.Errorf("shareBar(1) = %q", got)
	}
	if got := shareBar(0.4); got != "████······ 40%" {
		t.Errorf("shareBar(0.4) = %q", got)
	}
	// Out-of-range ratios are clamped.
	if got := shareBar(1.5); got != "██████████ 100%" {
		t.Errorf("shareBar(1.5) = %q", got)
	}
}

func TestInvoiceMarkdown(t *testing.T) {
	inv := micropro.Invoice{
		ID: "FAC-2024-4821", OrderID: "K4J2P9",
		Amount: micropro.F(12500),
		Date:   micropro.MustParse("2024-04-10"), DueDate: micropro.MustParse("2024-04-25"),
	}
	o := order("K4J2P9", "c1", 12500, micropro.Completed, "2024-04-01")
	got := InvoiceMarkdown(micropro.DefaultProfile(), inv, o, "Aïcha Diallo")

	for _, want := range []string{
		"# Facture FAC-2024-4821",
		"Artisan Pro Niger",
		"NIF : 1234567/X",
		"Aïcha Diallo",
		"Couture",
		"2024-04-25",
		"Total à payer",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("InvoiceMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestListsMarkdown_Empty(t *testing.T) {
	if got := ClientsMarkdown(nil, micropro.ClientLimit); !strings.Contains(got, "Aucun client") {
		t.Errorf("ClientsMarkdown(nil) = %q", got)
	}
	if got := OrdersMarkdown(nil); !strings.Contains(got, "Aucune commande") {
		t.Errorf("OrdersMarkdown(nil) = %q", got)
	}
	if got := InvoicesMarkdown(nil); !strings.Contains(got, "Aucune facture") {
		t.Errorf("InvoicesMarkdown(nil) = %q", got)
	}
}

func TestProfileMarkdown(t *testing.T) {
	got := ProfileMarkdown(micropro.DefaultProfile())
	for _, want := range []string{"# Artisan Pro Niger", "RCCM", "NI-NIA-2024-B-001"} {
		if !strings.Contains(got, want) {
			t.Errorf("ProfileMarkdown() missing %q in:\n%s", want, got)
		}
	}
}
