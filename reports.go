package micropro

import (
	"slices"
	"sort"
)

// This file is the aggregation engine: pure functions recomputing derived
// views from the current snapshot on every call. Collections are bounded by
// the quota policy, so there is no caching and no incremental bookkeeping.

// UnknownClientName is the display fallback when an order references a
// client that no longer exists.
const UnknownClientName = "Anonyme"

// TotalRevenue sums the amounts of completed orders.
func TotalRevenue(orders []Order) Money {
	var total Money
	for _, o := range orders {
		if o.Status == Completed {
			total = total.Add(o.Amount)
		}
	}
	return total
}

// ActiveOrderCount counts pending and processing orders.
func ActiveOrderCount(orders []Order) int {
	count := 0
	for _, o := range orders {
		if o.Status == Pending || o.Status == Processing {
			count++
		}
	}
	return count
}

// RecentOrders returns the n most recent orders, newest first. The sort is
// stable: orders on the same day keep their original relative order.
func RecentOrders(orders []Order, n int) []Order {
	recent := slices.Clone(orders)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > n {
		recent = recent[:n]
	}
	return recent
}

// PendingInvoiceOrders returns the orders no invoice references yet, in
// their original order.
func PendingInvoiceOrders(orders []Order, invoices []Invoice) []Order {
	invoiced := make(map[string]struct{}, len(invoices))
	for _, inv := range invoices {
		invoiced[inv.OrderID] = struct{}{}
	}
	var pending []Order
	for _, o := range orders {
		if _, ok := invoiced[o.ID]; !ok {
			pending = append(pending, o)
		}
	}
	return pending
}

// ClientRevenue is one row of the top-client ranking.
type ClientRevenue struct {
	Name  string
	Total Money
}

// TopClients groups completed orders by client, sums their amounts, and
// returns the k best rows sorted by descending total. A dangling client id
// resolves to UnknownClientName. Ties keep the order in which the client
// first appears in the completed-order scan, which makes the result
// deterministic on a given input.
func TopClients(orders []Order, clients []Client, k int) []ClientRevenue {
	totals := make(map[string]Money)
	var ids []string // first-appearance order
	for _, o := range orders {
		if o.Status != Completed {
			continue
		}
		if _, seen := totals[o.ClientID]; !seen {
			ids = append(ids, o.ClientID)
		}
		totals[o.ClientID] = totals[o.ClientID].Add(o.Amount)
	}

	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}

	rows := make([]ClientRevenue, 0, len(ids))
	for _, id := range ids {
		name, ok := names[id]
		if !ok {
			name = UnknownClientName
		}
		rows = append(rows, ClientRevenue{Name: name, Total: totals[id]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.GreaterThan(rows[j].Total)
	})
	if len(rows) > k {
		rows = rows[:k]
	}
	return rows
}

// AverageOrderValue returns the mean amount of completed orders, and zero
// when there is none.
func AverageOrderValue(orders []Order) Money {
	count := 0
	var total Money
	for _, o := range orders {
		if o.Status == Completed {
			total = total.Add(o.Amount)
			count++
		}
	}
	if count == 0 {
		return Money{}
	}
	return total.DivBy(count)
}

// OrderLine is an order with its client resolved for display.
type OrderLine struct {
	Order
	ClientName string
}

// ResolveOrders pairs each order with its client name, falling back to
// UnknownClientName for dangling references.
func ResolveOrders(orders []Order, clients []Client) []OrderLine {
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}
	lines := make([]OrderLine, 0, len(orders))
	for _, o := range orders {
		name, ok := names[o.ClientID]
		if !ok {
			name = UnknownClientName
		}
		lines = append(lines, OrderLine{Order: o, ClientName: name})
	}
	return lines
}

// Dashboard provides the at-a-glance overview of the business on a given
// day.
type Dashboard struct {
	Date            Date
	TotalRevenue    Money
	ActiveOrders    int
	ClientCount     int
	ClientLimit     int
	PendingInvoices int
	Recent          []OrderLine
}

// NewDashboard computes the dashboard from the current snapshot.
func NewDashboard(clients []Client, orders []Order, invoices []Invoice) *Dashboard {
	return &Dashboard{
		Date:            Today(),
		TotalRevenue:    TotalRevenue(orders),
		ActiveOrders:    ActiveOrderCount(orders),
		ClientCount:     len(clients),
		ClientLimit:     ClientLimit,
		PendingInvoices: len(PendingInvoiceOrders(orders, invoices)),
		Recent:          ResolveOrders(RecentOrders(orders, 5), clients),
	}
}

// ReportData is the business performance report.
type ReportData struct {
	TotalRevenue      Money
	CompletedCount    int
	AverageOrderValue Money
	TopClients        []ClientRevenue
}

// NewReport computes the performance report from the current snapshot.
func NewReport(orders []Order, clients []Client) *ReportData {
	completed := 0
	for _, o := range orders {
		if o.Status == Completed {
			completed++
		}
	}
	return &ReportData{
		TotalRevenue:      TotalRevenue(orders),
		CompletedCount:    completed,
		AverageOrderValue: AverageOrderValue(orders),
		TopClients:        TopClients(orders, clients, 5),
	}
}
