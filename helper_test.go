package micropro

// order is a helper for tests to build an order from the fields that matter
// to the aggregation engine.
func order(id, clientID string, amount float64, status OrderStatus, date string) Order {
	return Order{
		ID:       id,
		ClientID: clientID,
		Service:  "Couture",
		Amount:   F(amount),
		Status:   status,
		Date:     MustParse(date),
	}
}

// client is a helper for tests to build a client.
func client(id, name string) Client {
	return Client{ID: id, Name: name, Phone: "+227 90 11 22 33", CreatedAt: MustParse("2024-01-01")}
}

// invoiceFor is a helper for tests to build an invoice referencing an order.
func invoiceFor(id, orderID string, amount float64) Invoice {
	return Invoice{
		ID:      id,
		OrderID: orderID,
		Amount:  F(amount),
		Date:    MustParse("2024-06-01"),
		DueDate: MustParse("2024-06-16"),
	}
}
