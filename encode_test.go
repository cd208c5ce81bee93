package micropro

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestRoundTrip_Collections(t *testing.T) {
	clients := []Client{
		{ID: "abc123def", Name: "Aïcha", Phone: "+227 90 11 22 33", Email: "a@example.ne", Address: "Niamey", CreatedAt: MustParse("2024-02-10")},
		{ID: "xyz789ghi", Name: "Boubacar", Phone: "+227 91 00 00 00", CreatedAt: MustParse("2024-03-05")},
	}
	orders := []Order{
		{ID: "K4J2P9", ClientID: "abc123def", Service: "Couture", Amount: F(12500), Status: Completed, PaymentStatus: Paid, Date: MustParse("2024-04-01")},
		{ID: "Z8M1Q3", ClientID: "xyz789ghi", Service: "Broderie", Amount: F(3000), Status: Pending, PaymentStatus: Unpaid, Date: MustParse("2024-04-02")},
	}
	invoices := []Invoice{
		{ID: "FAC-2024-4821", OrderID: "K4J2P9", Amount: F(12500), Date: MustParse("2024-04-10"), DueDate: MustParse("2024-04-25")},
	}

	t.Run("clients", func(t *testing.T) {
		data, err := encodeValue(clients)
		if err != nil {
			t.Fatalf("encodeValue() error: %v", err)
		}
		var got []Client
		if err := decodeValue(data, &got); err != nil {
			t.Fatalf("decodeValue() error: %v", err)
		}
		if !reflect.DeepEqual(got, clients) {
			t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, clients)
		}
	})
	t.Run("orders", func(t *testing.T) {
		data, err := encodeValue(orders)
		if err != nil {
			t.Fatalf("encodeValue() error: %v", err)
		}
		var got []Order
		if err := decodeValue(data, &got); err != nil {
			t.Fatalf("decodeValue() error: %v", err)
		}
		if len(got) != len(orders) {
			t.Fatalf("round trip lost orders: %d, want %d", len(got), len(orders))
		}
		for i := range orders {
			if got[i].ID != orders[i].ID ||
				got[i].ClientID != orders[i].ClientID ||
				got[i].Service != orders[i].Service ||
				!got[i].Amount.Equal(orders[i].Amount) ||
				got[i].Status != orders[i].Status ||
				got[i].PaymentStatus != orders[i].PaymentStatus ||
				got[i].Date != orders[i].Date {
				t.Errorf("order[%d] mismatch:\n got %+v\nwant %+v", i, got[i], orders[i])
			}
		}
	})
	t.Run("invoices", func(t *testing.T) {
		data, err := encodeValue(invoices)
		if err != nil {
			t.Fatalf("encodeValue() error: %v", err)
		}
		var got []Invoice
		if err := decodeValue(data, &got); err != nil {
			t.Fatalf("decodeValue() error: %v", err)
		}
		if len(got) != 1 || got[0].ID != invoices[0].ID || !got[0].Amount.Equal(invoices[0].Amount) ||
			got[0].Date != invoices[0].Date || got[0].DueDate != invoices[0].DueDate {
			t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, invoices)
		}
	})
}

func TestEncodeValue_IsHumanReadable(t *testing.T) {
	orders := []Order{
		{ID: "K4J2P9", ClientID: "c1", Service: "Couture", Amount: F(12500), Status: Completed, PaymentStatus: Paid, Date: MustParse("2024-04-01")},
	}
	data, err := encodeValue(orders)
	if err != nil {
		t.Fatalf("encodeValue() error: %v", err)
	}
	text := string(data)
	// The files carry the display labels and field names, so they can be
	// inspected and fixed by hand.
	for _, want := range []string{`"status": "Terminé"`, `"paymentStatus": "Payé"`, `"date": "2024-04-01"`, `"amount": 12500`} {
		if !strings.Contains(text, want) {
			t.Errorf("encoded form %s\nis missing %q", text, want)
		}
	}
}

func TestReadKey_AbsentKeyKeepsDefault(t *testing.T) {
	kv := NewMemStore()
	profile := DefaultProfile()
	ok, err := readKey(kv, KeyProfile, &profile)
	if err != nil {
		t.Fatalf("readKey() error: %v", err)
	}
	if ok {
		t.Errorf("readKey() reported a value for an absent key")
	}
	if !reflect.DeepEqual(profile, DefaultProfile()) {
		t.Errorf("readKey() on an absent key touched the default")
	}
}

func TestReadKey_CorruptValue(t *testing.T) {
	kv := NewMemStore()
	if err := kv.Set(KeyClients, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	var clients []Client
	_, err := readKey(kv, KeyClients, &clients)
	if err == nil {
		t.Fatalf("readKey() accepted a corrupt value")
	}
	var perr *PersistenceError
	if !errors.As(err, &perr) || perr.Op != "read" {
		t.Errorf("readKey() error = %v, want a read *PersistenceError", err)
	}
}
