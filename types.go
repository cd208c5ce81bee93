package micropro

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OrderStatus is the workflow state of an order.
type OrderStatus int

const (
	// Pending is the state of a freshly created order.
	Pending OrderStatus = iota
	// Processing marks an order being worked on.
	Processing
	// Completed marks a delivered order; only completed orders count as revenue.
	Completed
	// Cancelled marks an abandoned order.
	Cancelled
)

// String returns the display label, which is also the persisted form.
func (s OrderStatus) String() string {
	switch s {
	case Pending:
		return "En attente"
	case Processing:
		return "En cours"
	case Completed:
		return "Terminé"
	case Cancelled:
		return "Annulé"
	default:
		return "unknown"
	}
}

// ParseOrderStatus parses a string into an OrderStatus. It accepts both the
// display label and a plain ASCII name (pending, processing, completed,
// cancelled).
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "en attente":
		return Pending, nil
	case "processing", "en cours":
		return Processing, nil
	case "completed", "terminé", "termine":
		return Completed, nil
	case "cancelled", "canceled", "annulé", "annule":
		return Cancelled, nil
	default:
		return 0, fmt.Errorf("unknown order status: %q", s)
	}
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, err := ParseOrderStatus(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// PaymentStatus is the payment state of an order.
type PaymentStatus int

const (
	// Unpaid is the state of a freshly created order.
	Unpaid PaymentStatus = iota
	// Partial marks an order with a down payment.
	Partial
	// Paid marks a fully settled order.
	Paid
)

// String returns the display label, which is also the persisted form.
func (s PaymentStatus) String() string {
	switch s {
	case Unpaid:
		return "Non payé"
	case Partial:
		return "Partiel"
	case Paid:
		return "Payé"
	default:
		return "unknown"
	}
}

// ParsePaymentStatus parses a string into a PaymentStatus. It accepts both
// the display label and a plain ASCII name (unpaid, partial, paid).
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unpaid", "non payé", "non paye":
		return Unpaid, nil
	case "partial", "partiel":
		return Partial, nil
	case "paid", "payé", "paye":
		return Paid, nil
	default:
		return 0, fmt.Errorf("unknown payment status: %q", s)
	}
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, err := ParsePaymentStatus(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Client is a customer of the business. Its id is immutable once created.
type Client struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	CreatedAt Date   `json:"createdAt"`
}

// Order is a unit of work performed for a client. It holds the client id,
// not a live reference: resolution happens by id scan at read time, and an
// order may outlive its client.
type Order struct {
	ID            string        `json:"id"`
	ClientID      string        `json:"clientId"`
	Service       string        `json:"service"`
	Amount        Money         `json:"amount"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Date          Date          `json:"date"`
}

// Invoice is a billing document derived from exactly one order. Its amount
// is frozen at creation time and is not re-synced if the order later changes.
type Invoice struct {
	ID      string `json:"id"`
	OrderID string `json:"orderId"`
	Amount  Money  `json:"amount"`
	Date    Date   `json:"date"`
	DueDate Date   `json:"dueDate"`
}

// BusinessProfile is the identity of the business, printed on invoices.
// There is a single profile per data directory.
type BusinessProfile struct {
	BusinessName string `json:"businessName"`
	NIF          string `json:"nif"`
	RCCM         string `json:"rccm"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

// DefaultProfile returns the profile used until the owner customizes it.
func DefaultProfile() BusinessProfile {
	return BusinessProfile{
		BusinessName: "Artisan Pro Niger",
		NIF:          "1234567/X",
		RCCM:         "NI-NIA-2024-B-001",
		Address:      "Niamey, Plateau",
		Phone:        "+227 90 00 00 00",
		Email:        "contact@artisanpro.ne",
	}
}

// User is the current session identity. Authentication is declarative: the
// submitted form data is accepted as-is, no credential is verified.
type User struct {
	ID           string `json:"id"`
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}
