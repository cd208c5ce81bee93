package micropro

import (
	"fmt"
	"math/rand/v2"
)

const (
	clientIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	orderIDAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// newID returns a random identifier of n characters drawn from alphabet.
// Uniqueness is probabilistic: ids are never checked against existing ones,
// the collision probability is accepted as negligible for collections
// bounded by the quota policy.
func newID(alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}

// NewClientID returns a new random client identifier.
func NewClientID() string { return newID(clientIDAlphabet, 9) }

// NewOrderID returns a new random order identifier, short and uppercase so
// it can be read over the phone.
func NewOrderID() string { return newID(orderIDAlphabet, 6) }

// NewUserID returns a new random session identity identifier.
func NewUserID() string { return newID(clientIDAlphabet, 9) }

// NewInvoiceID returns a human-readable invoice number such as
// "FAC-2025-4821": a fixed prefix, the issue year, and a random 4-digit
// suffix. Same caveat as newID on uniqueness.
func NewInvoiceID(year int) string {
	return fmt.Sprintf("FAC-%d-%d", year, 1000+rand.IntN(9000))
}
