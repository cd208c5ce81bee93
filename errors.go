package micropro

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrQuotaExceeded is reported when creating a client would exceed
	// ClientLimit. The caller is expected to present an upgrade path.
	ErrQuotaExceeded = errors.New("client quota exceeded")

	// ErrDuplicateInvoice is reported when creating an invoice for an order
	// that already has one.
	ErrDuplicateInvoice = errors.New("order already has an invoice")

	// ErrNotFound is reported by update and delete operations referencing an
	// unknown id. No state is changed.
	ErrNotFound = errors.New("not found")

	// ErrNotConfirmed is reported by Logout when the caller did not confirm
	// the action.
	ErrNotConfirmed = errors.New("action not confirmed")
)

// ValidationError lists the fields a draft is missing or carries invalid
// values for. It is reported before any state mutation.
type ValidationError struct {
	Entity string
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: check %s", e.Entity, strings.Join(e.Fields, ", "))
}

// PersistenceError reports a failed read or write against the key-value
// store. On a write the in-memory mutation has already been applied
// (optimistic, no rollback), so the caller should surface it as a warning
// rather than discard the operation's result.
type PersistenceError struct {
	Key string
	Op  string // "read" or "write"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s error on key %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
