package micropro

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
)

// Storage keys. Each key holds the serialized snapshot of one collection or
// object; the absence of a key means "use the default".
const (
	KeyClients  = "clients"
	KeyOrders   = "orders"
	KeyInvoices = "invoices"
	KeyProfile  = "businessProfile"
	KeyUser     = "currentUser"
	KeyStarted  = "hasStarted"
)

// encodeValue serializes a snapshot in the indented, field-named JSON form
// the data files use.
func encodeValue(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("cannot marshal snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

// decodeValue parses a snapshot produced by encodeValue (or by hand, the
// files are meant to be editable).
func decodeValue(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cannot unmarshal snapshot: %w", err)
	}
	return nil
}

// writeKey encodes v and stores it under key. Failures are reported as a
// *PersistenceError; by the time it is called the in-memory mutation has
// already been applied, so callers surface the error as a warning.
func writeKey(kv KVStore, key string, v any) error {
	data, err := encodeValue(v)
	if err != nil {
		return &PersistenceError{Key: key, Op: "write", Err: err}
	}
	if err := kv.Set(key, data); err != nil {
		return &PersistenceError{Key: key, Op: "write", Err: err}
	}
	return nil
}

// readKey loads and decodes the snapshot stored under key into v. It returns
// false with no error when the key is absent, leaving v untouched so the
// caller's default survives.
func readKey(kv KVStore, key string, v any) (bool, error) {
	data, err := kv.Get(key)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, &PersistenceError{Key: key, Op: "read", Err: err}
	}
	if err := decodeValue(data, v); err != nil {
		return false, &PersistenceError{Key: key, Op: "read", Err: err}
	}
	return true, nil
}
