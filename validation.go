package micropro

// ClientDraft is the caller-supplied part of a new or updated client.
type ClientDraft struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// Validate checks the draft for required fields.
func (d ClientDraft) Validate() error {
	var missing []string
	if d.Name == "" {
		missing = append(missing, "name")
	}
	if d.Phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return &ValidationError{Entity: "client", Fields: missing}
	}
	return nil
}

// OrderDraft is the caller-supplied part of a new order.
type OrderDraft struct {
	ClientID string
	Service  string
	Amount   Money
	Date     Date // defaults to today when zero
}

// Validate checks the draft for required fields. The client id is required
// but deliberately not resolved against the client collection: a dangling
// reference is tolerated and degrades to an "unknown client" display, so
// data entry is never blocked by a deleted client.
func (d OrderDraft) Validate() error {
	var bad []string
	if d.ClientID == "" {
		bad = append(bad, "clientId")
	}
	if d.Service == "" {
		bad = append(bad, "service")
	}
	if !d.Amount.IsPositive() {
		bad = append(bad, "amount")
	}
	if len(bad) > 0 {
		return &ValidationError{Entity: "order", Fields: bad}
	}
	return nil
}

// UserDraft is the login form content. It is accepted as-is: authentication
// is mocked, no credential is verified.
type UserDraft struct {
	BusinessName string
	Email        string
	Phone        string
}

// Validate checks the draft for required fields.
func (d UserDraft) Validate() error {
	var missing []string
	if d.BusinessName == "" {
		missing = append(missing, "businessName")
	}
	if d.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return &ValidationError{Entity: "user", Fields: missing}
	}
	return nil
}
