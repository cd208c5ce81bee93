package micropro

import (
	"errors"
	"testing"
)

func TestSession_FirstRun(t *testing.T) {
	kv := NewMemStore()
	s, warn := Open(kv)
	if warn != nil {
		t.Fatalf("Open() on an empty store warned: %v", warn)
	}
	if s.Started() {
		t.Errorf("fresh session reports started")
	}
	if _, ok := s.CurrentUser(); ok {
		t.Errorf("fresh session reports a user")
	}
	if got := s.Store().Profile(); got != DefaultProfile() {
		t.Errorf("fresh profile = %+v, want the default", got)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start() is not idempotent: %v", err)
	}

	// The flag survives a reopen.
	s2, _ := Open(kv)
	if !s2.Started() {
		t.Errorf("started flag not restored")
	}
}

func TestSession_LoginSyncsProfile(t *testing.T) {
	kv := NewMemStore()
	s, _ := Open(kv)

	u, err := s.Login(UserDraft{BusinessName: "Atelier Aïcha", Email: "aicha@example.ne", Phone: "90"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if u.ID == "" {
		t.Errorf("Login() returned an empty user id")
	}
	if !s.Started() {
		t.Errorf("Login() did not imply Start()")
	}
	if got := s.Store().Profile().BusinessName; got != "Atelier Aïcha" {
		t.Errorf("profile business name = %q, want the user's", got)
	}

	// Identity and sync survive a reopen.
	s2, warn := Open(kv)
	if warn != nil {
		t.Fatalf("Open() warned: %v", warn)
	}
	got, ok := s2.CurrentUser()
	if !ok || got != u {
		t.Errorf("restored user = %+v (%v), want %+v", got, ok, u)
	}
	if name := s2.Store().Profile().BusinessName; name != "Atelier Aïcha" {
		t.Errorf("restored profile business name = %q", name)
	}
}

func TestSession_LoginValidation(t *testing.T) {
	s, _ := Open(NewMemStore())
	_, err := s.Login(UserDraft{Phone: "90"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Login() with an empty form = %v, want a *ValidationError", err)
	}
	if _, ok := s.CurrentUser(); ok {
		t.Errorf("rejected login still set the identity")
	}
}

func TestSession_LogoutIsGuarded(t *testing.T) {
	kv := NewMemStore()
	s, _ := Open(kv)
	s.Login(UserDraft{BusinessName: "Atelier", Email: "a@example.ne"})

	if err := s.Logout(false); !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("Logout(false) = %v, want ErrNotConfirmed", err)
	}
	if _, ok := s.CurrentUser(); !ok {
		t.Errorf("unconfirmed logout cleared the identity")
	}

	if err := s.Logout(true); err != nil {
		t.Fatalf("Logout(true) error: %v", err)
	}
	if _, ok := s.CurrentUser(); ok {
		t.Errorf("logout kept the identity")
	}
	if s.Started() {
		t.Errorf("logout kept the started flag")
	}
}

func TestSession_LogoutKeepsBusinessData(t *testing.T) {
	kv := NewMemStore()
	s, _ := Open(kv)
	s.Login(UserDraft{BusinessName: "Atelier", Email: "a@example.ne"})

	c, _ := s.Store().CreateClient(ClientDraft{Name: "Aïcha", Phone: "90"})
	o, _ := s.Store().CreateOrder(OrderDraft{ClientID: c.ID, Service: "Couture", Amount: F(100)})
	s.Store().CreateInvoiceFor(o.ID)

	if err := s.Logout(true); err != nil {
		t.Fatalf("Logout() error: %v", err)
	}

	s2, _ := Open(kv)
	if s2.Started() {
		t.Errorf("started flag survived logout")
	}
	if _, ok := s2.CurrentUser(); ok {
		t.Errorf("identity survived logout")
	}
	if len(s2.Store().Clients()) != 1 || len(s2.Store().Orders()) != 1 || len(s2.Store().Invoices()) != 1 {
		t.Errorf("business data did not survive logout: %d clients, %d orders, %d invoices",
			len(s2.Store().Clients()), len(s2.Store().Orders()), len(s2.Store().Invoices()))
	}
}

func TestSession_RestoreIsolatesCorruptKeys(t *testing.T) {
	kv := NewMemStore()
	s, _ := Open(kv)
	s.Login(UserDraft{BusinessName: "Atelier", Email: "a@example.ne"})
	c, _ := s.Store().CreateClient(ClientDraft{Name: "Aïcha", Phone: "90"})
	s.Store().CreateOrder(OrderDraft{ClientID: c.ID, Service: "Couture", Amount: F(100)})

	// Corrupt one key by hand; every other key must still restore.
	if err := kv.Set(KeyOrders, []byte("{broken")); err != nil {
		t.Fatal(err)
	}

	s2, warn := Open(kv)
	if warn == nil {
		t.Fatalf("Open() did not report the corrupt key")
	}
	var perr *PersistenceError
	if !errors.As(warn, &perr) || perr.Key != KeyOrders {
		t.Errorf("warning = %v, want a *PersistenceError on %q", warn, KeyOrders)
	}
	if len(s2.Store().Clients()) != 1 {
		t.Errorf("clients did not survive a corrupt orders key")
	}
	if len(s2.Store().Orders()) != 0 {
		t.Errorf("corrupt orders key produced %d orders, want the default empty collection", len(s2.Store().Orders()))
	}
	if _, ok := s2.CurrentUser(); !ok {
		t.Errorf("identity did not survive a corrupt orders key")
	}
}

func TestSession_OnDisk(t *testing.T) {
	dir := t.TempDir()
	kv := NewDirStore(dir)

	s, _ := Open(kv)
	s.Login(UserDraft{BusinessName: "Atelier", Email: "a@example.ne"})
	if _, err := s.Store().CreateClient(ClientDraft{Name: "Aïcha", Phone: "90"}); err != nil {
		t.Fatalf("CreateClient() error: %v", err)
	}

	s2, warn := Open(NewDirStore(dir))
	if warn != nil {
		t.Fatalf("Open() warned: %v", warn)
	}
	if len(s2.Store().Clients()) != 1 {
		t.Errorf("client did not survive the disk round trip")
	}
	if !s2.Started() {
		t.Errorf("started flag did not survive the disk round trip")
	}
}
