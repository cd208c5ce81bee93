package micropro

import (
	"errors"
	"fmt"
	"log"
)

// Session is the lifecycle controller: it owns the "has started" flag and
// the current identity, and restores everything from the key-value store on
// open. Business data survives logins and logouts; only the identity resets.
type Session struct {
	kv      KVStore
	store   *Store
	user    *User
	started bool
}

// Open restores the session and the business data from kv. Each key is
// restored independently: a corrupt value is logged, its default takes over,
// and the other keys still load. The returned error joins the per-key
// failures and is a warning, never fatal: the session is always usable.
func Open(kv KVStore) (*Session, error) {
	s := &Session{kv: kv, store: NewStore(kv)}

	var errs []error
	restore := func(key string, v any) bool {
		ok, err := readKey(kv, key, v)
		if err != nil {
			log.Printf("restore skipped key=%q: %v", key, err)
			errs = append(errs, err)
			return false
		}
		return ok
	}

	restore(KeyClients, &s.store.clients)
	restore(KeyOrders, &s.store.orders)
	restore(KeyInvoices, &s.store.invoices)

	var profile BusinessProfile
	if restore(KeyProfile, &profile) {
		s.store.profile = profile
	}
	var user User
	if restore(KeyUser, &user) {
		s.user = &user
	}
	restore(KeyStarted, &s.started)

	// The profile mirrors the logged-in identity's business name.
	if s.user != nil {
		s.store.profile.BusinessName = s.user.BusinessName
	}
	return s, errors.Join(errs...)
}

// Store returns the entity store of this session.
func (s *Session) Store() *Store { return s.store }

// Started reports whether the first-run step was completed.
func (s *Session) Started() bool { return s.started }

// CurrentUser returns the session identity, if logged in.
func (s *Session) CurrentUser() (User, bool) {
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Start records that the first run happened. It is idempotent.
func (s *Session) Start() error {
	if s.started {
		return nil
	}
	s.started = true
	return writeKey(s.kv, KeyStarted, true)
}

// Login creates the session identity from the submitted form and implies
// Start. The business profile name is synchronized from the user. Returned
// errors are persistence warnings: the in-memory login always succeeds once
// the draft validates.
func (s *Session) Login(d UserDraft) (User, error) {
	if err := d.Validate(); err != nil {
		return User{}, err
	}
	u := User{
		ID:           NewUserID(),
		BusinessName: d.BusinessName,
		Email:        d.Email,
		Phone:        d.Phone,
	}
	s.user = &u

	var warns []error
	if err := s.Start(); err != nil {
		warns = append(warns, err)
	}
	if err := writeKey(s.kv, KeyUser, u); err != nil {
		warns = append(warns, err)
	}
	s.store.profile.BusinessName = u.BusinessName
	if err := s.store.persistProfile(); err != nil {
		warns = append(warns, err)
	}
	return u, errors.Join(warns...)
}

// Logout clears the session identity and the "has started" flag, returning
// the application to its not-started state. It is a guarded action: without
// confirm it fails with ErrNotConfirmed. Clients, orders, invoices and the
// profile are left untouched.
func (s *Session) Logout(confirm bool) error {
	if !confirm {
		return fmt.Errorf("logout: %w", ErrNotConfirmed)
	}
	s.user = nil
	s.started = false

	var warns []error
	if err := s.kv.Delete(KeyUser); err != nil {
		warns = append(warns, &PersistenceError{Key: KeyUser, Op: "write", Err: err})
	}
	if err := s.kv.Delete(KeyStarted); err != nil {
		warns = append(warns, &PersistenceError{Key: KeyStarted, Op: "write", Err: err})
	}
	return errors.Join(warns...)
}
