// internal/app/gateway/authgw/session.go
package authgw

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/pclub-iiitnr/lenshub/internal/app/system/identity"
	"github.com/pclub-iiitnr/lenshub/internal/app/system/timeouts"
)

// Listener receives the identity after every auth-state transition; nil
// means signed out.
type Listener func(*identity.Identity)

// Session tracks the identity currently signed in through one client of
// the gateway. It is an explicit object rather than package-level state,
// so each browser session (or test) gets its own.
//
// Listeners are invoked synchronously, in transition order, while the
// session lock is held; a listener must not call back into the Session.
// The last-login stamp performed on each transition to a signed-in
// identity is fire-and-forget: its failure is logged and never reaches
// listeners or callers.
type Session struct {
	gw *Gateway

	mu        sync.Mutex
	current   *identity.Identity
	listeners map[int]Listener
	nextID    int

	stamps sync.WaitGroup
}

// NewSession returns a signed-out Session over the gateway.
func (g *Gateway) NewSession() *Session {
	return &Session{gw: g, listeners: make(map[int]Listener)}
}

// Current returns the signed-in identity without any remote call; nil
// when signed out.
func (s *Session) Current() *identity.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Subscribe registers fn and immediately delivers the current state to it.
// The returned function unsubscribes.
func (s *Session) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	fn(s.current)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// SignIn authenticates and, on success, transitions the session to
// signed-in.
func (s *Session) SignIn(ctx context.Context, email, password string) (*identity.Identity, error) {
	id, err := s.gw.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.setCurrent(id)
	return id, nil
}

// Register creates the account and signs the new identity in.
func (s *Session) Register(ctx context.Context, email, password, displayName string) (*identity.Identity, error) {
	id, err := s.gw.Register(ctx, email, password, displayName)
	if err != nil {
		return nil, err
	}
	s.setCurrent(id)
	return id, nil
}

// SignOut ends the session and transitions to signed-out.
func (s *Session) SignOut(ctx context.Context) error {
	if err := s.gw.SignOut(ctx); err != nil {
		return err
	}
	s.setCurrent(nil)
	return nil
}

// UpdateProfile applies the non-nil fields to the signed-in identity and
// merge-updates the account document. Fails with ErrNotAuthenticated when
// no identity is current.
func (s *Session) UpdateProfile(ctx context.Context, upd identity.ProfileUpdate) (*identity.Identity, error) {
	cur := s.Current()
	if cur == nil {
		return nil, ErrNotAuthenticated
	}

	id, err := s.gw.UpdateProfile(ctx, cur.UID, upd)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = id
	s.mu.Unlock()
	return id, nil
}

// Flush blocks until outstanding best-effort last-login writes settle.
// Useful in tests and during shutdown; normal callers never need it.
func (s *Session) Flush() { s.stamps.Wait() }

func (s *Session) setCurrent(id *identity.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = id
	if id != nil {
		uid := id.UID
		s.stamps.Add(1)
		go func() {
			defer s.stamps.Done()
			ctx, cancel := context.WithTimeout(context.Background(), timeouts.Short())
			defer cancel()
			if err := s.gw.RecordLogin(ctx, uid); err != nil {
				s.gw.log.Warn("last-login stamp failed", zap.String("uid", uid), zap.Error(err))
			}
		}()
	}
	for _, fn := range s.listeners {
		fn(id)
	}
}
