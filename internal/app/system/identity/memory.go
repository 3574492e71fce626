// internal/app/system/identity/memory.go
package identity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pclub-iiitnr/lenshub/internal/app/system/normalize"
)

// InMemory is a map-backed Service for tests and local development. It
// applies the same email and password policy as the Mongo store.
type InMemory struct {
	mu      sync.Mutex
	byEmail map[string]*record

	// SignOutErr, when set, is returned by SignOut. Tests use it to
	// exercise the gateway's sign-out failure path.
	SignOutErr error
}

// NewInMemory returns an empty in-memory identity provider.
func NewInMemory() *InMemory {
	return &InMemory{byEmail: make(map[string]*record)}
}

func (m *InMemory) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	if !validEmail(email) {
		return nil, &Error{Code: CodeInvalidEmail, Message: "invalid email address"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.byEmail[normalize.Email(email)]
	if !ok {
		return nil, &Error{Code: CodeUserNotFound, Message: "no identity for this email"}
	}
	if bcrypt.CompareHashAndPassword(rec.PasswordHash, []byte(password)) != nil {
		return nil, &Error{Code: CodeWrongPassword, Message: "password does not match"}
	}
	return rec.identity(), nil
}

func (m *InMemory) Create(ctx context.Context, email, password string) (*Identity, error) {
	if !validEmail(email) {
		return nil, &Error{Code: CodeInvalidEmail, Message: "invalid email address"}
	}
	if len(password) < MinPasswordLength {
		return nil, &Error{Code: CodeWeakPassword, Message: "password is too short"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := normalize.Email(email)
	if _, exists := m.byEmail[key]; exists {
		return nil, &Error{Code: CodeEmailInUse, Message: "an identity with this email already exists"}
	}

	rec := &record{
		UID:          uuid.NewString(),
		Email:        key,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	m.byEmail[key] = rec
	return rec.identity(), nil
}

func (m *InMemory) SignOut(ctx context.Context) error {
	return m.SignOutErr
}

func (m *InMemory) UpdateProfile(ctx context.Context, uid string, upd ProfileUpdate) (*Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec := m.findByUID(uid)
	if rec == nil {
		return nil, &Error{Code: CodeUserNotFound, Message: "no identity for this uid"}
	}
	if upd.DisplayName != nil {
		rec.DisplayName = *upd.DisplayName
	}
	if upd.PhotoURL != nil {
		rec.PhotoURL = *upd.PhotoURL
	}
	return rec.identity(), nil
}

func (m *InMemory) MarkProfilePending(ctx context.Context, uid string, pending bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec := m.findByUID(uid)
	if rec == nil {
		return &Error{Code: CodeUserNotFound, Message: "no identity for this uid"}
	}
	rec.ProfilePending = pending
	return nil
}

// ProfilePending reports the pending flag for uid. Test helper.
func (m *InMemory) ProfilePending(uid string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rec := m.findByUID(uid); rec != nil {
		return rec.ProfilePending
	}
	return false
}

func (m *InMemory) findByUID(uid string) *record {
	for _, rec := range m.byEmail {
		if rec.UID == uid {
			return rec
		}
	}
	return nil
}
