package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/pclub-iiitnr/lenshub/internal/app/system/identity"
	"github.com/pclub-iiitnr/lenshub/internal/domain/models"
)

// MemAccounts is an in-memory account store for gateway and handler tests.
// FailCreates makes the next N Create calls fail, which is how the
// registration retry paths are exercised.
type MemAccounts struct {
	mu          sync.Mutex
	ByUID       map[string]*models.Account
	FailCreates int
	TouchErr    error
	TouchCount  int
}

func NewMemAccounts() *MemAccounts {
	return &MemAccounts{ByUID: map[string]*models.Account{}}
}

func (m *MemAccounts) Create(ctx context.Context, acct models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailCreates > 0 {
		m.FailCreates--
		return context.DeadlineExceeded
	}
	acct.CreatedAt = time.Now().UTC()
	m.ByUID[acct.UID] = &acct
	return nil
}

func (m *MemAccounts) Get(ctx context.Context, uid string) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	acct, ok := m.ByUID[uid]
	if !ok {
		return nil, nil
	}
	cp := *acct
	return &cp, nil
}

func (m *MemAccounts) UpdateProfile(ctx context.Context, uid string, upd identity.ProfileUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	acct, ok := m.ByUID[uid]
	if !ok {
		return nil
	}
	if upd.DisplayName != nil {
		acct.DisplayName = *upd.DisplayName
	}
	if upd.PhotoURL != nil {
		acct.PhotoURL = *upd.PhotoURL
	}
	now := time.Now().UTC()
	acct.UpdatedAt = &now
	return nil
}

func (m *MemAccounts) TouchLastLogin(ctx context.Context, uid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TouchCount++
	if m.TouchErr != nil {
		return m.TouchErr
	}
	if acct, ok := m.ByUID[uid]; ok {
		now := time.Now().UTC()
		acct.LastLoginAt = &now
	}
	return nil
}

// Touches returns how many last-login stamps were attempted.
func (m *MemAccounts) Touches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.TouchCount
}
