// Package authgw mediates between the site's controllers and the identity
// provider. It enforces the domain policy before any remote call, maps
// known provider failure codes to stable user-facing messages, and keeps
// the account document in step with the identity it mirrors.
//
// The gateway itself is stateless; per-client sign-in state lives in a
// Session created with NewSession.
package authgw

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pclub-iiitnr/lenshub/internal/app/policy/domainpolicy"
	"github.com/pclub-iiitnr/lenshub/internal/app/system/identity"
	"github.com/pclub-iiitnr/lenshub/internal/domain/models"
)

// AccountStore is the slice of the accounts collection the gateway needs.
type AccountStore interface {
	// Create writes the account document. It must be idempotent per UID so
	// the registration retry cannot duplicate.
	Create(ctx context.Context, acct models.Account) error

	// Get returns (nil, nil) when no account exists for uid.
	Get(ctx context.Context, uid string) (*models.Account, error)

	// UpdateProfile merge-updates the non-nil fields plus an UpdatedAt
	// stamp; unspecified fields are left untouched.
	UpdateProfile(ctx context.Context, uid string, upd identity.ProfileUpdate) error

	// TouchLastLogin merge-updates the last-login stamp.
	TouchLastLogin(ctx context.Context, uid string) error
}

// Gateway wraps the identity provider and the accounts collection.
type Gateway struct {
	ids      identity.Service
	accounts AccountStore
	policy   domainpolicy.Policy
	log      *zap.Logger
}

// New builds a Gateway.
func New(ids identity.Service, accounts AccountStore, policy domainpolicy.Policy, logger *zap.Logger) *Gateway {
	return &Gateway{ids: ids, accounts: accounts, policy: policy, log: logger}
}

// Policy returns the domain policy the gateway enforces.
func (g *Gateway) Policy() domainpolicy.Policy { return g.policy }

// SignIn verifies the credential. The domain gate runs first: a
// disallowed email never reaches the provider.
func (g *Gateway) SignIn(ctx context.Context, email, password string) (*identity.Identity, error) {
	if !g.policy.AllowedEmailDomain(email) {
		return nil, &DomainRejectedError{Domain: g.policy.Domain(), Action: "sign in"}
	}

	id, err := g.ids.SignIn(ctx, email, password)
	if err != nil {
		return nil, mapAuthErr(err,
			identity.CodeUserNotFound,
			identity.CodeWrongPassword,
			identity.CodeInvalidEmail,
		)
	}
	return id, nil
}

// Register creates the identity, sets its display name, and writes the
// matching account document. The account write is retried once; if the
// retry also fails the identity is flagged profile_pending and the caller
// gets ErrProfileIncomplete rather than a silently orphaned identity.
func (g *Gateway) Register(ctx context.Context, email, password, displayName string) (*identity.Identity, error) {
	if !g.policy.AllowedEmailDomain(email) {
		return nil, &DomainRejectedError{Domain: g.policy.Domain(), Action: "register"}
	}

	id, err := g.ids.Create(ctx, email, password)
	if err != nil {
		return nil, mapAuthErr(err,
			identity.CodeEmailInUse,
			identity.CodeWeakPassword,
			identity.CodeInvalidEmail,
		)
	}

	if displayName == "" {
		if at := strings.IndexByte(email, '@'); at > 0 {
			displayName = email[:at]
		}
	}
	id, err = g.ids.UpdateProfile(ctx, id.UID, identity.ProfileUpdate{DisplayName: &displayName})
	if err != nil {
		return nil, mapAuthErr(err)
	}

	acct := models.Account{
		UID:              id.UID,
		Email:            id.Email,
		DisplayName:      displayName,
		EmailVerified:    id.EmailVerified,
		RegistrationDate: time.Now().UTC().Format(time.RFC3339),
	}
	if err := g.accounts.Create(ctx, acct); err != nil {
		if err2 := g.accounts.Create(ctx, acct); err2 != nil {
			g.log.Error("registration account write failed after retry",
				zap.String("uid", id.UID), zap.Error(err2))
			if perr := g.ids.MarkProfilePending(ctx, id.UID, true); perr != nil {
				g.log.Error("could not flag identity profile_pending",
					zap.String("uid", id.UID), zap.Error(perr))
			}
			return nil, fmt.Errorf("%w: %v", ErrProfileIncomplete, err2)
		}
	}
	return id, nil
}

// UpdateProfile applies the non-nil fields to the identity and
// merge-updates the matching account document. Either write failing
// yields ErrProfileUpdateFailed; the cause is logged, not shown.
func (g *Gateway) UpdateProfile(ctx context.Context, uid string, upd identity.ProfileUpdate) (*identity.Identity, error) {
	id, err := g.ids.UpdateProfile(ctx, uid, upd)
	if err != nil {
		g.log.Error("identity profile update failed", zap.String("uid", uid), zap.Error(err))
		return nil, ErrProfileUpdateFailed
	}
	if err := g.accounts.UpdateProfile(ctx, uid, upd); err != nil {
		g.log.Error("account profile update failed", zap.String("uid", uid), zap.Error(err))
		return nil, ErrProfileUpdateFailed
	}
	return id, nil
}

// RecordLogin merge-updates the account's last-login stamp. Callers treat
// it as best effort.
func (g *Gateway) RecordLogin(ctx context.Context, uid string) error {
	return g.accounts.TouchLastLogin(ctx, uid)
}

// SignOut ends the provider-side session.
func (g *Gateway) SignOut(ctx context.Context) error {
	if err := g.ids.SignOut(ctx); err != nil {
		g.log.Error("sign-out failed", zap.Error(err))
		return ErrSignOutFailed
	}
	return nil
}

// FetchProfile returns the account document for uid, or (nil, nil) when
// none exists. Absence is a result, never an error.
func (g *Gateway) FetchProfile(ctx context.Context, uid string) (*models.Account, error) {
	return g.accounts.Get(ctx, uid)
}
