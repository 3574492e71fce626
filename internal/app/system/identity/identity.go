// Package identity models the identity provider that owns credentials for
// the club site: creating email/password identities, verifying sign-ins,
// and updating the small profile (display name, photo) attached to an
// identity.
//
// The provider is deliberately separate from the accounts collection. An
// Identity is the authentication principal; the Account document the rest
// of the app reads is written by the auth gateway after the identity
// exists. Failures are reported as *Error values carrying a stable Code so
// callers can map known failures to user-facing messages and pass unknown
// ones through verbatim.
package identity

import (
	"context"
	"errors"
)

// Code identifies a structured identity-provider failure.
type Code string

const (
	CodeUserNotFound  Code = "user-not-found"
	CodeWrongPassword Code = "wrong-password"
	CodeInvalidEmail  Code = "invalid-email"
	CodeEmailInUse    Code = "email-already-in-use"
	CodeWeakPassword  Code = "weak-password"
	CodeInternal      Code = "internal"
)

// MinPasswordLength is the provider's password policy floor. Anything
// shorter fails with CodeWeakPassword.
const MinPasswordLength = 6

// Identity is an authentication principal held by the provider.
type Identity struct {
	UID           string
	Email         string
	DisplayName   string
	PhotoURL      string
	EmailVerified bool
}

// Error is a structured identity-provider failure.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

// CodeOf extracts the provider code from err, or CodeInternal when err is
// not a provider error.
func CodeOf(err error) Code {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return CodeInternal
}

// ProfileUpdate carries the optional identity profile fields. Nil fields
// are left untouched.
type ProfileUpdate struct {
	DisplayName *string
	PhotoURL    *string
}

// Service is the operation set the auth gateway delegates to.
type Service interface {
	// SignIn verifies the credential and returns the identity.
	SignIn(ctx context.Context, email, password string) (*Identity, error)

	// Create registers a new identity with a fresh UID.
	Create(ctx context.Context, email, password string) (*Identity, error)

	// SignOut ends the provider-side session, if any.
	SignOut(ctx context.Context) error

	// UpdateProfile applies the non-nil fields of upd to the identity.
	UpdateProfile(ctx context.Context, uid string, upd ProfileUpdate) (*Identity, error)

	// MarkProfilePending flags an identity whose account document was not
	// written during registration, so a later pass can complete it.
	MarkProfilePending(ctx context.Context, uid string, pending bool) error
}
