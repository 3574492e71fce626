// internal/app/gateway/authgw/errors.go
package authgw

import (
	"errors"
	"fmt"

	"github.com/pclub-iiitnr/lenshub/internal/app/system/identity"
)

var (
	// ErrNotAuthenticated is returned by operations that require a
	// signed-in identity when none is current. Checked before any store
	// call.
	ErrNotAuthenticated = errors.New("no identity is signed in")

	// ErrSignOutFailed is returned when the provider refuses to end the
	// session.
	ErrSignOutFailed = errors.New("failed to sign out")

	// ErrProfileIncomplete is returned when the identity was created but
	// the account document could not be written even after a retry. The
	// identity is flagged profile_pending for deferred completion.
	ErrProfileIncomplete = errors.New("account created but profile setup is incomplete")

	// ErrProfileUpdateFailed is the generic profile-update failure; the
	// underlying cause is logged, not shown.
	ErrProfileUpdateFailed = errors.New("failed to update profile")
)

// DomainRejectedError rejects a sign-in or registration attempt from
// outside the allowed email domain. It is raised before any remote call.
type DomainRejectedError struct {
	Domain string
	Action string // "sign in" or "register"
}

func (e *DomainRejectedError) Error() string {
	return fmt.Sprintf("only @%s emails can %s", e.Domain, e.Action)
}

// AuthError is an identity-provider failure surfaced to the caller.
// Mapped reports whether Message is one of the gateway's fixed
// translations; when false, Message is the provider's own text passed
// through verbatim.
type AuthError struct {
	Code    identity.Code
	Message string
	Mapped  bool
}

func (e *AuthError) Error() string { return e.Message }

var authMessages = map[identity.Code]string{
	identity.CodeUserNotFound:  "No account found with this email. Please register first.",
	identity.CodeWrongPassword: "Incorrect password. Please try again.",
	identity.CodeInvalidEmail:  "Invalid email format.",
	identity.CodeEmailInUse:    "An account with this email already exists. Please sign in.",
	identity.CodeWeakPassword:  "Password is too weak. Use at least 6 characters.",
}

// mapAuthErr translates a provider failure. Codes in the known set get
// their fixed message; everything else passes through with the provider's
// text.
func mapAuthErr(err error, known ...identity.Code) error {
	code := identity.CodeOf(err)
	for _, k := range known {
		if code == k {
			return &AuthError{Code: code, Message: authMessages[code], Mapped: true}
		}
	}
	return &AuthError{Code: code, Message: err.Error(), Mapped: false}
}
