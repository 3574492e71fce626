// Package domainpolicy decides which email addresses may register or sign
// in, and which signed-in identities carry administrative privileges.
//
// Both checks are pure predicates over configuration supplied at startup:
// the allowed institutional domain and the administrator allow-list come
// from config, not compiled-in constants. The administrator check is a
// convenience for gating UI and routes; it is not a substitute for
// backend-side authorization rules.
package domainpolicy

import "strings"

// Policy holds the club's registration and administration rules.
type Policy struct {
	domain string
	admins map[string]struct{}
}

// New builds a Policy for the given allowed email domain and administrator
// allow-list. Admin addresses are matched case-insensitively.
func New(allowedDomain string, adminEmails []string) Policy {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			admins[e] = struct{}{}
		}
	}
	return Policy{domain: allowedDomain, admins: admins}
}

// Domain returns the configured allowed email domain.
func (p Policy) Domain() string { return p.domain }

// AllowedEmailDomain reports whether email is eligible to register or sign
// in. It fails closed: empty input, a missing @, or anything other than an
// exact, case-sensitive match of the part after the single @ returns false.
func (p Policy) AllowedEmailDomain(email string) bool {
	if email == "" || p.domain == "" {
		return false
	}
	at := strings.IndexByte(email, '@')
	if at < 0 {
		return false
	}
	return email[at+1:] == p.domain
}

// IsAdministrator reports whether the lower-cased email is on the
// administrator allow-list.
func (p Policy) IsAdministrator(email string) bool {
	if email == "" {
		return false
	}
	_, ok := p.admins[strings.ToLower(email)]
	return ok
}
