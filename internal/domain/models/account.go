// internal/domain/models/account.go
package models

import "time"

// Account is the stored profile document mirroring an authenticated
// identity. It lives in the accounts collection keyed by the identity UID
// and is distinct from the identity record the auth service owns: the
// identity carries the credential, the account carries the club profile.
type Account struct {
	UID           string `bson:"_id" json:"uid"`
	Email         string `bson:"email" json:"email"`
	DisplayName   string `bson:"display_name" json:"display_name"`
	PhotoURL      string `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	EmailVerified bool   `bson:"email_verified" json:"email_verified"`

	// RegistrationDate is the ISO-8601 instant recorded from the caller's
	// clock at registration time. CreatedAt is the store's own stamp.
	RegistrationDate string `bson:"registration_date" json:"registration_date"`

	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	LastLoginAt *time.Time `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`
}
