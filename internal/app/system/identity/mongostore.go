// internal/app/system/identity/mongostore.go
package identity

import (
	"context"
	"net/mail"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/pclub-iiitnr/lenshub/internal/app/system/normalize"
)

// record is the identities collection document. The password hash never
// leaves this package.
type record struct {
	UID            string    `bson:"_id"`
	Email          string    `bson:"email"`
	PasswordHash   []byte    `bson:"password_hash"`
	DisplayName    string    `bson:"display_name,omitempty"`
	PhotoURL       string    `bson:"photo_url,omitempty"`
	EmailVerified  bool      `bson:"email_verified"`
	ProfilePending bool      `bson:"profile_pending,omitempty"`
	CreatedAt      time.Time `bson:"created_at"`
}

func (r *record) identity() *Identity {
	return &Identity{
		UID:           r.UID,
		Email:         r.Email,
		DisplayName:   r.DisplayName,
		PhotoURL:      r.PhotoURL,
		EmailVerified: r.EmailVerified,
	}
}

// Store is the Mongo-backed identity provider.
type Store struct {
	c *mongo.Collection
}

// NewStore returns a Store over the identities collection. A unique index
// on email is created in bootstrap's schema step.
func NewStore(db *mongo.Database) *Store {
	return &Store{c: db.Collection("identities")}
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

// SignIn verifies the email/password pair.
func (s *Store) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	if !validEmail(email) {
		return nil, &Error{Code: CodeInvalidEmail, Message: "invalid email address"}
	}

	var rec record
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, &Error{Code: CodeUserNotFound, Message: "no identity for this email"}
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword(rec.PasswordHash, []byte(password)) != nil {
		return nil, &Error{Code: CodeWrongPassword, Message: "password does not match"}
	}
	return rec.identity(), nil
}

// Create registers a new identity with a fresh UID.
func (s *Store) Create(ctx context.Context, email, password string) (*Identity, error) {
	if !validEmail(email) {
		return nil, &Error{Code: CodeInvalidEmail, Message: "invalid email address"}
	}
	if len(password) < MinPasswordLength {
		return nil, &Error{Code: CodeWeakPassword, Message: "password is too short"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	rec := record{
		UID:          uuid.NewString(),
		Email:        normalize.Email(email),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, rec); err != nil {
		if wafflemongo.IsDup(err) {
			return nil, &Error{Code: CodeEmailInUse, Message: "an identity with this email already exists"}
		}
		return nil, err
	}
	return rec.identity(), nil
}

// SignOut is a no-op for the Mongo provider: there is no provider-side
// session to tear down. Session state lives with the caller.
func (s *Store) SignOut(ctx context.Context) error { return nil }

// UpdateProfile applies the non-nil fields of upd.
func (s *Store) UpdateProfile(ctx context.Context, uid string, upd ProfileUpdate) (*Identity, error) {
	set := bson.M{}
	if upd.DisplayName != nil {
		set["display_name"] = *upd.DisplayName
	}
	if upd.PhotoURL != nil {
		set["photo_url"] = *upd.PhotoURL
	}
	if len(set) > 0 {
		if _, err := s.c.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{"$set": set}); err != nil {
			return nil, err
		}
	}

	var rec record
	err := s.c.FindOne(ctx, bson.M{"_id": uid}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, &Error{Code: CodeUserNotFound, Message: "no identity for this uid"}
	}
	if err != nil {
		return nil, err
	}
	return rec.identity(), nil
}

// MarkProfilePending flags an identity whose registration profile write
// did not complete.
func (s *Store) MarkProfilePending(ctx context.Context, uid string, pending bool) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{"$set": bson.M{"profile_pending": pending}})
	return err
}
