// internal/app/store/accounts/accountstore.go
package accountstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pclub-iiitnr/lenshub/internal/app/system/identity"
	"github.com/pclub-iiitnr/lenshub/internal/domain/models"
)

// Store provides access to the accounts collection. Documents are keyed
// by the identity UID so an account and its identity always pair up.
type Store struct {
	c *mongo.Collection
}

// New creates an account store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("accounts")}
}

// Create writes the account document, stamping CreatedAt. It replaces
// with upsert so the registration retry cannot duplicate an account.
func (s *Store) Create(ctx context.Context, acct models.Account) error {
	acct.CreatedAt = time.Now().UTC()
	opts := options.Replace().SetUpsert(true)
	_, err := s.c.ReplaceOne(ctx, bson.M{"_id": acct.UID}, acct, opts)
	return err
}

// Get loads an account by UID. Returns (nil, nil) when absent.
func (s *Store) Get(ctx context.Context, uid string) (*models.Account, error) {
	var acct models.Account
	err := s.c.FindOne(ctx, bson.M{"_id": uid}).Decode(&acct)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &acct, nil
}

// List returns all accounts, newest first. Admin dashboard only.
func (s *Store) List(ctx context.Context) ([]models.Account, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Account{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProfile merge-updates the non-nil profile fields plus an
// UpdatedAt stamp. Unspecified fields are left untouched.
func (s *Store) UpdateProfile(ctx context.Context, uid string, upd identity.ProfileUpdate) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.DisplayName != nil {
		set["display_name"] = *upd.DisplayName
	}
	if upd.PhotoURL != nil {
		set["photo_url"] = *upd.PhotoURL
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{"$set": set})
	return err
}

// TouchLastLogin merge-updates the last-login stamp.
func (s *Store) TouchLastLogin(ctx context.Context, uid string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": uid},
		bson.M{"$set": bson.M{"last_login_at": time.Now().UTC()}})
	return err
}
