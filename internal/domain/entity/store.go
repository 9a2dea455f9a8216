// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store is a registered store that users can rate. A store may exist before
// an owner is linked, so the owner reference is optional.
type Store struct {
	ID        uuid.UUID  // The unique identifier for the store.
	Name      string     // The store's unique display name.
	Email     string     // The store's unique contact email.
	Address   string     // The store's physical address.
	OwnerID   *uuid.UUID // Optional reference to the owning user (role store_owner).
	Owner     *User      // The owning user, when loaded.
	Ratings   []*Rating  // Ratings received by this store, when loaded.
	CreatedAt time.Time  // Timestamp of when this store was registered.
	UpdatedAt time.Time  // Timestamp of the last modification.
}

// OverallRating returns the formatted average of the store's loaded ratings.
func (s *Store) OverallRating() string {
	values := make([]int, 0, len(s.Ratings))
	for _, r := range s.Ratings {
		values = append(values, r.Value)
	}

	return AverageRating(values)
}

// RatingBy returns the rating submitted by the given user, or nil if the
// user has not rated this store. Ratings must be loaded.
func (s *Store) RatingBy(userID uuid.UUID) *Rating {
	for _, r := range s.Ratings {
		if r.UserID == userID {
			return r
		}
	}

	return nil
}
