// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity of the system. A user holds exactly one
// role; the role decides which part of the API surface they may reach.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Name         string    // The user's full display name (20-60 characters).
	Email        string    // The user's unique email, used as the login identifier.
	PasswordHash string    // The bcrypt hash of the user's password. Never the plaintext.
	Address      string    // Optional postal address (up to 400 characters).
	Role         Role      // The single role assigned to this user.
	OwnedStores  []*Store  // Stores owned by this user. Populated only for store owners.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// IsOwnerOf reports whether the user owns the given store.
func (u *User) IsOwnerOf(store *Store) bool {
	return store != nil && store.OwnerID != nil && *store.OwnerID == u.ID
}
