package domain

import (
	"strings"
	"time"
)

// User is an end user owned by exactly one client. The (email, client) pair
// is unique: the same address may recur under different clients, never twice
// within one. Users are hard-deleted; no tombstones are kept.
type User struct {
	ID        int64     `json:"id" bson:"_id"`
	FirstName string    `json:"first_name" bson:"first_name"`
	LastName  string    `json:"last_name" bson:"last_name"`
	Email     string    `json:"email" bson:"email"`
	ClientID  int64     `json:"client_id" bson:"client_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// NewUser builds a user ready to persist: the email is lowercased and
// trimmed, created_at is stamped now. The id is assigned by the store.
func NewUser(firstName, lastName, email string, clientID int64) *User {
	return &User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     NormalizeEmail(email),
		ClientID:  clientID,
		CreatedAt: time.Now().UTC(),
	}
}

// NormalizeEmail applies the canonical on-write transformation for user
// email addresses.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FullName joins first and last name with a single space.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
