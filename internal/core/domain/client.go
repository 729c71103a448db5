package domain

import "time"

// Client is a tenant account: a vendor that authenticates against the API
// and owns a set of end users. Products are shared across all clients.
type Client struct {
	ID           int64     `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Active       bool      `json:"active" bson:"active"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
