// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is a registered account. PasswordHash is a one-way bcrypt hash and is
// never serialized to clients.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
}
