package domain

import "time"

// User is a registered account. Email is unique case-insensitively and is
// stored lowercased. PasswordHash holds a bcrypt digest of the password; it
// is never serialized and never leaves the identity layer.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	CreatedAt    time.Time `json:"createdAt"`
}
