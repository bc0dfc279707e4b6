package model

import "time"

// User is an entry in the demo user directory kept in local storage.
type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// WithoutPassword returns a copy safe to persist as the current user record.
func (u User) WithoutPassword() User {
	u.PasswordHash = ""
	return u
}
