// Package models defines the records HouseSell persists and the transient
// values passed between the presentation layer and the services.
package models

import "time"

// User is the stored user record, including credential material.
// It never leaves the session manager; use Public for anything else.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicUser is the identity exposed to the rest of the application and
// persisted as the session pointer.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}
