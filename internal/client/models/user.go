// Package models defines the entities the client caches on behalf of the
// maintenance backend. The server is authoritative; every struct here is a
// snapshot of what the server last returned.
package models

import "time"

// Role distinguishes administrators from regular engineers. Admin-only
// operations (user verification, deletion) are enforced server-side; the
// client only uses the role to decide what to show.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEngineer Role = "ENGINEER"
)

// User is an account as returned by /auth/me and the user-management
// endpoints.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (u User) EntityID() string { return u.ID }
