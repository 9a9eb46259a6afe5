package model

import "time"

// User roles.  CUSTOMER accounts create bookings and reviews; MANAGER
// accounts administer rooms (e.g. putting a room into maintenance).
const (
	RoleCustomer = "CUSTOMER"
	RoleManager  = "MANAGER"
)

// User mirrors the 'users' table.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	FullName     string    // users.full_name
	Role         string    // users.role
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
