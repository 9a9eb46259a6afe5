// Package repository defines error values shared across repositories.
// These sentinels let higher layers such as handlers distinguish
// failure scenarios without string matching. ErrForbidden indicates
// that the current user is acting on a resource owned by someone
// else, while ErrConflict signals that an operation cannot proceed
// because of dependent state (e.g. deleting a room that still has
// active bookings).
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own. Handlers translate this into HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an update or delete cannot be performed
// because of conflicting state. Handlers translate this into HTTP 409.
var ErrConflict = errors.New("conflict")
