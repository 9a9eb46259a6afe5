// Package service implements the transactional core of the booking
// platform: stay pricing, conflict-free room reservation, the booking
// state machine and the derived hotel rating.  Each failure scenario is
// a named sentinel so that handlers can map it to an HTTP status with
// errors.Is.  Validation errors are detected before any mutation; a
// failed operation leaves no partial state behind.
package service

import "errors"

// ErrInvalidDateRange is returned when check-out is not strictly after
// check-in.
var ErrInvalidDateRange = errors.New("invalid date range")

// ErrInvalidOccupancy is returned when a stay has no adults or the
// guest count exceeds the room's maximum occupancy.
var ErrInvalidOccupancy = errors.New("invalid occupancy")

// ErrUnknownBedType is returned when a room carries a bed type outside
// SINGLE, DOUBLE and KING.
var ErrUnknownBedType = errors.New("unknown bed type")

// ErrRoomUnavailable is returned when the requested date range overlaps
// an active booking or the room is under maintenance.  The failed
// request performed no mutation, so the caller may safely retry.
var ErrRoomUnavailable = errors.New("room unavailable")

// ErrInvalidTransition is returned on an illegal booking status change,
// including any transition out of CANCELLED or COMPLETED.
var ErrInvalidTransition = errors.New("invalid booking transition")

// ErrPaymentIncomplete is returned when a booking is confirmed before
// its payment has reached COMPLETED.
var ErrPaymentIncomplete = errors.New("payment not completed")

// ErrInvalidRating is returned when a review rating lies outside [1,5].
var ErrInvalidRating = errors.New("rating must be between 1 and 5")
