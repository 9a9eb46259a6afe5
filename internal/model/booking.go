package model

import "time"

// BookingStatus enumerates the lifecycle states of a booking.
type BookingStatus string

// Booking lifecycle states.  A booking starts PENDING when the room is
// reserved, becomes CONFIRMED once payment completes, and ends in one of
// the terminal states CANCELLED or COMPLETED.
const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// CanTransitionTo reports whether a booking in status s may move to
// status t.  CANCELLED and COMPLETED are terminal: no transition leaves
// them.  Self-transitions are not permitted.
func (s BookingStatus) CanTransitionTo(t BookingStatus) bool {
	switch s {
	case BookingPending:
		return t == BookingConfirmed || t == BookingCancelled
	case BookingConfirmed:
		return t == BookingCancelled || t == BookingCompleted
	}
	return false
}

// Terminal reports whether no further transition is permitted from s.
func (s BookingStatus) Terminal() bool {
	return s == BookingCancelled || s == BookingCompleted
}

// Booking records a user's reservation of a room for a date range.
// CheckIn and CheckOut are calendar dates interpreted as a half-open
// interval [CheckIn, CheckOut): a checkout on day D never conflicts with
// a check-in on day D.
//
// Fields:
//  ID               – primary key identifier.
//  UserID           – user who made the booking.
//  RoomID           – room being booked.
//  CheckIn          – arrival date (UTC midnight).
//  CheckOut         – departure date (UTC midnight); strictly after CheckIn.
//  NumAdults        – number of adults; at least one.
//  NumChildren      – number of children; zero or more.
//  TotalAmountCents – price for the stay computed at creation time.
//  Status           – lifecycle state.
//  CreatedAt        – creation timestamp.
//  UpdatedAt        – last update timestamp.
type Booking struct {
	ID               uint64        // bookings.id
	UserID           uint64        // bookings.user_id
	RoomID           uint64        // bookings.room_id
	CheckIn          time.Time     // bookings.check_in
	CheckOut         time.Time     // bookings.check_out
	NumAdults        int           // bookings.num_adults
	NumChildren      int           // bookings.num_children
	TotalAmountCents int64         // bookings.total_amount_cents
	Status           BookingStatus // bookings.status
	CreatedAt        time.Time     // bookings.created_at
	UpdatedAt        time.Time     // bookings.updated_at
}
