// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published after a booking transitions to
// CONFIRMED.  It carries enough context for downstream consumers
// (notifications, analytics) to act without querying the primary
// database.
type BookingConfirmedEvent struct {
	BookingID        uint64 `json:"booking_id"`
	UserID           uint64 `json:"user_id"`
	RoomID           uint64 `json:"room_id"`
	HotelID          uint64 `json:"hotel_id"`
	HotelName        string `json:"hotel_name"`
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	NumAdults        int    `json:"num_adults"`
	NumChildren      int    `json:"num_children"`
	TotalAmountCents int64  `json:"total_amount_cents"`
	ConfirmedAt      string `json:"confirmed_at"`
}
