package model

import "time"

// BedType categorises a room by its bed configuration.  The bed type
// determines how many guests are covered by the base fare before an
// additional occupancy charge applies.
type BedType string

// Supported bed types.
const (
	BedSingle BedType = "SINGLE"
	BedDouble BedType = "DOUBLE"
	BedKing   BedType = "KING"
)

// Threshold returns the number of guests included in the base fare for
// this bed type.  The second return value is false for unknown types.
func (b BedType) Threshold() (int, bool) {
	switch b {
	case BedSingle:
		return 1, true
	case BedDouble:
		return 2, true
	case BedKing:
		return 4, true
	}
	return 0, false
}

// Room status values.  Status is a coarse administrative flag owned by
// the catalog side; whether a room is actually free for a date range is
// derived from its bookings, not from this field.  MAINTENANCE takes a
// room out of service entirely and blocks new reservations.
const (
	RoomAvailable   = "AVAILABLE"
	RoomBooked      = "BOOKED"
	RoomMaintenance = "MAINTENANCE"
)

// Room represents a bookable hotel room.
//
// Fields:
//  ID            – primary key identifier.
//  HotelID       – hotel the room belongs to.
//  BedType       – bed configuration (SINGLE, DOUBLE, KING).
//  BaseFareCents – nightly base fare in cents; always positive.
//  MaxOccupancy  – maximum number of guests allowed in the room.
//  Status        – administrative state (AVAILABLE, BOOKED, MAINTENANCE).
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type Room struct {
	ID            uint64    // rooms.id
	HotelID       uint64    // rooms.hotel_id
	BedType       BedType   // rooms.bed_type
	BaseFareCents int64     // rooms.base_fare_cents
	MaxOccupancy  int       // rooms.max_occupancy
	Status        string    // rooms.status
	CreatedAt     time.Time // rooms.created_at
	UpdatedAt     time.Time // rooms.updated_at
}
