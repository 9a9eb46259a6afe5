package model

import "time"

// Hotel represents a property offering rooms for booking.  Rating is a
// derived value: the arithmetic mean of all review ratings across the
// hotel's rooms, or nil while the hotel has no reviews.  Only the rating
// aggregation code writes it; every other component treats it as
// read-only.
//
// Fields:
//  ID         – primary key identifier.
//  LocationID – reference to the hotel's location.
//  Name       – display name.
//  HasWifi    – amenity flag.
//  HasPool    – amenity flag.
//  HasParking – amenity flag.
//  Rating     – derived mean review rating (nullable).
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Hotel struct {
	ID         uint64    // hotels.id
	LocationID uint64    // hotels.location_id
	Name       string    // hotels.name
	HasWifi    bool      // hotels.has_wifi
	HasPool    bool      // hotels.has_pool
	HasParking bool      // hotels.has_parking
	Rating     *float64  // hotels.rating (nullable, derived)
	CreatedAt  time.Time // hotels.created_at
	UpdatedAt  time.Time // hotels.updated_at
}

// Location is a city/country pair referenced by hotels.
type Location struct {
	ID      uint64 // locations.id
	City    string // locations.city
	Country string // locations.country
}
