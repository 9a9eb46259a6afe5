package service

import (
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// Overlaps reports whether the half-open date ranges [aIn, aOut) and
// [bIn, bOut) intersect.  A checkout on day D does not conflict with a
// check-in on day D.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// findConflict scans a room's active bookings for one whose range
// overlaps [checkIn, checkOut).  It returns the first conflicting
// booking and true, or false when the range is free.
func findConflict(active []model.Booking, checkIn, checkOut time.Time) (model.Booking, bool) {
	for _, b := range active {
		if Overlaps(b.CheckIn, b.CheckOut, checkIn, checkOut) {
			return b, true
		}
	}
	return model.Booking{}, false
}
