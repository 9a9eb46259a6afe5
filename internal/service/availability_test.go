package service

import (
	"testing"
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

func day(d int) time.Time {
	return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                 string
		aIn, aOut, bIn, bOut time.Time
		want                 bool
	}{
		{"disjoint before", day(1), day(3), day(5), day(8), false},
		{"disjoint after", day(5), day(8), day(1), day(3), false},
		{"adjacent checkout equals checkin", day(1), day(5), day(5), day(8), false},
		{"adjacent other side", day(5), day(8), day(1), day(5), false},
		{"partial overlap", day(1), day(5), day(4), day(8), true},
		{"containment", day(1), day(10), day(3), day(5), true},
		{"contained by", day(3), day(5), day(1), day(10), true},
		{"identical ranges", day(2), day(6), day(2), day(6), true},
		{"single night shared", day(1), day(3), day(2), day(3), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.aIn, tc.aOut, tc.bIn, tc.bOut); got != tc.want {
				t.Fatalf("Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFindConflict(t *testing.T) {
	active := []model.Booking{
		{ID: 1, CheckIn: day(1), CheckOut: day(4)},
		{ID: 2, CheckIn: day(10), CheckOut: day(12)},
	}

	if b, conflict := findConflict(active, day(4), day(10)); conflict {
		t.Fatalf("gap between bookings reported conflict with booking %d", b.ID)
	}
	b, conflict := findConflict(active, day(11), day(15))
	if !conflict {
		t.Fatal("overlapping range reported free")
	}
	if b.ID != 2 {
		t.Fatalf("conflicting booking = %d, want 2", b.ID)
	}
	if _, conflict := findConflict(nil, day(1), day(2)); conflict {
		t.Fatal("empty booking list reported conflict")
	}
}
