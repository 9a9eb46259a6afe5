package service

import (
	"testing"
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

func TestStandardRefundPolicy(t *testing.T) {
	p := NewStandardRefundPolicy()
	checkIn := day(20)
	base := model.Booking{CheckIn: checkIn, TotalAmountCents: 10000}

	cases := []struct {
		name   string
		status model.BookingStatus
		at     time.Time
		want   int64
	}{
		{"pending always full", model.BookingPending, checkIn.Add(-time.Hour), 10000},
		{"confirmed a week out", model.BookingConfirmed, day(13), 10000},
		{"confirmed three days out", model.BookingConfirmed, day(17), 5000},
		{"confirmed one day out", model.BookingConfirmed, day(19), 5000},
		{"confirmed same day", model.BookingConfirmed, checkIn.Add(-time.Hour), 0},
		{"confirmed after check-in", model.BookingConfirmed, day(21), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := base
			b.Status = tc.status
			if got := p.RefundCents(b, tc.at); got != tc.want {
				t.Fatalf("RefundCents = %d, want %d", got, tc.want)
			}
		})
	}
}
