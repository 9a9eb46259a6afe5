package service

import (
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// RefundPolicy decides how much of a booking's total is refunded when
// it is cancelled.  The actual transfer of money is the payment
// collaborator's business; the core only records the amount.
type RefundPolicy interface {
	RefundCents(b model.Booking, at time.Time) int64
}

// StandardRefundPolicy refunds PENDING bookings in full.  CONFIRMED
// bookings are refunded in full up to FullRefundDays before check-in,
// at half up to HalfRefundDays before, and not at all after that.
type StandardRefundPolicy struct {
	FullRefundDays int
	HalfRefundDays int
}

// NewStandardRefundPolicy returns the default policy: full refund a
// week out, half refund a day out.
func NewStandardRefundPolicy() StandardRefundPolicy {
	return StandardRefundPolicy{FullRefundDays: 7, HalfRefundDays: 1}
}

// RefundCents implements RefundPolicy.
func (p StandardRefundPolicy) RefundCents(b model.Booking, at time.Time) int64 {
	if b.Status == model.BookingPending {
		return b.TotalAmountCents
	}
	daysOut := int(b.CheckIn.Sub(at).Hours() / 24)
	switch {
	case daysOut >= p.FullRefundDays:
		return b.TotalAmountCents
	case daysOut >= p.HalfRefundDays:
		return b.TotalAmountCents / 2
	}
	return 0
}
