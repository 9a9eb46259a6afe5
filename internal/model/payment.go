package model

import "time"

// Payment status values.  The payment gateway itself lives outside this
// service; only the status transition is consumed here.  A booking may
// be confirmed once its payment reaches COMPLETED.
const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
)

// Payment is a status-bearing record correlated with a booking.
type Payment struct {
	ID          uint64    // payments.id
	BookingID   uint64    // payments.booking_id
	AmountCents int64     // payments.amount_cents
	Method      string    // payments.method (e.g. CARD, CASH)
	PaymentRef  string    // payments.payment_ref (external correlation id)
	Status      string    // payments.status
	CreatedAt   time.Time // payments.created_at
	UpdatedAt   time.Time // payments.updated_at
}

// Cancellation records the terminal cancellation of a booking together
// with the refund amount decided by the refund policy in force.
type Cancellation struct {
	ID                uint64    // cancellations.id
	BookingID         uint64    // cancellations.booking_id
	RefundAmountCents int64     // cancellations.refund_amount_cents
	Reason            string    // cancellations.reason
	CreatedAt         time.Time // cancellations.created_at
}
