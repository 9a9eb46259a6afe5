package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// CancellationRepo persists cancellation records.  A cancellation is
// written in the same transaction that moves its booking to CANCELLED.
type CancellationRepo struct{ db *sql.DB }

// NewCancellationRepo returns a new CancellationRepo bound to the given database.
func NewCancellationRepo(db *sql.DB) *CancellationRepo { return &CancellationRepo{db: db} }

// CreateTx inserts a cancellation within the given transaction.
func (r *CancellationRepo) CreateTx(ctx context.Context, tx *sql.Tx, c *model.Cancellation) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO cancellations (booking_id, refund_amount_cents, reason) VALUES (?, ?, ?)`,
		c.BookingID, c.RefundAmountCents, c.Reason)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return tx.QueryRowContext(ctx,
		`SELECT created_at FROM cancellations WHERE id = ?`, c.ID).Scan(&c.CreatedAt)
}

// GetByBooking fetches the cancellation record of a booking, if any.
func (r *CancellationRepo) GetByBooking(ctx context.Context, bookingID uint64) (model.Cancellation, error) {
	var c model.Cancellation
	err := r.db.QueryRowContext(ctx,
		`SELECT id, booking_id, refund_amount_cents, reason, created_at FROM cancellations WHERE booking_id = ? LIMIT 1`,
		bookingID).Scan(&c.ID, &c.BookingID, &c.RefundAmountCents, &c.Reason, &c.CreatedAt)
	return c, err
}
