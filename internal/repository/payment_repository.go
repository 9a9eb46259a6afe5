package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// ErrPaymentNotFound indicates that a payment was not located in the DB.
var ErrPaymentNotFound = errors.New("payment not found")

const paymentColumns = `id, booking_id, amount_cents, method, payment_ref, status, created_at, updated_at`

// PaymentRepo persists payment records.  Payments are owned by the
// payment gateway integration; this service only records them and reads
// their status to gate booking confirmation.
type PaymentRepo struct{ db *sql.DB }

// NewPaymentRepo returns a new PaymentRepo bound to the given database.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

func scanPayment(scan func(dest ...interface{}) error) (model.Payment, error) {
	var p model.Payment
	err := scan(&p.ID, &p.BookingID, &p.AmountCents, &p.Method, &p.PaymentRef,
		&p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Payment{}, ErrPaymentNotFound
	}
	return p, err
}

// Create inserts a payment row and populates generated fields.
func (r *PaymentRepo) Create(ctx context.Context, p *model.Payment) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO payments (booking_id, amount_cents, method, payment_ref, status) VALUES (?, ?, ?, ?, ?)`,
		p.BookingID, p.AmountCents, p.Method, p.PaymentRef, p.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	got, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = got
	return nil
}

// GetByID fetches a payment by id.
func (r *PaymentRepo) GetByID(ctx context.Context, id uint64) (model.Payment, error) {
	return scanPayment(r.db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = ?`, id).Scan)
}

// UpdateStatus applies a status reported by the payment gateway.
func (r *PaymentRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE payments SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, gerr := r.GetByID(ctx, id); gerr != nil {
			return gerr
		}
	}
	return nil
}

// LatestByBookingTx returns the most recent payment of a booking within
// a transaction.  Confirmation reads it to check for COMPLETED status.
func (r *PaymentRepo) LatestByBookingTx(ctx context.Context, tx *sql.Tx, bookingID uint64) (model.Payment, error) {
	return scanPayment(tx.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE booking_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		bookingID).Scan)
}
