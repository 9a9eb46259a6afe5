package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// ErrBookingNotFound indicates that a booking was not located in the DB.
var ErrBookingNotFound = errors.New("booking not found")

const bookingColumns = `id, user_id, room_id, check_in, check_out, num_adults, num_children, total_amount_cents, status, created_at, updated_at`

// BookingRepo provides CRUD operations for bookings.  A booking reserves
// a room for a half-open date range [check_in, check_out).  Availability
// is always derived from the set of PENDING and CONFIRMED bookings of a
// room; cancelled and completed rows never block a range.  All dates are
// stored as DATE columns and read back as UTC midnights (parseTime DSN).
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying sql.DB for transaction control.
func (r *BookingRepo) DB() *sql.DB { return r.db }

func scanBooking(scan func(dest ...interface{}) error) (model.Booking, error) {
	var b model.Booking
	err := scan(&b.ID, &b.UserID, &b.RoomID, &b.CheckIn, &b.CheckOut,
		&b.NumAdults, &b.NumChildren, &b.TotalAmountCents, &b.Status,
		&b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Booking{}, ErrBookingNotFound
	}
	return b, err
}

// CreateTx inserts a new booking within the scope of an existing
// transaction and populates the generated ID and DB default fields on
// the provided struct.  The caller must commit or roll back the
// transaction; nothing is visible to other sessions until commit.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	const q = `INSERT INTO bookings
	           (user_id, room_id, check_in, check_out, num_adults, num_children, total_amount_cents, status)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		b.UserID, b.RoomID, dateOnly(b.CheckIn), dateOnly(b.CheckOut),
		b.NumAdults, b.NumChildren, b.TotalAmountCents, b.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	got, err := scanBooking(tx.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, b.ID).Scan)
	if err != nil {
		return err
	}
	*b = got
	return nil
}

// GetByID fetches a booking by id.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	return scanBooking(r.db.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id).Scan)
}

// GetForUpdateTx fetches a booking inside the given transaction and
// takes a row lock, so concurrent state transitions on the same booking
// serialize.
func (r *BookingRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (model.Booking, error) {
	return scanBooking(tx.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ? FOR UPDATE`, id).Scan)
}

// ListActiveForRoomTx returns all PENDING and CONFIRMED bookings of a
// room.  CANCELLED and COMPLETED rows are excluded: availability is
// derived from status alone, never from a separate free/busy table.
// Must run inside the transaction that holds the room row lock; the
// caller scans the result for date-range conflicts before inserting a
// new reservation.
func (r *BookingRepo) ListActiveForRoomTx(ctx context.Context, tx *sql.Tx, roomID uint64) ([]model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings
	           WHERE room_id = ? AND status IN ('PENDING','CONFIRMED')`
	rows, err := tx.QueryContext(ctx, q, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateStatusTx changes a booking's status within a transaction.  The
// caller is responsible for having validated the transition.
func (r *BookingRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status model.BookingStatus) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE bookings SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// BookingDetail is a booking joined with its room and hotel for display
// to customers.
type BookingDetail struct {
	ID               uint64 `json:"id"`
	RoomID           uint64 `json:"room_id"`
	HotelID          uint64 `json:"hotel_id"`
	HotelName        string `json:"hotel_name"`
	BedType          string `json:"bed_type"`
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	NumAdults        int    `json:"num_adults"`
	NumChildren      int    `json:"num_children"`
	TotalAmountCents int64  `json:"total_amount_cents"`
	Status           string `json:"status"`
}

// ListByUser returns the user's bookings newest first, joined with room
// and hotel information.  When no bookings exist an empty slice is
// returned.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	const q = `SELECT b.id, b.room_id, h.id, h.name, rm.bed_type,
	                  b.check_in, b.check_out, b.num_adults, b.num_children,
	                  b.total_amount_cents, b.status
	           FROM bookings b
	           JOIN rooms rm ON rm.id = b.room_id
	           JOIN hotels h ON h.id = rm.hotel_id
	           WHERE b.user_id = ?
	           ORDER BY b.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]BookingDetail, 0)
	for rows.Next() {
		var d BookingDetail
		var checkIn, checkOut time.Time
		if err := rows.Scan(&d.ID, &d.RoomID, &d.HotelID, &d.HotelName, &d.BedType,
			&checkIn, &checkOut, &d.NumAdults, &d.NumChildren,
			&d.TotalAmountCents, &d.Status); err != nil {
			return nil, err
		}
		d.CheckIn = checkIn.UTC().Format("2006-01-02")
		d.CheckOut = checkOut.UTC().Format("2006-01-02")
		details = append(details, d)
	}
	return details, rows.Err()
}

// dateOnly formats a time as the DATE literal used by the bookings
// table, discarding any time-of-day component.
func dateOnly(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
