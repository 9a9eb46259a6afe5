package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// ErrReviewNotFound indicates that a review was not located in the DB.
var ErrReviewNotFound = errors.New("review not found")

const reviewColumns = `id, user_id, room_id, rating, comment, created_at, updated_at`

// ReviewRepo provides CRUD operations for reviews.  Every mutating
// method takes a transaction: review writes never commit on their own
// because the owning hotel's derived rating must be recomputed in the
// same atomic unit.  The service layer owns that pairing.
type ReviewRepo struct {
	db *sql.DB
}

// NewReviewRepo returns a new ReviewRepo bound to the given database.
func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// DB exposes the underlying sql.DB for transaction control.
func (r *ReviewRepo) DB() *sql.DB { return r.db }

func scanReview(scan func(dest ...interface{}) error) (model.Review, error) {
	var rv model.Review
	var comment sql.NullString
	err := scan(&rv.ID, &rv.UserID, &rv.RoomID, &rv.Rating, &comment,
		&rv.CreatedAt, &rv.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Review{}, ErrReviewNotFound
	}
	if err != nil {
		return model.Review{}, err
	}
	if comment.Valid {
		c := comment.String
		rv.Comment = &c
	}
	return rv, nil
}

// CreateTx inserts a review within the given transaction and populates
// the generated ID and DB default fields on the provided struct.
func (r *ReviewRepo) CreateTx(ctx context.Context, tx *sql.Tx, rv *model.Review) error {
	var comment interface{}
	if rv.Comment != nil {
		comment = *rv.Comment
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO reviews (user_id, room_id, rating, comment) VALUES (?, ?, ?, ?)`,
		rv.UserID, rv.RoomID, rv.Rating, comment)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rv.ID = uint64(id)
	got, err := scanReview(tx.QueryRowContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = ?`, rv.ID).Scan)
	if err != nil {
		return err
	}
	*rv = got
	return nil
}

// GetForUpdateTx fetches a review inside the given transaction with a
// row lock.  Used to capture the pre-image of an update or delete.
func (r *ReviewRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (model.Review, error) {
	return scanReview(tx.QueryRowContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = ? FOR UPDATE`, id).Scan)
}

// UpdateTx rewrites a review's rating, comment and room reference
// within the given transaction.
func (r *ReviewRepo) UpdateTx(ctx context.Context, tx *sql.Tx, rv *model.Review) error {
	var comment interface{}
	if rv.Comment != nil {
		comment = *rv.Comment
	}
	_, err := tx.ExecContext(ctx,
		`UPDATE reviews SET room_id = ?, rating = ?, comment = ? WHERE id = ?`,
		rv.RoomID, rv.Rating, comment, rv.ID)
	return err
}

// DeleteTx removes a review within the given transaction.
func (r *ReviewRepo) DeleteTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	res, err := tx.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// ListRatingsByHotelTx returns the rating values of every review across
// a hotel's rooms, inside the given transaction.  The rating aggregator
// reads this set to rebuild the hotel's derived mean.
func (r *ReviewRepo) ListRatingsByHotelTx(ctx context.Context, tx *sql.Tx, hotelID uint64) ([]int, error) {
	const q = `SELECT rv.rating
	           FROM reviews rv
	           JOIN rooms rm ON rm.id = rv.room_id
	           WHERE rm.hotel_id = ?`
	rows, err := tx.QueryContext(ctx, q, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]int, 0)
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			return nil, err
		}
		out = append(out, rating)
	}
	return out, rows.Err()
}

// ListByRoom returns a room's reviews newest first.
func (r *ReviewRepo) ListByRoom(ctx context.Context, roomID uint64) ([]model.Review, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE room_id = ? ORDER BY created_at DESC`, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
