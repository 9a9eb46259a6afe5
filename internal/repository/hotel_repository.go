package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// ErrHotelNotFound indicates that a hotel was not located in the DB.
var ErrHotelNotFound = errors.New("hotel not found")

// HotelRepo manages persistence for hotels.  The rating column is
// derived state: it is only ever written through UpdateRatingTx, inside
// the same transaction as the review mutation that invalidated it.
type HotelRepo struct {
	db *sql.DB
}

// NewHotelRepo returns a new HotelRepo bound to the given database.
func NewHotelRepo(db *sql.DB) *HotelRepo { return &HotelRepo{db: db} }

// DB exposes the underlying sql.DB for transaction control.
func (r *HotelRepo) DB() *sql.DB { return r.db }

// HotelDetail is a hotel joined with its location for public listings.
type HotelDetail struct {
	ID         uint64   `json:"id"`
	Name       string   `json:"name"`
	City       string   `json:"city"`
	Country    string   `json:"country"`
	HasWifi    bool     `json:"has_wifi"`
	HasPool    bool     `json:"has_pool"`
	HasParking bool     `json:"has_parking"`
	Rating     *float64 `json:"rating"`
}

// GetByID fetches a hotel by id.
func (r *HotelRepo) GetByID(ctx context.Context, id uint64) (model.Hotel, error) {
	var h model.Hotel
	var rating sql.NullFloat64
	err := r.db.QueryRowContext(ctx,
		`SELECT id, location_id, name, has_wifi, has_pool, has_parking, rating, created_at, updated_at
		 FROM hotels WHERE id = ?`, id).Scan(
		&h.ID, &h.LocationID, &h.Name, &h.HasWifi, &h.HasPool, &h.HasParking,
		&rating, &h.CreatedAt, &h.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Hotel{}, ErrHotelNotFound
	}
	if err != nil {
		return model.Hotel{}, err
	}
	if rating.Valid {
		v := rating.Float64
		h.Rating = &v
	}
	return h, nil
}

// ListAll returns all hotels joined with their locations, ordered by id.
func (r *HotelRepo) ListAll(ctx context.Context) ([]HotelDetail, error) {
	const q = `SELECT h.id, h.name, l.city, l.country,
	                  h.has_wifi, h.has_pool, h.has_parking, h.rating
	           FROM hotels h
	           JOIN locations l ON l.id = h.location_id
	           ORDER BY h.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]HotelDetail, 0)
	for rows.Next() {
		var d HotelDetail
		var rating sql.NullFloat64
		if err := rows.Scan(&d.ID, &d.Name, &d.City, &d.Country,
			&d.HasWifi, &d.HasPool, &d.HasParking, &rating); err != nil {
			return nil, err
		}
		if rating.Valid {
			v := rating.Float64
			d.Rating = &v
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ExistsTx reports whether a hotel row exists, within a transaction.
func (r *HotelRepo) ExistsTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	var got uint64
	err := tx.QueryRowContext(ctx, `SELECT id FROM hotels WHERE id = ?`, id).Scan(&got)
	if err == sql.ErrNoRows {
		return ErrHotelNotFound
	}
	return err
}

// UpdateRatingTx writes the derived rating of a hotel inside the given
// transaction.  Pass nil to clear the rating when the last review of
// the hotel has been deleted.  The UPDATE takes the hotel row lock, so
// concurrent review writers to the same hotel serialize here.
func (r *HotelRepo) UpdateRatingTx(ctx context.Context, tx *sql.Tx, hotelID uint64, rating *float64) error {
	var val interface{}
	if rating != nil {
		val = *rating
	}
	res, err := tx.ExecContext(ctx,
		`UPDATE hotels SET rating = ? WHERE id = ?`, val, hotelID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Unchanged rating also reports zero rows; verify existence.
		return r.ExistsTx(ctx, tx, hotelID)
	}
	return nil
}
