// Package repository contains data access logic for the booking service.
// This file defines persistence for rooms. A room belongs to a hotel and
// carries the fare, bed type and occupancy limit used when pricing a stay.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// ErrRoomNotFound indicates that a room was not located in the DB.
var ErrRoomNotFound = errors.New("room not found")

const roomColumns = `id, hotel_id, bed_type, base_fare_cents, max_occupancy, status, created_at, updated_at`

// RoomRepo manages persistence for rooms.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories.
func (r *RoomRepo) DB() *sql.DB { return r.db }

func scanRoom(row *sql.Row) (model.Room, error) {
	var rm model.Room
	err := row.Scan(&rm.ID, &rm.HotelID, &rm.BedType, &rm.BaseFareCents,
		&rm.MaxOccupancy, &rm.Status, &rm.CreatedAt, &rm.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Room{}, ErrRoomNotFound
	}
	return rm, err
}

// GetByID fetches a room by id.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (model.Room, error) {
	return scanRoom(r.db.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE id = ?`, id))
}

// GetForUpdateTx fetches a room inside the given transaction and takes a
// row lock on it.  Every reservation for a room locks its row first, so
// concurrent attempts on the same room serialize here regardless of the
// bookings they would touch.
func (r *RoomRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (model.Room, error) {
	return scanRoom(tx.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE id = ? FOR UPDATE`, id))
}

// ListByHotel returns all rooms of a hotel ordered by id.
func (r *RoomRepo) ListByHotel(ctx context.Context, hotelID uint64) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE hotel_id = ? ORDER BY id`, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Room, 0)
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.ID, &rm.HotelID, &rm.BedType, &rm.BaseFareCents,
			&rm.MaxOccupancy, &rm.Status, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

// Create inserts a new room and populates the generated ID and DB
// default fields on the provided struct.
func (r *RoomRepo) Create(ctx context.Context, rm *model.Room) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO rooms (hotel_id, bed_type, base_fare_cents, max_occupancy, status) VALUES (?, ?, ?, ?, ?)`,
		rm.HotelID, rm.BedType, rm.BaseFareCents, rm.MaxOccupancy, rm.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rm.ID = uint64(id)
	got, err := r.GetByID(ctx, rm.ID)
	if err != nil {
		return err
	}
	*rm = got
	return nil
}

// UpdateStatus sets the administrative status flag of a room.  It does
// not touch bookings; a room moved to MAINTENANCE simply stops accepting
// new reservations.
func (r *RoomRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE rooms SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Either the room does not exist or the status is unchanged;
		// distinguish by probing for the row.
		if _, gerr := r.GetByID(ctx, id); gerr != nil {
			return gerr
		}
	}
	return nil
}

// HotelIDTx resolves the owning hotel of a room within a transaction.
// Review writes use it to derive which hotel's rating must be
// recomputed.
func (r *RoomRepo) HotelIDTx(ctx context.Context, tx *sql.Tx, roomID uint64) (uint64, error) {
	var hotelID uint64
	err := tx.QueryRowContext(ctx,
		`SELECT hotel_id FROM rooms WHERE id = ?`, roomID).Scan(&hotelID)
	if err == sql.ErrNoRows {
		return 0, ErrRoomNotFound
	}
	return hotelID, err
}
