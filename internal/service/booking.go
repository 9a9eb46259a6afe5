package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
	"github.com/iliyamo/hotel-room-booking/internal/utils"
)

// BookingService drives the booking lifecycle.  Creation reserves a
// room atomically: the room row is locked, the active bookings are
// checked for date overlap and the new PENDING row is inserted, all in
// one transaction, so two concurrent requests for overlapping ranges on
// the same room can never both succeed.  An in-process per-room mutex
// fronts the transaction so contending requests queue before touching
// the database.  Status transitions each run in their own short
// transaction under a booking row lock and are idempotent to retry:
// a failed call performs no mutation.
type BookingService struct {
	db            *sql.DB
	rooms         *repository.RoomRepo
	bookings      *repository.BookingRepo
	payments      *repository.PaymentRepo
	cancellations *repository.CancellationRepo
	refund        RefundPolicy
	roomLocks     *utils.KeyedLock
}

// NewBookingService constructs a BookingService.  All repositories and
// the refund policy must be non-nil.
func NewBookingService(db *sql.DB, rooms *repository.RoomRepo, bookings *repository.BookingRepo,
	payments *repository.PaymentRepo, cancellations *repository.CancellationRepo, refund RefundPolicy) *BookingService {
	if db == nil || rooms == nil || bookings == nil || payments == nil || cancellations == nil || refund == nil {
		panic("nil dependency passed to NewBookingService")
	}
	return &BookingService{
		db:            db,
		rooms:         rooms,
		bookings:      bookings,
		payments:      payments,
		cancellations: cancellations,
		refund:        refund,
		roomLocks:     utils.NewKeyedLock(),
	}
}

// CreateBooking validates the request, reserves the room for
// [checkIn, checkOut) and prices the stay from the room's base fare and
// bed type.  The returned booking is PENDING.  On any failure the
// transaction rolls back and nothing is persisted, so the caller may
// retry freely.  Rooms under MAINTENANCE reject reservations outright.
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID uint64,
	checkIn, checkOut time.Time, numAdults, numChildren int) (model.Booking, error) {
	if !checkOut.After(checkIn) {
		return model.Booking{}, ErrInvalidDateRange
	}
	if numAdults < 1 || numChildren < 0 {
		return model.Booking{}, ErrInvalidOccupancy
	}

	unlock := s.roomLocks.Lock(roomID)
	defer unlock()

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return model.Booking{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	room, err := s.rooms.GetForUpdateTx(ctx, tx, roomID)
	if err != nil {
		return model.Booking{}, err
	}
	if room.Status == model.RoomMaintenance {
		return model.Booking{}, ErrRoomUnavailable
	}
	if numAdults+numChildren > room.MaxOccupancy {
		return model.Booking{}, ErrInvalidOccupancy
	}

	active, err := s.bookings.ListActiveForRoomTx(ctx, tx, roomID)
	if err != nil {
		return model.Booking{}, err
	}
	if _, conflict := findConflict(active, checkIn, checkOut); conflict {
		return model.Booking{}, ErrRoomUnavailable
	}

	total, err := ComputePriceCents(room.BaseFareCents, room.BedType, numAdults, numChildren)
	if err != nil {
		return model.Booking{}, err
	}

	b := model.Booking{
		UserID:           userID,
		RoomID:           roomID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		NumAdults:        numAdults,
		NumChildren:      numChildren,
		TotalAmountCents: total,
		Status:           model.BookingPending,
	}
	if err := s.bookings.CreateTx(ctx, tx, &b); err != nil {
		return model.Booking{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Booking{}, err
	}
	committed = true
	return b, nil
}

// ConfirmBooking moves a PENDING booking to CONFIRMED once its latest
// payment has reached COMPLETED.  It returns ErrInvalidTransition when
// the booking is not PENDING and ErrPaymentIncomplete when no completed
// payment exists.
func (s *BookingService) ConfirmBooking(ctx context.Context, bookingID uint64) (model.Booking, error) {
	return s.transition(ctx, bookingID, model.BookingConfirmed, func(ctx context.Context, tx *sql.Tx, b model.Booking) error {
		p, err := s.payments.LatestByBookingTx(ctx, tx, b.ID)
		if err == repository.ErrPaymentNotFound {
			return ErrPaymentIncomplete
		}
		if err != nil {
			return err
		}
		if p.Status != model.PaymentCompleted {
			return ErrPaymentIncomplete
		}
		return nil
	})
}

// CompleteBooking moves a CONFIRMED booking to COMPLETED.  The embedding
// scheduler invokes it once the checkout date has passed.
func (s *BookingService) CompleteBooking(ctx context.Context, bookingID uint64) (model.Booking, error) {
	return s.transition(ctx, bookingID, model.BookingCompleted, nil)
}

// CancelBooking cancels a PENDING or CONFIRMED booking.  Setting the
// status to CANCELLED is also the release: availability is derived from
// status, so the room's range frees immediately.  A cancellation record
// with the policy-computed refund is written in the same transaction.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID uint64, reason string) (model.Booking, error) {
	return s.transition(ctx, bookingID, model.BookingCancelled, func(ctx context.Context, tx *sql.Tx, b model.Booking) error {
		c := model.Cancellation{
			BookingID:         b.ID,
			RefundAmountCents: s.refund.RefundCents(b, time.Now().UTC()),
			Reason:            reason,
		}
		return s.cancellations.CreateTx(ctx, tx, &c)
	})
}

// transition applies a single state change under a booking row lock.
// extra, when non-nil, runs inside the transaction after the state
// check and before the status update; returning an error aborts the
// whole transition.
func (s *BookingService) transition(ctx context.Context, bookingID uint64, to model.BookingStatus,
	extra func(context.Context, *sql.Tx, model.Booking) error) (model.Booking, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Booking{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	b, err := s.bookings.GetForUpdateTx(ctx, tx, bookingID)
	if err != nil {
		return model.Booking{}, err
	}
	if !b.Status.CanTransitionTo(to) {
		return model.Booking{}, ErrInvalidTransition
	}
	if extra != nil {
		if err := extra(ctx, tx, b); err != nil {
			return model.Booking{}, err
		}
	}
	if err := s.bookings.UpdateStatusTx(ctx, tx, b.ID, to); err != nil {
		return model.Booking{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Booking{}, err
	}
	committed = true
	b.Status = to
	return b, nil
}

// Quote prices a stay in the given room without reserving anything.
func (s *BookingService) Quote(ctx context.Context, roomID uint64, numAdults, numChildren int) (int64, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return 0, err
	}
	return ComputePriceCents(room.BaseFareCents, room.BedType, numAdults, numChildren)
}

// CheckAvailability reports whether the room is free for the half-open
// range.  The answer is advisory: only CreateBooking decides under the
// room lock.
func (s *BookingService) CheckAvailability(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, ErrInvalidDateRange
	}
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return false, err
	}
	if room.Status == model.RoomMaintenance {
		return false, nil
	}
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()
	active, err := s.bookings.ListActiveForRoomTx(ctx, tx, roomID)
	if err != nil {
		return false, err
	}
	_, conflict := findConflict(active, checkIn, checkOut)
	return !conflict, nil
}
