package service

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
)

// RatingService owns review writes and the derived hotel rating.  Every
// insert, update or delete of a review recomputes the owning hotel's
// rating inside the same transaction as the mutation, so readers never
// observe a review without its rating update and a failed recompute
// aborts the review write itself.  When an update moves a review to a
// room of a different hotel, both hotels are recomputed.
type RatingService struct {
	db      *sql.DB
	reviews *repository.ReviewRepo
	rooms   *repository.RoomRepo
	hotels  *repository.HotelRepo
}

// NewRatingService constructs a RatingService.  All repositories must
// be non-nil.
func NewRatingService(db *sql.DB, reviews *repository.ReviewRepo, rooms *repository.RoomRepo, hotels *repository.HotelRepo) *RatingService {
	if db == nil || reviews == nil || rooms == nil || hotels == nil {
		panic("nil dependency passed to NewRatingService")
	}
	return &RatingService{db: db, reviews: reviews, rooms: rooms, hotels: hotels}
}

// AddReview creates a review for a room and refreshes the owning
// hotel's rating atomically.
func (s *RatingService) AddReview(ctx context.Context, userID, roomID uint64, rating int, comment *string) (model.Review, error) {
	if rating < 1 || rating > 5 {
		return model.Review{}, ErrInvalidRating
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Review{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	hotelID, err := s.rooms.HotelIDTx(ctx, tx, roomID)
	if err != nil {
		return model.Review{}, err
	}
	rv := model.Review{UserID: userID, RoomID: roomID, Rating: rating, Comment: comment}
	if err := s.reviews.CreateTx(ctx, tx, &rv); err != nil {
		return model.Review{}, err
	}
	if err := s.recomputeTx(ctx, tx, hotelID); err != nil {
		return model.Review{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Review{}, err
	}
	committed = true
	return rv, nil
}

// UpdateReview rewrites a review's comment and optionally its rating
// and room (zero rating keeps the current rating, zero newRoomID keeps
// the current room).  Only the author may update; managers may update
// any review.  Every hotel touched by the pre- or post-image is
// recomputed in the same transaction.
func (s *RatingService) UpdateReview(ctx context.Context, reviewID, callerID uint64, manager bool,
	newRoomID uint64, rating int, comment *string) (model.Review, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Review{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	rv, err := s.reviews.GetForUpdateTx(ctx, tx, reviewID)
	if err != nil {
		return model.Review{}, err
	}
	if !manager && rv.UserID != callerID {
		return model.Review{}, repository.ErrForbidden
	}
	preHotel, err := s.rooms.HotelIDTx(ctx, tx, rv.RoomID)
	if err != nil {
		return model.Review{}, err
	}
	if err := applyReviewPatch(&rv, newRoomID, rating, comment); err != nil {
		return model.Review{}, err
	}
	if err := s.reviews.UpdateTx(ctx, tx, &rv); err != nil {
		return model.Review{}, err
	}
	postHotel, err := s.rooms.HotelIDTx(ctx, tx, rv.RoomID)
	if err != nil {
		return model.Review{}, err
	}
	for _, h := range affectedHotels([]uint64{preHotel}, []uint64{postHotel}) {
		if err := s.recomputeTx(ctx, tx, h); err != nil {
			return model.Review{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return model.Review{}, err
	}
	committed = true
	return rv, nil
}

// DeleteReview removes a review and refreshes the owning hotel's
// rating atomically.  Deleting a hotel's last review clears the rating.
func (s *RatingService) DeleteReview(ctx context.Context, reviewID, callerID uint64, manager bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	rv, err := s.reviews.GetForUpdateTx(ctx, tx, reviewID)
	if err != nil {
		return err
	}
	if !manager && rv.UserID != callerID {
		return repository.ErrForbidden
	}
	hotelID, err := s.rooms.HotelIDTx(ctx, tx, rv.RoomID)
	if err != nil {
		return err
	}
	if err := s.reviews.DeleteTx(ctx, tx, rv.ID); err != nil {
		return err
	}
	if err := s.recomputeTx(ctx, tx, hotelID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// RecomputeHotelRating rebuilds a hotel's rating from its current
// review set in a transaction of its own.  Normal operation never needs
// it; it exists as a repair entry point.
func (s *RatingService) RecomputeHotelRating(ctx context.Context, hotelID uint64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := s.recomputeTx(ctx, tx, hotelID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// recomputeTx sets hotels.rating to the mean of the hotel's review
// ratings, or NULL when none remain.  The UPDATE locks the hotel row,
// serializing concurrent review writers of the same hotel.
func (s *RatingService) recomputeTx(ctx context.Context, tx *sql.Tx, hotelID uint64) error {
	ratings, err := s.reviews.ListRatingsByHotelTx(ctx, tx, hotelID)
	if err != nil {
		return err
	}
	return s.hotels.UpdateRatingTx(ctx, tx, hotelID, meanRating(ratings))
}

// applyReviewPatch applies an update request to a loaded review.  Zero
// values for newRoomID and rating mean "keep current", so a caller may
// edit just the comment without resending the rest; comment is always
// replaced, nil clearing it.  A non-zero rating outside [1,5] fails
// with ErrInvalidRating and leaves rv untouched.
func applyReviewPatch(rv *model.Review, newRoomID uint64, rating int, comment *string) error {
	if rating != 0 && (rating < 1 || rating > 5) {
		return ErrInvalidRating
	}
	if newRoomID != 0 {
		rv.RoomID = newRoomID
	}
	if rating != 0 {
		rv.Rating = rating
	}
	rv.Comment = comment
	return nil
}

// meanRating returns the arithmetic mean of the given ratings, or nil
// for an empty set: the average of zero reviews is undefined, not zero,
// and nil clears the stored rating.
func meanRating(ratings []int) *float64 {
	if len(ratings) == 0 {
		return nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return &avg
}

// affectedHotels returns the distinct union of hotel ids referenced by
// the pre- and post-images of a review mutation batch, preserving first
// appearance order.
func affectedHotels(pre, post []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(pre)+len(post))
	out := make([]uint64, 0, len(pre)+len(post))
	for _, ids := range [][]uint64{pre, post} {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
