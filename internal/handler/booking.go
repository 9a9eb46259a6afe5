package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/queue"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
	"github.com/iliyamo/hotel-room-booking/internal/service"
)

// BookingHandler exposes the booking lifecycle to customers.  All
// methods assume JWT authentication has already run.  The transactional
// guarantees live in the service layer; the handler's job is request
// parsing, ownership checks and error-to-status mapping.
type BookingHandler struct {
	Bookings    *service.BookingService
	BookingRepo *repository.BookingRepo
	RoomRepo    *repository.RoomRepo
	HotelRepo   *repository.HotelRepo
}

// NewBookingHandler constructs a BookingHandler with the provided
// dependencies.  All must be non-nil.
func NewBookingHandler(svc *service.BookingService, bookings *repository.BookingRepo,
	rooms *repository.RoomRepo, hotels *repository.HotelRepo) *BookingHandler {
	if svc == nil || bookings == nil || rooms == nil || hotels == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: svc, BookingRepo: bookings, RoomRepo: rooms, HotelRepo: hotels}
}

type createBookingReq struct {
	RoomID      uint64 `json:"room_id"`
	CheckIn     string `json:"check_in"`  // YYYY-MM-DD
	CheckOut    string `json:"check_out"` // YYYY-MM-DD
	NumAdults   int    `json:"num_adults"`
	NumChildren int    `json:"num_children"`
}

type bookingResp struct {
	ID               uint64 `json:"id"`
	RoomID           uint64 `json:"room_id"`
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	NumAdults        int    `json:"num_adults"`
	NumChildren      int    `json:"num_children"`
	TotalAmountCents int64  `json:"total_amount_cents"`
	Status           string `json:"status"`
}

// writeServiceError maps core sentinel errors onto HTTP responses.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrInvalidOccupancy),
		errors.Is(err, service.ErrUnknownBedType),
		errors.Is(err, service.ErrInvalidRating):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrRoomUnavailable),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrPaymentIncomplete):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrRoomNotFound),
		errors.Is(err, repository.ErrBookingNotFound),
		errors.Is(err, repository.ErrHotelNotFound),
		errors.Is(err, repository.ErrReviewNotFound),
		errors.Is(err, repository.ErrPaymentNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
}

// Create handles POST /v1/bookings.  On success the room is reserved
// and the booking returned in PENDING with its computed total.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil || req.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in must be YYYY-MM-DD"})
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be YYYY-MM-DD"})
	}

	b, err := h.Bookings.CreateBooking(c.Request().Context(), userID, req.RoomID,
		checkIn, checkOut, req.NumAdults, req.NumChildren)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, bookingResp{
		ID:               b.ID,
		RoomID:           b.RoomID,
		CheckIn:          b.CheckIn.Format("2006-01-02"),
		CheckOut:         b.CheckOut.Format("2006-01-02"),
		NumAdults:        b.NumAdults,
		NumChildren:      b.NumChildren,
		TotalAmountCents: b.TotalAmountCents,
		Status:           string(b.Status),
	})
}

// List handles GET /v1/bookings and returns the caller's bookings with
// room and hotel context, newest first.
func (h *BookingHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.BookingRepo.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/bookings/:id.  Customers may only read their own
// bookings; managers may read any.
func (h *BookingHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	b, err := h.BookingRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	if b.UserID != userID && !isManager(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	return c.JSON(http.StatusOK, bookingResp{
		ID:               b.ID,
		RoomID:           b.RoomID,
		CheckIn:          b.CheckIn.Format("2006-01-02"),
		CheckOut:         b.CheckOut.Format("2006-01-02"),
		NumAdults:        b.NumAdults,
		NumChildren:      b.NumChildren,
		TotalAmountCents: b.TotalAmountCents,
		Status:           string(b.Status),
	})
}

// authorize loads a booking and verifies the caller may act on it.
func (h *BookingHandler) authorize(c echo.Context) (uint64, error) {
	userID, err := getUserID(c)
	if err != nil {
		return 0, echo.ErrUnauthorized
	}
	id, err := parseID(c, "id")
	if err != nil {
		return 0, echo.ErrBadRequest
	}
	b, err := h.BookingRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return 0, err
	}
	if b.UserID != userID && !isManager(c) {
		return 0, repository.ErrForbidden
	}
	return id, nil
}

// Confirm handles POST /v1/bookings/:id/confirm.  The booking must be
// PENDING with a COMPLETED payment.  A booking.confirmed event is
// published after the commit; a publish failure degrades notifications
// only.
func (h *BookingHandler) Confirm(c echo.Context) error {
	id, err := h.authorize(c)
	if err != nil {
		if he, ok := err.(*echo.HTTPError); ok {
			return he
		}
		return writeServiceError(c, err)
	}
	b, err := h.Bookings.ConfirmBooking(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}

	ev := queue.BookingConfirmedEvent{
		BookingID:        b.ID,
		UserID:           b.UserID,
		RoomID:           b.RoomID,
		CheckIn:          b.CheckIn.Format("2006-01-02"),
		CheckOut:         b.CheckOut.Format("2006-01-02"),
		NumAdults:        b.NumAdults,
		NumChildren:      b.NumChildren,
		TotalAmountCents: b.TotalAmountCents,
		ConfirmedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if room, rerr := h.RoomRepo.GetByID(c.Request().Context(), b.RoomID); rerr == nil {
		ev.HotelID = room.HotelID
		if hotel, herr := h.HotelRepo.GetByID(c.Request().Context(), room.HotelID); herr == nil {
			ev.HotelName = hotel.Name
		}
	}
	go func() { _ = queue.PublishBookingConfirmed(context.Background(), ev) }()

	return c.JSON(http.StatusOK, echo.Map{"id": b.ID, "status": string(b.Status)})
}

// Complete handles POST /v1/bookings/:id/complete.  Managers (or the
// embedding scheduler) close out CONFIRMED stays after checkout.
func (h *BookingHandler) Complete(c echo.Context) error {
	id, err := h.authorize(c)
	if err != nil {
		if he, ok := err.(*echo.HTTPError); ok {
			return he
		}
		return writeServiceError(c, err)
	}
	b, err := h.Bookings.CompleteBooking(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": b.ID, "status": string(b.Status)})
}

type cancelReq struct {
	Reason string `json:"reason"`
}

// Cancel handles POST /v1/bookings/:id/cancel.  Cancelling frees the
// room's date range immediately and records the refund decided by the
// policy in force.
func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := h.authorize(c)
	if err != nil {
		if he, ok := err.(*echo.HTTPError); ok {
			return he
		}
		return writeServiceError(c, err)
	}
	var req cancelReq
	_ = c.Bind(&req) // reason is optional
	b, err := h.Bookings.CancelBooking(c.Request().Context(), id, req.Reason)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": b.ID, "status": string(b.Status)})
}
