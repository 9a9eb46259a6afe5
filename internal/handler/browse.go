package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/repository"
	"github.com/iliyamo/hotel-room-booking/internal/service"
)

// BrowseHandler serves the public catalog: hotels, rooms, reviews,
// availability checks and price quotes.  None of these endpoints
// require authentication and all are safe to cache.
type BrowseHandler struct {
	Hotels   *repository.HotelRepo
	Rooms    *repository.RoomRepo
	Reviews  *repository.ReviewRepo
	Bookings *service.BookingService
}

func NewBrowseHandler(hotels *repository.HotelRepo, rooms *repository.RoomRepo,
	reviews *repository.ReviewRepo, bookings *service.BookingService) *BrowseHandler {
	return &BrowseHandler{Hotels: hotels, Rooms: rooms, Reviews: reviews, Bookings: bookings}
}

// ListHotels handles GET /v1/hotels.
func (h *BrowseHandler) ListHotels(c echo.Context) error {
	items, err := h.Hotels.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetHotel handles GET /v1/hotels/:id.
func (h *BrowseHandler) GetHotel(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	hotel, err := h.Hotels.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, hotel)
}

// ListRooms handles GET /v1/hotels/:id/rooms.
func (h *BrowseHandler) ListRooms(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	if _, err := h.Hotels.GetByID(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	rooms, err := h.Rooms.ListByHotel(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rooms})
}

// GetRoom handles GET /v1/rooms/:id.
func (h *BrowseHandler) GetRoom(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	room, err := h.Rooms.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

// ListRoomReviews handles GET /v1/rooms/:id/reviews.
func (h *BrowseHandler) ListRoomReviews(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	items, err := h.Reviews.ListByRoom(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Availability handles GET /v1/rooms/:id/availability?check_in=&check_out=.
// The result is advisory; the reservation transaction is the only
// authority on whether a range is actually free.
func (h *BrowseHandler) Availability(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	checkIn, err := parseDate(c.QueryParam("check_in"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in must be YYYY-MM-DD"})
	}
	checkOut, err := parseDate(c.QueryParam("check_out"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be YYYY-MM-DD"})
	}
	free, err := h.Bookings.CheckAvailability(c.Request().Context(), id, checkIn, checkOut)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"room_id":   id,
		"check_in":  checkIn.Format("2006-01-02"),
		"check_out": checkOut.Format("2006-01-02"),
		"available": free,
	})
}

// Quote handles GET /v1/rooms/:id/quote?adults=&children=.  It prices a
// stay without reserving anything.
func (h *BrowseHandler) Quote(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	adults, err := strconv.Atoi(c.QueryParam("adults"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "adults must be an integer"})
	}
	children := 0
	if v := c.QueryParam("children"); v != "" {
		children, err = strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "children must be an integer"})
		}
	}
	total, err := h.Bookings.Quote(c.Request().Context(), id, adults, children)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"room_id":     id,
		"adults":      adults,
		"children":    children,
		"total_cents": total,
	})
}
