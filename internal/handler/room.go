package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-room-booking/internal/config"
	"github.com/iliyamo/hotel-room-booking/internal/middleware"
	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
)

// RoomHandler covers the manager-only room administration surface.
// Writes here change what the public browse endpoints serve, so each
// success drops the response cache.
type RoomHandler struct {
	Rooms  *repository.RoomRepo
	Hotels *repository.HotelRepo
	Cache  config.CacheConfig
	Redis  *redis.Client
}

func NewRoomHandler(rooms *repository.RoomRepo, hotels *repository.HotelRepo,
	cache config.CacheConfig, rdb *redis.Client) *RoomHandler {
	return &RoomHandler{Rooms: rooms, Hotels: hotels, Cache: cache, Redis: rdb}
}

type createRoomReq struct {
	BedType       string `json:"bed_type"` // SINGLE | DOUBLE | KING
	BaseFareCents int64  `json:"base_fare_cents"`
	MaxOccupancy  int    `json:"max_occupancy"`
}

// Create handles POST /v1/hotels/:id/rooms.
func (h *RoomHandler) Create(c echo.Context) error {
	hotelID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	var req createRoomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	bedType := model.BedType(strings.ToUpper(strings.TrimSpace(req.BedType)))
	if _, ok := bedType.Threshold(); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bed_type must be SINGLE, DOUBLE or KING"})
	}
	if req.BaseFareCents <= 0 || req.MaxOccupancy < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "base_fare_cents and max_occupancy must be positive"})
	}
	if _, err := h.Hotels.GetByID(c.Request().Context(), hotelID); err != nil {
		return writeServiceError(c, err)
	}

	rm := model.Room{
		HotelID:       hotelID,
		BedType:       bedType,
		BaseFareCents: req.BaseFareCents,
		MaxOccupancy:  req.MaxOccupancy,
		Status:        model.RoomAvailable,
	}
	if err := h.Rooms.Create(c.Request().Context(), &rm); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	middleware.InvalidateCache(c.Request().Context(), h.Cache, h.Redis)
	return c.JSON(http.StatusCreated, rm)
}

type roomStatusReq struct {
	Status string `json:"status"` // AVAILABLE | BOOKED | MAINTENANCE
}

// UpdateStatus handles PATCH /v1/rooms/:id/status.  MAINTENANCE stops
// new reservations; existing bookings are untouched.
func (h *RoomHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	var req roomStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status := strings.ToUpper(strings.TrimSpace(req.Status))
	switch status {
	case model.RoomAvailable, model.RoomBooked, model.RoomMaintenance:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be AVAILABLE, BOOKED or MAINTENANCE"})
	}

	if err := h.Rooms.UpdateStatus(c.Request().Context(), id, status); err != nil {
		return writeServiceError(c, err)
	}
	middleware.InvalidateCache(c.Request().Context(), h.Cache, h.Redis)
	rm, err := h.Rooms.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, rm)
}
