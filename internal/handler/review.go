package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/service"
)

// ReviewHandler routes review writes through the RatingService so every
// mutation refreshes the owning hotel's rating in the same transaction.
type ReviewHandler struct {
	Ratings *service.RatingService
}

func NewReviewHandler(r *service.RatingService) *ReviewHandler {
	return &ReviewHandler{Ratings: r}
}

type createReviewReq struct {
	Rating  int     `json:"rating"` // 1..5
	Comment *string `json:"comment"`
}

type updateReviewReq struct {
	RoomID  uint64  `json:"room_id"` // zero keeps the current room
	Rating  int     `json:"rating"`  // zero keeps the current rating
	Comment *string `json:"comment"`
}

type reviewResp struct {
	ID      uint64  `json:"id"`
	UserID  uint64  `json:"user_id"`
	RoomID  uint64  `json:"room_id"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment,omitempty"`
}

func toReviewResp(rv model.Review) reviewResp {
	return reviewResp{ID: rv.ID, UserID: rv.UserID, RoomID: rv.RoomID, Rating: rv.Rating, Comment: rv.Comment}
}

// Create handles POST /v1/rooms/:id/reviews.
func (h *ReviewHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	roomID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	var req createReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	rv, err := h.Ratings.AddReview(c.Request().Context(), userID, roomID, req.Rating, req.Comment)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toReviewResp(rv))
}

// Update handles PATCH /v1/reviews/:id.  Moving a review to another
// hotel's room refreshes both hotels' ratings.
func (h *ReviewHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid review id"})
	}
	var req updateReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	rv, err := h.Ratings.UpdateReview(c.Request().Context(), id, userID, isManager(c),
		req.RoomID, req.Rating, req.Comment)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toReviewResp(rv))
}

// Delete handles DELETE /v1/reviews/:id.
func (h *ReviewHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid review id"})
	}
	if err := h.Ratings.DeleteReview(c.Request().Context(), id, userID, isManager(c)); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
