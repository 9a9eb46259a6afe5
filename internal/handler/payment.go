package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
)

// PaymentHandler records payments against bookings and applies status
// updates reported by the payment gateway.  The gateway integration
// itself lives outside this service; confirmation only reads the
// resulting status.
type PaymentHandler struct {
	Payments *repository.PaymentRepo
	Bookings *repository.BookingRepo
}

func NewPaymentHandler(p *repository.PaymentRepo, b *repository.BookingRepo) *PaymentHandler {
	return &PaymentHandler{Payments: p, Bookings: b}
}

type createPaymentReq struct {
	Method string `json:"method"` // CARD | CASH | TRANSFER
}

type paymentResp struct {
	ID          uint64 `json:"id"`
	BookingID   uint64 `json:"booking_id"`
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method"`
	PaymentRef  string `json:"payment_ref"`
	Status      string `json:"status"`
}

func toPaymentResp(p model.Payment) paymentResp {
	return paymentResp{
		ID:          p.ID,
		BookingID:   p.BookingID,
		AmountCents: p.AmountCents,
		Method:      p.Method,
		PaymentRef:  p.PaymentRef,
		Status:      p.Status,
	}
}

// Create handles POST /v1/bookings/:id/payments.  The payment amount is
// always the booking's computed total; a fresh payment_ref correlates
// the record with the external gateway.  New payments start in PENDING.
func (h *PaymentHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req createPaymentReq
	_ = c.Bind(&req) // method is optional
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = "CARD"
	}

	b, err := h.Bookings.GetByID(c.Request().Context(), bookingID)
	if err != nil {
		return writeServiceError(c, err)
	}
	if b.UserID != userID && !isManager(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if b.Status.Terminal() {
		return c.JSON(http.StatusConflict, echo.Map{"error": "booking is closed"})
	}

	p := model.Payment{
		BookingID:   b.ID,
		AmountCents: b.TotalAmountCents,
		Method:      method,
		PaymentRef:  uuid.NewString(),
		Status:      model.PaymentPending,
	}
	if err := h.Payments.Create(c.Request().Context(), &p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusCreated, toPaymentResp(p))
}

type paymentStatusReq struct {
	Status string `json:"status"` // PENDING | COMPLETED | FAILED
}

// UpdateStatus handles PATCH /v1/payments/:id.  The route is mounted
// manager-only: the gateway webhook authenticates with a manager
// credential, and managers may set a status by hand.  Confirmation
// reads the result, so a customer must never reach this endpoint.
func (h *PaymentHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment id"})
	}
	var req paymentStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status := strings.ToUpper(strings.TrimSpace(req.Status))
	switch status {
	case model.PaymentPending, model.PaymentCompleted, model.PaymentFailed:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be PENDING, COMPLETED or FAILED"})
	}

	if err := h.Payments.UpdateStatus(c.Request().Context(), id, status); err != nil {
		return writeServiceError(c, err)
	}
	p, err := h.Payments.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toPaymentResp(p))
}

// Get handles GET /v1/payments/:id.
func (h *PaymentHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment id"})
	}
	p, err := h.Payments.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	b, err := h.Bookings.GetByID(c.Request().Context(), p.BookingID)
	if err != nil {
		return writeServiceError(c, err)
	}
	if b.UserID != userID && !isManager(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	return c.JSON(http.StatusOK, toPaymentResp(p))
}
