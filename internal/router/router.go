// Package router wires handlers to routes and applies the middleware
// chain for each route group.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-room-booking/internal/config"
	"github.com/iliyamo/hotel-room-booking/internal/handler"
	"github.com/iliyamo/hotel-room-booking/internal/middleware"
	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// Handlers collects every handler the router mounts.
type Handlers struct {
	Auth    *handler.AuthHandler
	Browse  *handler.BrowseHandler
	Booking *handler.BookingHandler
	Payment *handler.PaymentHandler
	Review  *handler.ReviewHandler
	Room    *handler.RoomHandler
}

// Register mounts all routes on e.  Public browse routes sit behind the
// response cache; everything under the protected group requires a valid
// access token.
func Register(e *echo.Echo, cfg config.Config, cacheCfg config.CacheConfig, rdb *redis.Client, h Handlers) {
	e.GET("/healthz", handler.Health)

	auth := e.Group("/v1/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/logout", h.Auth.Logout)

	public := e.Group("/v1", middleware.ResponseCache(cacheCfg, rdb))
	public.GET("/hotels", h.Browse.ListHotels)
	public.GET("/hotels/:id", h.Browse.GetHotel)
	public.GET("/hotels/:id/rooms", h.Browse.ListRooms)
	public.GET("/rooms/:id", h.Browse.GetRoom)
	public.GET("/rooms/:id/reviews", h.Browse.ListRoomReviews)
	public.GET("/rooms/:id/availability", h.Browse.Availability)
	public.GET("/rooms/:id/quote", h.Browse.Quote)

	protected := e.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	protected.GET("/me", h.Auth.Me)

	protected.POST("/bookings", h.Booking.Create)
	protected.GET("/bookings", h.Booking.List)
	protected.GET("/bookings/:id", h.Booking.Get)
	protected.POST("/bookings/:id/confirm", h.Booking.Confirm)
	protected.POST("/bookings/:id/complete", h.Booking.Complete)
	protected.POST("/bookings/:id/cancel", h.Booking.Cancel)

	protected.POST("/bookings/:id/payments", h.Payment.Create)
	protected.GET("/payments/:id", h.Payment.Get)

	protected.POST("/rooms/:id/reviews", h.Review.Create)
	protected.PATCH("/reviews/:id", h.Review.Update)
	protected.DELETE("/reviews/:id", h.Review.Delete)

	manager := e.Group("/v1", middleware.JWTAuth(cfg.JWTSecret), middleware.RequireRole(model.RoleManager))
	manager.POST("/hotels/:id/rooms", h.Room.Create)
	manager.PATCH("/rooms/:id/status", h.Room.UpdateStatus)
	// Payment status is reported by the gateway webhook, which
	// authenticates with a manager credential; customers must never be
	// able to mark their own payment COMPLETED.
	manager.PATCH("/payments/:id", h.Payment.UpdateStatus)
}
