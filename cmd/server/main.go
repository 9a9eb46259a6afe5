package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/config"
	"github.com/iliyamo/hotel-room-booking/internal/database"
	"github.com/iliyamo/hotel-room-booking/internal/handler"
	"github.com/iliyamo/hotel-room-booking/internal/middleware"
	"github.com/iliyamo/hotel-room-booking/internal/queue"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
	"github.com/iliyamo/hotel-room-booking/internal/router"
	"github.com/iliyamo/hotel-room-booking/internal/service"
)

func main() {
	// .env is optional; real deployments configure the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and response cache disabled")
	}
	rlCfg := config.LoadRateLimitConfig()
	cacheCfg := config.LoadCacheConfig()

	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	hotelRepo := repository.NewHotelRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	reviewRepo := repository.NewReviewRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	cancellationRepo := repository.NewCancellationRepo(db)

	bookingSvc := service.NewBookingService(db, roomRepo, bookingRepo, paymentRepo,
		cancellationRepo, service.NewStandardRefundPolicy())
	ratingSvc := service.NewRatingService(db, reviewRepo, roomRepo, hotelRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RateLimit(rlCfg, rdb))

	router.Register(e, cfg, cacheCfg, rdb, router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, userRepo, tokenRepo),
		Browse:  handler.NewBrowseHandler(hotelRepo, roomRepo, reviewRepo, bookingSvc),
		Booking: handler.NewBookingHandler(bookingSvc, bookingRepo, roomRepo, hotelRepo),
		Payment: handler.NewPaymentHandler(paymentRepo, bookingRepo),
		Review:  handler.NewReviewHandler(ratingSvc),
		Room:    handler.NewRoomHandler(roomRepo, hotelRepo, cacheCfg, rdb),
	})

	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
