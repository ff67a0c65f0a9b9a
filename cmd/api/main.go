package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"travelhub/internal/cache"
	"travelhub/internal/config"
	"travelhub/internal/database"
	"travelhub/internal/domain"
	"travelhub/internal/jobs"
	"travelhub/internal/middleware"
	"travelhub/internal/modules/auth"
	"travelhub/internal/modules/booking"
	"travelhub/internal/modules/community"
	"travelhub/internal/modules/destination"
	"travelhub/internal/modules/inventory"
	"travelhub/internal/modules/notification"
	"travelhub/internal/modules/payment"
	jwtsvc "travelhub/internal/pkg/jwt"
	"travelhub/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.PasswordResetToken{},
		&domain.Destination{},
		&domain.Flight{},
		&domain.Hotel{},
		&domain.Car{},
		&domain.Booking{},
		&domain.Post{},
		&domain.PostLike{},
		&domain.PostBookmark{},
		&domain.Group{},
		&domain.GroupMember{},
	); err != nil {
		log.Fatal(err)
	}

	// redis is optional: with no address everything degrades to
	// cache misses and the token denylist becomes inert
	var appCache *cache.Cache
	if cfg.Redis.Addr != "" {
		client, err := cache.NewClient(context.Background(), cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal(err)
		}
		appCache = cache.New(client)
	} else {
		appCache = cache.New(nil)
		log.Println("REDIS_ADDR not set, running without redis")
	}

	userRepo := repository.NewUserRepository(db)
	resetTokenRepo := repository.NewResetTokenRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)
	flightRepo := repository.NewFlightRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	carRepo := repository.NewCarRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	communityRepo := repository.NewCommunityRepository(db)

	j := jwtsvc.New(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL)
	denylist := auth.NewDenylist(appCache)

	center := notification.NewCenter()
	mailer := notification.NewMailer(cfg.Mail.SendGridAPIKey, cfg.Mail.FromEmail, cfg.Mail.FromName)
	sms := notification.NewSMSSender(cfg.SMS.TwilioAccountSID, cfg.SMS.TwilioAuthToken, cfg.SMS.FromNumber)
	notifier := notification.NewBookingNotifier(center, mailer, sms)
	notificationHandler := notification.NewHandler(center)

	hub := community.NewHub()
	center.OnPush(func(userID int64, n domain.Notification) {
		hub.SendToUser(userID, map[string]interface{}{
			"type":         "notification",
			"notification": n,
		})
	})

	authService := auth.NewService(userRepo, resetTokenRepo, j, mailer, denylist, cfg.Auth.ResetTokenTTL, cfg.Auth.FrontendURL)
	authService.OnRegister(func(u *domain.User) {
		center.Push(u.ID, domain.NotifySuccess, "Welcome to TravelHub",
			"Your account is ready. Start planning your next trip.")
	})
	authHandler := auth.NewHandler(authService, bookingRepo, cfg.Uploads.Dir)

	destinationService := destination.NewService(destinationRepo, appCache)
	destinationHandler := destination.NewHandler(destinationService)

	inventoryService := inventory.NewService(flightRepo, hotelRepo, carRepo, appCache)
	inventoryHandler := inventory.NewHandler(inventoryService)

	paymentService := payment.NewService(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, bookingRepo)
	paymentService.SetNotifier(notifier)
	paymentHandler := payment.NewHandler(paymentService)

	bookingService := booking.NewService(
		bookingRepo, flightRepo, hotelRepo, carRepo, userRepo,
		notifier, paymentService,
		booking.WithWindows(cfg.Booking.CancelWindow, cfg.Booking.ModifyWindow),
	)
	bookingHandler := booking.NewHandler(bookingService)

	communityService := community.NewService(communityRepo, hub)
	communityHandler := community.NewHandler(communityService, hub)

	if cfg.App.Env == "prod" || cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.HTTP.AllowedOrigins))
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.Static("/static", cfg.Uploads.Dir)

	v1 := r.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/forgotpassword", authHandler.ForgotPassword)
			authGroup.PUT("/resetpassword/:token", authHandler.ResetPassword)
		}

		v1.GET("/destinations", destinationHandler.List)
		v1.GET("/destinations/search", destinationHandler.Search)
		v1.GET("/destinations/popular", destinationHandler.Popular)
		v1.GET("/destinations/category/:category", destinationHandler.ByCategory)
		v1.GET("/destinations/:id", destinationHandler.Get)

		v1.GET("/flights/search", inventoryHandler.SearchFlights)
		v1.GET("/flights/deals", inventoryHandler.FlightDeals)
		v1.GET("/flights/:id", inventoryHandler.GetFlight)

		v1.GET("/hotels/search", inventoryHandler.SearchHotels)
		v1.GET("/hotels/deals", inventoryHandler.HotelDeals)
		v1.GET("/hotels/:id", inventoryHandler.GetHotel)

		v1.GET("/cars/search", inventoryHandler.SearchCars)
		v1.GET("/cars/:id", inventoryHandler.GetCar)

		v1.POST("/payments/webhook", paymentHandler.Webhook)

		protected := v1.Group("")
		protected.Use(middleware.Auth(j, denylist))
		{
			protected.POST("/auth/logout", authHandler.Logout)
			protected.GET("/auth/me", authHandler.Me)
			protected.PUT("/auth/updatedetails", authHandler.UpdateDetails)
			protected.PUT("/auth/updatepassword", authHandler.UpdatePassword)
			protected.POST("/users/upload-profile-image", authHandler.UploadProfileImage)

			protected.POST("/bookings", bookingHandler.Create)
			protected.GET("/bookings/my-bookings", bookingHandler.MyBookings)
			protected.GET("/bookings/stats", bookingHandler.Stats)
			protected.GET("/bookings/:id", bookingHandler.Get)
			protected.PUT("/bookings/:id", bookingHandler.Update)
			protected.PUT("/bookings/:id/cancel", bookingHandler.Cancel)

			protected.POST("/payments/intent", paymentHandler.CreateIntent)

			protected.GET("/notifications", notificationHandler.List)
			protected.DELETE("/notifications", notificationHandler.DismissAll)
			protected.DELETE("/notifications/:id", notificationHandler.Dismiss)

			protected.GET("/community/posts", communityHandler.ListPosts)
			protected.POST("/community/posts", communityHandler.CreatePost)
			protected.GET("/community/posts/:id", communityHandler.GetPost)
			protected.POST("/community/posts/:id/like", communityHandler.LikePost)
			protected.DELETE("/community/posts/:id/like", communityHandler.UnlikePost)
			protected.POST("/community/posts/:id/bookmark", communityHandler.BookmarkPost)
			protected.DELETE("/community/posts/:id/bookmark", communityHandler.UnbookmarkPost)
			protected.GET("/community/groups", communityHandler.ListGroups)
			protected.POST("/community/groups/:id/join", communityHandler.JoinGroup)
			protected.DELETE("/community/groups/:id/join", communityHandler.LeaveGroup)
			protected.GET("/community/ws", communityHandler.Websocket)

			admin := protected.Group("")
			admin.Use(middleware.RequireRole(string(domain.RoleAdmin)))
			{
				admin.POST("/destinations", destinationHandler.Create)
				admin.PUT("/destinations/:id", destinationHandler.Update)
				admin.DELETE("/destinations/:id", destinationHandler.Delete)
			}
		}
	}

	scheduler := jobs.NewScheduler(bookingRepo, resetTokenRepo)
	if err := scheduler.Start(); err != nil {
		log.Fatal(err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		scheduler.Stop()
		hub.Close()
		os.Exit(0)
	}()

	log.Printf("%s listening on :%s", cfg.App.Name, cfg.HTTP.Port)
	if err := r.Run(":" + cfg.HTTP.Port); err != nil {
		log.Fatal(err)
	}
}
