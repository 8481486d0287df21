package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopsphere/config"
	"shopsphere/cron"
	"shopsphere/database"
	bookingRepo "shopsphere/database/repository/booking"
	catalogRepo "shopsphere/database/repository/catalog"
	reviewRepo "shopsphere/database/repository/review"
	shopRepo "shopsphere/database/repository/shop"
	userRepo "shopsphere/database/repository/user"
	"shopsphere/handlers"
	"shopsphere/middleware"
	"shopsphere/routes"
	"shopsphere/services/booking"
	"shopsphere/services/catalog"
	"shopsphere/services/otp"
	"shopsphere/services/review"
	"shopsphere/services/shop"
	"shopsphere/services/storage"
	"shopsphere/services/user"
	"shopsphere/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	issueAdmin := flag.String("issue-admin-token", "", "print an admin token for the given subject and exit")
	adminTTL := flag.Duration("admin-token-ttl", 24*time.Hour, "lifetime of an issued admin token")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if *issueAdmin != "" {
		token, err := utils.GenerateAdminToken(config.AppConfig.AdminJWTSecret, *issueAdmin, *adminTTL)
		if err != nil {
			logger.Fatal("main: failed to issue admin token", zap.Error(err))
		}
		fmt.Println(token)
		return
	}

	database.InitDB()
	otpCache := utils.GetOTPCacheClient()

	authClient, err := utils.FirebaseAuth(context.Background())
	if err != nil {
		logger.Fatal("main: failed to initialize firebase auth", zap.Error(err))
	}

	var media storage.StorageService
	if cld, err := utils.Cloudinary(); err != nil {
		logger.Warn("main: cloudinary unavailable, shop image upload disabled", zap.Error(err))
	} else {
		media = storage.NewStorageService(cld, config.AppConfig.CloudinaryCloudName, logger)
	}

	queueOpt := utils.QueueRedisOpt()
	queue := asynq.NewClient(queueOpt)
	defer queue.Close()
	worker := cron.StartOTPWorker(queueOpt, otp.LogMailer{Logger: logger, ExposeCode: !config.IsProduction()}, logger)

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	shops := shopRepo.NewMongoShopRepo()
	catalogItems := catalogRepo.NewMongoServiceRepo()
	reviews := reviewRepo.NewMongoReviewRepo()
	users := userRepo.NewMongoUserRepo()

	// services.
	otpGen := otp.NewGenerator(nil)
	bookingService := booking.NewBookingService(bookings, otpGen, booking.SystemClock{}, logger)
	shopService := shop.NewShopService(shops, media, logger)
	catalogService := catalog.NewCatalogService(catalogItems, logger)
	reviewService := review.NewReviewService(reviews, logger)
	userService := user.NewUserService(users, logger)
	emailOTP := otp.NewEmailOTPService(
		otp.NewRedisCodeStore(otpCache, utils.OTPCachePrefix),
		otpGen,
		queue,
		config.AppConfig.EmailOTPTTL,
		logger,
	)

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, []*redis.Client{otpCache}, database.MongoClient)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	handlerBundle := &handlers.HandlerBundle{
		Bookings:  handlers.NewBookingHandler(bookingService, shopService),
		Shops:     handlers.NewShopHandler(shopService, bookingService),
		Catalog:   handlers.NewCatalogHandler(catalogService, shopService),
		Reviews:   handlers.NewReviewHandler(reviewService, shopService),
		Users:     handlers.NewUserHandler(userService),
		Admin:     handlers.NewAdminHandler(userService, shopService),
		OTP:       handlers.NewOTPHandler(emailOTP),
		UserAuth:  middleware.FirebaseAuthMiddleware(authClient),
		AdminAuth: middleware.JWTAuthAdminMiddleware(config.AppConfig.AdminJWTSecret),
	}
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		// open watch streams keep connections alive past the deadline
		logger.Warn("main: forcing remaining connections closed", zap.Error(err))
		_ = srv.Close()
	}
	worker.Shutdown()
	stopHealth()
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}
	_ = otpCache.Close()

	logger.Info("main: server stopped gracefully")
}
