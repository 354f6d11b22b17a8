// @title Shakya Gallery API
// @version 1.0
// @description Storefront catalog, selection and inquiries, and the gallery admin invoicing API
// @host localhost:8081
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/shrawan-shakya/shakya-gallery-sub000/cache"
	"github.com/shrawan-shakya/shakya-gallery-sub000/config"
	admin_controller "github.com/shrawan-shakya/shakya-gallery-sub000/controllers/cms/admin_controller"
	admin_auth "github.com/shrawan-shakya/shakya-gallery-sub000/controllers/cms/admin_controller/auth"
	"github.com/shrawan-shakya/shakya-gallery-sub000/controllers/cms/invoice_controller"
	"github.com/shrawan-shakya/shakya-gallery-sub000/controllers/storefront/artwork_controller"
	"github.com/shrawan-shakya/shakya-gallery-sub000/controllers/storefront/cart_controller"
	"github.com/shrawan-shakya/shakya-gallery-sub000/controllers/storefront/category_controller"
	"github.com/shrawan-shakya/shakya-gallery-sub000/controllers/storefront/inquiry_controller"
	_ "github.com/shrawan-shakya/shakya-gallery-sub000/docs"
	"github.com/shrawan-shakya/shakya-gallery-sub000/middleware"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/routes/cms_routes"
	"github.com/shrawan-shakya/shakya-gallery-sub000/routes/storefront_routes"
	"github.com/shrawan-shakya/shakya-gallery-sub000/services"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := config.InitDB(cfg); err != nil {
		utils.Log.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.CloseDB()

	ctx, cancel := config.WithTimeout()
	err = config.ConnectRedis(ctx, cfg.RedisURL)
	cancel()
	if err != nil {
		utils.Log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer config.RedisClient.Close()

	// Content repository and catalog
	sanity := services.NewSanityClient(services.SanityOptions{
		ProjectID:  cfg.SanityProjectID,
		Dataset:    cfg.SanityDataset,
		APIVersion: cfg.SanityAPIVersion,
		Token:      cfg.SanityToken,
		UseCDN:     cfg.SanityUseCDN,
	})
	artworkService := services.NewArtworkService(sanity, cache.NewCatalogCache(cache.TTL)).WithCurrency(cfg.InvoiceCurrency)
	artwork_controller.Init(artworkService, cfg.WebhookSecret)
	category_controller.Init(artworkService)

	// Selection and inquiries
	carts := services.NewRedisCartPersistence(config.RedisClient)
	mailer := services.NewResendClient(cfg.ResendAPIKey, cfg.ResendFromEmail)
	cart_controller.Init(carts)
	inquiry_controller.Init(mailer, carts, cfg.GalleryInboxEmail, cfg.InvoiceCurrency)

	// Admin
	if err := services.InitJWTService(cfg.JWTSecret, cfg.JWTExpiry); err != nil {
		utils.Log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	jwtService := services.GetJWTService()
	admin_auth.Init(services.NewAdminAuthService(cfg.AdminEmail, cfg.AdminPasswordHash), jwtService, cfg.IsProduction())
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		utils.Log.Warn("⚠️ ADMIN_EMAIL or ADMIN_PASSWORD_HASH not set, admin login is disabled")
	}

	var archive services.DocumentArchive
	if cfg.CloudinaryCloudName != "" {
		cld, err := services.NewCloudinaryService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			utils.Log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		archive = cld
	}

	activity := services.NewGormActivityLog(config.Gorm)
	admin_controller.Init(activity)
	invoice_controller.Init(services.NewInvoiceService(
		services.NewGormInvoiceStore(config.Gorm),
		services.NewPgInvoiceNumbers(config.DB),
		mailer,
		archive,
		cfg.InvoiceCurrency,
	))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger))
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	router.GET("/health", health)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(middleware.NewRedisRateCounter(config.RedisClient), cfg.RateLimit, time.Minute))

	storefront_routes.SetupStorefrontRoutes(api)
	storefront_routes.SetupSelectionRoutes(api, cfg.IsProduction())

	protected := cms_routes.SetupAdminRoutes(api, jwtService)
	cms_routes.SetupInvoiceRoutes(protected, activity)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		utils.Log.Infow("🚀 Server is running", "port", cfg.Port, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Log.Fatalf("Server failed: %v", err)
		}
	}()

	<-shutdownCtx.Done()
	utils.Log.Info("Shutting down")

	ctx, cancel = config.WithTimeout()
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Log.Errorw("Graceful shutdown failed", "error", err)
	}
}

// corsConfig lets the storefront origins call the API with cookies and read
// the rate-limit and download headers
func corsConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
	}
}

// health reports database and Redis reachability
func health(c *gin.Context) {
	ctx, cancel := config.WithCustomTimeout(3 * time.Second)
	defer cancel()

	status := gin.H{"database": "ok", "redis": "ok"}
	code := http.StatusOK
	if err := config.PingDB(ctx); err != nil {
		status["database"] = err.Error()
		code = http.StatusServiceUnavailable
	}
	if err := config.RedisClient.Ping(ctx).Err(); err != nil {
		status["redis"] = err.Error()
		code = http.StatusServiceUnavailable
	}

	if code != http.StatusOK {
		c.JSON(code, models.ApiResponse{Message: "Unhealthy", Error: true, Data: status})
		return
	}
	c.JSON(code, models.SuccessResponse(c, "Healthy", status))
}
