package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/quickcourt/quickcourt-backend/internal/analytics"
	"github.com/quickcourt/quickcourt-backend/internal/api"
	"github.com/quickcourt/quickcourt-backend/internal/auth"
	"github.com/quickcourt/quickcourt-backend/internal/booking"
	"github.com/quickcourt/quickcourt-backend/internal/court"
	"github.com/quickcourt/quickcourt-backend/internal/facility"
	"github.com/quickcourt/quickcourt-backend/internal/photo"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/cache"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/storage"
	"github.com/quickcourt/quickcourt-backend/internal/review"
	"github.com/quickcourt/quickcourt-backend/internal/user"
)

// Config holds the dependencies and settings required to start the
// application.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	RateLimitRPS   float64
	RateLimitBurst int

	DBPool      *pgxpool.Pool
	RedisClient *redis.Client // nil disables caching
	CacheTTL    time.Duration

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	StoragePath string

	PlatformRates booking.PlatformRates
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	availabilityCache := cache.New(cfg.RedisClient, cfg.CacheTTL)

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, err
	}

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Facility module
	facilityRepo := facility.NewPgxRepository(cfg.DBPool)
	facilityService := facility.NewService(facilityRepo, court.ValidSports)

	// Court module
	courtRepo := court.NewPgxRepository(cfg.DBPool)
	courtService := court.NewService(courtRepo, facilityService)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, courtService, facilityService, availabilityCache, cfg.PlatformRates)

	// Review module
	reviewRepo := review.NewPgxRepository(cfg.DBPool)
	reviewService := review.NewService(reviewRepo, facilityService)

	// Photo module
	photoRepo := photo.NewPgxRepository(cfg.DBPool)
	photoService := photo.NewService(photoRepo, facilityService, store, storage.NewImageProcessor())

	// Analytics module
	analyticsRepo := analytics.NewPgxRepository(cfg.DBPool)
	analyticsService := analytics.NewService(analyticsRepo, bookingService)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,

		UserService:      userService,
		FacilityService:  facilityService,
		CourtService:     courtService,
		BookingService:   bookingService,
		ReviewService:    reviewService,
		PhotoService:     photoService,
		AnalyticsService: analyticsService,

		JWTManager: jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
