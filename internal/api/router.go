package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quickcourt/quickcourt-backend/internal/analytics"
	analyticsHttp "github.com/quickcourt/quickcourt-backend/internal/analytics/http"
	"github.com/quickcourt/quickcourt-backend/internal/auth"
	"github.com/quickcourt/quickcourt-backend/internal/booking"
	bookingHttp "github.com/quickcourt/quickcourt-backend/internal/booking/http"
	"github.com/quickcourt/quickcourt-backend/internal/court"
	courtHttp "github.com/quickcourt/quickcourt-backend/internal/court/http"
	"github.com/quickcourt/quickcourt-backend/internal/facility"
	facilityHttp "github.com/quickcourt/quickcourt-backend/internal/facility/http"
	"github.com/quickcourt/quickcourt-backend/internal/metrics"
	"github.com/quickcourt/quickcourt-backend/internal/photo"
	photoHttp "github.com/quickcourt/quickcourt-backend/internal/photo/http"
	"github.com/quickcourt/quickcourt-backend/internal/review"
	reviewHttp "github.com/quickcourt/quickcourt-backend/internal/review/http"
	"github.com/quickcourt/quickcourt-backend/internal/user"
	userHttp "github.com/quickcourt/quickcourt-backend/internal/user/http"
)

// Config holds everything the router needs to assemble middleware and
// register module routes.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	RateLimitRPS   float64
	RateLimitBurst int

	UserService      user.Service
	FacilityService  facility.Service
	CourtService     court.Service
	BookingService   booking.Service
	ReviewService    review.Service
	PhotoService     photo.Service
	AnalyticsService analytics.Service

	JWTManager *auth.JWTManager
}

// NewRouter assembles the Gin engine: global middleware, the /v1 API
// surface, and the operational endpoints.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(), Metrics())

	if cfg.RateLimitRPS > 0 {
		r.Use(NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())
	}

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	metrics.Register()

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	ownerMiddleware := auth.RequireRole(string(user.RoleOwner), string(user.RoleAdmin))
	adminMiddleware := auth.RequireRole(string(user.RoleAdmin))

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	facilityHandler := facilityHttp.NewHandler(cfg.FacilityService)
	courtHandler := courtHttp.NewHandler(cfg.CourtService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	reviewHandler := reviewHttp.NewHandler(cfg.ReviewService)
	photoHandler := photoHttp.NewHandler(cfg.PhotoService)
	analyticsHandler := analyticsHttp.NewHandler(cfg.AnalyticsService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		facilityHttp.RegisterRoutes(v1, facilityHandler, authMiddleware, ownerMiddleware, adminMiddleware)
		courtHttp.RegisterRoutes(v1, courtHandler, authMiddleware, ownerMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		reviewHttp.RegisterRoutes(v1, reviewHandler, authMiddleware)
		photoHttp.RegisterRoutes(v1, photoHandler, authMiddleware, ownerMiddleware)
		analyticsHttp.RegisterRoutes(v1, analyticsHandler, authMiddleware, ownerMiddleware, adminMiddleware)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func splitOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
