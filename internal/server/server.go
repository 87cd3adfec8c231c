package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"courtbook/internal/auth"
	"courtbook/internal/availability"
	"courtbook/internal/booking"
	"courtbook/internal/cache"
	"courtbook/internal/coach"
	"courtbook/internal/config"
	"courtbook/internal/court"
	"courtbook/internal/equipment"
	"courtbook/internal/pricing"
	"courtbook/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, refCache *cache.Cache) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(50, 100))

	userHandler := user.NewHandler(db, cfg.JWTSecret)
	courtHandler := court.NewHandler(db, refCache)
	coachHandler := coach.NewHandler(db, refCache)
	equipmentHandler := equipment.NewHandler(db, refCache)
	pricingHandler := pricing.NewHandler(db, refCache)
	availabilityHandler := availability.NewHandler(db, refCache, cfg.OpenHour, cfg.CloseHour)
	bookingHandler := booking.NewHandler(db, cfg.OpenHour, cfg.CloseHour)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)

		protected.GET("/courts", courtHandler.ListCourts)
		protected.GET("/courts/:courtID/slots", availabilityHandler.CourtSlots)
		protected.GET("/coaches", coachHandler.ListCoaches)
		protected.GET("/coaches/availability", availabilityHandler.CoachAvailability)
		protected.GET("/equipment", equipmentHandler.ListEquipment)
		protected.GET("/equipment/availability", availabilityHandler.EquipmentAvailability)

		protected.GET("/pricing/rules", pricingHandler.ListRules)
		protected.POST("/pricing/quote", pricingHandler.Quote)

		protected.POST("/bookings", bookingHandler.CreateBooking)
		protected.GET("/bookings", bookingHandler.ListMyBookings)
		protected.POST("/bookings/:bookingID/cancel", bookingHandler.CancelBooking)

		protected.POST("/waitlist", bookingHandler.JoinWaitlist)
		protected.GET("/waitlist", bookingHandler.ListMyWaitlist)
	}

	adminMiddleware := auth.RequireRole("admin")
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/courts", courtHandler.CreateCourt)
		admin.POST("/coaches", coachHandler.CreateCoach)
		admin.POST("/equipment", equipmentHandler.CreateEquipment)
		admin.POST("/pricing/rules", pricingHandler.CreateRule)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:         ":" + port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
