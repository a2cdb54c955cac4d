package server

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/thedcode/backend/internal/config"
	"github.com/thedcode/backend/internal/mailer"
	"github.com/thedcode/backend/internal/models"
	"github.com/thedcode/backend/internal/ratelimit"
)

type Server struct {
	DB         *gorm.DB
	Cfg        config.AppConfig
	PinLimiter *ratelimit.Limiter
	Mailer     *mailer.Client
	Log        *zap.SugaredLogger
}

func New(e *echo.Echo, db *gorm.DB, cfg config.AppConfig, log *zap.SugaredLogger) *Server {
	// Auto-migrate schema
	_ = db.AutoMigrate(
		&models.User{},
		&models.LoginAttempt{},
		&models.GalleryImage{},
		&models.Testimonial{},
		&models.BlogPost{},
		&models.Lead{},
		&models.AdminActivity{},
	)

	s := &Server{
		DB:         db,
		Cfg:        cfg,
		PinLimiter: ratelimit.New(cfg.PinRateWindow, cfg.PinMaxAttempts),
		Mailer:     mailer.New(cfg.BrevoAPIKey),
		Log:        log,
	}

	// Security middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.Secure())
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20))) // 20 requests per second

	// Health
	e.GET("/health", s.Health)

	// Public site reads
	e.GET("/gallery", s.PublicGallery)
	e.GET("/testimonials", s.PublicTestimonials)
	e.GET("/blog", s.PublicBlogPosts)
	e.GET("/blog/:slug", s.PublicBlogPostBySlug)

	// Contact form (public)
	e.POST("/submit-lead", s.SubmitLead)
	e.POST("/send-contact-email", s.SendContactEmail)

	// Admin login flow (public routes)
	e.POST("/admin/validate-pin", s.ValidatePin)
	e.POST("/login", s.Login)

	// Auth (protected routes)
	authGroup := e.Group("/auth")
	authGroup.Use(s.JWTMiddleware())
	authGroup.POST("/logout", s.Logout)
	authGroup.GET("/profile", s.GetProfile)

	// Admin routes (require admin authentication)
	adminGroup := e.Group("/admin")
	adminGroup.Use(s.JWTMiddleware())
	adminGroup.Use(s.AdminMiddleware())

	// Admin dashboard. The audit trail covers every admin's actions, so
	// reading it takes the super_admin role.
	adminGroup.GET("/dashboard", s.AdminDashboard)
	adminGroup.GET("/activities", s.AdminActivities, s.SuperAdminMiddleware())

	// Gallery management
	adminGroup.GET("/gallery", s.AdminListGalleryImages)
	adminGroup.POST("/gallery", s.AdminCreateGalleryImage)
	adminGroup.PUT("/gallery/:id", s.AdminUpdateGalleryImage)
	adminGroup.DELETE("/gallery/:id", s.AdminDeleteGalleryImage)

	// Testimonial management
	adminGroup.GET("/testimonials", s.AdminListTestimonials)
	adminGroup.POST("/testimonials", s.AdminCreateTestimonial)
	adminGroup.PUT("/testimonials/:id", s.AdminUpdateTestimonial)
	adminGroup.DELETE("/testimonials/:id", s.AdminDeleteTestimonial)

	// Blog management
	adminGroup.GET("/blog", s.AdminListBlogPosts)
	adminGroup.POST("/blog", s.AdminCreateBlogPost)
	adminGroup.PUT("/blog/:id", s.AdminUpdateBlogPost)
	adminGroup.DELETE("/blog/:id", s.AdminDeleteBlogPost)

	// Lead management
	adminGroup.GET("/leads", s.AdminListLeads)
	adminGroup.PUT("/leads/:id", s.AdminUpdateLead)
	adminGroup.DELETE("/leads/:id", s.AdminDeleteLead)

	// Start cleanup job for old login attempts
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			s.CleanupOldAttempts()
		}
	}()

	return s
}
