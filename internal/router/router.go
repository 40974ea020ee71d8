package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tkstudio/site-backend/internal/config"
	"github.com/tkstudio/site-backend/internal/handler"
	"github.com/tkstudio/site-backend/internal/middleware"
	"github.com/tkstudio/site-backend/internal/response"
	"github.com/tkstudio/site-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth        *handler.AuthHandler
	Portfolio   *handler.PortfolioHandler
	Gallery     *handler.GalleryHandler
	Service     *handler.ServiceHandler
	Team        *handler.TeamHandler
	Testimonial *handler.TestimonialHandler
	Blog        *handler.BlogHandler
	Inquiry     *handler.InquiryHandler
	Stats       *handler.StatsHandler
}

// SetupRouter configures all Gin route groups. Reads are public; every
// mutation except inquiry creation requires the admin guard. limiter may be
// nil (tests), which leaves credential endpoints unthrottled.
func SetupRouter(
	authService *service.AuthService,
	admins middleware.AdminFinder,
	handlers *Handlers,
	limiter *middleware.RateLimiter,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	guard := middleware.RequireAdmin(authService, admins)

	throttled := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if limiter == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{limiter.Middleware(), h}
	}

	api := router.Group("/api")

	// ─── Auth ──────────────────────────────────────────────────────────
	auth := api.Group("/auth")
	{
		auth.POST("/register", throttled(handlers.Auth.Register)...)
		auth.POST("/login", throttled(handlers.Auth.Login)...)
		auth.GET("/me", guard, handlers.Auth.Me)
	}

	// ─── Portfolio ─────────────────────────────────────────────────────
	portfolio := api.Group("/portfolio")
	{
		portfolio.GET("", handlers.Portfolio.List)
		portfolio.GET("/:id", handlers.Portfolio.Get)
		portfolio.POST("", guard, handlers.Portfolio.Create)
		portfolio.PUT("/:id", guard, handlers.Portfolio.Update)
		portfolio.DELETE("/:id", guard, handlers.Portfolio.Delete)
	}

	// ─── Gallery ───────────────────────────────────────────────────────
	gallery := api.Group("/gallery")
	{
		gallery.GET("", handlers.Gallery.List)
		gallery.GET("/:id", handlers.Gallery.Get)
		gallery.POST("", guard, handlers.Gallery.Create)
		gallery.PUT("/:id", guard, handlers.Gallery.Update)
		gallery.DELETE("/:id", guard, handlers.Gallery.Delete)
	}

	// ─── Services ──────────────────────────────────────────────────────
	services := api.Group("/services")
	{
		services.GET("", handlers.Service.List)
		services.GET("/:id", handlers.Service.Get)
		services.POST("", guard, handlers.Service.Create)
		services.PUT("/:id", guard, handlers.Service.Update)
		services.DELETE("/:id", guard, handlers.Service.Delete)
	}

	// ─── Team ──────────────────────────────────────────────────────────
	team := api.Group("/team")
	{
		team.GET("", handlers.Team.List)
		team.GET("/:id", handlers.Team.Get)
		team.POST("", guard, handlers.Team.Create)
		team.PUT("/:id", guard, handlers.Team.Update)
		team.DELETE("/:id", guard, handlers.Team.Delete)
	}

	// ─── Testimonials ──────────────────────────────────────────────────
	testimonials := api.Group("/testimonials")
	{
		testimonials.GET("", handlers.Testimonial.List)
		testimonials.GET("/:id", handlers.Testimonial.Get)
		testimonials.POST("", guard, handlers.Testimonial.Create)
		testimonials.PUT("/:id", guard, handlers.Testimonial.Update)
		testimonials.DELETE("/:id", guard, handlers.Testimonial.Delete)
	}

	// ─── Blog ──────────────────────────────────────────────────────────
	blog := api.Group("/blog")
	{
		blog.GET("", handlers.Blog.List)
		blog.GET("/:id", handlers.Blog.Get)
		blog.POST("", guard, handlers.Blog.Create)
		blog.PUT("/:id", guard, handlers.Blog.Update)
		blog.DELETE("/:id", guard, handlers.Blog.Delete)
	}

	// ─── Inquiries ─────────────────────────────────────────────────────
	// Creation is the one public mutation; everything else is admin-only.
	inquiries := api.Group("/inquiries")
	{
		inquiries.POST("", throttled(handlers.Inquiry.Create)...)
		inquiries.GET("", guard, handlers.Inquiry.List)
		inquiries.GET("/:id", guard, handlers.Inquiry.Get)
		inquiries.PATCH("/:id/status", guard, handlers.Inquiry.UpdateStatus)
		inquiries.DELETE("/:id", guard, handlers.Inquiry.Delete)
	}

	// ─── Stats ─────────────────────────────────────────────────────────
	api.GET("/stats", guard, handlers.Stats.Get)

	return router
}
