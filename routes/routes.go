package routes

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"popin/middlewares"
	"popin/models"
	"popin/services"
	"popin/utils"
)

// Deps is everything the route handlers need, wired up by main.
type Deps struct {
	Users         models.UserRepository
	Events        models.EventRepository
	Regs          models.RegistrationRepository
	Reports       models.ReportRepository
	Registrations *services.RegistrationService
	Redis         *redis.Client
	Invalidator   *utils.CacheInvalidator
	QuotaLimit    int
}

type deps struct{ Deps }

func RegisterRoutes(server *gin.Engine, dd Deps) {
	d := &deps{dd}

	// Global per-IP limiter.
	globalLimiter := middlewares.NewRateLimiter(middlewares.LimiterConfig{
		RPS:     20,
		Burst:   40,
		IdleTTL: 3 * time.Minute,
	})
	server.Use(globalLimiter.Middleware(func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	}))

	// Stricter limit on the credential endpoints.
	authLimiter := middlewares.NewRateLimiter(middlewares.LimiterConfig{
		RPS:     0.5,
		Burst:   2,
		IdleTTL: 10 * time.Minute,
	})
	server.POST("/signup",
		authLimiter.Middleware(func(c *gin.Context) string { return "signup:" + c.ClientIP() }),
		d.signup,
	)
	server.POST("/login",
		authLimiter.Middleware(func(c *gin.Context) string { return "login:" + c.ClientIP() }),
		d.login,
	)

	// Public browse endpoints.
	server.GET("/events", d.getEvents)
	server.GET("/events/upcoming", d.getUpcomingEvents)
	server.GET("/events/:id", d.getEvent)
	server.GET("/events/:id/availability", d.getAvailability)

	// Everything else requires a token; authenticated callers also get a
	// per-user limiter and a daily quota.
	auth := server.Group("/")
	auth.Use(middlewares.Authenticate)

	userLimiter := middlewares.NewRateLimiter(middlewares.LimiterConfig{
		RPS:     5,
		Burst:   10,
		IdleTTL: 10 * time.Minute,
	})
	auth.Use(userLimiter.Middleware(func(c *gin.Context) string {
		return "u:" + strconv.FormatInt(c.GetInt64("userId"), 10)
	}))

	auth.Use(middlewares.Quota(d.Redis, middlewares.QuotaRule{
		Limit:  d.QuotaLimit,
		Window: 24 * time.Hour,
		KeyFn: func(c *gin.Context) string {
			uid := c.GetInt64("userId")
			if uid == 0 {
				return ""
			}
			return fmt.Sprintf("quota:user:%d:day", uid)
		},
	}))

	// Organizer surface.
	auth.POST("/events", middlewares.RequireRole(models.RoleOrganizer), d.createEvent)
	auth.PUT("/events/:id", d.updateEvent)
	auth.DELETE("/events/:id", d.deleteEvent)
	auth.GET("/events/:id/attendees", d.listAttendees)
	auth.POST("/events/:id/checkin", d.checkInAttendee)
	auth.GET("/my/events", d.getMyEvents)

	// Attendee surface.
	auth.POST("/events/:id/register", d.registerForEvent)
	auth.DELETE("/events/:id/register", d.cancelRegistration)
	auth.GET("/registrations", d.getMyRegistrations)
	auth.POST("/events/:id/report", d.reportEvent)

	// Profile.
	auth.GET("/profile", d.getProfile)
	auth.PUT("/profile/username", d.updateUsername)
	auth.PUT("/profile/password", d.updatePassword)
	auth.GET("/profile/notifications", d.getNotifications)
	auth.PUT("/profile/notifications", d.updateNotifications)

	// Admin surface.
	admin := auth.Group("/admin")
	admin.Use(middlewares.RequireRole(models.RoleAdmin))
	admin.GET("/analytics", d.getAnalytics)
	admin.GET("/users", d.listUsers)
	admin.DELETE("/users/:id", d.deleteUser)
	admin.GET("/reports", d.getReports)
}

// eventIDParam parses the :id path segment; a non-numeric id aborts with 400.
func eventIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"message": "Invalid event id."})
		return 0, false
	}
	return id, true
}
