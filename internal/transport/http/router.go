package handlers

import (
	"net/http"
	"time"

	"progress-api/internal/domain"
	"progress-api/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(
	progressHandler *ProgressHandler,
	badgeHandler *BadgeHandler,
	courseHandler *CourseHandler,
	verifier *middleware.TokenVerifier,
	limiter *middleware.RateLimiter,
	corsOrigins []string,
) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = corsOrigins
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(config))
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := middleware.Auth(verifier)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// Каталог курсов публичный, фронт читает его до логина
	courses := r.Group("/courses")
	{
		courses.GET("", courseHandler.List)
		courses.GET("/:id", courseHandler.GetOne)
	}

	progress := r.Group("/progress")
	progress.Use(auth)
	{
		progress.POST("", limiter.Limit("enroll", 30, 1*time.Minute), progressHandler.Enroll)
		progress.GET("/user/:email", progressHandler.GetForUser)
		progress.GET("/user/:email/:courseId", progressHandler.GetForUserAndCourse)
		progress.PATCH("/complete-course/:courseId/:userId", limiter.Limit("complete", 30, 1*time.Minute), progressHandler.CompleteCourse)
		progress.GET("/:id", progressHandler.GetOne)
		progress.DELETE("/:id", adminOnly, progressHandler.Remove)
	}

	badges := r.Group("/badges")
	badges.Use(auth)
	{
		badges.GET("", badgeHandler.List)
		badges.GET("/user/:email", badgeHandler.ListForUser)
		badges.POST("", adminOnly, badgeHandler.Issue)
	}

	return r
}
