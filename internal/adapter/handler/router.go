package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/csiedev/meeting-records/internal/infrastructure/http/middleware"
	"github.com/csiedev/meeting-records/pkg/config"
	"github.com/csiedev/meeting-records/pkg/jwt"
)

// Router holds all handlers
type Router struct {
	cfg        *config.Config
	jwtManager *jwt.Manager

	authHandler    *Auth
	personHandler  *Person
	meetingHandler *Meeting
	motionHandler  *Motion
	statsHandler   *Stats
	searchHandler  *Search
	miscHandler    *Misc
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	jwtManager *jwt.Manager,
	authHandler *Auth,
	personHandler *Person,
	meetingHandler *Meeting,
	motionHandler *Motion,
	statsHandler *Stats,
	searchHandler *Search,
	miscHandler *Misc,
) *Router {
	return &Router{
		cfg:            cfg,
		jwtManager:     jwtManager,
		authHandler:    authHandler,
		personHandler:  personHandler,
		meetingHandler: meetingHandler,
		motionHandler:  motionHandler,
		statsHandler:   statsHandler,
		searchHandler:  searchHandler,
		miscHandler:    miscHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupPersonRoutes(v1)
	rt.setupMeetingRoutes(v1)
	rt.setupMotionRoutes(v1)
	rt.setupStatsRoutes(v1)
	rt.setupSearchRoutes(v1)
	rt.setupMiscRoutes(v1)
}

func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.POST("/refresh", rt.authHandler.Refresh)
	authGroup.POST("/recover", rt.authHandler.RecoverPassword)
	authGroup.POST("/password", rt.authHandler.ChangePassword, middleware.Auth(rt.jwtManager))
}

func (rt *Router) setupPersonRoutes(g *echo.Group) {
	people := g.Group("/people", middleware.Auth(rt.jwtManager))

	people.GET("/me", rt.personHandler.Me)
	people.GET("", rt.personHandler.List)
	people.GET("/:id", rt.personHandler.Get)

	admin := g.Group("/people", middleware.Auth(rt.jwtManager), middleware.RequireAdmin())
	admin.POST("", rt.personHandler.Create)
	admin.PUT("/:id", rt.personHandler.Update)
	admin.DELETE("/:id", rt.personHandler.Delete)
}

func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings", middleware.Auth(rt.jwtManager))

	meetings.GET("", rt.meetingHandler.List)
	meetings.GET("/years", rt.meetingHandler.YearIndex)
	meetings.GET("/:id", rt.meetingHandler.Get)
	meetings.POST("/:id/confirm", rt.meetingHandler.Confirm)
	meetings.DELETE("/:id/confirm", rt.meetingHandler.RevokeConfirmation)
	meetings.GET("/:id/attachments/:attachmentID/url", rt.meetingHandler.AttachmentURL)

	admin := g.Group("/meetings", middleware.Auth(rt.jwtManager), middleware.RequireAdmin())
	admin.POST("", rt.meetingHandler.Create)
	admin.PUT("/:id", rt.meetingHandler.Update)
	admin.DELETE("/:id", rt.meetingHandler.Delete)
	admin.PUT("/:id/attendees", rt.meetingHandler.SetAttendees)
	admin.PUT("/:id/presence", rt.meetingHandler.MarkPresent)
	admin.POST("/:id/attachments", rt.meetingHandler.AddAttachment)
	admin.DELETE("/:id/attachments/:attachmentID", rt.meetingHandler.DeleteAttachment)
	admin.POST("/:id/notify", rt.meetingHandler.Notify)
}

func (rt *Router) setupMotionRoutes(g *echo.Group) {
	motions := g.Group("/motions", middleware.Auth(rt.jwtManager))

	motions.GET("", rt.motionHandler.List)
	motions.GET("/:id", rt.motionHandler.Get)

	admin := g.Group("/motions", middleware.Auth(rt.jwtManager), middleware.RequireAdmin())
	admin.POST("", rt.motionHandler.Create)
	admin.PUT("/:id", rt.motionHandler.Update)
	admin.PUT("/:id/status", rt.motionHandler.UpdateStatus)
	admin.DELETE("/:id", rt.motionHandler.Delete)
}

func (rt *Router) setupStatsRoutes(g *echo.Group) {
	statsGroup := g.Group("/stats", middleware.Auth(rt.jwtManager), middleware.RequireAdmin())

	statsGroup.GET("/overview", rt.statsHandler.Overview)
	statsGroup.GET("/semester", rt.statsHandler.Semester)
}

func (rt *Router) setupSearchRoutes(g *echo.Group) {
	searchGroup := g.Group("/search", middleware.Auth(rt.jwtManager))

	searchGroup.GET("/meetings", rt.searchHandler.Meetings)
	searchGroup.GET("/people", rt.searchHandler.People)
}

func (rt *Router) setupMiscRoutes(g *echo.Group) {
	// Feedback submission is anonymous on purpose
	g.POST("/feedback", rt.miscHandler.SubmitFeedback)
	g.GET("/feedback", rt.miscHandler.ListFeedback,
		middleware.Auth(rt.jwtManager), middleware.RequireAdmin())

	templates := g.Group("/templates", middleware.Auth(rt.jwtManager), middleware.RequireAdmin())
	templates.POST("", rt.miscHandler.CreateTemplate)
	templates.GET("", rt.miscHandler.ListTemplates)
	templates.DELETE("/:id", rt.miscHandler.DeleteTemplate)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
