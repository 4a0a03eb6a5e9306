package rest

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
	"backoffice-api/app/rest/handlers"
	custommw "backoffice-api/app/rest/middleware"
	apperrors "backoffice-api/app/utils/errors"
	"backoffice-api/app/utils/validator"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger          *slog.Logger
	AuthUsecase     port.AuthUsecase
	ProfileUsecase  port.ProfileUsecase
	ClientUsecase   port.ClientUsecase
	GrantUsecase    port.GrantUsecase
	BlogUsecase     port.BlogUsecase
	InquiryUsecase  port.InquiryUsecase
	TaskUsecase     port.TaskUsecase
	EnableDebug     bool
	EnableRateLimit bool
	CORSOrigins     []string
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug
	e.Validator = validator.New()
	e.HTTPErrorHandler = errorHandler(config.Logger)

	// Handlers
	profileHandler := handlers.NewProfileHandler(config.ProfileUsecase, config.Logger)
	clientHandler := handlers.NewClientHandler(config.ClientUsecase, config.Logger)
	grantHandler := handlers.NewGrantHandler(config.GrantUsecase, config.Logger)
	blogHandler := handlers.NewBlogHandler(config.BlogUsecase, config.Logger)
	inquiryHandler := handlers.NewInquiryHandler(config.InquiryUsecase, config.ClientUsecase, config.Logger)
	taskHandler := handlers.NewTaskHandler(config.TaskUsecase, config.Logger)

	// Middleware
	authMiddleware := custommw.NewAuthMiddleware(config.AuthUsecase, config.Logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.CORSWithOrigins(config.CORSOrigins))
	e.Use(custommw.SecurityHeaders())

	if config.EnableRateLimit {
		rateLimiter := custommw.NewRateLimiter()
		e.Use(rateLimiter.RateLimit())
	}

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	v1 := e.Group("/v1")

	// Public endpoints: health and the marketing-site inquiry form.
	v1.POST("/public/clients/:slug/inquiries", inquiryHandler.SubmitInquiry)

	// Own profile: any authenticated role, no tenant needed.
	v1.GET("/profile", profileHandler.GetOwnProfile, authMiddleware.RequireAuth())

	// Client directory and grant administration: admin only.
	admin := v1.Group("")
	admin.Use(authMiddleware.RequireAuth(domain.RoleAdmin))
	admin.POST("/clients", clientHandler.CreateClient)
	admin.GET("/clients", clientHandler.ListClients)
	admin.GET("/clients/:clientId", clientHandler.GetClient)
	admin.POST("/clients/:clientId/suspend", clientHandler.SuspendClient)
	admin.POST("/clients/:clientId/activate", clientHandler.ActivateClient)
	admin.POST("/grants", grantHandler.GrantClient)
	admin.GET("/grants/:userId", grantHandler.ListGrants)
	admin.DELETE("/grants/:userId/:clientId", grantHandler.RevokeClient)
	admin.POST("/profiles", profileHandler.CreateProfile)
	admin.PUT("/profiles/:userId/role", profileHandler.ChangeRole)

	// Staff routes: admins and employees manage any granted client.
	staff := v1.Group("")
	staff.Use(authMiddleware.RequireAuth(domain.RoleAdmin, domain.RoleEmployee))
	staff.GET("/profiles", profileHandler.ListProfiles)
	staff.GET("/inquiries", inquiryHandler.ListInquiries)
	staff.GET("/inquiries/:inquiryId", inquiryHandler.GetInquiry)
	staff.PUT("/inquiries/:inquiryId/status", inquiryHandler.UpdateInquiryStatus)
	staff.POST("/tasks", taskHandler.CreateTask)
	staff.GET("/tasks", taskHandler.ListTasks)
	staff.GET("/tasks/:taskId", taskHandler.GetTask)
	staff.PUT("/tasks/:taskId/status", taskHandler.UpdateTaskStatus)
	staff.POST("/tasks/:taskId/assign/:userId", taskHandler.AssignTask)

	// Blog routes: every role; clients are confined to their home
	// client by the tenant resolution inside each handler.
	blog := v1.Group("/blog")
	blog.Use(authMiddleware.RequireAuth(domain.RoleAdmin, domain.RoleEmployee, domain.RoleClient))
	blog.POST("", blogHandler.CreateBlogPost)
	blog.GET("", blogHandler.ListBlogPosts)
	blog.GET("/:postId", blogHandler.GetBlogPost)
	blog.POST("/:postId/publish", blogHandler.PublishBlogPost)
	blog.DELETE("/:postId", blogHandler.DeleteBlogPost)

	return e
}

// RegisterHealthRoutes wires the health endpoints. Separate from
// NewRouter so the container can pass live driver handles.
func RegisterHealthRoutes(e *echo.Echo, healthHandler *handlers.HealthHandler) {
	e.GET("/v1/health", healthHandler.HealthCheck)
	e.GET("/v1/ready", healthHandler.ReadinessCheck)
}

// errorHandler renders every uncaught error as the JSON error shape
// the API promises. echo's default handler uses a "message" key.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal server error"

		if httpErr, ok := err.(*echo.HTTPError); ok {
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}
		} else if appErr, ok := apperrors.AsAppError(err); ok {
			status = appErr.StatusCode
			message = appErr.Message
			logger.Error("request failed",
				"code", appErr.Code,
				"error", err,
				"path", c.Request().URL.Path)
		} else {
			logger.Error("unhandled request error", "error", err, "path", c.Request().URL.Path)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, handlers.ErrorResponse{Error: message})
	}
}
