package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"obtconnect/internal/auth"
	"obtconnect/internal/config"
	"obtconnect/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	memberHandler *handler.MemberHandler,
	teamHandler *handler.TeamHandler,
	adminHandler *handler.AdminHandler,
	profileHandler *handler.ProfileHandler,
	aiHandler *handler.AIHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/otp", authHandler.RequestCode)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	// District rosters
	secured.GET("/districts/stats", memberHandler.Stats)
	secured.GET("/districts/:district/members", memberHandler.List)
	secured.POST("/districts/:district/members", memberHandler.Save)
	secured.DELETE("/districts/:district/members/:id", memberHandler.Delete)

	// Special team rosters (state, master)
	secured.GET("/teams/:team/members", teamHandler.List)
	secured.POST("/teams/:team/members", teamHandler.Save)
	secured.DELETE("/teams/:team/members/:id", teamHandler.Delete)

	// Approvals and message board
	secured.GET("/admin/pending", adminHandler.ListPending)
	secured.POST("/admin/pending/:id/approve", adminHandler.Approve)
	secured.POST("/admin/pending/:id/reject", adminHandler.Reject)
	secured.GET("/messages", adminHandler.ListMessages)
	secured.POST("/messages", adminHandler.PostMessage)

	// Profile self-service
	secured.GET("/profile", profileHandler.Get)
	secured.PUT("/profile", profileHandler.Update)

	// AI features
	secured.POST("/districts/:district/analyze", aiHandler.Analyze)
	secured.POST("/ai/image-edit", aiHandler.EditImage)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
