package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/navyashreebh2-create/diary-baby/internal/auth"
	apperrors "github.com/navyashreebh2-create/diary-baby/internal/errors"
	"github.com/navyashreebh2-create/diary-baby/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	tokens *auth.TokenService,
	authHandler *handler.AuthHandler,
	diaryHandler *handler.DiaryHandler,
	pageHandler *handler.PageHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Page guard runs before every non-API route.
	e.Use(PageGuard(tokens))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Page routes
	e.GET("/login", pageHandler.Login)
	e.GET("/signup", pageHandler.Signup)
	e.GET("/diary", pageHandler.Diary)
	e.GET("/settings", pageHandler.Settings)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes authenticate independently of the page guard: the JWT
	// middleware reads the session cookie and verifies it through the same
	// token service, so API routes stay secure even if the guard is bypassed.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + auth.SessionCookieName,
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			return tokens.Verify(raw)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "Please log in to continue",
				Code:  "AUTH_REQUIRED",
			})
		},
	}))

	secured.GET("/auth/me", authHandler.Me)

	// Diary routes
	secured.GET("/diary", diaryHandler.List)
	secured.POST("/diary", diaryHandler.Create)
	secured.GET("/diary/dates", diaryHandler.Dates)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
