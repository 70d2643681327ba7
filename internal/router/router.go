package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"newsapi/internal/config"
	"newsapi/internal/handler"
	appmw "newsapi/internal/middleware"
	"newsapi/internal/repository"
)

// Register wires routes and middleware. Admin-gated routes run the full chain
// in order: authenticate, then the admin role check, then the handler.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	categoryHandler *handler.CategoryHandler,
	newsHandler *handler.NewsHandler,
) {
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	// Every external call downstream inherits this deadline.
	e.Use(echomw.ContextTimeout(cfg.RequestTimeout))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authGroup := e.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	api := e.Group("/api")

	// Public reads
	api.GET("/news", newsHandler.List)
	api.GET("/news/:id", newsHandler.Get)
	api.GET("/search", newsHandler.Search)
	api.GET("/categories", categoryHandler.List)

	// Admin-gated mutations
	admin := api.Group("", appmw.Authenticate(cfg.JWTSecret), appmw.RequireAdmin(userRepo))
	admin.POST("/news", newsHandler.Create)
	admin.PUT("/news/:id", newsHandler.Update)
	admin.DELETE("/news/:id", newsHandler.Delete)
	admin.POST("/categories", categoryHandler.Create)
	admin.PUT("/categories/:id", categoryHandler.Update)
	admin.DELETE("/categories/:id", categoryHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
