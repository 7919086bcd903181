package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "flashcards/backend/docs"
	"flashcards/backend/internal/handler"
	"flashcards/backend/internal/service"
)

type RouterConfig struct {
	CookieName      string
	FrontendOrigins []string
}

func NewRouter(
	topicHandler *handler.TopicHandler,
	entryHandler *handler.EntryHandler,
	authHandler *handler.AuthHandler,
	importHandler *handler.ImportHandler,
	statsHandler *handler.StatsHandler,
	aiHandler *handler.AIHandler,
	authService service.AuthService,
	cfg RouterConfig,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.FrontendOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	root := e.Group("")
	topicHandler.RegisterRoutes(root)
	entryHandler.RegisterRoutes(root)
	authHandler.RegisterRoutes(root)

	// Management endpoints require a signed-in user.
	protected := e.Group("", SessionAuthMiddleware(authService, cfg.CookieName))
	entryHandler.RegisterManagementRoutes(protected)
	importHandler.RegisterRoutes(protected)
	statsHandler.RegisterRoutes(protected)
	aiHandler.RegisterRoutes(protected)

	return e
}
