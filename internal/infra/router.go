package infra

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	_ "github.com/umalmyha/customers/docs" // swagger spec
	"github.com/umalmyha/customers/internal/handlers"
	"github.com/umalmyha/customers/internal/middleware"
)

var corsAllowHeaders = []string{
	echo.HeaderContentType,
	echo.HeaderAccessControlAllowHeaders,
	echo.HeaderAuthorization,
	"X-Request-With",
}

// Router builds echo instance with customers api mounted on /api/customers and /customers
func Router(customerHandler *handlers.CustomerHTTPHandler, healthHandler *handlers.HealthHTTPHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(logrus.StandardLogger()))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		Skipper: func(c echo.Context) bool {
			// plain OPTIONS without Origin reaches handlers
			return c.Request().Header.Get(echo.HeaderOrigin) == ""
		},
		AllowOrigins: []string{"*"},
		AllowHeaders: corsAllowHeaders,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))

	// query id contract
	e.Any(handlers.CustomersPath, customerHandler.Dispatch)

	// API routes
	api := e.Group("/api")

	customersAPI := api.Group("/customers")
	customersAPI.Any("", customerHandler.Dispatch)
	customersAPI.GET("/:id", customerHandler.Get)
	customersAPI.PUT("/:id", customerHandler.Put)
	customersAPI.PATCH("/:id", customerHandler.Put)
	customersAPI.DELETE("/:id", customerHandler.DeleteByID)

	e.GET("/health", healthHandler.Check)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
