package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"mealplanner/internal/config"
	"mealplanner/internal/errors"
	"mealplanner/internal/handler"
	"mealplanner/internal/logger"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *logger.Logger,
	guard echo.MiddlewareFunc,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	favoriteHandler *handler.FavoriteHandler,
	mealPlanHandler *handler.MealPlanHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes, rate limited per client IP
	authRoutes := api.Group("/auth", rateLimiter(cfg.Limit))
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/logout", authHandler.Logout)

	// Secured routes (require a valid session cookie), outside the credential rate limit
	api.GET("/auth/me", userHandler.Me, guard)
	api.GET("/auth/users", userHandler.ListUsers, guard)

	favorites := api.Group("/favorites", guard)
	favorites.POST("", favoriteHandler.Add)
	favorites.GET("", favoriteHandler.List)
	favorites.GET("/:id", favoriteHandler.Get)
	favorites.PUT("/:id", favoriteHandler.Update)
	favorites.DELETE("/:id", favoriteHandler.Delete)

	mealPlans := api.Group("/meal-plans", guard)
	mealPlans.POST("", mealPlanHandler.Add)
	mealPlans.GET("", mealPlanHandler.List)
	mealPlans.DELETE("/:id", mealPlanHandler.Delete)
}

func rateLimiter(cfg config.RateLimit) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RPS),
			Burst:     cfg.Burst,
			ExpiresIn: 10 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, errors.ErrorResponse{
				Error: "too many requests",
				Code:  "RATE_LIMITED",
			})
		},
	})
}

// requestLogger writes one slog record per request. Server errors carry the internal cause.
func requestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			if v.Error != nil && level == slog.LevelError {
				attrs = append(attrs, slog.String("err", internalCause(v.Error).Error()))
			}
			log.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

func internalCause(err error) error {
	if he, ok := err.(*echo.HTTPError); ok && he.Internal != nil {
		return he.Internal
	}
	return err
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
