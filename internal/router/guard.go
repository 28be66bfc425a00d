package router

import (
	"net/http"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"mealplanner/internal/auth"
	"mealplanner/internal/errors"
)

// Guard returns the middleware protecting authenticated routes. It reads the
// session cookie, verifies it with codec and attaches the user id to both the
// echo context and the request context. It never refreshes the token.
// revocations may be nil, in which case sessions are purely stateless.
func Guard(codec *auth.TokenCodec, revocations auth.TokenStoreInterface, cookieName string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + cookieName,
		ContextKey:  auth.ContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := codec.Parse(token)
			if err != nil {
				return nil, err
			}
			if revocations != nil && revocations.IsRevoked(c.Request().Context(), claims.ID) {
				return nil, auth.ErrInvalidToken
			}
			return claims.UserID, nil
		},
		SuccessHandler: func(c echo.Context) {
			if id, ok := c.Get(auth.ContextKey).(uuid.UUID); ok {
				req := c.Request()
				c.SetRequest(req.WithContext(auth.WithUserID(req.Context(), id)))
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: errors.ErrUnauthorized.Error(),
				Code:  "UNAUTHORIZED",
			}).SetInternal(err)
		},
	})
}
