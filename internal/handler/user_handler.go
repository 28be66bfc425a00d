package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mealplanner/internal/service"
)

// UserHandler serves user lookups.
type UserHandler struct {
	authService service.AuthService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(authService service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// ListUsers godoc
// @Summary List users
// @Tags auth
// @Produce json
// @Security CookieAuth
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.authService.GetAllUsers(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, users)
}

// Me godoc
// @Summary Get current authenticated user
// @Tags auth
// @Produce json
// @Security CookieAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.GetCurrentUser(c.Request().Context(), userID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, user)
}
