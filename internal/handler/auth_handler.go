package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"mealplanner/internal/model"
	"mealplanner/internal/service"
)

// SessionCookie describes the cookie carrying the session token.
type SessionCookie struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

func (s SessionCookie) issue(token string) *http.Cookie {
	return &http.Cookie{
		Name:     s.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.TTL.Seconds()),
		Expires:  time.Now().Add(s.TTL),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s SessionCookie) clear() *http.Cookie {
	return &http.Cookie{
		Name:     s.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	cookie      SessionCookie
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse wraps a user with a status message.
type UserResponse struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, UserResponse{
		Message: "user successfully created",
		User:    user,
	})
}

// Login godoc
// @Summary Login user
// @Description Sets the HTTP-only session cookie on success.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(err)
	}

	c.SetCookie(h.cookie.issue(token))
	return c.JSON(http.StatusOK, UserResponse{
		Message: "authentication successful",
		User:    user,
	})
}

// Logout godoc
// @Summary Logout user
// @Description Clears the session cookie. Always succeeds.
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var token string
	if cookie, err := c.Cookie(h.cookie.Name); err == nil {
		token = cookie.Value
	}

	h.authService.Logout(c.Request().Context(), token)

	c.SetCookie(h.cookie.clear())
	return c.JSON(http.StatusOK, MessageResponse{Message: "logged out successfully"})
}
