package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mealplanner/internal/model"
	"mealplanner/internal/service"
)

// RecipeDetailsRequest is the recipe snapshot sent by the client.
type RecipeDetailsRequest struct {
	Title     string `json:"title" validate:"required,max=255"`
	Image     string `json:"image" validate:"max=1024"`
	SourceURL string `json:"sourceUrl" validate:"omitempty,url,max=1024"`
}

func (r RecipeDetailsRequest) toModel() model.RecipeDetails {
	return model.RecipeDetails{
		Title:     r.Title,
		Image:     r.Image,
		SourceURL: r.SourceURL,
	}
}

// FavoriteRequest represents a create or update favorite request.
type FavoriteRequest struct {
	RecipeID      string               `json:"recipeId" validate:"required,max=128"`
	RecipeDetails RecipeDetailsRequest `json:"recipeDetails"`
}

func (r FavoriteRequest) toInput() service.FavoriteInput {
	return service.FavoriteInput{
		RecipeID:      r.RecipeID,
		RecipeDetails: r.RecipeDetails.toModel(),
	}
}

// FavoriteHandler handles favorite recipe endpoints.
type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// Add godoc
// @Summary Add a favorite recipe
// @Tags favorites
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body FavoriteRequest true "Favorite"
// @Success 201 {object} model.Favorite
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /favorites [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req FavoriteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	favorite, err := h.favoriteService.Add(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, favorite)
}

// List godoc
// @Summary List favorite recipes of the current user
// @Tags favorites
// @Produce json
// @Security CookieAuth
// @Success 200 {array} model.Favorite
// @Failure 401 {object} errors.ErrorResponse
// @Router /favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	favorites, err := h.favoriteService.List(c.Request().Context(), userID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, favorites)
}

// Get godoc
// @Summary Get a favorite recipe
// @Tags favorites
// @Produce json
// @Security CookieAuth
// @Param id path string true "Favorite ID"
// @Success 200 {object} model.Favorite
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /favorites/{id} [get]
func (h *FavoriteHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	favorite, err := h.favoriteService.Get(c.Request().Context(), userID, id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, favorite)
}

// Update godoc
// @Summary Update a favorite recipe
// @Tags favorites
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Favorite ID"
// @Param request body FavoriteRequest true "Favorite"
// @Success 200 {object} model.Favorite
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /favorites/{id} [put]
func (h *FavoriteHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req FavoriteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	favorite, err := h.favoriteService.Update(c.Request().Context(), userID, id, req.toInput())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, favorite)
}

// Delete godoc
// @Summary Delete a favorite recipe
// @Tags favorites
// @Produce json
// @Security CookieAuth
// @Param id path string true "Favorite ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /favorites/{id} [delete]
func (h *FavoriteHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.favoriteService.Delete(c.Request().Context(), userID, id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "favorite deleted"})
}
