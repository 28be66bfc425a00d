package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mealplanner/internal/service"
)

// MealPlanRecipeRequest places one recipe in a plan.
type MealPlanRecipeRequest struct {
	RecipeID      string               `json:"recipeId" validate:"required,max=128"`
	Day           string               `json:"day" validate:"required"`
	MealType      string               `json:"mealType" validate:"required"`
	RecipeDetails RecipeDetailsRequest `json:"recipeDetails"`
}

// MealPlanRequest represents a create meal plan request.
type MealPlanRequest struct {
	Week    string                  `json:"week" validate:"required,max=32"`
	Recipes []MealPlanRecipeRequest `json:"recipes" validate:"required,min=1,dive"`
}

func (r MealPlanRequest) toInput() service.MealPlanInput {
	in := service.MealPlanInput{
		Week:    r.Week,
		Recipes: make([]service.MealPlanRecipeInput, 0, len(r.Recipes)),
	}
	for _, recipe := range r.Recipes {
		in.Recipes = append(in.Recipes, service.MealPlanRecipeInput{
			RecipeID:      recipe.RecipeID,
			Day:           recipe.Day,
			MealType:      recipe.MealType,
			RecipeDetails: recipe.RecipeDetails.toModel(),
		})
	}
	return in
}

// MealPlanHandler handles weekly meal plan endpoints.
type MealPlanHandler struct {
	mealPlanService service.MealPlanService
}

// NewMealPlanHandler creates a new meal plan handler.
func NewMealPlanHandler(mealPlanService service.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{mealPlanService: mealPlanService}
}

// Add godoc
// @Summary Create a meal plan
// @Tags meal-plans
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body MealPlanRequest true "Meal plan"
// @Success 201 {object} model.MealPlan
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /meal-plans [post]
func (h *MealPlanHandler) Add(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req MealPlanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	plan, err := h.mealPlanService.Add(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, plan)
}

// List godoc
// @Summary List meal plans of the current user
// @Tags meal-plans
// @Produce json
// @Security CookieAuth
// @Success 200 {array} model.MealPlan
// @Failure 401 {object} errors.ErrorResponse
// @Router /meal-plans [get]
func (h *MealPlanHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	plans, err := h.mealPlanService.List(c.Request().Context(), userID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, plans)
}

// Delete godoc
// @Summary Delete a meal plan
// @Tags meal-plans
// @Produce json
// @Security CookieAuth
// @Param id path string true "Meal plan ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /meal-plans/{id} [delete]
func (h *MealPlanHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.mealPlanService.Delete(c.Request().Context(), userID, id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "meal plan deleted"})
}
