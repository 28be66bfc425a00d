package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "mealplanner/internal/errors"
	"mealplanner/internal/model"
	"mealplanner/internal/repository"
)

// MealPlanRecipeInput places one recipe in a new plan. Day and MealType are matched case-insensitively.
type MealPlanRecipeInput struct {
	RecipeID      string
	Day           string
	MealType      string
	RecipeDetails model.RecipeDetails
}

// MealPlanInput describes a new weekly plan.
type MealPlanInput struct {
	Week    string
	Recipes []MealPlanRecipeInput
}

// MealPlanService manages the weekly meal plans of a user.
type MealPlanService interface {
	Add(ctx context.Context, userID uuid.UUID, in MealPlanInput) (*model.MealPlan, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.MealPlan, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type mealPlanService struct {
	repo repository.MealPlanRepository
}

// NewMealPlanService creates a new meal plan service.
func NewMealPlanService(repo repository.MealPlanRepository) MealPlanService {
	return &mealPlanService{repo: repo}
}

func (s *mealPlanService) Add(ctx context.Context, userID uuid.UUID, in MealPlanInput) (*model.MealPlan, error) {
	week := strings.TrimSpace(in.Week)
	if week == "" {
		return nil, fmt.Errorf("%w: week is required", apperrors.ErrInvalidInput)
	}
	if len(in.Recipes) == 0 {
		return nil, fmt.Errorf("%w: at least one recipe is required", apperrors.ErrInvalidInput)
	}

	plan := &model.MealPlan{
		ID:      uuid.New(),
		UserID:  userID,
		Week:    week,
		Recipes: make([]model.MealPlanRecipe, 0, len(in.Recipes)),
	}
	for i, r := range in.Recipes {
		recipe, err := buildMealPlanRecipe(plan.ID, r)
		if err != nil {
			return nil, fmt.Errorf("recipe %d: %w", i+1, err)
		}
		plan.Recipes = append(plan.Recipes, recipe)
	}

	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("create meal plan: %w", err)
	}
	return plan, nil
}

func buildMealPlanRecipe(planID uuid.UUID, in MealPlanRecipeInput) (model.MealPlanRecipe, error) {
	recipeID := strings.TrimSpace(in.RecipeID)
	if recipeID == "" {
		return model.MealPlanRecipe{}, fmt.Errorf("%w: recipeId is required", apperrors.ErrInvalidInput)
	}
	day, ok := model.ParseDay(in.Day)
	if !ok {
		return model.MealPlanRecipe{}, fmt.Errorf("%w: unknown day %q", apperrors.ErrInvalidInput, in.Day)
	}
	mealType, ok := model.ParseMealType(in.MealType)
	if !ok {
		return model.MealPlanRecipe{}, fmt.Errorf("%w: unknown meal type %q", apperrors.ErrInvalidInput, in.MealType)
	}
	details := in.RecipeDetails
	details.Title = strings.TrimSpace(details.Title)
	if details.Title == "" {
		return model.MealPlanRecipe{}, fmt.Errorf("%w: recipe title is required", apperrors.ErrInvalidInput)
	}

	return model.MealPlanRecipe{
		ID:            uuid.New(),
		MealPlanID:    planID,
		RecipeID:      recipeID,
		Day:           day,
		MealType:      mealType,
		RecipeDetails: details,
	}, nil
}

func (s *mealPlanService) List(ctx context.Context, userID uuid.UUID) ([]model.MealPlan, error) {
	plans, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list meal plans: %w", err)
	}
	return plans, nil
}

func (s *mealPlanService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMealPlanNotFound
		}
		return fmt.Errorf("delete meal plan: %w", err)
	}
	return nil
}
