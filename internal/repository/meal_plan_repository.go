package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mealplanner/internal/model"
)

// MealPlanRepository defines meal plan persistence operations.
type MealPlanRepository interface {
	Create(ctx context.Context, plan *model.MealPlan) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.MealPlan, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type mealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new meal plan repository.
func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

// Create inserts the plan and its recipes in one transaction.
func (r *mealPlanRepository) Create(ctx context.Context, plan *model.MealPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

// ListByUser lists the plans of userID with their recipes, newest first.
func (r *mealPlanRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.MealPlan, error) {
	var plans []model.MealPlan
	if err := r.db.WithContext(ctx).
		Preload("Recipes").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// Delete removes a plan owned by userID together with its recipes.
// It returns gorm.ErrRecordNotFound when the plan does not exist for that user.
func (r *mealPlanRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plan model.MealPlan
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&plan).Error; err != nil {
			return err
		}
		if err := tx.Where("meal_plan_id = ?", plan.ID).Delete(&model.MealPlanRecipe{}).Error; err != nil {
			return err
		}
		return tx.Delete(&plan).Error
	})
}
