package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Day is a day of the week a recipe is planned for.
type Day string

// Days of the week.
const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// MealType is the slot of the day a recipe fills.
type MealType string

// Meal types.
const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

// MealPlan groups the recipes a user plans for one week.
type MealPlan struct {
	ID        uuid.UUID        `json:"_id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID        `json:"userId" gorm:"type:char(36);not null;index"`
	Week      string           `json:"week" gorm:"size:32;not null;index"`
	Recipes   []MealPlanRecipe `json:"recipes" gorm:"foreignKey:MealPlanID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (m *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MealPlanRecipe places one recipe on a day and meal slot of a plan.
type MealPlanRecipe struct {
	ID            uuid.UUID     `json:"-" gorm:"type:char(36);primaryKey"`
	MealPlanID    uuid.UUID     `json:"-" gorm:"type:char(36);not null;index"`
	RecipeID      string        `json:"recipeId" gorm:"size:128;not null"`
	Day           Day           `json:"day" gorm:"size:16;not null"`
	MealType      MealType      `json:"mealType" gorm:"size:16;not null"`
	RecipeDetails RecipeDetails `json:"recipeDetails" gorm:"embedded;embeddedPrefix:recipe_"`
}

// BeforeCreate sets UUID before creating the record.
func (r *MealPlanRecipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

var days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var mealTypes = []MealType{Breakfast, Lunch, Dinner, Snack}

// ParseDay matches s against the days of the week, ignoring case.
func ParseDay(s string) (Day, bool) {
	for _, d := range days {
		if strings.EqualFold(string(d), strings.TrimSpace(s)) {
			return d, true
		}
	}
	return "", false
}

// ParseMealType matches s against the known meal types, ignoring case.
func ParseMealType(s string) (MealType, bool) {
	for _, m := range mealTypes {
		if strings.EqualFold(string(m), strings.TrimSpace(s)) {
			return m, true
		}
	}
	return "", false
}
