package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite is a recipe bookmarked by a user.
type Favorite struct {
	ID            uuid.UUID     `json:"_id" gorm:"type:char(36);primaryKey"`
	UserID        uuid.UUID     `json:"userId" gorm:"type:char(36);not null;index"`
	RecipeID      string        `json:"recipeId" gorm:"size:128;not null"`
	RecipeDetails RecipeDetails `json:"recipeDetails" gorm:"embedded;embeddedPrefix:recipe_"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
