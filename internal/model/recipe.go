package model

// RecipeDetails is the display snapshot of a recipe kept alongside favorites and meal plans.
type RecipeDetails struct {
	Title     string `json:"title" gorm:"size:255;not null"`
	Image     string `json:"image" gorm:"size:1024"`
	SourceURL string `json:"sourceUrl" gorm:"column:source_url;size:1024"`
}
