package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mealplanner/internal/model"
)

// FavoriteRepository defines favorite persistence operations.
// Every lookup is scoped to the owning user.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *model.Favorite) error
	Update(ctx context.Context, favorite *model.Favorite) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Favorite, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create creates a new favorite.
func (r *favoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

// Update saves all fields of an existing favorite.
func (r *favoriteRepository) Update(ctx context.Context, favorite *model.Favorite) error {
	return r.db.WithContext(ctx).Save(favorite).Error
}

// FindByID finds a favorite owned by userID.
func (r *favoriteRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Favorite, error) {
	var favorite model.Favorite
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

// ListByUser lists the favorites of userID, newest first.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error) {
	var favorites []model.Favorite
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

// Delete removes a favorite owned by userID. It returns gorm.ErrRecordNotFound when nothing matched.
func (r *favoriteRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
