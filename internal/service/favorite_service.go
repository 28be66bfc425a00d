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

// FavoriteInput carries the client-editable fields of a favorite.
type FavoriteInput struct {
	RecipeID      string
	RecipeDetails model.RecipeDetails
}

func (in FavoriteInput) normalize() (FavoriteInput, error) {
	in.RecipeID = strings.TrimSpace(in.RecipeID)
	in.RecipeDetails.Title = strings.TrimSpace(in.RecipeDetails.Title)
	if in.RecipeID == "" {
		return in, fmt.Errorf("%w: recipeId is required", apperrors.ErrInvalidInput)
	}
	if in.RecipeDetails.Title == "" {
		return in, fmt.Errorf("%w: recipe title is required", apperrors.ErrInvalidInput)
	}
	return in, nil
}

// FavoriteService manages the favorite recipes of a user.
type FavoriteService interface {
	Add(ctx context.Context, userID uuid.UUID, in FavoriteInput) (*model.Favorite, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*model.Favorite, error)
	Update(ctx context.Context, userID, id uuid.UUID, in FavoriteInput) (*model.Favorite, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type favoriteService struct {
	repo repository.FavoriteRepository
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(repo repository.FavoriteRepository) FavoriteService {
	return &favoriteService{repo: repo}
}

func (s *favoriteService) Add(ctx context.Context, userID uuid.UUID, in FavoriteInput) (*model.Favorite, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}

	favorite := &model.Favorite{
		ID:            uuid.New(),
		UserID:        userID,
		RecipeID:      in.RecipeID,
		RecipeDetails: in.RecipeDetails,
	}
	if err := s.repo.Create(ctx, favorite); err != nil {
		return nil, fmt.Errorf("create favorite: %w", err)
	}
	return favorite, nil
}

func (s *favoriteService) List(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error) {
	favorites, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}

func (s *favoriteService) Get(ctx context.Context, userID, id uuid.UUID) (*model.Favorite, error) {
	favorite, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFavoriteNotFound
		}
		return nil, fmt.Errorf("find favorite: %w", err)
	}
	return favorite, nil
}

func (s *favoriteService) Update(ctx context.Context, userID, id uuid.UUID, in FavoriteInput) (*model.Favorite, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}

	favorite, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	favorite.RecipeID = in.RecipeID
	favorite.RecipeDetails = in.RecipeDetails
	if err := s.repo.Update(ctx, favorite); err != nil {
		return nil, fmt.Errorf("update favorite: %w", err)
	}
	return favorite, nil
}

func (s *favoriteService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFavoriteNotFound
		}
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}
