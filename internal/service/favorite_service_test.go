package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "mealplanner/internal/errors"
	"mealplanner/internal/model"
)

func TestFavoriteService_Add(t *testing.T) {
	userID := uuid.New()
	mockRepo := new(MockFavoriteRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(f *model.Favorite) bool {
		return f.UserID == userID && f.RecipeID == "715538" && f.RecipeDetails.Title == "Bruschetta"
	})).Return(nil)

	service := NewFavoriteService(mockRepo)
	fav, err := service.Add(context.Background(), userID, FavoriteInput{
		RecipeID:      " 715538 ",
		RecipeDetails: model.RecipeDetails{Title: "Bruschetta", SourceURL: "https://src/1"},
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, fav.ID)
	assert.Equal(t, "https://src/1", fav.RecipeDetails.SourceURL)
	mockRepo.AssertExpectations(t)
}

func TestFavoriteService_Add_Validation(t *testing.T) {
	tests := map[string]FavoriteInput{
		"missing recipe id": {RecipeDetails: model.RecipeDetails{Title: "Bruschetta"}},
		"missing title":     {RecipeID: "715538"},
	}

	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			mockRepo := new(MockFavoriteRepository)
			service := NewFavoriteService(mockRepo)

			_, err := service.Add(context.Background(), uuid.New(), in)

			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestFavoriteService_Get(t *testing.T) {
	userID, id := uuid.New(), uuid.New()

	tests := []struct {
		name          string
		repoResult    *model.Favorite
		repoErr       error
		expectedError error
	}{
		{name: "found", repoResult: &model.Favorite{ID: id, UserID: userID}},
		{name: "missing or owned by someone else", repoErr: gorm.ErrRecordNotFound, expectedError: apperrors.ErrFavoriteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockFavoriteRepository)
			if tt.repoResult != nil {
				mockRepo.On("FindByID", mock.Anything, userID, id).Return(tt.repoResult, nil)
			} else {
				mockRepo.On("FindByID", mock.Anything, userID, id).Return(nil, tt.repoErr)
			}

			fav, err := NewFavoriteService(mockRepo).Get(context.Background(), userID, id)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, fav)
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, fav.ID)
			}
		})
	}
}

func TestFavoriteService_Update(t *testing.T) {
	userID, id := uuid.New(), uuid.New()
	existing := &model.Favorite{ID: id, UserID: userID, RecipeID: "1", RecipeDetails: model.RecipeDetails{Title: "Old"}}

	mockRepo := new(MockFavoriteRepository)
	mockRepo.On("FindByID", mock.Anything, userID, id).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(f *model.Favorite) bool {
		return f.ID == id && f.UserID == userID && f.RecipeDetails.Title == "New"
	})).Return(nil)

	fav, err := NewFavoriteService(mockRepo).Update(context.Background(), userID, id, FavoriteInput{
		RecipeID:      "2",
		RecipeDetails: model.RecipeDetails{Title: "New"},
	})

	require.NoError(t, err)
	assert.Equal(t, "2", fav.RecipeID)
	mockRepo.AssertExpectations(t)
}

func TestFavoriteService_Update_NotFound(t *testing.T) {
	userID, id := uuid.New(), uuid.New()
	mockRepo := new(MockFavoriteRepository)
	mockRepo.On("FindByID", mock.Anything, userID, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := NewFavoriteService(mockRepo).Update(context.Background(), userID, id, FavoriteInput{
		RecipeID:      "2",
		RecipeDetails: model.RecipeDetails{Title: "New"},
	})

	assert.ErrorIs(t, err, apperrors.ErrFavoriteNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestFavoriteService_Delete(t *testing.T) {
	userID, id := uuid.New(), uuid.New()

	mockRepo := new(MockFavoriteRepository)
	mockRepo.On("Delete", mock.Anything, userID, id).Return(gorm.ErrRecordNotFound).Once()
	mockRepo.On("Delete", mock.Anything, userID, id).Return(nil).Once()
	service := NewFavoriteService(mockRepo)

	assert.ErrorIs(t, service.Delete(context.Background(), userID, id), apperrors.ErrFavoriteNotFound)
	assert.NoError(t, service.Delete(context.Background(), userID, id))
}

func TestFavoriteService_List_StoreFailure(t *testing.T) {
	userID := uuid.New()
	storeErr := errors.New("connection refused")
	mockRepo := new(MockFavoriteRepository)
	mockRepo.On("ListByUser", mock.Anything, userID).Return(nil, storeErr)

	_, err := NewFavoriteService(mockRepo).List(context.Background(), userID)

	assert.ErrorIs(t, err, storeErr)
}
