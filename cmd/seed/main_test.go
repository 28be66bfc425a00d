package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "mealplanner/internal/errors"
	"mealplanner/internal/logger"
	"mealplanner/internal/model"
	"mealplanner/internal/service"
)

type fakeAuth struct {
	service.AuthService
	emails map[string]bool
}

func (f *fakeAuth) Register(_ context.Context, username, email, _ string) (*model.User, error) {
	if f.emails[email] {
		return nil, apperrors.ErrDuplicateEmail
	}
	f.emails[email] = true
	return &model.User{ID: uuid.New(), Username: username, Email: email}, nil
}

type fakeFavorites struct {
	service.FavoriteService
	added int
}

func (f *fakeFavorites) Add(_ context.Context, userID uuid.UUID, in service.FavoriteInput) (*model.Favorite, error) {
	f.added++
	return &model.Favorite{ID: uuid.New(), UserID: userID, RecipeID: in.RecipeID}, nil
}

type fakeMealPlans struct {
	service.MealPlanService
	added int
}

func (f *fakeMealPlans) Add(_ context.Context, userID uuid.UUID, in service.MealPlanInput) (*model.MealPlan, error) {
	f.added++
	return &model.MealPlan{ID: uuid.New(), UserID: userID, Week: in.Week}, nil
}

func TestReadSeedFile(t *testing.T) {
	seed, err := readSeedFile(filepath.Join("..", "..", "seed.example.json"))
	require.NoError(t, err)

	require.Len(t, seed.Users, 2)
	amy := seed.Users[0]
	assert.Equal(t, "amy@example.com", amy.Email)
	require.Len(t, amy.Favorites, 1)
	assert.Equal(t, "715538", amy.Favorites[0].RecipeID)
	require.Len(t, amy.MealPlans, 1)
	assert.Equal(t, string(model.Monday), amy.MealPlans[0].Recipes[0].Day)
	assert.Empty(t, seed.Users[1].Favorites)
}

func TestReadSeedFile_Errors(t *testing.T) {
	_, err := readSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"users":`), 0o600))
	_, err = readSeedFile(bad)
	assert.Error(t, err)
}

func TestSeedUsers_Idempotent(t *testing.T) {
	seed, err := readSeedFile(filepath.Join("..", "..", "seed.example.json"))
	require.NoError(t, err)

	authSvc := &fakeAuth{emails: map[string]bool{}}
	favorites := &fakeFavorites{}
	mealPlans := &fakeMealPlans{}
	ctx := context.Background()

	stats, err := seedUsers(ctx, logger.Nop(), authSvc, favorites, mealPlans, seed.Users)
	require.NoError(t, err)
	assert.Equal(t, seedStats{created: 2, favorites: 1, mealPlans: 1}, stats)

	stats, err = seedUsers(ctx, logger.Nop(), authSvc, favorites, mealPlans, seed.Users)
	require.NoError(t, err)
	assert.Equal(t, seedStats{skipped: 2}, stats)
	assert.Equal(t, 1, favorites.added)
	assert.Equal(t, 1, mealPlans.added)
}
