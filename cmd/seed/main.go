package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"mealplanner/internal/config"
	"mealplanner/internal/db"
	apperrors "mealplanner/internal/errors"
	"mealplanner/internal/logger"
	"mealplanner/internal/model"
	"mealplanner/internal/repository"
	"mealplanner/internal/service"
)

// SeedFile is the layout of the seed JSON document.
type SeedFile struct {
	Users []SeedUser `json:"users"`
}

// SeedUser is one account with the recipes it starts with.
type SeedUser struct {
	Username  string         `json:"username"`
	Email     string         `json:"email"`
	Password  string         `json:"password"`
	Favorites []SeedFavorite `json:"favorites"`
	MealPlans []SeedMealPlan `json:"mealPlans"`
}

// SeedFavorite is a favorite recipe of a seeded user.
type SeedFavorite struct {
	RecipeID      string              `json:"recipeId"`
	RecipeDetails model.RecipeDetails `json:"recipeDetails"`
}

// SeedMealPlan is a weekly plan of a seeded user.
type SeedMealPlan struct {
	Week    string               `json:"week"`
	Recipes []SeedMealPlanRecipe `json:"recipes"`
}

// SeedMealPlanRecipe places a recipe in a seeded plan.
type SeedMealPlanRecipe struct {
	RecipeID      string              `json:"recipeId"`
	Day           string              `json:"day"`
	MealType      string              `json:"mealType"`
	RecipeDetails model.RecipeDetails `json:"recipeDetails"`
}

type seedStats struct {
	created   int
	skipped   int
	favorites int
	mealPlans int
}

func main() {
	path := flag.String("file", "seed.json", "path to the seed JSON file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.New(0, false).Fatal("load config", "err", err)
	}
	log := logger.New(cfg.LogLevel, cfg.IsProduction())
	log.Info("starting seed script", "file", *path)

	seed, err := readSeedFile(*path)
	if err != nil {
		log.Fatal("read seed file", "err", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQL.DSN)
	if err != nil {
		log.Fatal("database init", "err", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("migrate", "err", err)
	}

	// Seeding never issues sessions or reads through the cache.
	authService := service.NewAuthService(repository.NewUserRepository(gormDB), nil, nil, nil, false)
	favoriteService := service.NewFavoriteService(repository.NewFavoriteRepository(gormDB))
	mealPlanService := service.NewMealPlanService(repository.NewMealPlanRepository(gormDB))

	stats, err := seedUsers(context.Background(), log, authService, favoriteService, mealPlanService, seed.Users)
	if err != nil {
		log.Fatal("seed users", "err", err)
	}

	log.Info("seed completed",
		"users_created", stats.created,
		"users_skipped", stats.skipped,
		"favorites_created", stats.favorites,
		"meal_plans_created", stats.mealPlans,
	)
}

func readSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var seed SeedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &seed, nil
}

// seedUsers registers every user that does not exist yet, together with its
// favorites and meal plans. Users that already exist are left untouched, so
// running the seed twice creates nothing the second time.
func seedUsers(
	ctx context.Context,
	log *logger.Logger,
	authService service.AuthService,
	favoriteService service.FavoriteService,
	mealPlanService service.MealPlanService,
	users []SeedUser,
) (seedStats, error) {
	var stats seedStats

	for _, su := range users {
		user, err := authService.Register(ctx, su.Username, su.Email, su.Password)
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicateEmail) || errors.Is(err, apperrors.ErrDuplicateUsername) {
				log.Info("user already exists, skipping", "email", su.Email)
				stats.skipped++
				continue
			}
			return stats, fmt.Errorf("register %s: %w", su.Email, err)
		}
		stats.created++

		for _, f := range su.Favorites {
			if _, err := favoriteService.Add(ctx, user.ID, service.FavoriteInput{
				RecipeID:      f.RecipeID,
				RecipeDetails: f.RecipeDetails,
			}); err != nil {
				return stats, fmt.Errorf("favorite %s for %s: %w", f.RecipeID, su.Email, err)
			}
			stats.favorites++
		}

		for _, mp := range su.MealPlans {
			in := service.MealPlanInput{Week: mp.Week}
			for _, r := range mp.Recipes {
				in.Recipes = append(in.Recipes, service.MealPlanRecipeInput{
					RecipeID:      r.RecipeID,
					Day:           r.Day,
					MealType:      r.MealType,
					RecipeDetails: r.RecipeDetails,
				})
			}
			if _, err := mealPlanService.Add(ctx, user.ID, in); err != nil {
				return stats, fmt.Errorf("meal plan %s for %s: %w", mp.Week, su.Email, err)
			}
			stats.mealPlans++
		}
	}

	return stats, nil
}
