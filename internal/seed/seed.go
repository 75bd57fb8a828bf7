package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/coursehub/internal/app/models"
	appRepos "github.com/yigit/coursehub/internal/app/repositories"
	pkgAuth "github.com/yigit/coursehub/internal/pkg/auth"
)

// CreateDefaultData creates demo users and courses if they don't exist, so a
// fresh instance is explorable immediately.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, "joe@smith.com")
	if err != nil {
		return fmt.Errorf("failed to check for seed data: %w", err)
	}
	if exists {
		lgr.Debug().Msg("Seed data already present, skipping")
		return nil
	}

	lgr.Info().Msg("Creating default data (users/courses)...")

	joe, err := seedUser(ctx, userRepo, "Joe", "Smith", "joe@smith.com", "joepassword")
	if err != nil {
		return err
	}
	sally, err := seedUser(ctx, userRepo, "Sally", "Jones", "sally@jones.com", "sallypassword")
	if err != nil {
		return err
	}

	estimatedTime := "12 hours"
	materials := "* Notebook computer\n* Text editor"
	courses := []*appModels.Course{
		{
			Title:           "Build a Basic Bookcase",
			Description:     "High-end furniture projects are great to dream about. But unless you have a well-equipped shop, the real challenge is to design a piece that can be built with basic woodworking tools.",
			EstimatedTime:   &estimatedTime,
			MaterialsNeeded: &materials,
			UserID:          joe.ID,
		},
		{
			Title:       "Learn How to Program",
			Description: "In this course, you'll learn how to write code like a pro!",
			UserID:      sally.ID,
		},
	}

	for _, course := range courses {
		if err := courseRepo.Create(ctx, course); err != nil {
			return fmt.Errorf("failed to seed course %q: %w", course.Title, err)
		}
	}

	lgr.Info().Msg("Default data created.")
	return nil
}

func seedUser(ctx context.Context, userRepo *appRepos.UserRepository, firstName, lastName, email, password string) (*appModels.User, error) {
	hashed, err := pkgAuth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}

	user := &appModels.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hashed,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to seed user %s: %w", email, err)
	}

	return user, nil
}
