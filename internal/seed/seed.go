package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kaanb/courseboard/internal/app/models"
	appRepos "github.com/kaanb/courseboard/internal/app/repositories"
	"github.com/kaanb/courseboard/internal/config"
	"github.com/kaanb/courseboard/internal/pkg/auth"
)

// CreateDefaultData creates the default admin account if it does not exist.
// Every other account is created through the API, and only an admin may
// create privileged roles, so a fresh deployment needs this one row to
// bootstrap from.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	adminEmail := config.GetEnv("ADMIN_EMAIL", "admin@courseboard.app")
	adminPassword := config.GetEnv("ADMIN_PASSWORD", "ChangeMe123!")

	exists, err := userRepo.EmailExists(ctx, adminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return err
	}
	if exists {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return nil
	}

	lgr.Info().Msg("Creating default admin user...")

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		Name:     "System Administrator",
		Email:    adminEmail,
		Password: hashedPassword,
		Role:     appModels.RoleAdmin,
	}

	adminID, err := userRepo.CreateUser(ctx, admin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return errors.Join(errors.New("failed to seed admin user"), err)
	}

	lgr.Info().Int64("adminID", adminID).Msg("Default admin user created successfully")
	return nil
}
