package app

import (
	"database/sql"

	"github.com/Prasanth-1011/Blog-System/config"
	"github.com/Prasanth-1011/Blog-System/logger"
	"github.com/Prasanth-1011/Blog-System/model"
	"github.com/Prasanth-1011/Blog-System/repository"
	"github.com/Prasanth-1011/Blog-System/service"
)

// SeedRootAdmin creates the single root admin account from the seed config
// when it does not exist yet. It runs on every startup and is a no-op once
// the account is in place.
func SeedRootAdmin(userRepo repository.IUserRepository, authService *service.AuthService) error {
	_, err := userRepo.GetRootUser()
	if err == nil {
		logger.Log.Info("Root admin account already exists, skipping seed")
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	seed := config.AppConfig.Seed
	hashed, err := authService.HashPassword(seed.RootPassword)
	if err != nil {
		return err
	}

	root := &model.User{
		Name:     seed.RootName,
		Email:    seed.RootEmail,
		Password: hashed,
		Role:     string(model.RoleAdmin),
		Status:   model.UserStatusActive,
		Root:     true,
	}
	if err := userRepo.CreateUser(root); err != nil {
		return err
	}

	logger.Log.Infof("Root admin account seeded: %s", root.Email)
	return nil
}
