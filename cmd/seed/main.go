// cmd/seed/main.go
//
// Standalone seeder: creates the root admin account without starting the
// HTTP server. Useful for provisioning a fresh database.
package main

import (
	"github.com/Prasanth-1011/Blog-System/app"
	"github.com/Prasanth-1011/Blog-System/config"
	"github.com/Prasanth-1011/Blog-System/db"
	"github.com/Prasanth-1011/Blog-System/logger"
	"github.com/Prasanth-1011/Blog-System/repository"
	"github.com/Prasanth-1011/Blog-System/service"
)

func main() {
	config.LoadConfig(".")
	logger.Init()

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations("file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error running database migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(database)
	authService := service.NewAuthService(userRepo, nil)

	if err := app.SeedRootAdmin(userRepo, authService); err != nil {
		logger.Log.Fatalf("Error seeding root admin: %v", err)
	}
}
