package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Prasanth-1011/Blog-System/config"
	"github.com/Prasanth-1011/Blog-System/db"
	"github.com/Prasanth-1011/Blog-System/handler"
	"github.com/Prasanth-1011/Blog-System/logger"
	"github.com/Prasanth-1011/Blog-System/mailer"
	"github.com/Prasanth-1011/Blog-System/repository"
	"github.com/Prasanth-1011/Blog-System/router"
	"github.com/Prasanth-1011/Blog-System/service"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations("file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error running database migrations: %v", err)
	}

	// Redis is optional: the category cache degrades to direct reads when
	// it is unavailable.
	var cache service.ICacheClient
	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Warnf("Redis unavailable, running without cache: %v", err)
	} else {
		cache = redisClient
		defer redisClient.Close()
	}

	var m mailer.IMailer
	if smtpMailer := mailer.NewFromConfig(); smtpMailer != nil {
		m = smtpMailer
	}

	// --- Wiring All Layers Together ---

	userRepo := repository.NewUserRepository(database)
	blogRepo := repository.NewBlogRepository(database)
	categoryRepo := repository.NewCategoryRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	requestRepo := repository.NewAdminRequestRepository(database)

	authService := service.NewAuthService(userRepo, m)
	blogService := service.NewBlogService(blogRepo, categoryRepo, cache)
	categoryService := service.NewCategoryService(categoryRepo, blogRepo, cache)
	commentService := service.NewCommentService(commentRepo, blogRepo)
	userService := service.NewUserService(userRepo, blogRepo)
	adminService := service.NewAdminService(requestRepo, userRepo, blogRepo, categoryRepo, m, cache)

	if err := SeedRootAdmin(userRepo, authService); err != nil {
		logger.Log.Fatalf("Error seeding root admin: %v", err)
	}

	authHandler := handler.NewAuthHandler(authService)
	blogHandler := handler.NewBlogHandler(blogService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	commentHandler := handler.NewCommentHandler(commentService)
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(adminService)

	r := router.NewRouter(authHandler, blogHandler, categoryHandler, commentHandler, userHandler, adminHandler)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
