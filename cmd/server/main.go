package main

import (
	"log"
	"net/http"
	"os"

	"obtconnect/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"obtconnect/internal/ai"
	"obtconnect/internal/auth"
	"obtconnect/internal/cache"
	"obtconnect/internal/config"
	"obtconnect/internal/db"
	"obtconnect/internal/handler"
	"obtconnect/internal/model"
	"obtconnect/internal/repository"
	"obtconnect/internal/router"
	"obtconnect/internal/service"
)

// @title OBT Connect API
// @version 1.0
// @description Membership and roster management for the On Boarding Team: district rosters, special State/Master teams, registration approvals, message board and AI team analysis.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// RESET_DB=true wipes every collection. This is the recovery path for
	// corrupted state: drop everything and start over.
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.TeamMessage{},
			&model.Member{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Member{},
		&model.TeamMessage{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	memberRepo := repository.NewMemberRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	codeProvider := auth.NewStaticCodeProvider(cacheClient)

	aiClient := ai.NewClient(cfg.GeminiAPIKey)

	// Services
	authService := service.NewAuthService(userRepo, memberRepo, jwtService, tokenStore, codeProvider, cfg)
	memberService := service.NewMemberService(memberRepo, cacheClient)
	teamService := service.NewTeamService(memberRepo)
	adminService := service.NewAdminService(userRepo, memberRepo)
	messageService := service.NewMessageService(messageRepo)
	userService := service.NewUserService(userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	memberHandler := handler.NewMemberHandler(memberService)
	teamHandler := handler.NewTeamHandler(teamService)
	adminHandler := handler.NewAdminHandler(adminService, messageService)
	profileHandler := handler.NewProfileHandler(userService)
	aiHandler := handler.NewAIHandler(aiClient, memberService)

	router.Register(
		e,
		cfg,
		authHandler,
		memberHandler,
		teamHandler,
		adminHandler,
		profileHandler,
		aiHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
