package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"studiorental/internal/config"
	"studiorental/internal/database"
	"studiorental/internal/middleware"
	"studiorental/internal/modules/admin"
	"studiorental/internal/modules/auth"
	"studiorental/internal/modules/catalog"
	"studiorental/internal/modules/submission"
	"studiorental/internal/modules/wizard"
	jwtsvc "studiorental/internal/pkg/jwt"
	"studiorental/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	catalogRepo := repository.NewCatalogRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)

	authService := auth.NewService(cfg.AdminPasswordHash, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(catalogRepo, cfg.Currency)
	catalogHandler := catalog.NewHandler(catalogService)

	submissionService := submission.NewService(bookingRepo)

	hub := wizard.NewHub()
	wizardService := wizard.NewService(catalogService, submissionService, hub)
	wizardHandler := wizard.NewHandler(wizardService, hub)

	adminService := admin.NewService(bookingRepo)
	adminHandler := admin.NewHandler(adminService)

	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		wizardHandler.RegisterRoutes(v1)

		// ops surface
		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.RequireAdmin(j))
		{
			catalogHandler.RegisterAdminRoutes(adminGroup)
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
