package main

import (
	"context"
	"log"
	"time"

	"github.com/videoforge/backend/config"
	"github.com/videoforge/backend/controllers"
	"github.com/videoforge/backend/migrations"
	"github.com/videoforge/backend/routes"
	"github.com/videoforge/backend/services"
	"github.com/videoforge/backend/storage"
	"github.com/videoforge/backend/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = utils.Logger.Sync() }()

	db := config.InitDatabase()

	sqlDB, err := db.DB()
	if err != nil {
		utils.Sugar.Fatalf("failed to obtain sql.DB for migrations: %v", err)
	}
	migrateCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := migrations.Run(migrateCtx, sqlDB); err != nil {
		utils.Sugar.Fatalf("database migration failed: %v", err)
	}

	store, err := storage.NewS3Storage(context.Background(), cfg)
	if err != nil {
		utils.Sugar.Fatalf("failed to initialize object storage: %v", err)
	}

	gateway := services.NewGateway(db)
	audit := services.NewAuditLogger(db)
	gdprManager := services.NewGDPRManager(gateway, store, audit, utils.Sugar)
	feedbackService := services.NewFeedbackService(db)

	router := routes.SetupRouter(
		controllers.NewGDPRController(gdprManager),
		controllers.NewFeedbackController(feedbackService),
	)

	addr := ":" + cfg.AppPort
	utils.Sugar.Infof("starting server on %s (env=%s)", addr, cfg.Environment)
	if err := utils.GraceServer(addr, router); err != nil {
		utils.Sugar.Fatalf("server exited: %v", err)
	}
}
