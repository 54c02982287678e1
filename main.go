package main

import (
	"time"

	"github.com/realme-social/realme-backend/config"
	"github.com/realme-social/realme-backend/models"
	"github.com/realme-social/realme-backend/routes"
	"github.com/realme-social/realme-backend/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(cfg, &models.User{}, &models.Community{}, &models.Post{}, &models.Comment{})

	r := routes.SetupRouter(db, cfg)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	err := utils.GraceServer(
		":"+cfg.AppPort,
		r,
		time.Duration(cfg.ServerReadTimeoutSeconds)*time.Second,
		time.Duration(cfg.ServerWriteTimeoutSeconds)*time.Second,
	)
	if err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
