package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/config"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/live"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/router"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/services"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
)

func main() {
	utils.InitLogger()

	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}
	utils.SetLevel(cfg.LogLevel)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	kv, err := config.NewStorage(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open device storage: %v", err)
	}

	clock := clockwork.NewRealClock()
	registry := services.NewDeviceRegistry(services.DeviceConfig{
		Storage:    kv,
		APIBaseURL: cfg.APIBaseURL,
		HTTPClient: &http.Client{Timeout: cfg.APITimeout},
		TaxRate:    cfg.TaxRate,
		SessionTTL: cfg.SessionTTL,
		Clock:      clock,
		QR:         services.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL},
		IdleTTL:    cfg.DeviceIdleTTL,
	})
	registry.StartSweeper(context.Background())

	r := router.SetupRouter(router.Dependencies{
		Config:   cfg,
		Registry: registry,
		Hub:      live.NewHub(),
		Clock:    clock,
	})

	utils.InfoLogger.WithField("backend", cfg.APIBaseURL).Infof("Listening on port %s", cfg.Port)
	if err := r.Run(cfg.Addr()); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
