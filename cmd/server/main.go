package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	_ "github.com/leafmoes/bangumi-catalog/docs"
	"github.com/leafmoes/bangumi-catalog/internal/application/services"
	"github.com/leafmoes/bangumi-catalog/internal/infrastructure/config"
	"github.com/leafmoes/bangumi-catalog/internal/interfaces/http/routes"
	"github.com/leafmoes/bangumi-catalog/pkg/logger"
)

// @title Bangumi Catalog API
// @version 1.0
// @description 媒体文件名剧集识别与编目服务

// @license.name MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	configPath := flag.String("config", "", "配置文件路径，默认搜索 ./configs/config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfigFrom(*configPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := logger.Init(logger.Options{
		Level:    cfg.Log.Level,
		Output:   cfg.Log.Output,
		Format:   cfg.Log.Format,
		FilePath: cfg.Log.FilePath,
	}); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	container, err := services.NewServiceContainer(cfg)
	if err != nil {
		log.Fatal("Failed to initialize service container:", err)
	}

	if err := container.Start(); err != nil {
		log.Fatal("Failed to start scheduler:", err)
	}

	router := routes.NewRoutesConfig(container).SetupRouter()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("Starting server", "address", addr)
		if err := router.Run(addr); err != nil {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-quit
	logger.Info("Shutting down server...")
	container.Stop()
	logger.Info("Server stopped")
}
