package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/HarryCarrig/Trimmute/internal/config"
	dbpkg "github.com/HarryCarrig/Trimmute/internal/db"
	"github.com/HarryCarrig/Trimmute/internal/logging"
	"github.com/HarryCarrig/Trimmute/internal/middleware"
	"github.com/HarryCarrig/Trimmute/internal/routes"
)

func main() {

	cfg := config.Load()
	logging.Init(cfg.IsProd())

	db := dbpkg.NewDB(cfg)

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.FrontendURLs))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Trimmute backend is running")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	logrus.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
