// @title The DCode CMS API
// @version 1.0
// @description Marketing site content API and PIN-gated admin backend for an interior-design studio.

// @contact.name The DCode
// @contact.email hello@thedcode.in

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5001
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/thedcode/backend/docs" // Import generated docs
	"github.com/thedcode/backend/internal/config"
	"github.com/thedcode/backend/internal/db"
	"github.com/thedcode/backend/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	zapLogger, err := zap.NewProduction()
	if cfg.DevMode {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer zapLogger.Sync()
	sugar := zapLogger.Sugar()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"*"},
	}))

	gormDB, err := db.Open(db.Config{
		DatabaseURL:     cfg.DatabaseURL,
		PoolSize:        cfg.PoolSize,
		PoolRecycle:     cfg.PoolRecycle,
		PoolPrePing:     cfg.PoolPrePing,
		ConnectTimeout:  cfg.ConnectTimeout,
		ApplicationName: cfg.ApplicationName,
	})
	if err != nil {
		sugar.Fatalw("db open error", "error", err)
	}

	_ = server.New(e, gormDB, cfg, sugar)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if cfg.AdminAccessPIN == "" {
		sugar.Warnw("ADMIN_ACCESS_PIN not set; the PIN gate will reject every submission")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	e.Logger.Fatal(e.Start(":" + port))
}
