package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courtiq-api/config"
	_ "courtiq-api/docs" // Swagger docs
	"courtiq-api/packages/auth"
	"courtiq-api/packages/core"
	"courtiq-api/packages/core/fetch"
	"courtiq-api/packages/core/metrics"
	"courtiq-api/packages/core/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// @title           CourtIQ API
// @version         1.0
// @description     Recruiting pipeline for a college tennis program: recruits, prospects, ranking sync and discovery views.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the auth provider's access token.

// @securityDefinitions.apikey  CronSecret
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the shared cron secret.

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	config.SetupLogger(cfg.LogLevel)

	db, err := config.ConnectDatabase(cfg.DatabaseURL)
	if err != nil {
		slog.Error("database unavailable", "err", err)
		os.Exit(1)
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	opts := buildFetchers(cfg, m)
	guards := auth.NewModule(cfg.AuthJWTSecret, cfg.CronSecret)
	opts.Coach = guards.Coach()
	opts.Cron = guards.Cron()

	coreModule := core.NewModule(db, opts)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.Default()
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	coreModule.SetupRoutes(r)

	// Swagger endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", healthHandler(db))

	if err := coreModule.StartScheduler(); err != nil {
		slog.Error("scheduler failed to start", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown", "err", err)
	}
	coreModule.StopScheduler()
}

// buildFetchers wires the source fetchers. tennisrecruiting pages go
// through the redis page cache when REDIS_URL is set; ITF activity pages
// are only fetched server-side through a headless browser.
func buildFetchers(cfg *config.Config, m *metrics.Metrics) core.Options {
	var pages fetch.Fetcher = fetch.NewClient(fetch.Options{
		Source:    "tennisrecruiting",
		UserAgent: cfg.FetchUserAgent,
		Timeout:   cfg.FetchTimeout,
		Metrics:   m,
	})

	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := fetch.NewRedisClient(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			slog.Warn("page cache disabled", "err", err)
		} else {
			pages = fetch.NewCached(pages, fetch.NewRedisCache(client), cfg.PageCacheTTL)
		}
	}

	rankingsAPI := fetch.NewClient(fetch.Options{
		Source:    "itf",
		UserAgent: cfg.FetchUserAgent,
		Timeout:   cfg.ITFFetchTimeout,
		Accept:    "application/json, text/plain, */*",
		Metrics:   m,
	})

	var itfPages fetch.Fetcher
	if cfg.BrowserFetch {
		itfPages = fetch.NewBrowser(fetch.BrowserOptions{
			UserAgent:    cfg.FetchUserAgent,
			WebSocketURL: cfg.ChromeWSURL,
			Timeout:      cfg.ITFFetchTimeout,
			Metrics:      m,
		})
	}

	return core.Options{
		Pages:       pages,
		RankingsAPI: rankingsAPI,
		ITFPages:    itfPages,
		Sync: services.SyncOptions{
			Delay:   cfg.FetchDelay,
			Metrics: m,
		},
		RankingsSchedule: cfg.SyncRankingsSchedule,
		ITFSchedule:      cfg.SyncITFSchedule,
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	c.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Message  string `json:"message" example:"Server is running"`
	Database string `json:"database" example:"connected"`
}

// @Summary Health Check
// @Description Check if the server is running and database is connected
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "connected"
		code := http.StatusOK

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			status = "unavailable"
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, HealthResponse{
			Message:  "Server is running",
			Database: status,
		})
	}
}
