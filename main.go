package main

import (
	"context"
	"errors"
	"hackaplan/config"
	"hackaplan/controller"
	"hackaplan/docs"
	"hackaplan/logger"
	"hackaplan/repository"
	"hackaplan/service"
	"hackaplan/utils"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

// @title           HackaPlan API
// @version         1.0
// @description     Backend API for organizing hackathons, their projects, teams and jury scoring.
func main() {
	t := time.Now()

	cfg := config.Env()
	logger.Setup(cfg.Environment)
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	store := repository.NewStore(db)

	r := gin.New()
	r.Use(gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		slog.Error("Failed to set trusted proxies", "error", err)
		return
	}
	r.Use(controller.RequestIDMiddleware())
	addLogger(r)
	addMetrics(r)
	addDocs(r)
	setCors(r, cfg.CorsOrigins)

	hub := controller.NewScoreHub()
	publishers := scorePublishers(cfg)
	controller.SetRoutes(r, store, newCacheStore(cfg), hub, publishers...)
	r.GET("/", func(c *gin.Context) {
		c.String(200, "HackaPlan API is running!")
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		slog.Info("Server started", "startup", time.Since(t), "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	// publishers close after the server so in-flight score requests still reach them
	for _, publisher := range publishers {
		if closer, ok := publisher.(io.Closer); ok {
			utils.Closer(closer)()
		}
	}
}

const shutdownTimeout = 10 * time.Second

func newCacheStore(cfg *config.Config) persistence.CacheStore {
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	if cfg.RedisHost != "" {
		slog.Info("Using redis response cache", "host", cfg.RedisHost)
		return persistence.NewRedisCache(cfg.RedisHost, cfg.RedisPassword, ttl)
	}
	return persistence.NewInMemoryStore(ttl)
}

// scorePublishers returns the optional publishers configured next to the websocket hub.
func scorePublishers(cfg *config.Config) []service.ScorePublisher {
	publishers := make([]service.ScorePublisher, 0)
	if cfg.KafkaBroker == "" {
		return publishers
	}
	writer, err := config.NewScoreWriter(cfg)
	if err != nil {
		slog.Warn("Score stream disabled", "broker", cfg.KafkaBroker, "error", err)
		return publishers
	}
	slog.Info("Publishing scores to kafka", "topic", cfg.KafkaScoreTopic)
	return append(publishers, service.NewKafkaScorePublisher(writer))
}

func addLogger(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/metrics"},
	}))
}

func addMetrics(r *gin.Engine) {
	p := ginprometheus.NewPrometheus("gin")
	re := regexp.MustCompile(`\d+`)
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		url := strings.Split(c.Request.URL.String(), "?")[0]
		url = re.ReplaceAllString(url, "?")
		return strings.TrimPrefix(url, "/api")
	}
	p.MetricsPath = "/api/metrics"
	p.Use(r)
}

func addDocs(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

// setCors keeps reads open to any origin and restricts writes to the configured origins.
func setCors(r *gin.Engine, origins []string) {
	if len(origins) == 0 {
		slog.Warn("No CORS origins configured, writes are limited to same-origin clients")
		origins = []string{"http://localhost"}
	}
	corsConfigGetOptions := cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	corsConfigOtherMethods := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	getCors := cors.New(corsConfigGetOptions)
	otherCors := cors.New(corsConfigOtherMethods)

	r.Use(func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			// the preflighted method decides which policy answers
			requestedMethod := c.GetHeader("Access-Control-Request-Method")
			if requestedMethod == "GET" || requestedMethod == "OPTIONS" {
				getCors(c)
			} else {
				otherCors(c)
			}
			c.AbortWithStatus(204)
			return
		}

		if c.Request.Method == "GET" {
			getCors(c)
		} else {
			otherCors(c)
		}
	})
}
