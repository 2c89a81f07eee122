package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/folio-space/core/internal/config"
	"github.com/folio-space/core/internal/database"
	"github.com/folio-space/core/internal/middleware"
	jwtpkg "github.com/folio-space/core/internal/pkg/jwt"
	"github.com/folio-space/core/internal/pkg/mail"
	"github.com/folio-space/core/internal/pkg/media"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *mongo.Database
	logger *zap.Logger
}

// New initializes the application: config → DB → media store → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	jwtpkg.SetSecret(cfg.JWTSecret)

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	store, err := newMediaStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("media store: %w", err)
	}

	sender := mail.New(cfg.Mail)
	if !sender.Enabled() {
		logger.Warn("mail sender disabled, contact replies will fail")
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg)))
	// resolve identity before the rate limiter and cache, both treat
	// authenticated traffic differently
	router.Use(middleware.OptionalAuth())

	if rdb := newRedisClient(cfg, logger); rdb != nil {
		router.Use(middleware.RateLimit(rdb, middleware.RateLimitOptions{
			Max:    cfg.RateLimit.Max,
			Window: cfg.RateLimit.Window,
		}))
		router.Use(middleware.HTTPCache(rdb, middleware.HTTPCacheOptions{
			// detail fetches have read side effects and must always
			// reach their handlers
			SkipPaths: []string{"/api/v1/blog/*", "/api/v1/project/*", "/uploads/*"},
		}))
	}

	if local, ok := store.(*media.LocalStore); ok {
		router.Static("/uploads", local.Dir())
	}

	app := &App{cfg: cfg, router: router, db: db, logger: logger}
	app.registerRoutes(store, sender)

	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown closes the database connection.
func (a *App) Shutdown() {
	if err := database.Disconnect(a.db); err != nil {
		a.logger.Warn("database disconnect failed", zap.Error(err))
	}
}

// newMediaStore picks the remote store when credentials are present and
// falls back to serving uploads from the local filesystem.
func newMediaStore(cfg *config.AppConfig) (media.Store, error) {
	cl := cfg.Cloudinary
	if cl.CloudName != "" && cl.APIKey != "" && cl.APISecret != "" {
		return media.NewCloudinaryStore(cl.CloudName, cl.APIKey, cl.APISecret)
	}
	return media.NewLocalStore(cfg.UploadsDir)
}

// newRedisClient connects to Redis when a URL is configured. The rate
// limiter is skipped entirely without it.
func newRedisClient(cfg *config.AppConfig, logger *zap.Logger) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn("invalid redis url, rate limiting disabled", zap.Error(err))
		return nil
	}
	return redis.NewClient(opts)
}

func corsConfig(cfg *config.AppConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		c.AllowOrigins = cfg.AllowedOrigins
	} else {
		c.AllowOriginFunc = func(string) bool { return true }
	}
	return c
}
