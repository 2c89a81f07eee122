package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/folio-space/core/internal/pkg/mail"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort       = 3000
	defaultEnv        = "development"
	defaultMongoURI   = "mongodb://127.0.0.1:27017"
	defaultMongoDB    = "folio_space"
	defaultUploadsDir = "uploads"
)

// AppConfig holds runtime startup configuration loaded from YAML with
// environment-variable overrides.
type AppConfig struct {
	Port           int              `yaml:"port"`
	Env            string           `yaml:"env"` // "development" | "production"
	AllowedOrigins []string         `yaml:"allowed_origins"`
	Mongo          MongoConfig      `yaml:"mongo"`
	JWTSecret      string           `yaml:"jwt_secret"`
	TokenTTL       time.Duration    `yaml:"token_ttl"`
	RedisURL       string           `yaml:"redis_url"`
	RateLimit      RateLimitConfig  `yaml:"rate_limit"`
	Cloudinary     CloudinaryConfig `yaml:"cloudinary"`
	Mail           mail.Config      `yaml:"mail"`
	UploadsDir     string           `yaml:"uploads_dir"`
}

// MongoConfig selects the document database.
type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// RateLimitConfig tunes the unauthenticated-traffic rate limiter.
type RateLimitConfig struct {
	Max      int           `yaml:"max"`
	WindowMS int           `yaml:"window_ms"`
	Window   time.Duration `yaml:"-"`
}

// CloudinaryConfig holds remote media store credentials. Empty
// CloudName means the local uploads directory is used instead.
type CloudinaryConfig struct {
	CloudName string `yaml:"cloud_name"`
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

// Load reads the YAML config file (if present), applies environment
// overrides, then fills defaults. A missing file is not an error: the
// whole config can come from the environment.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	if path == "" {
		path = DefaultConfigPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// env-only configuration
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	setStr(&cfg.Env, "NODE_ENV", "APP_ENV")
	setStr(&cfg.Mongo.URI, "MONGO_URI")
	setStr(&cfg.Mongo.Database, "MONGO_DB")
	setStr(&cfg.JWTSecret, "JWT_SECRET", "ACCESS_TOKEN_SECRET")
	setStr(&cfg.RedisURL, "REDIS_URL")
	setStr(&cfg.Cloudinary.CloudName, "CLOUDINARY_CLOUD_NAME")
	setStr(&cfg.Cloudinary.APIKey, "CLOUDINARY_API_KEY")
	setStr(&cfg.Cloudinary.APISecret, "CLOUDINARY_API_SECRET")
	setStr(&cfg.Mail.Host, "EMAIL_HOST")
	setStr(&cfg.Mail.User, "EMAIL_ADDRESS")
	setStr(&cfg.Mail.Pass, "EMAIL_PASS")
	setStr(&cfg.Mail.From, "EMAIL_FROM")
	setStr(&cfg.UploadsDir, "UPLOADS_DIR")
	if v := os.Getenv("EMAIL_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Mail.Port = p
		}
	}
	if cfg.Mail.Host != "" || cfg.Mail.ResendKey != "" {
		cfg.Mail.Enable = true
	}
	if v := os.Getenv("RATE_LIMIT_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimit.Max = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimit.WindowMS = n
		}
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.Mongo.URI == "" {
		cfg.Mongo.URI = defaultMongoURI
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = defaultMongoDB
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = time.Hour
	}
	if cfg.UploadsDir == "" {
		cfg.UploadsDir = defaultUploadsDir
	}
	if cfg.RateLimit.WindowMS > 0 {
		cfg.RateLimit.Window = time.Duration(cfg.RateLimit.WindowMS) * time.Millisecond
	}
}

func setStr(dst *string, keys ...string) {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			*dst = v
			return
		}
	}
}
