package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Search    SearchConfig
	MinIO     MinIOConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoDBConfig struct {
	URI      string
	User     string
	Password string
	Cluster  string
	AppName  string
	Database string
	Timeout  time.Duration
	// AllowMemory lets the server run on the in-memory store when no Mongo settings are given.
	AllowMemory bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled       bool
	RPS           float64
	Burst         int
	UseRedis      bool
	WindowSeconds int
}

type CORSConfig struct {
	AllowOrigins []string
}

type SearchConfig struct {
	// SynonymsFile is a YAML lexicon; the embedded default is used when empty.
	SynonymsFile string
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	PublicURL string
}

type LogConfig struct {
	Level  string
	Format string
}

var ErrMongoNotConfigured = errors.New("mongo not configured: set MONGODB_URI or DB_USER, DB_PASS and MONGODB_CLUSTER")

// LoadConfig loads configuration from environment variables and an optional .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_ENVIRONMENT", "development")
	v.SetDefault("SERVER_READ_TIMEOUT", 30)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 30)
	v.SetDefault("MONGODB_DATABASE", "elmufurqaan")
	v.SetDefault("MONGODB_APP_NAME", "site")
	v.SetDefault("MONGODB_TIMEOUT", 10)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RATE_LIMIT_ENABLED", false)
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("RATE_LIMIT_USE_REDIS", false)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("MINIO_BUCKET", "site-media")
	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	env := v.GetString("SERVER_ENVIRONMENT")
	v.SetDefault("ALLOW_MEMORY_STORE", strings.EqualFold(env, "development"))

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("PORT"),
			Host:         v.GetString("SERVER_HOST"),
			Environment:  env,
			ReadTimeout:  time.Duration(v.GetInt("SERVER_READ_TIMEOUT")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("SERVER_WRITE_TIMEOUT")) * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:         v.GetString("MONGODB_URI"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			Cluster:     v.GetString("MONGODB_CLUSTER"),
			AppName:     v.GetString("MONGODB_APP_NAME"),
			Database:    v.GetString("MONGODB_DATABASE"),
			Timeout:     time.Duration(v.GetInt("MONGODB_TIMEOUT")) * time.Second,
			AllowMemory: v.GetBool("ALLOW_MEMORY_STORE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       v.GetBool("RATE_LIMIT_ENABLED"),
			RPS:           v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         v.GetInt("RATE_LIMIT_BURST"),
			UseRedis:      v.GetBool("RATE_LIMIT_USE_REDIS"),
			WindowSeconds: v.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		CORS: CORSConfig{
			AllowOrigins: splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		},
		Search: SearchConfig{
			SynonymsFile: v.GetString("SEARCH_SYNONYMS_FILE"),
		},
		MinIO: MinIOConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			PublicURL: strings.TrimRight(v.GetString("MINIO_PUBLIC_URL"), "/"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if cfg.MongoDB.URI == "" && cfg.MongoDB.User != "" {
		uri, err := BuildMongoURI(cfg.MongoDB.User, cfg.MongoDB.Password, cfg.MongoDB.Cluster, cfg.MongoDB.AppName)
		if err != nil {
			return nil, err
		}
		cfg.MongoDB.URI = uri
	}
	if cfg.MongoDB.URI == "" && !cfg.MongoDB.AllowMemory {
		return nil, ErrMongoNotConfigured
	}

	return cfg, nil
}

// BuildMongoURI assembles the SRV connection string for a managed cluster.
// Credentials are escaped; the cluster host is required.
func BuildMongoURI(user, password, cluster, appName string) (string, error) {
	if user == "" || password == "" || cluster == "" {
		return "", ErrMongoNotConfigured
	}
	q := url.Values{}
	q.Set("retryWrites", "true")
	q.Set("w", "majority")
	if appName != "" {
		q.Set("appName", appName)
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?%s",
		url.QueryEscape(user), url.QueryEscape(password), cluster, q.Encode()), nil
}

// Address returns the listen address
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// MongoConfigured reports whether a Mongo connection string is available.
func (c *Config) MongoConfigured() bool {
	return c.MongoDB.URI != ""
}

// MinIOConfigured reports whether media storage is available.
func (c *Config) MinIOConfigured() bool {
	return c.MinIO.Endpoint != ""
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsDevelopment reports whether the server runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Server.Environment, "development")
}
