package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	S3      S3Config
	Log     LogConfig
	CORS    CORSConfig
	Email   EmailConfig
	Booking BookingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// RedisConfig holds tariff cache settings. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for the invoice archive. An empty Bucket
// disables archiving.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	// PresignExpiry is the lifetime, in seconds, of download links for
	// archived invoice PDFs.
	PresignExpiry int64 `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	AdminEmail  string `mapstructure:"admin_email"`
}

// BookingConfig holds venue-specific booking settings.
type BookingConfig struct {
	VenueName      string `mapstructure:"venue_name"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
	AdminUser      string `mapstructure:"admin_user"`
	// bcrypt hash of the admin password; plain passwords are never configured.
	AdminPasswordHash string `mapstructure:"admin_password_hash"`
}

// Load reads configuration from environment variables with the HALLBOOK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HALLBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "hallbook")
	v.SetDefault("db.password", "hallbook_secret")
	v.SetDefault("db.name", "hallbook_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Redis defaults (disabled unless an address is set)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "5m")

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "12h")
	v.SetDefault("jwt.issuer", "hallbook")

	// S3 defaults
	v.SetDefault("s3.region", "af-south-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 900)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "af-south-1")
	v.SetDefault("email.from_address", "bookings@sandbaaihall.co.za")
	v.SetDefault("email.from_name", "Sandbaai Hall Bookings")
	v.SetDefault("email.admin_email", "admin@sandbaaihall.co.za")

	// Booking defaults
	v.SetDefault("booking.venue_name", "Sandbaai Hall")
	v.SetDefault("booking.currency_symbol", "R")
	v.SetDefault("booking.admin_user", "admin")
	v.SetDefault("booking.admin_password_hash", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                 "HALLBOOK_SERVER_PORT",
		"server.read_timeout":         "HALLBOOK_SERVER_READ_TIMEOUT",
		"server.write_timeout":        "HALLBOOK_SERVER_WRITE_TIMEOUT",
		"server.environment":          "HALLBOOK_SERVER_ENVIRONMENT",
		"db.host":                     "HALLBOOK_DB_HOST",
		"db.port":                     "HALLBOOK_DB_PORT",
		"db.user":                     "HALLBOOK_DB_USER",
		"db.password":                 "HALLBOOK_DB_PASSWORD",
		"db.name":                     "HALLBOOK_DB_NAME",
		"db.sslmode":                  "HALLBOOK_DB_SSLMODE",
		"db.max_open":                 "HALLBOOK_DB_MAX_OPEN",
		"db.max_idle":                 "HALLBOOK_DB_MAX_IDLE",
		"redis.addr":                  "HALLBOOK_REDIS_ADDR",
		"redis.password":              "HALLBOOK_REDIS_PASSWORD",
		"redis.db":                    "HALLBOOK_REDIS_DB",
		"redis.ttl":                   "HALLBOOK_REDIS_TTL",
		"jwt.secret":                  "HALLBOOK_JWT_SECRET",
		"jwt.access_expiry":           "HALLBOOK_JWT_ACCESS_EXPIRY",
		"jwt.issuer":                  "HALLBOOK_JWT_ISSUER",
		"s3.region":                   "HALLBOOK_S3_REGION",
		"s3.bucket":                   "HALLBOOK_S3_BUCKET",
		"s3.endpoint":                 "HALLBOOK_S3_ENDPOINT",
		"s3.access_key":               "HALLBOOK_S3_ACCESS_KEY",
		"s3.secret_key":               "HALLBOOK_S3_SECRET_KEY",
		"s3.presign_expiry":           "HALLBOOK_S3_PRESIGN_EXPIRY",
		"log.level":                   "HALLBOOK_LOG_LEVEL",
		"log.format":                  "HALLBOOK_LOG_FORMAT",
		"cors.allowed_origins":        "HALLBOOK_CORS_ALLOWED_ORIGINS",
		"email.provider":              "HALLBOOK_EMAIL_PROVIDER",
		"email.region":                "HALLBOOK_EMAIL_REGION",
		"email.from_address":          "HALLBOOK_EMAIL_FROM_ADDRESS",
		"email.from_name":             "HALLBOOK_EMAIL_FROM_NAME",
		"email.admin_email":           "HALLBOOK_EMAIL_ADMIN_EMAIL",
		"booking.venue_name":          "HALLBOOK_BOOKING_VENUE_NAME",
		"booking.currency_symbol":     "HALLBOOK_BOOKING_CURRENCY_SYMBOL",
		"booking.admin_user":          "HALLBOOK_BOOKING_ADMIN_USER",
		"booking.admin_password_hash": "HALLBOOK_BOOKING_ADMIN_PASSWORD_HASH",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if HALLBOOK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("HALLBOOK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Redis = RedisConfig{
		Addr:     v.GetString("redis.addr"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
		TTL:      v.GetDuration("redis.ttl"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		AdminEmail:  v.GetString("email.admin_email"),
	}
	cfg.Booking = BookingConfig{
		VenueName:         v.GetString("booking.venue_name"),
		CurrencySymbol:    v.GetString("booking.currency_symbol"),
		AdminUser:         v.GetString("booking.admin_user"),
		AdminPasswordHash: v.GetString("booking.admin_password_hash"),
	}

	return cfg, nil
}
