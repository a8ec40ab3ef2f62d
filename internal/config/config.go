package config

import (
	"fmt"
	"strings"
	"time"

	"go-hr-analytics/internal/shared/connection"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv string
	Port   string

	JWTSecret string
	JWTTTL    time.Duration

	// BootstrapAdminEmail registers as admin instead of viewer.
	BootstrapAdminEmail string
	CodeTTL             time.Duration

	MongoURI string
	MongoDB  string
	Postgres connection.PostgresConfig

	RedisAddr   string
	KafkaBroker string

	SMTP SMTPConfig

	UploadDir         string
	MaxUploadBytes    int64
	LastMonthsDefault int
	OptionsCacheTTL   time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads .env (if present) and then the process environment. Every key
// has a default so the API boots against a local docker-compose stack.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		AppEnv:    v.GetString("APP_ENV"),
		Port:      v.GetString("PORT"),
		JWTSecret: v.GetString("JWT_SECRET"),
		JWTTTL:    v.GetDuration("JWT_TTL"),

		BootstrapAdminEmail: strings.ToLower(strings.TrimSpace(v.GetString("BOOTSTRAP_ADMIN_EMAIL"))),
		CodeTTL:             v.GetDuration("VERIFICATION_CODE_TTL"),

		MongoURI: v.GetString("MONGO_URI"),
		MongoDB:  v.GetString("MONGO_DB"),
		Postgres: connection.PostgresConfig{
			Host:     v.GetString("DB_HOST"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			Port:     v.GetString("DB_PORT"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		RedisAddr:   v.GetString("REDIS_ADDR"),
		KafkaBroker: v.GetString("KAFKA_BROKER"),
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			Username: v.GetString("SMTP_USERNAME"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("SMTP_FROM"),
		},
		UploadDir:         v.GetString("UPLOAD_DIR"),
		MaxUploadBytes:    v.GetInt64("MAX_UPLOAD_MB") << 20,
		LastMonthsDefault: v.GetInt("LAST_MONTHS_DEFAULT"),
		OptionsCacheTTL:   v.GetDuration("OPTIONS_CACHE_TTL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "3000")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("VERIFICATION_CODE_TTL", "15m")
	v.SetDefault("KAFKA_BROKER", "localhost:9092")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "manpower")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "manpower")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM", "no-reply@manpower.local")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("MAX_UPLOAD_MB", 10)
	v.SetDefault("LAST_MONTHS_DEFAULT", 6)
	v.SetDefault("OPTIONS_CACHE_TTL", "30m")
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		if c.IsProduction() {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		c.JWTSecret = "dev-secret-change-me"
	}
	if c.LastMonthsDefault <= 0 {
		return fmt.Errorf("LAST_MONTHS_DEFAULT must be positive, got %d", c.LastMonthsDefault)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}
	return nil
}
