package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Auth          AuthConfig          `yaml:"auth"`
	Bootstrap     BootstrapConfig     `yaml:"bootstrap"`
	Storage       StorageConfig       `yaml:"storage"`
	Kafka         KafkaConfig         `yaml:"kafka"`
	Log           LogConfig           `yaml:"log"`
	CORS          CORSConfig          `yaml:"cors"`
	RateLimit     RateLimitConfig     `yaml:"rate_limit"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustProxy makes X-Forwarded-For and X-Real-Ip the source of client IPs.
	TrustProxy bool `yaml:"trust_proxy" env:"SERVER_TRUST_PROXY" env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds token issuance settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"default-registry"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"12h"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"10"`
}

// BootstrapConfig holds the default accounts created by the seed routine.
// An account with an empty password is skipped.
type BootstrapConfig struct {
	SeedOnStart      bool   `yaml:"seed_on_start"      env:"BOOTSTRAP_ON_START"         env-default:"false"`
	AdminEmail       string `yaml:"admin_email"        env:"BOOTSTRAP_ADMIN_EMAIL"      env-default:"admin@example.com"`
	AdminPassword    string `yaml:"admin_password"     env:"BOOTSTRAP_ADMIN_PASSWORD"`
	ReviewerEmail    string `yaml:"reviewer_email"     env:"BOOTSTRAP_REVIEWER_EMAIL"   env-default:"reviewer@example.com"`
	ReviewerPassword string `yaml:"reviewer_password"  env:"BOOTSTRAP_REVIEWER_PASSWORD"`
	OperatorEmail    string `yaml:"operator_email"     env:"BOOTSTRAP_OPERATOR_EMAIL"   env-default:"operator@example.com"`
	OperatorPassword string `yaml:"operator_password"  env:"BOOTSTRAP_OPERATOR_PASSWORD"`
	SeedReasons      bool   `yaml:"seed_reasons"       env:"BOOTSTRAP_SEED_REASONS"     env-default:"true"`
}

// StorageConfig holds attachment storage settings.
type StorageConfig struct {
	LocalDir       string `yaml:"local_dir"        env:"STORAGE_LOCAL_DIR"        env-default:"./data/uploads"`
	PublicBaseURL  string `yaml:"public_base_url"  env:"STORAGE_PUBLIC_BASE_URL"  env-default:"/files"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"STORAGE_MAX_UPLOAD_BYTES" env-default:"10485760"`
}

// KafkaConfig holds the review event fan-out settings.
// Publishing is disabled when Brokers is empty.
type KafkaConfig struct {
	Brokers      string        `yaml:"brokers"       env:"KAFKA_BROKERS"`
	Topic        string        `yaml:"topic"         env:"KAFKA_TOPIC"         env-default:"registry.application.reviewed"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"KAFKA_WRITE_TIMEOUT" env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	LoginPerMinute  int           `yaml:"login_per_minute" env:"RATE_LIMIT_LOGIN_PER_MINUTE" env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// NotificationsConfig holds notification retention settings.
type NotificationsConfig struct {
	RetentionDays int `yaml:"retention_days" env:"NOTIFICATION_RETENTION_DAYS" env-default:"90"`
}

// BrokerList returns the configured Kafka brokers.
func (c KafkaConfig) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Enabled reports whether review events should be published to Kafka.
func (c KafkaConfig) Enabled() bool {
	return len(c.BrokerList()) > 0
}
