package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	Services ServicesConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
	Relance  RelanceConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	UserServiceURL     string
	UserServiceToken   string
	ResendAPIKey       string
	DefaultEmailSender string
	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioWhatsAppFrom string
	WebAppURI          string
	// PublicBaseURL is where providers reach this service. Empty disables
	// Twilio status callbacks and their signature check.
	PublicBaseURL string
}

// KafkaConfig holds the payment event stream configuration
type KafkaConfig struct {
	Brokers       string
	PaymentTopic  string
	ConsumerGroup string
}

// RedisConfig holds Redis connection settings. Redis backs the job lock.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// RelanceConfig holds the scheduler timings for the relance loop
type RelanceConfig struct {
	EnrollmentInterval time.Duration
	SenderInterval     time.Duration
	SendDelay          time.Duration
	MinReferralAge     time.Duration
	Retention          time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
	// RateLimitRPM caps authenticated requests per user per minute
	RateLimitRPM int
	// TestSendRPM caps template test sends per admin per minute
	TestSendRPM int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	if cfg.Services.UserServiceURL, err = requireEnv("USER_SERVICE_URL"); err != nil {
		return nil, err
	}
	cfg.Services.UserServiceToken = os.Getenv("USER_SERVICE_TOKEN")
	if cfg.Services.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.DefaultEmailSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}
	if cfg.Services.TwilioAccountSID, err = requireEnv("TWILIO_ACCOUNT_SID"); err != nil {
		return nil, err
	}
	if cfg.Services.TwilioAuthToken, err = requireEnv("TWILIO_AUTH_TOKEN"); err != nil {
		return nil, err
	}
	if cfg.Services.TwilioWhatsAppFrom, err = requireEnv("TWILIO_WHATSAPP_FROM"); err != nil {
		return nil, err
	}
	cfg.Services.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")
	cfg.Services.PublicBaseURL = strings.TrimSuffix(os.Getenv("PUBLIC_BASE_URL"), "/")

	if cfg.Kafka.Brokers, err = requireEnv("KAFKA_BROKERS"); err != nil {
		return nil, err
	}
	cfg.Kafka.PaymentTopic = getEnvWithDefault("KAFKA_PAYMENT_TOPIC", "payment-events")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "relance-exits")

	if err := loadRedis(&cfg.Redis); err != nil {
		return nil, err
	}
	if err := loadRelance(&cfg.Relance); err != nil {
		return nil, err
	}

	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	if cfg.Server.RateLimitRPM, err = strconv.Atoi(getEnvWithDefault("RATE_LIMIT_RPM", "120")); err != nil {
		return nil, fmt.Errorf("failed to parse RATE_LIMIT_RPM: %w", err)
	}
	if cfg.Server.TestSendRPM, err = strconv.Atoi(getEnvWithDefault("TEST_SEND_RPM", "5")); err != nil {
		return nil, fmt.Errorf("failed to parse TEST_SEND_RPM: %w", err)
	}

	return cfg, nil
}

func loadRedis(cfg *RedisConfig) error {
	cfg.Host = os.Getenv("REDIS_HOST")
	cfg.Enabled = cfg.Host != ""
	cfg.Password = os.Getenv("REDIS_PASSWORD")

	var err error
	cfg.Port, err = strconv.Atoi(getEnvWithDefault("REDIS_PORT", "6379"))
	if err != nil {
		return fmt.Errorf("failed to parse REDIS_PORT: %w", err)
	}
	cfg.DB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}
	return nil
}

func loadRelance(cfg *RelanceConfig) error {
	var err error
	if cfg.EnrollmentInterval, err = durationEnv("RELANCE_ENROLLMENT_INTERVAL", 15*time.Minute); err != nil {
		return err
	}
	if cfg.SenderInterval, err = durationEnv("RELANCE_SENDER_INTERVAL", 6*time.Hour); err != nil {
		return err
	}
	if cfg.SendDelay, err = durationEnv("RELANCE_SEND_DELAY", 2*time.Second); err != nil {
		return err
	}
	if cfg.MinReferralAge, err = durationEnv("RELANCE_MIN_REFERRAL_AGE", 15*time.Minute); err != nil {
		return err
	}
	if cfg.Retention, err = durationEnv("RELANCE_RETENTION", 180*24*time.Hour); err != nil {
		return err
	}
	return nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// RedisAddr returns host:port for Redis clients
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func durationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}
