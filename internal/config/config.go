package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App      App      `yaml:"app"`
	HTTP     HTTP     `yaml:"http"`
	Database Database `yaml:"database"`
	Auth     Auth     `yaml:"auth"`
	Redis    Redis    `yaml:"redis"`
	Booking  Booking  `yaml:"booking"`
	Mail     Mail     `yaml:"mail"`
	SMS      SMS      `yaml:"sms"`
	Stripe   Stripe   `yaml:"stripe"`
	Uploads  Uploads  `yaml:"uploads"`
}

type App struct {
	Name string `yaml:"name" env:"APP_NAME" env-default:"travelhub"`
	Env  string `yaml:"env" env:"APP_ENV" env-default:"dev"`
}

type HTTP struct {
	Port           string   `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
}

type Database struct {
	DSN string `yaml:"dsn" env:"DATABASE_URL" env-default:"travelhub.db"`
}

type Auth struct {
	JWTSecret     string        `yaml:"jwt_secret" env:"JWT_SECRET" env-default:"change-me-jwt-secret"`
	AccessTTL     time.Duration `yaml:"access_ttl" env:"JWT_ACCESS_TTL" env-default:"24h"`
	ResetTokenTTL time.Duration `yaml:"reset_token_ttl" env:"RESET_TOKEN_TTL" env-default:"1h"`
	FrontendURL   string        `yaml:"frontend_url" env:"FRONTEND_URL" env-default:"http://localhost:4200"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// Booking holds the cancellation/modification cut-offs ahead of the trip
// start; defaults mirror the product rules (24h / 48h).
type Booking struct {
	CancelWindow time.Duration `yaml:"cancel_window" env:"BOOKING_CANCEL_WINDOW" env-default:"24h"`
	ModifyWindow time.Duration `yaml:"modify_window" env:"BOOKING_MODIFY_WINDOW" env-default:"48h"`
}

type Mail struct {
	SendGridAPIKey string `yaml:"sendgrid_api_key" env:"SENDGRID_API_KEY"`
	FromEmail      string `yaml:"from_email" env:"SENDGRID_FROM_EMAIL"`
	FromName       string `yaml:"from_name" env:"SENDGRID_FROM_NAME" env-default:"TravelHub"`
}

type SMS struct {
	TwilioAccountSID string `yaml:"twilio_account_sid" env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `yaml:"twilio_auth_token" env:"TWILIO_AUTH_TOKEN"`
	FromNumber       string `yaml:"from_number" env:"TWILIO_FROM_NUMBER"`
}

type Stripe struct {
	SecretKey     string `yaml:"secret_key" env:"STRIPE_SECRET_KEY"`
	WebhookSecret string `yaml:"webhook_secret" env:"STRIPE_WEBHOOK_SECRET"`
}

type Uploads struct {
	Dir string `yaml:"dir" env:"UPLOAD_DIR" env-default:"./uploads"`
}

func New() (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		// fallback to env vars if file not found
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	} else {
		// Allow env vars to override config file
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.AccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if c.Booking.CancelWindow <= 0 || c.Booking.ModifyWindow <= 0 {
		return fmt.Errorf("booking windows must be > 0")
	}
	if c.App.Env == "prod" || c.App.Env == "production" {
		if c.Auth.JWTSecret == "" || c.Auth.JWTSecret == "change-me-jwt-secret" {
			return fmt.Errorf("in prod JWT_SECRET must be set and not default")
		}
	}
	return nil
}
