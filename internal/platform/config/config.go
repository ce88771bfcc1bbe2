package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Refresh Token Config
	RefreshTokenExpiryDuration time.Duration
	RefreshTokenCookieName     string
	RefreshTokenCookiePath     string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`

	// Payment gateway (Flutterwave)
	FlwSecretKey string `mapstructure:"FLW_SECRET_KEY"`
	FlwBaseURL   string `mapstructure:"FLW_BASE_URL"`

	// Ledger settings
	StorageTimeout    time.Duration
	SweepInterval     time.Duration
	SweepBatchSize    int
	MinDepositAmount  decimal.Decimal
	MinWithdrawAmount decimal.Decimal

	// Mail settings
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "fundwise-backend")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "rtid")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_PATH", "/api/v1/auth")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("FLW_SECRET_KEY", "")
	viper.SetDefault("FLW_BASE_URL", "https://api.flutterwave.com/v3")
	viper.SetDefault("STORAGE_TIMEOUT", "5s")
	viper.SetDefault("SWEEP_INTERVAL", "1m")
	viper.SetDefault("SWEEP_BATCH_SIZE", 100)
	viper.SetDefault("MIN_DEPOSIT_AMOUNT", "1")
	viper.SetDefault("MIN_WITHDRAW_AMOUNT", "1")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("MAIL_FROM", "no-reply@fundwise.local")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = parseDurationOr("JWT_EXPIRY_DURATION", time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.RefreshTokenExpiryDuration = parseDurationOr("REFRESH_TOKEN_EXPIRY_DURATION", 7*24*time.Hour)
	cfg.RefreshTokenCookieName = viper.GetString("REFRESH_TOKEN_COOKIE_NAME")
	cfg.RefreshTokenCookiePath = viper.GetString("REFRESH_TOKEN_COOKIE_PATH")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRedirectURL == "" {
		log.Println("Warning: Google OAuth settings incomplete. Google sign-in will not function.")
	}

	cfg.FlwSecretKey = viper.GetString("FLW_SECRET_KEY")
	cfg.FlwBaseURL = viper.GetString("FLW_BASE_URL")
	if cfg.FlwSecretKey == "" {
		log.Println("Warning: FLW_SECRET_KEY not set. Gateway payouts will not function.")
	}

	cfg.StorageTimeout = parseDurationOr("STORAGE_TIMEOUT", 5*time.Second)
	cfg.SweepInterval = parseDurationOr("SWEEP_INTERVAL", time.Minute)
	cfg.SweepBatchSize = viper.GetInt("SWEEP_BATCH_SIZE")
	if cfg.SweepBatchSize <= 0 {
		cfg.SweepBatchSize = 100
	}
	cfg.MinDepositAmount = parseDecimalOr("MIN_DEPOSIT_AMOUNT", decimal.NewFromInt(1))
	cfg.MinWithdrawAmount = parseDecimalOr("MIN_WITHDRAW_AMOUNT", decimal.NewFromInt(1))

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetString("SMTP_PORT")
	cfg.SMTPUsername = viper.GetString("SMTP_USERNAME")
	cfg.SMTPPassword = viper.GetString("SMTP_PASSWORD")
	cfg.MailFrom = viper.GetString("MAIL_FROM")
	if cfg.SMTPHost == "" {
		log.Println("Warning: SMTP_HOST not set. Outbound mail will be logged only.")
	}

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

func parseDecimalOr(key string, fallback decimal.Decimal) decimal.Decimal {
	raw := viper.GetString(key)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
