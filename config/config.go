package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB    int    `mapstructure:"REDIS_AUTH_DB"`
	RedisContextDB int    `mapstructure:"REDIS_CONTEXT_DB"`
	RedisTasksDB   int    `mapstructure:"REDIS_TASKS_DB"`

	// Clerk webhook signing secret (svix format, "whsec_...").
	ClerkWebhookSecret string `mapstructure:"CLERK_WEBHOOK_SECRET"`
	// Clerk backend secret key ("sk_..."), used to fetch the instance JWKS
	// for session token verification.
	ClerkSecretKey string `mapstructure:"CLERK_SECRET_KEY"`

	// Gemini API key for the chat assistant.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Notification channels.
	EmailProvider string `mapstructure:"EMAIL_PROVIDER"` // "resend", "smtp" or "gmail"
	EmailFrom     string `mapstructure:"EMAIL_FROM"`
	ResendAPIKey  string `mapstructure:"RESEND_API_KEY"`
	SMTPHost      string `mapstructure:"SMTP_HOST"`
	SMTPPort      int    `mapstructure:"SMTP_PORT"`
	SMTPUsername  string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword  string `mapstructure:"SMTP_PASSWORD"`

	// Gmail OAuth (used when EMAIL_PROVIDER is "gmail").
	GmailClientID     string `mapstructure:"GMAIL_CLIENT_ID"`
	GmailClientSecret string `mapstructure:"GMAIL_CLIENT_SECRET"`
	GmailRedirectURL  string `mapstructure:"GMAIL_REDIRECT_URL"`
	GmailRefreshToken string `mapstructure:"GMAIL_REFRESH_TOKEN"`

	// Twilio SMS.
	TwilioAccountSID string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `mapstructure:"TWILIO_FROM_NUMBER"`

	// Cloudinary (vehicle photos).
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_CONTEXT_DB", 2)
	viper.SetDefault("REDIS_TASKS_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "autodetail")
	viper.SetDefault("EMAIL_PROVIDER", "smtp")
	viper.SetDefault("SMTP_PORT", 587)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
