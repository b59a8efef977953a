package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// ENV equivalent:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=postgres
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=benzak
//	POSTGRES_SSLMODE=disable
//	API_TOKEN=...
//	ADMIN_TOKEN=...
//	TELEGRAM_BOT_TOKEN=...
//	TELEGRAM_API_URL=https://api.telegram.org
//	REPORT_CURRENCY=BYN
type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Auth     AuthConfig
	Telegram TelegramConfig
	Report   ReportConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
}

// PostgresConfig defines connection details for PostgreSQL. URL is the
// computed DSN used by database/sql.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// AuthConfig carries the static API tokens. APIToken grants read access to
// authenticated endpoints; AdminToken additionally grants writes. Unset
// tokens disable the routes they guard (requests get an explicit 403).
type AuthConfig struct {
	APIToken   string
	AdminToken string
}

// TelegramConfig configures the bot webhook integration. BotToken may be
// empty: the webhook then rejects every call at request time, while the rest
// of the API keeps serving.
type TelegramConfig struct {
	BotToken string
	APIURL   string
}

// ReportConfig names the fixed reporting currency used when summarizing
// actual prices for the chat command.
type ReportConfig struct {
	Currency string
}

// AppConfig is the globally accessible configuration instance, populated
// once via LoadConfig().
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (lowest to highest): defaults, .env file, environment
// variables. Missing required fields terminate the app via validateConfig.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "benzak")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("TELEGRAM_API_URL", "https://api.telegram.org")
	viper.SetDefault("REPORT_CURRENCY", "BYN")

	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // no .env is fine

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Auth: AuthConfig{
			APIToken:   viper.GetString("API_TOKEN"),
			AdminToken: viper.GetString("ADMIN_TOKEN"),
		},
		Telegram: TelegramConfig{
			BotToken: viper.GetString("TELEGRAM_BOT_TOKEN"),
			APIURL:   viper.GetString("TELEGRAM_API_URL"),
		},
		Report: ReportConfig{
			Currency: viper.GetString("REPORT_CURRENCY"),
		},
	}

	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	validateConfig()
}

// validateConfig terminates the application when required fields are
// missing. Auth and bot tokens are deliberately not required here: their
// absence is surfaced per-request as 403 so read-only deployments stay up.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if AppConfig.Report.Currency == "" {
		missing = append(missing, "REPORT_CURRENCY")
	}
	if AppConfig.Telegram.APIURL == "" {
		missing = append(missing, "TELEGRAM_API_URL")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
