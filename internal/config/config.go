package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config collects every environment-driven setting of the API.
//
// Values are read once at startup; .env files are loaded beforehand by
// github.com/joho/godotenv/autoload in cmd/api.
type Config struct {
	Port string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	BudgetsTable      string
	AreaBudgetsTable  string
	RateConfigsTable  string
	UserProfilesTable string
	BudgetsEmailIndex string

	AMQPURL      string
	AMQPExchange string

	SentryDSN         string
	SentryEnvironment string

	RatesHTTPTimeout time.Duration
	RatesHTTPRetries int

	BootstrapAdminID    string
	BootstrapAdminEmail string
}

func Load() *Config {
	return &Config{
		Port: getenvDefault("PORT", "8080"),

		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),

		BudgetsTable:      getenvDefault("BUDGETS_TABLE", "budgets"),
		AreaBudgetsTable:  getenvDefault("AREA_BUDGETS_TABLE", "area_budgets"),
		RateConfigsTable:  getenvDefault("EXCHANGE_RATE_CONFIG_TABLE", "exchange_rate_config"),
		UserProfilesTable: getenvDefault("USER_PROFILES_TABLE", "user_profiles"),
		BudgetsEmailIndex: getenvDefault("BUDGETS_EMAIL_INDEX", "email-index"),

		AMQPURL:      os.Getenv("AMQP_URL"),
		AMQPExchange: getenvDefault("AMQP_EXCHANGE", "travel_budget.events"),

		SentryDSN:         os.Getenv("SENTRY_DSN"),
		SentryEnvironment: getenvDefault("SENTRY_ENVIRONMENT", "development"),

		RatesHTTPTimeout: getenvDuration("RATES_HTTP_TIMEOUT", 5*time.Second),
		RatesHTTPRetries: getenvInt("RATES_HTTP_RETRIES", 2),

		BootstrapAdminID:    os.Getenv("BOOTSTRAP_ADMIN_ID"),
		BootstrapAdminEmail: os.Getenv("BOOTSTRAP_ADMIN_EMAIL"),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
