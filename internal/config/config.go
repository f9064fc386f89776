package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"pannel_pintura/internal/domain/entities"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config holds the process configuration read from the environment.
type Config struct {
	Port    string
	GinMode string

	LogLevel string
	LogJSON  bool

	// Messaging deep link target: https://<WhatsAppHost>/<WhatsAppNumber>?text=...
	WhatsAppHost   string
	WhatsAppNumber string
	Locale         language.Tag

	// Optional YAML override of the published rates.
	RateTableFile string

	AWSRegion            string
	AWSAccessKeyID       string
	AWSSecretAccessKey   string
	DynamoDBEndpoint     string
	ContactRequestsTable string

	AdminToken                string
	ContactRateLimitPerMinute int
	StaticDir                 string
}

// Load reads .env (when present) and the environment, applying defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 getenvDefault("PORT", "8080"),
		GinMode:              getenvDefault("GIN_MODE", "debug"),
		LogLevel:             getenvDefault("LOG_LEVEL", "info"),
		LogJSON:              parseBool(os.Getenv("LOG_JSON")),
		WhatsAppHost:         getenvDefault("WHATSAPP_HOST", "wa.me"),
		WhatsAppNumber:       getenvDefault("WHATSAPP_NUMBER", "59177204408"),
		RateTableFile:        strings.TrimSpace(os.Getenv("RATE_TABLE_FILE")),
		AWSRegion:            getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:       getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey:   getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:     os.Getenv("DYNAMODB_ENDPOINT"),
		ContactRequestsTable: getenvDefault("CONTACT_REQUESTS_TABLE", "contact_requests"),
		AdminToken:           os.Getenv("ADMIN_TOKEN"),
		StaticDir:            os.Getenv("STATIC_DIR"),
	}

	locale, err := language.Parse(getenvDefault("LOCALE", "es-BO"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOCALE: %w", err)
	}
	cfg.Locale = locale

	limit, err := strconv.Atoi(getenvDefault("CONTACT_RATE_LIMIT_PER_MINUTE", "30"))
	if err != nil || limit <= 0 {
		return nil, fmt.Errorf("invalid CONTACT_RATE_LIMIT_PER_MINUTE %q", os.Getenv("CONTACT_RATE_LIMIT_PER_MINUTE"))
	}
	cfg.ContactRateLimitPerMinute = limit

	return cfg, nil
}

// LoadRateTable returns the published rates, or the RateTableFile override.
// Either way the table is validated before it is handed out.
func (c *Config) LoadRateTable() (entities.RateTable, error) {
	if c.RateTableFile == "" {
		t := entities.DefaultRateTable()
		return t, t.Validate()
	}
	return entities.LoadRateTable(c.RateTableFile)
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
