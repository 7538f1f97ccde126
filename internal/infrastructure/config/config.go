package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreBackendFile     = "file"
	StoreBackendDynamoDB = "dynamodb"
	StoreBackendPostgres = "postgres"
)

var ErrInvalidStoreBackend = errors.New("STORE_BACKEND must be file, dynamodb or postgres")

// Config is the process configuration, read from the environment.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - APP_ENV (default: development), LOG_LEVEL (default: info)
//   - STORE_BACKEND (file|dynamodb|postgres, default: file)
//   - DATA_DIR (file backend, default: ./data)
//   - DB_URL (postgres backend)
//   - NOTIFY_WEBHOOK_URL, NOTIFY_API_TOKEN, NOTIFY_QUEUE_SIZE (default: 100), NOTIFY_TIMEOUT (default: 10s)
//   - RECEIPT_BASE_URL (default: http://localhost:<PORT>)
//   - TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN, TWILIO_PHONE_NUMBER, TWILIO_WHATSAPP_NUMBER
//   - DEFAULT_COUNTRY_CODE (default: 1)
//   - FLUSH_SCHEDULE (cron spec, default: @every 5m; "off" disables)
//   - SHUTDOWN_TIMEOUT (default: 10s)
//
// DynamoDB settings (AWS_*, DYNAMODB_ENDPOINT, COLLECTIONS_TABLE) are read by
// the database and repository packages.
type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	StoreBackend string
	DataDir      string
	DBURL        string

	NotifyWebhookURL string
	NotifyAPIToken   string
	NotifyQueueSize  int
	NotifyTimeout    time.Duration

	ReceiptBaseURL string

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioPhoneNumber    string
	TwilioWhatsAppNumber string
	DefaultCountryCode   string
	FlushSchedule        string
	ShutdownTimeout      time.Duration
}

func Load() (Config, error) {
	port := getenvDefault("PORT", "8080")
	cfg := Config{
		Port:                 port,
		AppEnv:               getenvDefault("APP_ENV", "development"),
		LogLevel:             getenvDefault("LOG_LEVEL", "info"),
		StoreBackend:         strings.ToLower(getenvDefault("STORE_BACKEND", StoreBackendFile)),
		DataDir:              getenvDefault("DATA_DIR", "./data"),
		DBURL:                os.Getenv("DB_URL"),
		NotifyWebhookURL:     os.Getenv("NOTIFY_WEBHOOK_URL"),
		NotifyAPIToken:       os.Getenv("NOTIFY_API_TOKEN"),
		ReceiptBaseURL:       getenvDefault("RECEIPT_BASE_URL", "http://localhost:"+port),
		TwilioAccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber:    os.Getenv("TWILIO_PHONE_NUMBER"),
		TwilioWhatsAppNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		DefaultCountryCode:   getenvDefault("DEFAULT_COUNTRY_CODE", "1"),
		FlushSchedule:        getenvDefault("FLUSH_SCHEDULE", "@every 5m"),
	}

	switch cfg.StoreBackend {
	case StoreBackendFile, StoreBackendDynamoDB:
	case StoreBackendPostgres:
		if cfg.DBURL == "" {
			return Config{}, errors.New("DB_URL is required for the postgres backend")
		}
	default:
		return Config{}, fmt.Errorf("%w: got %q", ErrInvalidStoreBackend, cfg.StoreBackend)
	}

	var err error
	if cfg.NotifyQueueSize, err = getenvInt("NOTIFY_QUEUE_SIZE", 100); err != nil {
		return Config{}, err
	}
	if cfg.NotifyTimeout, err = getenvDuration("NOTIFY_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MessagingEnabled reports whether Twilio credentials are present.
func (c Config) MessagingEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != ""
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return v, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, raw)
	}
	return v, nil
}
