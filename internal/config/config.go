package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Env                string
	HTTPAddr           string
	MaxFileSizeBytes   int64
	CorsAllowedOrigins []string
	PDFExportEnabled   bool
	StaleAfterDays     int
}

func Load() Config {
	cfg := Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8087"),
		MaxFileSizeBytes:   getEnvInt64("MAX_FILE_SIZE", 5*1024*1024),
		CorsAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "")),
		PDFExportEnabled:   getEnvBool("PDF_EXPORT_ENABLED", true),
		StaleAfterDays:     int(getEnvInt64("STALE_AFTER_DAYS", 3)),
	}

	if cfg.MaxFileSizeBytes <= 0 {
		cfg.MaxFileSizeBytes = 5 * 1024 * 1024
	}
	if cfg.StaleAfterDays <= 0 {
		cfg.StaleAfterDays = 3
	}

	return cfg
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt64(key string, fallback int64) int64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
