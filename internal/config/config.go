package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything hrtrack reads from the environment. Values come
// from ~/.hrtrack/config.env (if present) overlaid by process environment
// variables of the same names.
type Config struct {
	APIURL          string  // HRTRACK_API_URL
	Latitude        float64 // HRTRACK_LATITUDE
	Longitude       float64 // HRTRACK_LONGITUDE
	LocationConsent bool    // HRTRACK_LOCATION_CONSENT
	LogLevel        string  // HRTRACK_LOG_LEVEL
}

const defaultAPIURL = "http://localhost:5000/api"

// Dir returns the hrtrack home directory (~/.hrtrack).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".hrtrack"), nil
}

// Load reads the config file and environment. A missing config file is not
// an error; a malformed numeric value is.
func Load() (*Config, error) {
	if dir, err := Dir(); err == nil {
		// Ignore a missing file; env vars may carry everything.
		_ = godotenv.Load(filepath.Join(dir, "config.env"))
	}

	cfg := &Config{
		APIURL:   defaultAPIURL,
		LogLevel: "info",
	}

	if v := os.Getenv("HRTRACK_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("HRTRACK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("HRTRACK_LATITUDE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid HRTRACK_LATITUDE %q: %w", v, err)
		}
		cfg.Latitude = f
	}
	if v := os.Getenv("HRTRACK_LONGITUDE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid HRTRACK_LONGITUDE %q: %w", v, err)
		}
		cfg.Longitude = f
	}
	if v := os.Getenv("HRTRACK_LOCATION_CONSENT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid HRTRACK_LOCATION_CONSENT %q: %w", v, err)
		}
		cfg.LocationConsent = b
	}

	return cfg, nil
}
