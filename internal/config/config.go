package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// BasicAuthConfig holds HTTP Basic Auth credentials for the API.
// All endpoints except /health are protected when this is set.
type BasicAuthConfig struct {
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address for the content API.
	Listen string `yaml:"listen" json:"listen"`

	// Timezone is the IANA timezone all date logic is evaluated in.
	// The club runs out of Blaj, so Europe/Bucharest is the default.
	Timezone string `yaml:"timezone" json:"timezone"`

	// DefaultLanguage is used when a request carries no explicit language
	// and no preference has been stored. Supported values: "ro", "en".
	DefaultLanguage string `yaml:"default_language" json:"default_language"`

	// DataDir holds the mutable state of the service. Currently that is
	// just the persisted language preference file.
	DataDir string `yaml:"data_dir" json:"data_dir"`

	// HorizonDays is how far ahead the schedule endpoints expand weekly
	// training sessions.
	HorizonDays int `yaml:"horizon_days" json:"horizon_days"`

	// TelemetryCron is a cron-style schedule string for periodic telemetry
	// snapshot logging (e.g. "*/30 * * * *"). Empty disables the job.
	TelemetryCron string `yaml:"telemetry_cron" json:"telemetry_cron"`

	// BasicAuth, if non-nil, enables HTTP Basic Authentication on all
	// endpoints except /health.
	BasicAuth *BasicAuthConfig `yaml:"basic_auth,omitempty" json:"basic_auth,omitempty"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:          "127.0.0.1:8080",
		Timezone:        "Europe/Bucharest",
		DefaultLanguage: "ro",
		DataDir:         "/var/lib/runnerapp",
		HorizonDays:     14,
		TelemetryCron:   "*/30 * * * *",
		BasicAuth:       nil,
	}
}

// Normalize fills in missing/zero values with defaults so that partially
// filled configs still behave correctly.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = "127.0.0.1:8080"
	}
	if c.Timezone == "" {
		c.Timezone = "Europe/Bucharest"
	}
	switch c.DefaultLanguage {
	case "ro", "en":
	default:
		c.DefaultLanguage = "ro"
	}
	if c.DataDir == "" {
		c.DataDir = "/var/lib/runnerapp"
	}
	if c.HorizonDays <= 0 {
		c.HorizonDays = 14
	}
}

// Load loads configuration from the given YAML path.
//
// If the file does not exist, a default config is written there (parent
// directory created as needed, file mode 0600) and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Return cfg with the error so the caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the configuration to path atomically (temp file + rename)
// with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".runnerapp-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Save delegates to the package-level Save function.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
