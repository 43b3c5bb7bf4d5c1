package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Backends the storage layer can be pointed at. The backend is always chosen
// here, explicitly, never probed at call time.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type Config struct {
	Storage       StorageConfig       `yaml:"storage"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir"`
}

type NotificationsConfig struct {
	Desktop bool `yaml:"desktop"`
}

type LoggingConfig struct {
	File string `yaml:"file"`
}

func Default() Config {
	home, _ := os.UserHomeDir()
	dataDir := filepath.Join(home, ".dayplan")
	return Config{
		Storage: StorageConfig{
			Backend: BackendFile,
			DataDir: dataDir,
		},
		Notifications: NotificationsConfig{
			Desktop: false,
		},
		Logging: LoggingConfig{
			File: filepath.Join(dataDir, "dayplan.log"),
		},
	}
}

// DefaultPath is the conventional config file location. The file is optional.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".dayplan", "config.yml")
}

// Load builds the runtime configuration: defaults, then the YAML file at path
// if one exists, then DAYPLAN_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg = fromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fromEnv(cfg Config) Config {
	if v := strings.TrimSpace(os.Getenv("DAYPLAN_STORAGE_BACKEND")); v != "" {
		cfg.Storage.Backend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("DAYPLAN_DATA_DIR")); v != "" {
		cfg.Storage.DataDir = v
	}
	if v, ok := getEnvBool("DAYPLAN_DESKTOP_NOTIFICATIONS"); ok {
		cfg.Notifications.Desktop = v
	}
	if v := strings.TrimSpace(os.Getenv("DAYPLAN_LOG_FILE")); v != "" {
		cfg.Logging.File = v
	}
	return cfg
}

func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.DataDir == "" {
		return errors.New("config: storage data_dir is required")
	}
	if c.Logging.File == "" {
		return errors.New("config: logging file is required")
	}
	return nil
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
