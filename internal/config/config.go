package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Paths      PathsConfig      `yaml:"paths" envconfig:"PATHS"`
	Processing ProcessingConfig `yaml:"processing" envconfig:"PROCESSING"`
	Property   PropertyConfig   `yaml:"property" envconfig:"PROPERTY"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains the file system locations the pipeline works with.
type PathsConfig struct {
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" validate:"required"`
	OutputDir  string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR" validate:"required"`
}

// ProcessingConfig controls batching and how the repeating report layout is
// read. The column names exist because the per-metric headers drift across
// report vintages; they are the names the detail export preserves.
type ProcessingConfig struct {
	BatchSize     int    `yaml:"batch_size" envconfig:"BATCH_SIZE" validate:"min=1"`
	Workers       int    `yaml:"workers" envconfig:"WORKERS" validate:"min=0"`
	RoomColumn    string `yaml:"room_column" envconfig:"ROOM_COLUMN" validate:"required"`
	MonthColumn   string `yaml:"month_column" envconfig:"MONTH_COLUMN" validate:"required"`
	RevenueColumn string `yaml:"revenue_column" envconfig:"REVENUE_COLUMN" validate:"required"`
	NightsColumn  string `yaml:"nights_column" envconfig:"NIGHTS_COLUMN" validate:"required"`
}

// PropertyConfig holds the room-number layout of the managed property.
type PropertyConfig struct {
	Rooms []RoomRange `yaml:"rooms" envconfig:"ROOMS"`
}

// RoomNumbers expands the configured layout into every room number that must
// appear as an output row.
func (p PropertyConfig) RoomNumbers() []int {
	return ExpandRooms(p.Rooms)
}

// Load loads configuration from environment variables layered over an
// optional YAML file, then validates it.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = findConfigFile()
	}
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Environment variables take precedence over the file.
	if err := envconfig.Process("ROOMLEDGER", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays YAML file values onto cfg.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the configuration against its declared constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if len(c.Property.Rooms) == 0 {
		return fmt.Errorf("property layout must contain at least one room range")
	}
	return nil
}

// findConfigFile returns the first config file found in common locations,
// or "" when only env vars and defaults apply.
func findConfigFile() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ""
}

// Default returns the default configuration, including the property's
// standard room layout.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "both",
			FilePath: "logs/run.log",
		},
		Paths: PathsConfig{
			ReportsDir: "reports",
			OutputDir:  "output",
			LogsDir:    "logs",
		},
		Processing: ProcessingConfig{
			BatchSize:     5,
			RoomColumn:    "Room No.",
			MonthColumn:   "Month",
			RevenueColumn: "Room Revenue",
			NightsColumn:  "Room Nights",
		},
		Property: PropertyConfig{
			Rooms: append([]RoomRange(nil), DefaultPropertyRooms...),
		},
	}
}
