package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/spektr-org/newsdash/dataset"
	"github.com/spektr-org/newsdash/engine"
	"github.com/spektr-org/newsdash/storage"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type DisplayConfig struct {
	MaxRows   int    `yaml:"max_rows"`
	CountSort string `yaml:"count_sort"`
}

type S3Config struct {
	Region       string `yaml:"region"`
	Profile      string `yaml:"profile"`
	UsePathStyle bool   `yaml:"use_path_style"`
}

type Config struct {
	DataPath       string        `yaml:"data_path"`
	CategoryColumn string        `yaml:"category_column"`
	SourceColumn   string        `yaml:"source_column"`
	Delimiter      string        `yaml:"delimiter,omitempty"`
	Server         ServerConfig  `yaml:"server"`
	Display        DisplayConfig `yaml:"display"`
	S3             S3Config      `yaml:"s3"`
}

// DelimiterRune returns the configured separator, or 0 to pick by extension.
func (c *Config) DelimiterRune() rune {
	if c.Delimiter == "" {
		return 0
	}
	if c.Delimiter == `\t` {
		return '\t'
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// EngineOptions maps the config onto engine options.
func (c *Config) EngineOptions() []engine.Option {
	return []engine.Option{
		engine.WithCategoryColumn(c.CategoryColumn),
		engine.WithSourceColumn(c.SourceColumn),
		engine.WithRowLimit(c.Display.MaxRows),
		engine.WithCountSort(c.Display.CountSort),
	}
}

// StorageS3 returns the S3 client settings.
func (c *Config) StorageS3() storage.S3Config {
	return storage.S3Config{
		Region:       c.S3.Region,
		Profile:      c.S3.Profile,
		UsePathStyle: c.S3.UsePathStyle,
	}
}

// DatasetOptions returns loader options that read local files and s3://
// locations.
func (c *Config) DatasetOptions() dataset.Options {
	return dataset.Options{
		CategoryColumn: c.CategoryColumn,
		SourceColumn:   c.SourceColumn,
		Delimiter:      c.DelimiterRune(),
		Opener:         storage.NewRouter(c.StorageS3()),
	}
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "newsdash", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads path (or the default path) over the embedded defaults, then
// applies environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Write defaults to config path on first run
		_ = writeDefaults(path)
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("NEWSDASH_DATA_PATH"); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv("NEWSDASH_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("NEWSDASH_MAX_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Display.MaxRows = n
		}
	}
	if v := os.Getenv("AWS_REGION"); v != "" && cfg.S3.Region == "" {
		cfg.S3.Region = v
	}
}

func validate(cfg *Config) error {
	if cfg.DataPath == "" {
		return fmt.Errorf("data_path is required")
	}
	if cfg.CategoryColumn == "" {
		return fmt.Errorf("category_column is required")
	}
	if cfg.SourceColumn == "" {
		return fmt.Errorf("source_column is required")
	}
	if cfg.CategoryColumn == cfg.SourceColumn {
		return fmt.Errorf("category_column and source_column must differ, both are %q", cfg.CategoryColumn)
	}
	if cfg.Delimiter != "" && cfg.Delimiter != `\t` && utf8.RuneCountInString(cfg.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", cfg.Delimiter)
	}
	if cfg.Display.MaxRows < 0 {
		return fmt.Errorf("display.max_rows must be >= 0, got %d", cfg.Display.MaxRows)
	}
	if !engine.ValidCountSort(cfg.Display.CountSort) {
		return fmt.Errorf("unknown display.count_sort %q (valid: count_desc, count_asc, label_asc, label_desc)", cfg.Display.CountSort)
	}
	return nil
}
