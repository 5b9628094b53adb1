package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"NEWSDASH_DATA_PATH", "NEWSDASH_ADDR", "NEWSDASH_MAX_ROWS", "AWS_REGION"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.CategoryColumn != "Category" || cfg.SourceColumn != "Source" {
		t.Errorf("default columns = %q / %q", cfg.CategoryColumn, cfg.SourceColumn)
	}
	if cfg.DataPath == "" {
		t.Error("expected data_path to be set")
	}
	if cfg.Display.CountSort != "count_desc" {
		t.Errorf("default count_sort = %q", cfg.Display.CountSort)
	}
	if err := validate(cfg); err != nil {
		t.Errorf("embedded defaults do not validate: %v", err)
	}
}

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "newsdash", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("defaults not written: %v", err)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`data_path: s3://news/latest.csv
category_column: Categoria
source_column: Fonte
display:
  max_rows: 10
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataPath != "s3://news/latest.csv" || cfg.CategoryColumn != "Categoria" || cfg.SourceColumn != "Fonte" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Display.MaxRows != 10 {
		t.Errorf("max_rows = %d", cfg.Display.MaxRows)
	}
	// Untouched keys keep their defaults.
	if cfg.Server.Addr != ":8080" || cfg.Display.CountSort != "count_desc" {
		t.Errorf("defaults lost: addr=%q sort=%q", cfg.Server.Addr, cfg.Display.CountSort)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEWSDASH_DATA_PATH", "/data/today.csv")
	t.Setenv("NEWSDASH_ADDR", ":9999")
	t.Setenv("NEWSDASH_MAX_ROWS", "5")
	t.Setenv("AWS_REGION", "sa-east-1")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataPath != "/data/today.csv" || cfg.Server.Addr != ":9999" || cfg.Display.MaxRows != 5 {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.S3.Region != "sa-east-1" {
		t.Errorf("region = %q", cfg.S3.Region)
	}
}

func TestLoadMalformed(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("display: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := loadDefaults()
		if err != nil {
			t.Fatal(err)
		}
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no data path", func(c *Config) { c.DataPath = "" }},
		{"no category column", func(c *Config) { c.CategoryColumn = "" }},
		{"no source column", func(c *Config) { c.SourceColumn = "" }},
		{"same columns", func(c *Config) { c.SourceColumn = c.CategoryColumn }},
		{"long delimiter", func(c *Config) { c.Delimiter = ";;" }},
		{"negative rows", func(c *Config) { c.Display.MaxRows = -1 }},
		{"bad sort", func(c *Config) { c.Display.CountSort = "random" }},
	}
	for _, tt := range tests {
		cfg := base()
		tt.mutate(cfg)
		if err := validate(cfg); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}

	ok := base()
	ok.Delimiter = `\t`
	ok.Display.CountSort = ""
	if err := validate(ok); err != nil {
		t.Errorf("tab delimiter and grouping order should validate: %v", err)
	}
}

func TestDelimiterRune(t *testing.T) {
	tests := []struct {
		in   string
		want rune
	}{
		{"", 0},
		{",", ','},
		{";", ';'},
		{`\t`, '\t'},
		{"\t", '\t'},
	}
	for _, tt := range tests {
		cfg := &Config{Delimiter: tt.in}
		if got := cfg.DelimiterRune(); got != tt.want {
			t.Errorf("DelimiterRune(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDatasetOptions(t *testing.T) {
	cfg := &Config{CategoryColumn: "Categoria", SourceColumn: "Fonte", Delimiter: ";"}
	opts := cfg.DatasetOptions()
	if opts.CategoryColumn != "Categoria" || opts.SourceColumn != "Fonte" || opts.Delimiter != ';' {
		t.Errorf("DatasetOptions = %+v", opts)
	}
	if opts.Opener == nil {
		t.Error("expected a storage router")
	}
	if len(cfg.EngineOptions()) != 4 {
		t.Errorf("EngineOptions len = %d", len(cfg.EngineOptions()))
	}
}
