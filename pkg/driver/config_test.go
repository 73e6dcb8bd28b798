package driver

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dolang/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\"): %v", err)
	}
	if cfg.Parser.MaxErrors != errors.DefaultMaxErrors {
		t.Errorf("max errors = %d", cfg.Parser.MaxErrors)
	}
	if cfg.Output.Format != "text" || !cfg.Output.Color {
		t.Errorf("unexpected output defaults %+v", cfg.Output)
	}
	if cfg.Parser.NormalizeUnicode {
		t.Errorf("normalization should be off by default")
	}
	if cfg.Level() != slog.LevelWarn {
		t.Errorf("level = %v", cfg.Level())
	}
	if cfg.PoolSize() < 1 {
		t.Errorf("pool size = %d", cfg.PoolSize())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "dolang.toml", `
log_level = "debug"
workers = 3

[parser]
strict = true
max_errors = 5

[files]
exclude = ["/vendor/"]
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Level() != slog.LevelDebug || cfg.PoolSize() != 3 {
		t.Errorf("unexpected top level %+v", cfg)
	}
	opts := cfg.Parser.Options()
	if !opts.Strict || opts.MaxErrors != 5 || opts.LenientAnnotations {
		t.Errorf("unexpected parser options %+v", opts)
	}
	// Sections absent from the file keep their defaults
	if cfg.Output.Format != "text" || len(cfg.Files.Include) != 1 {
		t.Errorf("defaults lost: %+v %+v", cfg.Output, cfg.Files)
	}
	if len(cfg.Files.Exclude) != 1 || cfg.Files.Exclude[0] != "/vendor/" {
		t.Errorf("exclude = %v", cfg.Files.Exclude)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "dolang.yaml", `
parser:
  lenient_annotations: true
  normalize_unicode: true
output:
  format: yaml
  color: false
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Parser.LenientAnnotations || !cfg.Parser.NormalizeUnicode {
		t.Errorf("unexpected parser section %+v", cfg.Parser)
	}
	if cfg.Output.Format != "yaml" || cfg.Output.Color {
		t.Errorf("unexpected output section %+v", cfg.Output)
	}
	if cfg.Parser.MaxErrors != errors.DefaultMaxErrors {
		t.Errorf("max errors default lost: %d", cfg.Parser.MaxErrors)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"bad toml", "a.toml", "workers = ", "failed to parse config"},
		{"bad yaml", "a.yml", "parser: [", "failed to parse config"},
		{"format", "b.toml", `[output]
format = "xml"`, "unknown output format"},
		{"level", "c.toml", `log_level = "loud"`, "unknown log level"},
		{"workers", "d.toml", "workers = -1", "workers must not be negative"},
		{"pattern", "e.toml", `[files]
include = ["("]`, "files.include"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, dir, tt.file, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestLoadConfigFromString(t *testing.T) {
	cfg, err := LoadConfigFromString("workers: 2\n", FormatYAML)
	if err != nil {
		t.Fatalf("LoadConfigFromString: %v", err)
	}
	if cfg.Workers != 2 {
		t.Errorf("workers = %d", cfg.Workers)
	}
	if FormatTOML.String() != "toml" || FormatYAML.String() != "yaml" {
		t.Errorf("unexpected format names")
	}
}
