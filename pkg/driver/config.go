package driver

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"dolang/pkg/errors"
	"dolang/pkg/parser"
)

// Config holds the tool configuration
type Config struct {
	LogLevel string       `toml:"log_level" yaml:"log_level"`
	Workers  int          `toml:"workers" yaml:"workers"` // 0 = runtime.NumCPU()
	Parser   ParserConfig `toml:"parser" yaml:"parser"`
	Output   OutputConfig `toml:"output" yaml:"output"`
	Files    FilesConfig  `toml:"files" yaml:"files"`
}

// ParserConfig holds the parser settings
type ParserConfig struct {
	MaxErrors          int  `toml:"max_errors" yaml:"max_errors"`
	Strict             bool `toml:"strict" yaml:"strict"`
	LenientAnnotations bool `toml:"lenient_annotations" yaml:"lenient_annotations"`
	NormalizeUnicode   bool `toml:"normalize_unicode" yaml:"normalize_unicode"`
}

// OutputConfig holds the CLI output settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"` // text, yaml or json
	Color  bool   `toml:"color" yaml:"color"`
}

// FilesConfig selects the files picked up when a directory is given.
// Both lists hold regular expressions matched against slash separated paths.
type FilesConfig struct {
	Include []string `toml:"include" yaml:"include"`
	Exclude []string `toml:"exclude" yaml:"exclude"`
}

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		Parser: ParserConfig{
			MaxErrors: errors.DefaultMaxErrors,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
		Files: FilesConfig{
			Include: []string{`\.do$`},
		},
	}
}

// LoadConfig reads a TOML or YAML file, chosen by extension. Keys missing
// from the file keep their default value. An empty path yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	path = os.ExpandEnv(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := decodeConfig(content, detectFormat(path), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigFromString decodes content as the given format on top of the
// defaults.
func LoadConfigFromString(content string, format Format) (*Config, error) {
	cfg := DefaultConfig()
	if err := decodeConfig([]byte(content), format, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func decodeConfig(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	return nil
}

// Validate checks the values that cannot be fixed up silently.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Output.Format {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("unknown output format %q (want text, yaml or json)", c.Output.Format)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Parser.MaxErrors < 0 {
		return fmt.Errorf("max_errors must not be negative, got %d", c.Parser.MaxErrors)
	}
	if _, err := compilePatterns(c.Files.Include); err != nil {
		return fmt.Errorf("files.include: %w", err)
	}
	if _, err := compilePatterns(c.Files.Exclude); err != nil {
		return fmt.Errorf("files.exclude: %w", err)
	}
	return nil
}

// Options converts the parser section into parser options.
func (pc ParserConfig) Options() parser.Options {
	return parser.Options{
		MaxErrors:          pc.MaxErrors,
		Strict:             pc.Strict,
		LenientAnnotations: pc.LenientAnnotations,
	}
}

// PoolSize is the number of parse workers to start.
func (c *Config) PoolSize() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// Level returns the configured log level; unknown names fall back to warn.
func (c *Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

// NewLogger builds a text logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}

func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("unknown log level %q", name)
}
