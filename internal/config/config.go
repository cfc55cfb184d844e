// Package config loads the assimp-import configuration from YAML files,
// .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/assimp-bridge/assimp-go/assimp"
	"github.com/assimp-bridge/assimp-go/internal/logging"
	"github.com/invopop/jsonschema"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileNames are the config file names looked up by Discover, in order.
var FileNames = []string{".assimp-import.yaml", ".assimp-import.yml", "assimp-import.yaml"}

// Environment variables overriding file values.
const (
	EnvPreset   = "ASSIMP_IMPORT_PRESET"
	EnvSteps    = "ASSIMP_IMPORT_STEPS"
	EnvTimeout  = "ASSIMP_IMPORT_TIMEOUT"
	EnvOutput   = "ASSIMP_IMPORT_OUTPUT"
	EnvLogLevel = "ASSIMP_IMPORT_LOG_LEVEL"
	EnvLogFile  = "ASSIMP_IMPORT_LOG_FILE"
)

// Output formats accepted by the import command.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is the effective configuration of the command line tool.
type Config struct {
	// PostProcess lists post-process step names applied on import.
	PostProcess []string `json:"post_process,omitempty" yaml:"post_process,omitempty" jsonschema:"description=Post-process step names such as Triangulate or FlipUVs"`

	// Preset is one of the aiProcessPreset names, combined with PostProcess.
	Preset string `json:"preset,omitempty" yaml:"preset,omitempty" jsonschema:"description=Post-process preset,enum=,enum=ConvertToLeftHanded,enum=TargetRealtimeFast,enum=TargetRealtimeQuality,enum=TargetRealtimeMaxQuality"`

	// Timeout bounds a single import. Zero means no limit.
	Timeout Duration `json:"timeout,omitempty" yaml:"timeout,omitempty" jsonschema:"type=string,description=Maximum time for one import,example=30s"`

	// Output selects the report format.
	Output string `json:"output,omitempty" yaml:"output,omitempty" jsonschema:"enum=text,enum=json,enum=yaml,default=text"`

	Log LogConfig `json:"log" yaml:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level         string `json:"level,omitempty" yaml:"level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,default=info"`
	File          string `json:"file,omitempty" yaml:"file,omitempty" jsonschema:"description=Write logs to this file instead of stderr"`
	MaxSizeMB     int    `json:"max_size_mb,omitempty" yaml:"max_size_mb,omitempty" jsonschema:"minimum=0,default=10"`
	MaxBackups    int    `json:"max_backups,omitempty" yaml:"max_backups,omitempty" jsonschema:"minimum=0,default=3"`
	MaxAgeDays    int    `json:"max_age_days,omitempty" yaml:"max_age_days,omitempty" jsonschema:"minimum=0,default=28"`
	Native        bool   `json:"native,omitempty" yaml:"native,omitempty" jsonschema:"description=Forward the Assimp library log"`
	NativeVerbose bool   `json:"native_verbose,omitempty" yaml:"native_verbose,omitempty" jsonschema:"description=Include Assimp debug output"`
}

// Duration is a time.Duration written as a string such as "30s".
type Duration time.Duration

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputText,
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads a YAML file on top of the defaults. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	// #nosec G304 -- path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Discover searches dir and its parents for one of FileNames and returns the
// first match, or "" if there is none.
func Discover(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}

	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Init resolves the configuration used by a command: the explicit path if
// given, otherwise a discovered file, then .env and environment overrides.
func Init(explicitPath string, workDir string) (*Config, string, error) {
	path := explicitPath
	if path == "" {
		found, err := Discover(workDir)
		if err != nil {
			return nil, "", err
		}
		path = found
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}

	envFile := ".env"
	if workDir != "" {
		envFile = filepath.Join(workDir, ".env")
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, "", fmt.Errorf("load %s: %w", envFile, err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// ApplyEnv overrides fields from the environment through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPreset); ok {
		c.Preset = v
	}
	if v, ok := lookup(EnvSteps); ok {
		c.PostProcess = splitList(v)
	}
	if v, ok := lookup(EnvTimeout); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: invalid duration %q: %w", EnvTimeout, v, err)
		}
		c.Timeout = Duration(parsed)
	}
	if v, ok := lookup(EnvOutput); ok {
		c.Output = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.Log.File = v
	}
	return nil
}

// Validate checks every field that has a closed set of values.
func (c *Config) Validate() error {
	var errs []error

	switch c.Output {
	case "", OutputText, OutputJSON, OutputYAML:
	default:
		errs = append(errs, fmt.Errorf("output must be one of text, json, yaml; got %q", c.Output))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative"))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		errs = append(errs, fmt.Errorf("log rotation limits cannot be negative"))
	}
	if _, err := c.Flags(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Flags resolves Preset and PostProcess into one bitmask.
func (c *Config) Flags() (assimp.PostProcess, error) {
	var flags assimp.PostProcess
	if c.Preset != "" {
		preset, err := assimp.ParsePostProcess(c.Preset)
		if err != nil {
			return 0, err
		}
		flags |= preset
	}
	steps, err := assimp.ParsePostProcess(strings.Join(c.PostProcess, "|"))
	if err != nil {
		return 0, err
	}
	return flags | steps, nil
}

// LoggingOptions converts the log section for logging.New.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{
		Level:      c.Log.Level,
		File:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
	}
}

// Schema returns the JSON schema describing Config.
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := reflector.Reflect(&Config{})
	schema.Title = "assimp-import configuration"
	return schema
}

func splitList(v string) []string {
	fields := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == '|' || r == ' '
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}
