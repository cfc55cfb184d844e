package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/assimp-bridge/assimp-go/assimp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".assimp-import.yaml")
	content := `
preset: TargetRealtimeFast
post_process:
  - FlipUVs
  - GenBoundingBoxes
timeout: 45s
output: json
log:
  level: debug
  native: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "TargetRealtimeFast", cfg.Preset)
	assert.Equal(t, []string{"FlipUVs", "GenBoundingBoxes"}, cfg.PostProcess)
	assert.Equal(t, Duration(45*time.Second), cfg.Timeout)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Native)
	// untouched defaults survive
	assert.Equal(t, 3, cfg.Log.MaxBackups)

	flags, err := cfg.Flags()
	require.NoError(t, err)
	assert.Equal(t, assimp.TargetRealtimeFast|assimp.FlipUVs|assimp.GenBoundingBoxes, flags)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: soon\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDiscoverWalksParents(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := Discover(nested)
	require.NoError(t, err)
	assert.Empty(t, found)

	configPath := filepath.Join(root, "a", ".assimp-import.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("output: yaml\n"), 0o600))

	found, err = Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, configPath, found)
}

func TestInitUsesDiscoveredFileAndEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".assimp-import.yaml"), []byte("output: yaml\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvPreset+"=TargetRealtimeQuality\n"), 0o600))
	t.Setenv(EnvPreset, "")
	require.NoError(t, os.Unsetenv(EnvPreset))

	cfg, path, err := Init("", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".assimp-import.yaml"), path)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, "TargetRealtimeQuality", cfg.Preset)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvSteps:    "Triangulate, FlipUVs",
		EnvTimeout:  "2m",
		EnvOutput:   "yaml",
		EnvLogLevel: "warn",
		EnvLogFile:  "/tmp/import.log",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, []string{"Triangulate", "FlipUVs"}, cfg.PostProcess)
	assert.Equal(t, Duration(2*time.Minute), cfg.Timeout)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/import.log", cfg.Log.File)

	env[EnvTimeout] = "later"
	assert.Error(t, Default().ApplyEnv(lookup))
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "bad output", mutate: func(c *Config) { c.Output = "xml" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.Timeout = Duration(-time.Second) }, wantErr: true},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "verbose" }, wantErr: true},
		{name: "bad step", mutate: func(c *Config) { c.PostProcess = []string{"Explode"} }, wantErr: true},
		{name: "bad preset", mutate: func(c *Config) { c.Preset = "Cinematic" }, wantErr: true},
		{name: "negative rotation", mutate: func(c *Config) { c.Log.MaxBackups = -1 }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDurationEncoding(t *testing.T) {
	cfg := Default()
	cfg.Timeout = Duration(90 * time.Second)

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "timeout: 1m30s")

	raw, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"timeout":"1m30s"`)
}

func TestSchema(t *testing.T) {
	schema := Schema()
	require.NotNil(t, schema)

	raw, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "post_process")
	assert.Contains(t, string(raw), "native_verbose")
}

func TestLoggingOptions(t *testing.T) {
	cfg := Default()
	cfg.Log.File = "import.log"
	opts := cfg.LoggingOptions()
	assert.Equal(t, "import.log", opts.File)
	assert.Equal(t, "info", opts.Level)
	assert.Equal(t, 10, opts.MaxSizeMB)
}
