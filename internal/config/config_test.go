package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repohealth/internal/checks"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, MinScoreUnset, cfg.Policy.MinScore)
	assert.Empty(t, cfg.Policy.FailOn)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, 4, cfg.Runtime.Concurrency)
	assert.Equal(t, 5*time.Minute, cfg.Runtime.Timeout)
	assert.True(t, cfg.Runtime.Offline)
}

func TestValidateNormalizesCommaDelimitedLists(t *testing.T) {
	cfg := New()
	cfg.Checks.Only = []string{"docs.a, ci.b", "tests.c", ",,"}
	cfg.Checks.Skip = []string{"hygiene.d,hygiene.e"}

	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"docs.a", "ci.b", "tests.c"}, cfg.Checks.Only)
	assert.Equal(t, []string{"hygiene.d", "hygiene.e"}, cfg.Checks.Skip)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "min score over 100",
			mutate:  func(c *Config) { c.Policy.MinScore = 101 },
			wantErr: "--min-score",
		},
		{
			name:    "unknown fail-on severity",
			mutate:  func(c *Config) { c.Policy.FailOn = "warning" },
			wantErr: "--fail-on",
		},
		{
			name:    "negative weight override",
			mutate:  func(c *Config) { c.Checks.Weights = map[string]int{"docs.a": -1} },
			wantErr: "must be >= 0",
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: "unsupported --format",
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *Config) { c.Runtime.Concurrency = 0 },
			wantErr: "--concurrency",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Runtime.Timeout = 0 },
			wantErr: "--timeout",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateNormalizesFailOnCase(t *testing.T) {
	cfg := New()
	cfg.Policy.FailOn = "HIGH"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, checks.SeverityHigh, cfg.Policy.FailOn)
}

func TestApplyStrict(t *testing.T) {
	t.Run("fills unset policy", func(t *testing.T) {
		cfg := New()
		cfg.Runtime.Strict = true
		cfg.ApplyStrict()
		assert.Equal(t, 90, cfg.Policy.MinScore)
		assert.Equal(t, checks.SeverityMedium, cfg.Policy.FailOn)
	})

	t.Run("explicit policy wins", func(t *testing.T) {
		cfg := New()
		cfg.Runtime.Strict = true
		cfg.Policy.MinScore = 50
		cfg.Policy.FailOn = checks.SeverityCritical
		cfg.ApplyStrict()
		assert.Equal(t, 50, cfg.Policy.MinScore)
		assert.Equal(t, checks.SeverityCritical, cfg.Policy.FailOn)
	})

	t.Run("noop without strict", func(t *testing.T) {
		cfg := New()
		cfg.ApplyStrict()
		assert.Equal(t, MinScoreUnset, cfg.Policy.MinScore)
		assert.Empty(t, cfg.Policy.FailOn)
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
version: 1
policy:
  min_score: 75
  fail_on: high
checks:
  skip:
    - security.secrets_suspected
  weights:
    docs.readme_present: 5
`)
	fc, err := LoadFile(path)
	require.NoError(t, err)

	require.NotNil(t, fc.Policy.MinScore)
	assert.Equal(t, 75, *fc.Policy.MinScore)
	assert.Equal(t, "high", fc.Policy.FailOn)
	assert.Equal(t, []string{"security.secrets_suspected"}, fc.Checks.Skip)
	assert.Equal(t, map[string]int{"docs.readme_present": 5}, fc.Checks.Weights)
}

func TestLoadFileMalformed(t *testing.T) {
	path := writeConfig(t, "policy: [not a mapping")
	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadFileUnsupportedVersion(t *testing.T) {
	path := writeConfig(t, "version: 2\n")
	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported schema version")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()

	assert.Empty(t, Discover("", root), "no file, nothing discovered")

	p := filepath.Join(root, DefaultConfigFilename)
	require.NoError(t, os.WriteFile(p, []byte("version: 1\n"), 0o644))
	assert.Equal(t, p, Discover("", root))

	assert.Equal(t, "/explicit/path.yml", Discover("/explicit/path.yml", root), "explicit path wins")
}

func TestApplyMergesFileValues(t *testing.T) {
	cfg := New()
	cfg.Checks.Skip = []string{"hygiene.changelog_present"}

	min := 80
	fc := &FileConfig{}
	fc.Policy.MinScore = &min
	fc.Policy.FailOn = "Medium"
	fc.Checks.Skip = []string{"security.secrets_suspected"}
	fc.Checks.Weights = map[string]int{"ci.config_present": 2}

	cfg.Apply(fc)

	assert.Equal(t, 80, cfg.Policy.MinScore)
	assert.Equal(t, checks.SeverityMedium, cfg.Policy.FailOn)
	assert.Equal(t, []string{"hygiene.changelog_present", "security.secrets_suspected"}, cfg.Checks.Skip,
		"skip lists are additive")
	assert.Equal(t, map[string]int{"ci.config_present": 2}, cfg.Checks.Weights)
}

func TestApplyFailOnNoneDisablesGate(t *testing.T) {
	cfg := New()
	fc := &FileConfig{}
	fc.Policy.FailOn = "none"
	cfg.Apply(fc)
	assert.Empty(t, cfg.Policy.FailOn)
}

func TestExampleFileParses(t *testing.T) {
	path := writeConfig(t, ExampleFile)
	fc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, fc.Version)
}
