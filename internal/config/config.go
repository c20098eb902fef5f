package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"repohealth/internal/checks"
)

// DefaultConfigFilename is looked up in the scanned repository root when no
// explicit --config path is given.
const DefaultConfigFilename = ".repohealth.yml"

// MinScoreUnset marks an absent minimum-score policy.
const MinScoreUnset = -1

type Config struct {
	// MAINTAINER NOTE: If you add/change/remove config fields that affect
	// scan behavior, keep the CLI flags in internal/cli/scan.go in sync.
	Policy  Policy
	Checks  Checks
	Output  Output
	Runtime Runtime
}

type Policy struct {
	// MinScore is the minimum acceptable score in [0,100] (see --min-score).
	// MinScoreUnset disables the score gate.
	MinScore int

	// FailOn fails the scan when any finding is at or above this severity
	// (see --fail-on). Empty disables the severity gate.
	FailOn checks.Severity
}

type Checks struct {
	// Only restricts the scan to these check ids (see --only).
	Only []string

	// Skip removes these check ids from whatever set remains (see --skip
	// and the config file skip list).
	Skip []string

	// Weights overrides per-check penalties by check id. Values are
	// non-negative penalty magnitudes.
	Weights map[string]int
}

type Output struct {
	// Format selects the renderer (see --format). One of: text, json, md.
	Format string

	// Path writes the rendered report to a file instead of stdout (see --output).
	Path string

	// Plain disables color and decoration in text output (see --plain).
	Plain bool
}

type Runtime struct {
	// Concurrency bounds parallel check execution (see --concurrency). Must be >= 1.
	Concurrency int

	// Timeout is the global scan timeout (see --timeout). Must be > 0.
	Timeout time.Duration

	// Strict applies stricter policy defaults where the user set none:
	// min_score 90 and fail_on medium (see --strict).
	Strict bool

	// Offline is accepted for CLI compatibility; analysis is always
	// offline-only.
	Offline bool

	// Debug enables diagnostic output on stderr (see --debug).
	Debug bool
}

func New() *Config {
	return &Config{
		Policy: Policy{
			MinScore: MinScoreUnset,
		},
		Output: Output{
			Format: "text",
		},
		Runtime: Runtime{
			Concurrency: 4,
			Timeout:     5 * time.Minute,
			Offline:     true,
		},
	}
}

func (c *Config) Validate() error {
	c.Checks.Only = splitCommaList(c.Checks.Only)
	c.Checks.Skip = splitCommaList(c.Checks.Skip)

	if c.Policy.MinScore != MinScoreUnset && (c.Policy.MinScore < 0 || c.Policy.MinScore > 100) {
		return fmt.Errorf("--min-score must be in [0,100], got %d", c.Policy.MinScore)
	}
	if c.Policy.FailOn != "" {
		sev, err := checks.ParseSeverity(string(c.Policy.FailOn))
		if err != nil {
			return fmt.Errorf("--fail-on: %w", err)
		}
		c.Policy.FailOn = sev
	}

	for id, w := range c.Checks.Weights {
		if w < 0 {
			return fmt.Errorf("weight override for %s must be >= 0, got %d", id, w)
		}
	}

	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	switch c.Output.Format {
	case "text", "json", "md":
	case "":
		c.Output.Format = "text"
	default:
		return fmt.Errorf("unsupported --format: %s (must be one of: text, json, md)", c.Output.Format)
	}

	if c.Runtime.Concurrency <= 0 {
		return errors.New("--concurrency must be >= 1")
	}
	if c.Runtime.Timeout <= 0 {
		return errors.New("--timeout must be > 0")
	}

	return nil
}

// ApplyStrict tightens policy defaults for --strict runs. Explicit user
// policy always wins over the strict defaults.
func (c *Config) ApplyStrict() {
	if !c.Runtime.Strict {
		return
	}
	if c.Policy.MinScore == MinScoreUnset {
		c.Policy.MinScore = 90
	}
	if c.Policy.FailOn == "" {
		c.Policy.FailOn = checks.SeverityMedium
	}
}

// FileConfig mirrors the YAML configuration file schema.
type FileConfig struct {
	Version int `yaml:"version"`
	Policy  struct {
		MinScore *int   `yaml:"min_score"`
		FailOn   string `yaml:"fail_on"`
	} `yaml:"policy"`
	Checks struct {
		Skip    []string       `yaml:"skip"`
		Only    []string       `yaml:"only"`
		Weights map[string]int `yaml:"weights"`
	} `yaml:"checks"`
}

// LoadFile reads and parses a configuration file. A malformed file is a
// user input error and surfaces before any checks run.
func LoadFile(path string) (*FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if fc.Version != 0 && fc.Version != 1 {
		return nil, fmt.Errorf("config %s: unsupported schema version %d", path, fc.Version)
	}
	return &fc, nil
}

// Discover returns the config file to load: the explicit path if given,
// else the repo-root default if present, else "".
func Discover(explicitPath, repoRoot string) string {
	if explicitPath != "" {
		return explicitPath
	}
	p := filepath.Join(repoRoot, DefaultConfigFilename)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

// Apply merges file values into the config. CLI flags are merged after the
// file by the caller, so flags take precedence; skip lists are additive.
func (c *Config) Apply(fc *FileConfig) {
	if fc == nil {
		return
	}
	if fc.Policy.MinScore != nil {
		c.Policy.MinScore = *fc.Policy.MinScore
	}
	if fc.Policy.FailOn != "" && !strings.EqualFold(fc.Policy.FailOn, "none") {
		c.Policy.FailOn = checks.Severity(strings.ToLower(fc.Policy.FailOn))
	}
	if len(fc.Checks.Only) > 0 {
		c.Checks.Only = append(c.Checks.Only, fc.Checks.Only...)
	}
	if len(fc.Checks.Skip) > 0 {
		c.Checks.Skip = append(c.Checks.Skip, fc.Checks.Skip...)
	}
	if len(fc.Checks.Weights) > 0 {
		if c.Checks.Weights == nil {
			c.Checks.Weights = make(map[string]int, len(fc.Checks.Weights))
		}
		for id, w := range fc.Checks.Weights {
			c.Checks.Weights[id] = w
		}
	}
}

func splitCommaList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

// ExampleFile is the commented starter configuration written by "repohealth init".
const ExampleFile = `# repohealth configuration file

version: 1

# Policy settings - when to fail the scan
policy:
  # Minimum acceptable score (0-100)
  # min_score: 75

  # Fail if findings of this severity or higher exist
  # Options: info, low, medium, high, critical
  # fail_on: high

# Check configuration
checks:
  # Skip specific checks
  # skip:
  #   - security.secrets_suspected

  # Only run specific checks (empty = run all)
  # only:
  #   - docs.readme_present
  #   - ci.config_present

  # Override default penalties (non-negative integers)
  # weights:
  #   docs.readme_present: 8
  #   ci.config_present: 10
`
