package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "repohealth",
	Short: "Scan a local repository and score its health",
	Long: `RepoHealth scans a local repository working tree and reports a 0-100
health score with graded findings across docs, CI, tests, dependencies,
security, and hygiene.

RepoHealth is scan-only and fully offline: it reads files and local git
metadata, finds gaps, and never mutates the repository or touches the
network.

Examples:
	# Scan the current directory
	repohealth scan

	# Scan a path and gate CI on it
	repohealth scan ./my-repo --min-score 80 --fail-on high

	# List checks
	repohealth checks list

	# Print build info
	repohealth version`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Debug, "debug", false, "Enable debug logging (prints per-check timing and full error details)")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(3)
	}
}
