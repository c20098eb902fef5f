package flags

// Package flags defines canonical CLI flag names shared across the CLI.
// Keeping these as constants helps avoid drift between Cobra flag wiring
// and other code paths that need to reference flags by name (e.g. checking
// whether a flag was explicitly set before applying config file values).
// IMPORTANT: These are flag *names* without leading dashes.
const (
	// Check selection
	FlagOnly = "only"
	FlagSkip = "skip"

	// Policy
	FlagMinScore = "min-score"
	FlagFailOn   = "fail-on"
	FlagStrict   = "strict"

	// Output
	FlagFormat = "format"
	FlagOutput = "output"
	FlagPlain  = "plain"

	// Runtime
	FlagConfig      = "config"
	FlagConcurrency = "concurrency"
	FlagTimeout     = "timeout"
	FlagOffline     = "offline"
	FlagDebug       = "debug"
)
