package rex

import (
	"github.com/coregx/coregex"
	"github.com/coregx/coregex/meta"
)

// Config controls how fragments are compiled by the engine.
//
// The fields map onto the coregex meta-engine options of the same name;
// options not listed here keep the engine defaults.
//
// Example:
//
//	config := rex.DefaultConfig()
//	config.EnableDFA = false // NFA only
//	re, err := rex.CompileWithConfig(f, config)
type Config struct {
	// EnableDFA enables the lazy DFA engine.
	// When false, only the NFA (PikeVM) is used.
	// Default: true
	EnableDFA bool

	// EnablePrefilter enables literal-based prefiltering.
	// Default: true
	EnablePrefilter bool

	// MaxDFAStates sets the maximum number of cached DFA states.
	// Default: 10000
	MaxDFAStates uint32

	// DeterminizationLimit caps the number of NFA states per DFA state.
	// Default: 1000
	DeterminizationLimit int

	// MaxRecursionDepth limits recursion during NFA compilation. Deeply
	// nested compositions need a larger value.
	// Default: 100
	MaxRecursionDepth int
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	ec := coregex.DefaultConfig()
	return Config{
		EnableDFA:            ec.EnableDFA,
		EnablePrefilter:      ec.EnablePrefilter,
		MaxDFAStates:         ec.MaxDFAStates,
		DeterminizationLimit: ec.DeterminizationLimit,
		MaxRecursionDepth:    ec.MaxRecursionDepth,
	}
}

// Validate checks that the configuration is within range.
//
// Valid ranges:
//   - MaxDFAStates: 1 to 1,000,000 (when EnableDFA)
//   - DeterminizationLimit: 10 to 100,000 (when EnableDFA)
//   - MaxRecursionDepth: 10 to 1,000
func (c Config) Validate() error {
	if c.EnableDFA {
		if c.MaxDFAStates < 1 || c.MaxDFAStates > 1_000_000 {
			return &ConfigError{
				Field:   "MaxDFAStates",
				Message: "must be between 1 and 1,000,000",
			}
		}
		if c.DeterminizationLimit < 10 || c.DeterminizationLimit > 100_000 {
			return &ConfigError{
				Field:   "DeterminizationLimit",
				Message: "must be between 10 and 100,000",
			}
		}
	}

	if c.MaxRecursionDepth < 10 || c.MaxRecursionDepth > 1_000 {
		return &ConfigError{
			Field:   "MaxRecursionDepth",
			Message: "must be between 10 and 1,000",
		}
	}

	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "rex: invalid config: " + e.Field + ": " + e.Message
}

func (c Config) engine() meta.Config {
	ec := coregex.DefaultConfig()
	ec.EnableDFA = c.EnableDFA
	ec.EnablePrefilter = c.EnablePrefilter
	ec.MaxDFAStates = c.MaxDFAStates
	ec.DeterminizationLimit = c.DeterminizationLimit
	ec.MaxRecursionDepth = c.MaxRecursionDepth
	return ec
}
