package config

import (
	"os"
	"strconv"
)

// DefaultOutputFile is where the rendered contract goes when nothing else
// is configured.
const DefaultOutputFile = "Contract.md"

// Config holds runtime settings for a generation run. The contract content
// itself lives in the contract file; these settings only say where to read
// and write and how to talk to the terminal.
type Config struct {
	ContractPath string
	OutputPath   string
	Separator    string
	LogCalls     bool
	NoColor      bool
}

// DefaultConfig returns a Config with sensible defaults. With no contract
// path the built-in placeholder contract is used.
func DefaultConfig() Config {
	return Config{
		ContractPath: "",
		OutputPath:   DefaultOutputFile,
		Separator:    "",
		LogCalls:     false,
		NoColor:      false,
	}
}

// LoadConfig reads settings from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	return loadFrom(os.Getenv)
}

func loadFrom(getenv func(string) string) Config {
	cfg := DefaultConfig()

	if v := getenv("DEVCONTRACT_CONFIG"); v != "" {
		cfg.ContractPath = v
	}
	if v := getenv("DEVCONTRACT_OUTPUT"); v != "" {
		cfg.OutputPath = v
	}
	if v := getenv("DEVCONTRACT_SEPARATOR"); v != "" {
		cfg.Separator = Unescape(v)
	}
	if v := getenv("DEVCONTRACT_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := getenv("NO_COLOR"); v != "" {
		cfg.NoColor = true
	}
	if v := getenv("DEVCONTRACT_NO_COLOR"); v != "" {
		cfg.NoColor, _ = strconv.ParseBool(v)
	}

	return cfg
}

// Unescape turns the two-character sequences `\n` and `\t` into the
// characters they name, so separators can be given on a single line.
func Unescape(s string) string {
	if u, err := strconv.Unquote(`"` + s + `"`); err == nil {
		return u
	}
	return s
}
