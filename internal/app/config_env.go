package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// envPrefix namespaces every environment variable the tool reads.
const envPrefix = "GHOSTWRITER_"

// envStrings maps variable names (without prefix) to string fields.
func envStrings(cfg *Config) map[string]*string {
	return map[string]*string{
		"INPUT":        &cfg.InputPath,
		"OUTPUT":       &cfg.OutputPath,
		"FORMAT":       &cfg.Format,
		"CHARSET":      &cfg.Charset,
		"LINK_BASE":    &cfg.LinkBase,
		"UL_MARKER":    &cfg.ULMarker,
		"OL_MARKER":    &cfg.OLMarker,
		"TABLE_COLUMN": &cfg.TableColumn,
		"TABLE_ROW":    &cfg.TableRow,
		"TABLE_CORNER": &cfg.TableCorner,
		"USER_AGENT":   &cfg.UserAgent,
	}
}

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	for key, dst := range envStrings(cfg) {
		if *dst == "" {
			*dst = os.Getenv(envPrefix + key)
		}
	}
	if cfg.MaxDepth == 0 {
		if n, ok := envInt("MAX_DEPTH"); ok {
			cfg.MaxDepth = n
		}
	}
	if cfg.Timeout == 0 {
		if d, ok := envDuration("TIMEOUT"); ok {
			cfg.Timeout = d
		}
	}
	if !cfg.Verbose {
		if v, ok := envBool("VERBOSE"); ok && v {
			cfg.Verbose = true
		}
	}
}

// ApplyEnvOverrides forcefully overrides cfg fields with environment variables
// when the corresponding env vars are set. This lets env take precedence over
// a config file while flags remain highest precedence.
func ApplyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}
	for key, dst := range envStrings(cfg) {
		if v := os.Getenv(envPrefix + key); v != "" {
			*dst = v
		}
	}
	if n, ok := envInt("MAX_DEPTH"); ok {
		cfg.MaxDepth = n
	}
	if d, ok := envDuration("TIMEOUT"); ok {
		cfg.Timeout = d
	}
	if v, ok := envBool("VERBOSE"); ok {
		cfg.Verbose = v
	}
}

func envInt(key string) (int, bool) {
	s := strings.TrimSpace(os.Getenv(envPrefix + key))
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func envDuration(key string) (time.Duration, bool) {
	s := strings.TrimSpace(os.Getenv(envPrefix + key))
	if s == "" {
		return 0, false
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}

// envBool accepts the usual truthy and falsey spellings; anything else is
// treated as unset.
func envBool(key string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(envPrefix + key))) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}
	return false, false
}
