package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/encoding/htmlindex"
	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
	Input   string `yaml:"input" json:"input" toml:"input"`
	Output  string `yaml:"output" json:"output" toml:"output"`
	Format  string `yaml:"format" json:"format" toml:"format"`
	Charset string `yaml:"charset" json:"charset" toml:"charset"`
	Verbose bool   `yaml:"verbose" json:"verbose" toml:"verbose"`

	Links struct {
		Base string `yaml:"base" json:"base" toml:"base"`
	} `yaml:"links" json:"links" toml:"links"`

	Lists struct {
		ULMarker string `yaml:"ulMarker" json:"ulMarker" toml:"ulMarker"`
		OLMarker string `yaml:"olMarker" json:"olMarker" toml:"olMarker"`
	} `yaml:"lists" json:"lists" toml:"lists"`

	Tables struct {
		Column string `yaml:"column" json:"column" toml:"column"`
		Row    string `yaml:"row" json:"row" toml:"row"`
		Corner string `yaml:"corner" json:"corner" toml:"corner"`
	} `yaml:"tables" json:"tables" toml:"tables"`

	MaxDepth int `yaml:"maxDepth" json:"maxDepth" toml:"maxDepth"`

	Fetch struct {
		UserAgent string `yaml:"userAgent" json:"userAgent" toml:"userAgent"`
		// Timeout is a Go duration string such as "30s".
		Timeout string `yaml:"timeout" json:"timeout" toml:"timeout"`
	} `yaml:"fetch" json:"fetch" toml:"fetch"`
}

// LoadConfigFile reads YAML, JSON or TOML into FileConfig, picking the
// format from the file extension.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse toml: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from fc onto the fields of cfg that are
// still unset, so explicit settings always win over the file. It fails only
// on a malformed fetch.timeout.
func ApplyFileConfig(cfg *Config, fc FileConfig) error {
	if cfg == nil {
		return nil
	}
	setString := func(dst *string, v string) {
		if *dst == "" && v != "" {
			*dst = v
		}
	}
	setString(&cfg.InputPath, fc.Input)
	setString(&cfg.OutputPath, fc.Output)
	setString(&cfg.Format, fc.Format)
	setString(&cfg.Charset, fc.Charset)
	setString(&cfg.LinkBase, fc.Links.Base)
	setString(&cfg.ULMarker, fc.Lists.ULMarker)
	setString(&cfg.OLMarker, fc.Lists.OLMarker)
	setString(&cfg.TableColumn, fc.Tables.Column)
	setString(&cfg.TableRow, fc.Tables.Row)
	setString(&cfg.TableCorner, fc.Tables.Corner)
	if cfg.MaxDepth == 0 && fc.MaxDepth > 0 {
		cfg.MaxDepth = fc.MaxDepth
	}
	setString(&cfg.UserAgent, fc.Fetch.UserAgent)
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
	if cfg.Timeout == 0 && strings.TrimSpace(fc.Fetch.Timeout) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(fc.Fetch.Timeout))
		if err != nil {
			return fmt.Errorf("fetch.timeout: %w", err)
		}
		cfg.Timeout = d
	}
	return nil
}

// ValidateConfig checks the resolved settings before a run.
func ValidateConfig(cfg Config) error {
	err := validation.ValidateStruct(&cfg,
		validation.Field(&cfg.Format, validation.Required, validation.In(FormatText, FormatPDF)),
		validation.Field(&cfg.Charset, validation.By(knownCharset)),
		validation.Field(&cfg.MaxDepth, validation.Min(0)),
		validation.Field(&cfg.Timeout, validation.Min(time.Duration(0))),
	)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func knownCharset(value interface{}) error {
	name, _ := value.(string)
	if strings.TrimSpace(name) == "" {
		return nil
	}
	if _, err := htmlindex.Get(name); err != nil {
		return fmt.Errorf("unknown charset %q", name)
	}
	return nil
}
