package app

import (
	"time"

	"github.com/hyperifyio/ghostwriter/internal/textify"
)

// Defaults for downloading URL inputs.
const (
	DefaultUserAgent = "ghostwriter/1.0 (+https://github.com/hyperifyio/ghostwriter)"
	DefaultTimeout   = 30 * time.Second
)

// Output formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatPDF  = "pdf"
)

// StdStream names standard input for InputPath and standard output for
// OutputPath.
const StdStream = "-"

// Config holds the resolved settings of one conversion run.
type Config struct {
	// InputPath is the HTML file to read; empty or "-" reads stdin and an
	// http(s) URL is downloaded.
	InputPath string
	// OutputPath is where the result goes; empty or "-" writes stdout.
	OutputPath string
	// Format is FormatText or FormatPDF.
	Format string
	// Charset forces the input encoding (any WHATWG label such as
	// "iso-8859-1"). Empty sniffs it from the BOM and <meta> tags.
	Charset string

	LinkBase    string
	ULMarker    string
	OLMarker    string
	TableColumn string
	TableRow    string
	TableCorner string
	MaxDepth    int

	// UserAgent and Timeout apply when InputPath is a URL.
	UserAgent string
	Timeout   time.Duration

	Verbose bool
}

// TextifyOptions maps the formatting settings onto the converter options.
func (c Config) TextifyOptions() textify.Options {
	return textify.Options{
		LinkBase:    c.LinkBase,
		ULMarker:    c.ULMarker,
		OLMarker:    c.OLMarker,
		TableColumn: c.TableColumn,
		TableRow:    c.TableRow,
		TableCorner: c.TableCorner,
		MaxDepth:    c.MaxDepth,
	}
}

// ApplyDefaults fills the fields that no layer has set.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = textify.DefaultMaxDepth
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
}
