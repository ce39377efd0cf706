package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hyperifyio/ghostwriter/internal/app"
)

// cliFlags holds the raw flag values; only flags the user actually set are
// applied on top of the environment and config file.
type cliFlags struct {
	configPath  string
	envFiles    []string
	output      string
	format      string
	charset     string
	linkBase    string
	ulMarker    string
	olMarker    string
	tableColumn string
	tableRow    string
	tableCorner string
	maxDepth    int
	userAgent   string
	timeout     time.Duration
	verbose     bool
}

func newRootCmd() *cobra.Command {
	var f cliFlags
	cmd := &cobra.Command{
		Use:   "ghostwriter [file|url|-]",
		Short: "Render HTML as readable plain text",
		Long: `ghostwriter converts an HTML document into plain text that keeps links,
headings, lists, tables and images readable.

Settings are resolved from flags, then GHOSTWRITER_* environment variables,
then the --config file (YAML, JSON or TOML), then defaults.

Examples:
  ghostwriter page.html
  ghostwriter https://example.com/news
  curl -s https://example.com | ghostwriter --link-base https://example.com -
  ghostwriter --format pdf -o page.pdf page.html`,
		Args:          cobra.MaximumNArgs(1),
		Version:       app.VersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f, args)
			if err != nil {
				return err
			}
			if cfg.Verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			log.Debug().Str("input", cfg.InputPath).Str("output", cfg.OutputPath).Str("format", cfg.Format).Msg("resolved config")
			return run(cfg)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "Path to a YAML, JSON or TOML config file")
	fl.StringSliceVar(&f.envFiles, "env-file", []string{".env"}, "Dotenv files to load; later files override earlier ones")
	fl.StringVarP(&f.output, "output", "o", "", "Write the result to this file instead of stdout")
	fl.StringVar(&f.format, "format", app.FormatText, "Output format: text or pdf")
	fl.StringVar(&f.charset, "charset", "", "Input charset (default: sniffed from BOM and <meta>)")
	fl.StringVar(&f.linkBase, "link-base", "", "Base prefixed to relative links when the document has no <base href>")
	fl.StringVar(&f.ulMarker, "ul-marker", "", "Marker for unordered list items (default \"-\")")
	fl.StringVar(&f.olMarker, "ol-marker", "", "First marker of ordered lists, e.g. 1, a or A (default \"1\")")
	fl.StringVar(&f.tableColumn, "table-column", "", "Table column separator (default \"|\")")
	fl.StringVar(&f.tableRow, "table-row", "", "Table header underline glyph (default \"-\")")
	fl.StringVar(&f.tableCorner, "table-corner", "", "Table underline junction glyph (default \"|\")")
	fl.IntVar(&f.maxDepth, "max-depth", 0, "Deepest nesting that is formatted; deeper content is flattened (default 512)")
	fl.StringVar(&f.userAgent, "user-agent", "", "User-Agent sent when the input is a URL")
	fl.DurationVar(&f.timeout, "timeout", 0, "Request timeout when the input is a URL (default 30s)")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "Verbose logging")
	return cmd
}

// resolveConfig layers flags over env over the config file over defaults.
func resolveConfig(cmd *cobra.Command, f cliFlags, args []string) (app.Config, error) {
	var cfg app.Config
	if err := app.LoadEnvFiles(f.envFiles...); err != nil {
		return cfg, err
	}
	if f.configPath != "" {
		fc, err := app.LoadConfigFile(f.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if err := app.ApplyFileConfig(&cfg, fc); err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
	}
	app.ApplyEnvOverrides(&cfg)

	if len(args) == 1 {
		cfg.InputPath = args[0]
	}
	changed := cmd.Flags().Changed
	setString := func(name string, dst *string, v string) {
		if changed(name) {
			*dst = v
		}
	}
	setString("output", &cfg.OutputPath, f.output)
	setString("format", &cfg.Format, f.format)
	setString("charset", &cfg.Charset, f.charset)
	setString("link-base", &cfg.LinkBase, f.linkBase)
	setString("ul-marker", &cfg.ULMarker, f.ulMarker)
	setString("ol-marker", &cfg.OLMarker, f.olMarker)
	setString("table-column", &cfg.TableColumn, f.tableColumn)
	setString("table-row", &cfg.TableRow, f.tableRow)
	setString("table-corner", &cfg.TableCorner, f.tableCorner)
	if changed("max-depth") {
		cfg.MaxDepth = f.maxDepth
	}
	setString("user-agent", &cfg.UserAgent, f.userAgent)
	if changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if changed("verbose") {
		cfg.Verbose = f.verbose
	}

	app.ApplyDefaults(&cfg)
	return cfg, app.ValidateConfig(cfg)
}
