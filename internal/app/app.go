package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/ghostwriter/internal/fetch"
	"github.com/hyperifyio/ghostwriter/internal/textify"
)

// ErrEmptyInput is returned when the input holds nothing but whitespace.
var ErrEmptyInput = errors.New("empty input")

// App runs one conversion: read HTML, convert it to text and write the
// result in the configured format.
type App struct {
	cfg     Config
	conv    textify.Converter
	fetcher *fetch.Client

	stdin  io.Reader
	stdout io.Writer
	out    *os.File
}

// New fills unset fields of cfg from GHOSTWRITER_* variables and defaults,
// validates it and prepares the converter.
func New(ctx context.Context, cfg Config) (*App, error) {
	ApplyEnvToConfig(&cfg)
	ApplyDefaults(&cfg)
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return &App{
		cfg:  cfg,
		conv: textify.New(cfg.TextifyOptions()),
		fetcher: &fetch.Client{
			UserAgent:         cfg.UserAgent,
			MaxAttempts:       2,
			PerRequestTimeout: cfg.Timeout,
		},
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}, nil
}

// Close releases the output file, if one was opened.
func (a *App) Close() error {
	if a.out == nil {
		return nil
	}
	err := a.out.Close()
	a.out = nil
	return err
}

// Run executes the conversion.
func (a *App) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	in, err := a.readInput(ctx)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if len(bytes.TrimSpace(in.raw)) == 0 {
		return ErrEmptyInput
	}
	markup, err := decodeInput(in.raw, a.cfg.Charset, in.contentType)
	if err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	conv := a.conv
	if a.cfg.LinkBase == "" && in.origin != "" {
		// Downloaded pages resolve root-relative links against their origin.
		opts := a.cfg.TextifyOptions()
		opts.LinkBase = in.origin
		conv = textify.New(opts)
	}
	text := conv.Textify(markup)
	log.Debug().Int("in_bytes", len(in.raw)).Int("out_bytes", len(text)).Str("format", a.cfg.Format).Msg("converted")

	if err := ctx.Err(); err != nil {
		return err
	}
	w, err := a.output()
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	switch a.cfg.Format {
	case FormatPDF:
		err = writePDF(w, text)
	default:
		_, err = io.WriteString(w, text)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", a.cfg.Format, err)
	}
	return nil
}

// input is the raw document with what is known about its origin.
type input struct {
	raw         []byte
	contentType string
	origin      string
}

func (a *App) readInput(ctx context.Context) (input, error) {
	var in input
	var err error
	switch path := a.cfg.InputPath; {
	case path == "" || path == StdStream:
		in.raw, err = io.ReadAll(a.stdin)
	case fetch.IsURL(path):
		var page *fetch.Page
		page, err = a.fetcher.Get(ctx, path)
		if err == nil {
			in = input{raw: page.Body, contentType: page.ContentType, origin: fetch.Origin(page.URL)}
		}
	default:
		in.raw, err = os.ReadFile(path)
	}
	return in, err
}

func (a *App) output() (io.Writer, error) {
	if a.cfg.OutputPath == "" || a.cfg.OutputPath == StdStream {
		return a.stdout, nil
	}
	f, err := os.Create(a.cfg.OutputPath)
	if err != nil {
		return nil, err
	}
	a.out = f
	return f, nil
}
