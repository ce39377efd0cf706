package app

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestApp(t *testing.T, cfg Config, stdin string) (*App, *bytes.Buffer) {
	t.Helper()
	a, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	var stdout bytes.Buffer
	a.stdin = strings.NewReader(stdin)
	a.stdout = &stdout
	return a, &stdout
}

func TestRun_FileToFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.html", `<h1>Report</h1><p>See <a href="/x">details</a>.</p>`)
	out := filepath.Join(dir, "out.txt")

	a, _ := newTestApp(t, Config{InputPath: in, OutputPath: out, LinkBase: "https://example.com"}, "")
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "-- Report --\nSee details (https://example.com/x).\n"
	if string(b) != want {
		t.Fatalf("output=%q, want %q", string(b), want)
	}
}

func TestNew_FillsUnsetFieldsFromEnv(t *testing.T) {
	t.Setenv("GHOSTWRITER_LINK_BASE", "https://env.example")
	t.Setenv("GHOSTWRITER_UL_MARKER", "*")

	a, stdout := newTestApp(t, Config{InputPath: StdStream, ULMarker: "+"}, `<a href="/x">X</a><ul><li>y</li></ul>`)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := stdout.String(), "X (https://env.example/x)\n+ y\n"; got != want {
		t.Fatalf("stdout=%q, want %q", got, want)
	}
}

func TestRun_StdinToStdout(t *testing.T) {
	a, stdout := newTestApp(t, Config{InputPath: StdStream, OLMarker: "a"}, "<ol><li>x</li><li>y</li></ol>")
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := stdout.String(); got != "a. x\nb. y\n" {
		t.Fatalf("stdout=%q", got)
	}
}

func TestRun_EmptyInput(t *testing.T) {
	a, stdout := newTestApp(t, Config{}, " \n\t ")
	err := a.Run(context.Background())
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if stdout.Len() != 0 {
		t.Fatalf("nothing should be written for empty input, got %q", stdout.String())
	}
}

func TestRun_MissingInputFile(t *testing.T) {
	a, _ := newTestApp(t, Config{InputPath: filepath.Join(t.TempDir(), "nope.html")}, "")
	if err := a.Run(context.Background()); err == nil || !strings.Contains(err.Error(), "read input") {
		t.Fatalf("expected read input error, got %v", err)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	a, _ := newTestApp(t, Config{}, "<p>x</p>")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRun_ExplicitCharset(t *testing.T) {
	a, stdout := newTestApp(t, Config{Charset: "iso-8859-1"}, "<p>caf\xe9</p>")
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := stdout.String(); got != "caf\u00e9\n" {
		t.Fatalf("stdout=%q", got)
	}
}

func TestRun_SniffsMetaCharset(t *testing.T) {
	a, stdout := newTestApp(t, Config{}, `<meta charset="windows-1252"><p>caf`+"\xe9"+`</p>`)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := stdout.String(); got != "caf\u00e9\n" {
		t.Fatalf("stdout=%q", got)
	}
}

func TestRun_PDF(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.pdf")
	html := "<h1>Crew</h1><table><thead><tr><th>Ship</th><th>Captain</th></tr></thead>" +
		"<tr><td>Enterprise</td><td>Jean-Luc Picard</td></tr></table><p>caf\u00e9</p>"
	a, _ := newTestApp(t, Config{Format: FormatPDF, OutputPath: out}, html)
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", b[:min(len(b), 16)])
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	if _, err := New(context.Background(), Config{Format: "docx"}); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestRun_URLInput(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		_, _ = w.Write([]byte(`<p>Caf` + "\xe9" + ` <a href="/menu">menu</a></p>`))
	}))
	defer srv.Close()

	a, stdout := newTestApp(t, Config{InputPath: srv.URL + "/page", UserAgent: "ghostwriter-test"}, "")
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "Caf\u00e9 menu (" + srv.URL + "/menu)\n"
	if got := stdout.String(); got != want {
		t.Fatalf("stdout=%q, want %q", got, want)
	}
	if ua != "ghostwriter-test" {
		t.Fatalf("User-Agent=%q", ua)
	}
}

func TestRun_URLInputKeepsConfiguredBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<a href="/x">x</a>`))
	}))
	defer srv.Close()

	a, stdout := newTestApp(t, Config{InputPath: srv.URL, LinkBase: "https://mirror.example"}, "")
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := stdout.String(); got != "x (https://mirror.example/x)\n" {
		t.Fatalf("stdout=%q", got)
	}
}
