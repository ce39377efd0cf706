package app

import (
	"bytes"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
)

// decodeInput returns raw as UTF-8. A named charset is used as given;
// otherwise the encoding is sniffed from a BOM, the Content-Type of a
// downloaded page or a <meta> declaration the way browsers do, falling back
// to UTF-8 for valid UTF-8 input.
func decodeInput(raw []byte, name, contentType string) (string, error) {
	if strings.TrimSpace(name) != "" {
		enc, err := htmlindex.Get(name)
		if err != nil {
			return "", err
		}
		out, err := enc.NewDecoder().Bytes(raw)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	if contentType == "" {
		contentType = "text/html"
	}
	enc, label, certain := charset.DetermineEncoding(raw, contentType)
	log.Debug().Str("charset", label).Bool("certain", certain).Msg("input encoding")
	r := enc.NewDecoder().Reader(bytes.NewReader(raw))
	out, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
