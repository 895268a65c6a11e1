package ingest

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeText converts raw bytes to UTF-8 text.
//
// With "auto" a byte-order mark selects UTF-8 or UTF-16. BOM-less UTF-16 is
// recognised by its NUL bytes; other input that is not valid UTF-8 is read as
// Windows-1252.
func decodeText(data []byte, encoding string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(encoding))
	if name == "" || name == "auto" {
		if e, ok := guessUTF16(data); ok {
			out, _, err := transform.Bytes(unicode.UTF16(e, unicode.IgnoreBOM).NewDecoder(), data)
			if err != nil {
				return "", fmt.Errorf("decode utf-16: %w", err)
			}
			return string(out), nil
		}
		out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
		if err != nil {
			return "", fmt.Errorf("decode: %w", err)
		}
		if !utf8.Valid(out) {
			out, _, err = transform.Bytes(charmap.Windows1252.NewDecoder(), data)
			if err != nil {
				return "", fmt.Errorf("decode windows-1252: %w", err)
			}
		}
		return strings.TrimPrefix(string(out), "\ufeff"), nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", fmt.Errorf("unknown encoding %q: %w", encoding, err)
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return strings.TrimPrefix(string(out), "\ufeff"), nil
}

// guessUTF16 detects BOM-less UTF-16 in mostly-ASCII text: the high byte of
// each code unit is NUL, so NULs cluster on odd offsets (LE) or even ones (BE).
func guessUTF16(data []byte) (unicode.Endianness, bool) {
	if len(data) < 4 || bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) ||
		bytes.HasPrefix(data, []byte{0xFF, 0xFE}) || bytes.HasPrefix(data, []byte{0xFE, 0xFF}) {
		return unicode.BigEndian, false
	}
	n := len(data) &^ 1
	var even, odd int
	for i := 0; i < n; i += 2 {
		if data[i] == 0 {
			even++
		}
		if data[i+1] == 0 {
			odd++
		}
	}
	units := n / 2
	switch {
	case odd*2 > units && even*10 < units:
		return unicode.LittleEndian, true
	case even*2 > units && odd*10 < units:
		return unicode.BigEndian, true
	}
	return unicode.BigEndian, false
}
