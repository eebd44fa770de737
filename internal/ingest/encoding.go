package ingest

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeReader wraps r so the CSV reader always sees UTF-8. The default
// handles plain UTF-8 and strips a byte-order mark if present; spreadsheet
// exports frequently arrive as UTF-16 or Windows-1252 instead.
func decodeReader(r io.Reader, name string) (io.Reader, error) {
	var enc encoding.Encoding
	switch name {
	case "", "utf-8", "utf8":
		enc = unicode.UTF8BOM
	case "utf-16", "utf16":
		enc = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case "utf-16be":
		enc = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case "windows-1252", "latin-1":
		enc = charmap.Windows1252
	default:
		return nil, fmt.Errorf("unsupported input encoding %q", name)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
