// Package encoding wraps around the various encoding stuff in
// golang.org/x/text. Model description files are nominally UTF-8, but
// several exporters write ISO-8859-1 or a windows codepage, so the
// tokenizer needs a charset reader for anything the XML declaration may
// name.
package encoding

import (
	"fmt"
	"io"
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func Load(name string) enc.Encoding {
	switch strings.ToLower(name) {
	case "utf8", "utf-8":
		return unicode.UTF8
	case "utf-16", "utf16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "iso-8859-1", "latin1", "windows-1252", "windows1252":
		return charmap.Windows1252
	case "iso-8859-2":
		return charmap.ISO8859_2
	case "iso-8859-15":
		return charmap.ISO8859_15
	case "windows-1250", "windows1250":
		return charmap.Windows1250
	case "windows-1251", "windows1251":
		return charmap.Windows1251
	case "us-ascii", "ascii":
		return unicode.UTF8
	}
	return nil
}

// Reader wraps r so that its bytes are transcoded from the named charset
// to UTF-8. It has the signature encoding/xml expects of a
// Decoder.CharsetReader.
func Reader(name string, r io.Reader) (io.Reader, error) {
	e := Load(name)
	if e == nil {
		return nil, fmt.Errorf("unsupported charset %q", name)
	}
	return transform.NewReader(r, e.NewDecoder()), nil
}
