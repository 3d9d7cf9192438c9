// File: encoding.go
// Title: Text Encodings
// Description: Text encodings accepted when reading bundle resources as strings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package bundle

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
)

// Encoding identifies a text encoding
type Encoding int

const (
	UTF8 Encoding = iota
	UTF16
	ShiftJIS
	EUCJP
	ISO2022JP
	Latin1
	Windows1252
)

var encodingNames = map[Encoding]string{
	UTF8:        "utf-8",
	UTF16:       "utf-16",
	ShiftJIS:    "shift_jis",
	EUCJP:       "euc-jp",
	ISO2022JP:   "iso-2022-jp",
	Latin1:      "iso-8859-1",
	Windows1252: "windows-1252",
}

func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return "unknown"
}

// ParseEncoding accepts the IANA name of an encoding (case-insensitive, "_" and "-" interchangeable)
func ParseEncoding(name string) (Encoding, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	switch key {
	case "", "utf-8", "utf8":
		return UTF8, nil
	case "utf-16", "utf16":
		return UTF16, nil
	case "shift-jis", "sjis":
		return ShiftJIS, nil
	case "euc-jp":
		return EUCJP, nil
	case "iso-2022-jp":
		return ISO2022JP, nil
	case "iso-8859-1", "latin1":
		return Latin1, nil
	case "windows-1252", "cp1252":
		return Windows1252, nil
	}
	return UTF8, mdwerror.New("unsupported text encoding").
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("bundle.ParseEncoding").
		WithDetail("encoding", name)
}

func (e Encoding) decoder() encoding.Encoding {
	switch e {
	case UTF16:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case ShiftJIS:
		return japanese.ShiftJIS
	case EUCJP:
		return japanese.EUCJP
	case ISO2022JP:
		return japanese.ISO2022JP
	case Latin1:
		return charmap.ISO8859_1
	case Windows1252:
		return charmap.Windows1252
	default:
		return nil
	}
}

// Decode converts data in enc to a string. Invalid UTF-8 input is absent.
func Decode(data []byte, enc Encoding) (string, bool) {
	d := enc.decoder()
	if d == nil {
		if !utf8.Valid(data) {
			return "", false
		}
		return strings.TrimPrefix(string(data), "\ufeff"), true
	}
	out, err := d.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	return string(out), true
}
