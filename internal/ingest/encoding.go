package ingest

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeText converts uploaded bytes to a UTF-8 string. UTF-8, UTF-16 LE and
// UTF-16 BE byte order marks are honoured and stripped; byte streams that are
// not valid UTF-8 fall back to Latin-1, which never fails.
func DecodeText(data []byte) string {
	switch {
	case len(data) == 0:
		return ""
	case bytes.HasPrefix(data, bomUTF8):
		return string(data[len(bomUTF8):])
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder(), data)
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeWith(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder(), data)
	case utf8.Valid(data):
		return string(data)
	default:
		return decodeWith(charmap.ISO8859_1.NewDecoder(), data)
	}
}

func decodeWith(decoder transform.Transformer, data []byte) string {
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}
