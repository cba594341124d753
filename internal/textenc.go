package internal

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// utf16Coding is UTF-16 with a byte-order mark: the encoder writes a
// little-endian BOM, the decoder honors whichever BOM it finds and
// assumes little-endian when none is present.
var utf16Coding = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)

// UTF16ToUTF8 converts UTF-16 bytes to UTF-8, reporting false on
// malformed input.
func UTF16ToUTF8(data []byte) ([]byte, bool) {
	out, _, err := transform.Bytes(utf16Coding.NewDecoder(), data)
	if err != nil {
		return nil, false
	}
	return out, true
}

// UTF8ToUTF16 converts UTF-8 bytes to BOM-prefixed UTF-16 bytes.
func UTF8ToUTF16(data []byte) []byte {
	out, _, err := transform.Bytes(utf16Coding.NewEncoder(), data)
	if err != nil {
		return nil
	}
	return out
}
