package helpers

const hexChars = "0123456789ABCDEF"

// Quotes a UTF-16 string value as a JavaScript string literal using the
// given quote character. Lone surrogates and non-printable characters are
// escaped. Everything else is written out as UTF-8.
func QuoteUTF16(text []uint16, quote byte) string {
	bytes := make([]byte, 0, len(text)+2)
	bytes = append(bytes, quote)

	for i := 0; i < len(text); i++ {
		c := rune(text[i])

		switch c {
		case '\b':
			bytes = append(bytes, "\\b"...)
			continue
		case '\f':
			bytes = append(bytes, "\\f"...)
			continue
		case '\n':
			bytes = append(bytes, "\\n"...)
			continue
		case '\r':
			bytes = append(bytes, "\\r"...)
			continue
		case '\t':
			bytes = append(bytes, "\\t"...)
			continue
		case '\v':
			bytes = append(bytes, "\\v"...)
			continue
		case '\\':
			bytes = append(bytes, "\\\\"...)
			continue
		case '\u2028', '\u2029', '\uFEFF':
			bytes = appendUnicodeEscape(bytes, c)
			continue
		}

		if c == rune(quote) {
			bytes = append(bytes, '\\', quote)
			continue
		}

		// Surrogate pairs become a single code point
		if c >= 0xD800 && c <= 0xDBFF && i+1 < len(text) {
			if c2 := rune(text[i+1]); c2 >= 0xDC00 && c2 <= 0xDFFF {
				var temp [4]byte
				width := encodeWTF8Rune(temp[:], (c-0xD800)<<10|(c2-0xDC00)+0x10000)
				bytes = append(bytes, temp[:width]...)
				i++
				continue
			}
		}

		if c < 0x20 || c == 0x7F || (c >= 0xD800 && c <= 0xDFFF) {
			bytes = appendUnicodeEscape(bytes, c)
			continue
		}

		var temp [4]byte
		width := encodeWTF8Rune(temp[:], c)
		bytes = append(bytes, temp[:width]...)
	}

	return string(append(bytes, quote))
}

func appendUnicodeEscape(bytes []byte, c rune) []byte {
	if c < 0x100 {
		return append(bytes, '\\', 'x', hexChars[c>>4], hexChars[c&15])
	}
	return append(bytes, '\\', 'u', hexChars[c>>12], hexChars[(c>>8)&15], hexChars[(c>>4)&15], hexChars[c&15])
}
