package tools

import (
	"strconv"
	"unicode/utf16"
)

// HashContent returns a short deterministic digest of dream text, used to
// detect whether the content changed since the last analysis. It is the
// same 32-bit rolling hash the web client computes with charCodeAt, so it
// walks UTF-16 code units (surrogate pairs included) rather than runes;
// both sides agree on equality for any input. Change detection only; not
// a security control.
func HashContent(content string) string {
	var h int32
	for _, u := range utf16.Encode([]rune(content)) {
		h = (h << 5) - h + int32(u)
	}
	return strconv.FormatInt(int64(h), 36)
}
