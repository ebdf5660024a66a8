package value

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// MaxSegmentLen bounds an individual path segment, mirroring the teacher's
// WindowsMaxKeyNameLen-style constants (pkg/types/limits.go) scaled down
// for an edge-device config tree rather than a registry hive.
const MaxSegmentLen = 255

// ValidateSegment checks that segment is non-empty and within
// MaxSegmentLen. It is the gate every key_path segment passes through in
// the Request Handlers (spec section 4.4); CLI paths reach it through
// those same handlers.
func ValidateSegment(segment []byte) error {
	if len(segment) == 0 {
		return errEmptySegment
	}
	if len(segment) > MaxSegmentLen {
		return errSegmentTooLong
	}
	return nil
}

// NormalizeSegment best-effort decodes a segment that arrived as legacy
// 8-bit (Windows-1252) text from an older client into UTF-8. Segments
// that are already valid UTF-8 are returned unchanged; this only kicks in
// for byte sequences that cannot decode as UTF-8, the same compressed-name
// fallback path the teacher takes for pre-Unicode NK records
// (internal/format name decoding) but implemented against x/text's
// charmap table instead of a hand-rolled Windows-1252 table.
func NormalizeSegment(segment []byte) []byte {
	if utf8.Valid(segment) {
		return segment
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(segment)
	if err != nil {
		return segment
	}
	return decoded
}
