package value

import "strings"

// PathSeparator is used only for human-readable display (Path.Display);
// the engine itself treats paths as segment slices throughout, the same
// way the teacher's ast.Tree treats "\\"-joined strings as a display
// convenience over a segment-oriented tree.
const PathSeparator = "/"

// MaxDepth bounds path depth; see spec section 3 ("suggested >= 16").
const MaxDepth = 32

// Path is an ordered sequence of non-empty byte-string segments. Path is a
// value type: copying it is cheap and safe for single-request use, the
// same contract the teacher documents for ast.Tree node paths.
type Path struct {
	segments [][]byte
}

// NewPath builds a Path from segments, copying each so the caller's
// backing arrays may be reused or mutated afterward.
func NewPath(segments ...[]byte) Path {
	p := Path{segments: make([][]byte, len(segments))}
	for i, s := range segments {
		cp := make([]byte, len(s))
		copy(cp, s)
		p.segments[i] = cp
	}
	return p
}

// NewPathFromStrings is a convenience constructor for literal paths used
// throughout tests and the CLI.
func NewPathFromStrings(segments ...string) Path {
	b := make([][]byte, len(segments))
	for i, s := range segments {
		b[i] = []byte(s)
	}
	return NewPath(b...)
}

// Segments returns the path's segments. The returned slices alias the
// Path's internal storage and must be treated as read-only.
func (p Path) Segments() [][]byte {
	return p.segments
}

// Depth returns the number of segments (the root path has depth 0).
func (p Path) Depth() int {
	return len(p.segments)
}

// Push returns a new Path with segment appended. The receiver is
// unmodified.
func (p Path) Push(segment []byte) Path {
	cp := make([]byte, len(segment))
	copy(cp, segment)
	out := make([][]byte, len(p.segments)+1)
	copy(out, p.segments)
	out[len(p.segments)] = cp
	return Path{segments: out}
}

// Pop returns a new Path with the final segment removed, and the removed
// segment. Pop on the root path returns the root path and a nil segment.
func (p Path) Pop() (Path, []byte) {
	if len(p.segments) == 0 {
		return p, nil
	}
	last := p.segments[len(p.segments)-1]
	out := make([][]byte, len(p.segments)-1)
	copy(out, p.segments[:len(p.segments)-1])
	return Path{segments: out}, last
}

// Last returns the final segment, or nil for the root path.
func (p Path) Last() []byte {
	if len(p.segments) == 0 {
		return nil
	}
	return p.segments[len(p.segments)-1]
}

// HasPrefix reports whether p starts with the same segments as prefix,
// segment-for-segment. Every path is its own prefix.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix.segments) > len(p.segments) {
		return false
	}
	for i, s := range prefix.segments {
		if string(s) != string(p.segments[i]) {
			return false
		}
	}
	return true
}

// Display joins segments with PathSeparator for logs and CLI output. Not
// used for anything semantic; consumers must not parse it back into a
// Path.
func (p Path) Display() string {
	if len(p.segments) == 0 {
		return PathSeparator
	}
	parts := make([]string, len(p.segments))
	for i, s := range p.segments {
		parts[i] = string(s)
	}
	return PathSeparator + strings.Join(parts, PathSeparator)
}
