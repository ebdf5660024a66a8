// Package walfile implements a durable, crash-safe Persistence Layer
// backed by an append-only write-ahead log, in the style of the teacher's
// transaction protocol (hive/tx: sequence numbers bracketing a flush) but
// applied to a path-keyed record stream instead of REGF cell offsets.
package walfile

import (
	"encoding/binary"
	"io"

	"github.com/joshuapare/ggconfig/pkg/ggerr"
	"github.com/joshuapare/ggconfig/pkg/value"
)

type opcode byte

const (
	opPutLeaf opcode = iota + 1
	opPutEmptyInternal
	opDeleteSubtree
)

// writeRecord serializes one WAL record: opcode, path, and (for
// opPutLeaf) the leaf's tag, timestamp and blob.
func writeRecord(w io.Writer, op opcode, path value.Path, tag value.Kind, timestamp int64, blob []byte) error {
	var buf []byte
	buf = append(buf, byte(op))
	buf = appendPath(buf, path)
	if op == opPutLeaf {
		buf = append(buf, byte(tag))
		var tsb [binary.MaxVarintLen64]byte
		n := binary.PutVarint(tsb[:], timestamp)
		buf = append(buf, tsb[:n]...)
		buf = appendBytes(buf, blob)
	}
	var lenb [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenb[:], uint64(len(buf)))
	if _, err := w.Write(lenb[:n]); err != nil {
		return ggerr.New(ggerr.KindInternalFailure, "wal write length", err)
	}
	if _, err := w.Write(buf); err != nil {
		return ggerr.New(ggerr.KindInternalFailure, "wal write record", err)
	}
	return nil
}

func appendBytes(buf []byte, b []byte) []byte {
	var lenb [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenb[:], uint64(len(b)))
	buf = append(buf, lenb[:n]...)
	return append(buf, b...)
}

func appendPath(buf []byte, path value.Path) []byte {
	segs := path.Segments()
	var lenb [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenb[:], uint64(len(segs)))
	buf = append(buf, lenb[:n]...)
	for _, s := range segs {
		buf = appendBytes(buf, s)
	}
	return buf
}

// record is one decoded WAL entry, used during recovery replay.
type record struct {
	op        opcode
	path      value.Path
	tag       value.Kind
	timestamp int64
	blob      []byte
}

// readRecord reads one length-prefixed record from r. It returns io.EOF
// when the log is exhausted, and a truncated-record error (treated as
// "end of valid log") if a partial record was left by a crash mid-append.
func readRecord(r *countingReader) (*record, error) {
	length, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, io.ErrUnexpectedEOF
	}
	return decodeRecord(buf)
}

func decodeRecord(buf []byte) (*record, error) {
	if len(buf) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	op := opcode(buf[0])
	buf = buf[1:]
	segCount, n := binary.Uvarint(buf)
	if n <= 0 {
		return nil, io.ErrUnexpectedEOF
	}
	buf = buf[n:]
	segs := make([][]byte, segCount)
	for i := range segs {
		l, n := binary.Uvarint(buf)
		if n <= 0 || uint64(len(buf)-n) < l {
			return nil, io.ErrUnexpectedEOF
		}
		buf = buf[n:]
		segs[i] = append([]byte(nil), buf[:l]...)
		buf = buf[l:]
	}
	rec := &record{op: op, path: value.NewPath(segs...)}
	if op == opPutLeaf {
		if len(buf) < 1 {
			return nil, io.ErrUnexpectedEOF
		}
		rec.tag = value.Kind(buf[0])
		buf = buf[1:]
		ts, n := binary.Varint(buf)
		if n <= 0 {
			return nil, io.ErrUnexpectedEOF
		}
		rec.timestamp = ts
		buf = buf[n:]
		l, n := binary.Uvarint(buf)
		if n <= 0 || uint64(len(buf)-n) < l {
			return nil, io.ErrUnexpectedEOF
		}
		buf = buf[n:]
		rec.blob = append([]byte(nil), buf[:l]...)
	}
	return rec, nil
}

// countingReader lets binary.ReadUvarint read a byte at a time from an
// *os.File without pulling in bufio, keeping replay allocation-light the
// way the teacher's scanner (internal/reader/scanner.go) avoids bufio in
// favor of direct slice indexing over a mapped buffer.
type countingReader struct {
	io.Reader
}

func (c *countingReader) ReadByte() (byte, error) {
	var b [1]byte
	_, err := io.ReadFull(c.Reader, b[:])
	return b[0], err
}
