package kstore

import "github.com/stewi1014/kstream/kerr"

// NewMemory returns a Store backed directly by buff. Reads and writes
// operate on buff in place; the store's capacity is fixed at len(buff) and
// never grows.
func NewMemory(buff []byte) *Memory {
	return &Memory{buff: buff, dirty: new(bool)}
}

// Memory is a Store backed by a fixed-capacity byte slice. It is the Store
// used for FromBytes and FromBuffer, and for the window a Substream carves
// out of a parent that shares memory with it.
type Memory struct {
	buff []byte

	// dirty is shared (via pointer) with every Memory returned by Window
	// over the same backing array, so a write through any one of them
	// marks them all dirty. Substream uses this to decide whether a
	// copy-based child's write-back handler has anything to do.
	dirty *bool
}

// ReadAt implements Store.
func (m *Memory) ReadAt(pos int64, n int) ([]byte, error) {
	if err := checkRead(pos, n, int64(len(m.buff))); err != nil {
		return nil, err
	}
	return m.buff[pos : pos+int64(n)], nil
}

// WriteAt implements Store.
func (m *Memory) WriteAt(pos int64, data []byte) error {
	if pos < 0 || pos+int64(len(data)) > int64(len(m.buff)) {
		return kerr.NewIOError(kerr.EndOfStream, "write exceeds fixed capacity")
	}
	copy(m.buff[pos:], data)
	*m.dirty = true
	return nil
}

// Dirty reports whether WriteAt has been called on m, or on any Window
// sharing its underlying array, since it was created.
func (m *Memory) Dirty() bool { return *m.dirty }

// Len implements Store.
func (m *Memory) Len() int64 { return int64(len(m.buff)) }

// Writable implements Store. Memory stores are always writable within
// their fixed capacity.
func (m *Memory) Writable() bool { return true }

// Close implements Store. Memory has no resources to release.
func (m *Memory) Close() error { return nil }

// Bytes returns the full underlying buffer. It is used by Stream.ToByteArray.
func (m *Memory) Bytes() []byte { return m.buff }

// Window returns a Store for the sub-region [off, off+n) of m, sharing the
// same backing array. Used by Substream when the parent store is already
// in-memory: writes to the window are visible to the parent without a
// write-back handler.
func (m *Memory) Window(off int64, n int64) (*Memory, error) {
	if off < 0 || n < 0 || off+n > int64(len(m.buff)) {
		return nil, kerr.NewIOError(kerr.EndOfStream, "substream window exceeds parent")
	}
	return &Memory{buff: m.buff[off : off+n : off+n], dirty: m.dirty}, nil
}
