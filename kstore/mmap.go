//go:build unix

package kstore

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/stewi1014/kstream/kerr"
)

// NewMmap memory-maps path read-only and returns a Store over its
// contents. The mapping is released on Close; inability to unmap is
// reported but never blocks (the OS reclaims the mapping on process exit
// regardless).
func NewMmap(path string) (*Mmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, kerr.NewIOError(err, "opening "+path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, kerr.NewIOError(err, "stat "+path)
	}
	size := info.Size()
	if size == 0 {
		return &Mmap{data: nil}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, kerr.NewIOError(err, "mmap "+path)
	}
	return &Mmap{data: data}, nil
}

// Mmap is a read-only Store backed by a memory-mapped file. It never
// copies the file's contents into a separate buffer.
type Mmap struct {
	data []byte
}

// ReadAt implements Store.
func (m *Mmap) ReadAt(pos int64, n int) ([]byte, error) {
	if err := checkRead(pos, n, int64(len(m.data))); err != nil {
		return nil, err
	}
	return m.data[pos : pos+int64(n)], nil
}

// WriteAt implements Store. Mmap is read-only; every write fails.
func (m *Mmap) WriteAt(pos int64, data []byte) error {
	return kerr.UnsupportedOperation
}

// Len implements Store.
func (m *Mmap) Len() int64 { return int64(len(m.data)) }

// Writable implements Store.
func (m *Mmap) Writable() bool { return false }

// Close unmaps the file. Failure to unmap is reported but the Store
// considers itself closed regardless; callers should not retry.
func (m *Mmap) Close() error {
	if m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	if err := unix.Munmap(data); err != nil {
		return kerr.NewIOError(err, "munmap")
	}
	return nil
}
