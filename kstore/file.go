package kstore

import (
	"io"
	"os"

	"github.com/stewi1014/kstream/kerr"
)

// NewFile opens path for random-access reading and, if writable is true,
// writing, returning a Store over the whole file. The caller is
// responsible for calling Close when done; this is the only Store
// implementation that owns an OS resource outright.
func NewFile(path string, writable bool) (*File, error) {
	flag := os.O_RDONLY
	if writable {
		flag = os.O_RDWR
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, kerr.NewIOError(err, "opening "+path)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, kerr.NewIOError(err, "stat "+path)
	}
	return &File{f: f, size: info.Size(), writable: writable}, nil
}

// File is a Store backed by a random-access OS file handle. Unlike Memory,
// it never holds the whole content in process memory at once; each
// ReadAt/WriteAt is a syscall.
type File struct {
	f        *os.File
	size     int64
	writable bool
}

// ReadAt implements Store.
func (fs *File) ReadAt(pos int64, n int) ([]byte, error) {
	if err := checkRead(pos, n, fs.size); err != nil {
		return nil, err
	}
	buff := make([]byte, n)
	if _, err := io.ReadFull(io.NewSectionReader(fs.f, pos, int64(n)), buff); err != nil {
		return nil, kerr.NewIOError(err, "")
	}
	return buff, nil
}

// WriteAt implements Store. Writing past the current end extends the
// file; the OS zero-fills the gap, matching the growable-store contract.
func (fs *File) WriteAt(pos int64, data []byte) error {
	if !fs.writable {
		return kerr.UnsupportedOperation
	}
	n, err := fs.f.WriteAt(data, pos)
	if err != nil {
		return kerr.NewIOError(err, "")
	}
	if n != len(data) {
		return kerr.NewIOError(io.ErrShortWrite, "")
	}
	if end := pos + int64(len(data)); end > fs.size {
		fs.size = end
	}
	return nil
}

// Len implements Store.
func (fs *File) Len() int64 { return fs.size }

// Writable implements Store.
func (fs *File) Writable() bool { return fs.writable }

// Close implements Store, closing the underlying file handle.
func (fs *File) Close() error {
	if fs.f == nil {
		return nil
	}
	f := fs.f
	fs.f = nil
	if err := f.Close(); err != nil {
		return kerr.NewIOError(err, "closing file")
	}
	return nil
}
