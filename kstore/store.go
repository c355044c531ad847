// Package kstore provides the backing-store abstraction for kstream: the
// raw byte container a Stream's cursor moves across. A Store is addressed
// by explicit position rather than carrying its own cursor, so the same
// Store (or a window of it) can be shared between a parent Stream and the
// substreams carved from it without the two fighting over where they are.
package kstore

import "github.com/stewi1014/kstream/kerr"

// Store owns raw bytes and exposes positional, bounds-checked access to
// them. Implementations: Memory (a fixed-capacity byte slice), Mmap (a
// read-only memory-mapped file view), File (a random-access file handle),
// and Growable (an append-style sink for serialization when the final size
// isn't known upfront).
type Store interface {
	// ReadAt reads exactly n bytes starting at pos. It returns
	// kerr.EndOfStream (wrapped) if pos+n exceeds Len().
	ReadAt(pos int64, n int) ([]byte, error)

	// WriteAt writes data starting at pos. A fixed-capacity store returns
	// kerr.EndOfStream if the write would exceed its capacity; a growable
	// store instead extends, zero-filling any gap left by a seek past the
	// current end.
	WriteAt(pos int64, data []byte) error

	// Len returns the current size of the store in bytes.
	Len() int64

	// Writable reports whether WriteAt can succeed at all on this store.
	Writable() bool

	// Close releases any OS resources held by the store. It is safe to
	// call Close more than once.
	Close() error
}

// checkRead validates a read of n bytes at pos against size, returning a
// wrapped kerr.EndOfStream if it would run past the end.
func checkRead(pos int64, n int, size int64) error {
	if pos < 0 || int64(n) < 0 || pos+int64(n) > size {
		return kerr.NewIOError(kerr.EndOfStream, "")
	}
	return nil
}
