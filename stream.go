// Package kstream is the runtime stream engine behind a declarative
// binary-format toolchain: a seekable, dual-mode cursor over a byte
// source, with typed primitive read/write, a bit-level accumulator,
// substreams, and a write-back mechanism for size/offset placeholders.
// Generated parser/serializer code is expected to be a thin caller of this
// package; every byte-level decision lives here so that generated code in
// different target languages agrees on the bytes it produces.
package kstream

import (
	"github.com/stewi1014/kstream/kbits"
	"github.com/stewi1014/kstream/kerr"
	"github.com/stewi1014/kstream/kstore"
)

// Stream is the central entity of this package: a backing store plus a
// cursor, a bit accumulator, and (on the write side) the bookkeeping
// needed to fill in placeholders once child streams finish. A Stream is
// not safe for concurrent use; generated code drives it synchronously.
type Stream struct {
	store  kstore.Store
	pos    int64
	bits   kbits.Accumulator
	order  kbits.Order
	config *Config

	writeBack *writeBackHandler
	children  []*Stream
	parent    *Stream

	closed   bool
	flushErr error
}

func newStream(store kstore.Store, cfg *Config) *Stream {
	cfg = cfg.withDefaults()
	s := &Stream{
		store:  store,
		config: cfg,
		order:  cfg.DefaultBitOrder,
	}
	cfg.Logger.Debugf("new stream over %T, size %d", store, store.Len())
	return s
}

// FromBytes returns a Stream reading and writing in place over buff. The
// store's capacity is fixed at len(buff).
func FromBytes(buff []byte, cfg *Config) *Stream {
	return newStream(kstore.NewMemory(buff), cfg)
}

// FromBuffer is an alias of FromBytes; it exists because generated code
// conventionally distinguishes "bytes I was handed" from "a buffer I
// pre-allocated", though the runtime treats them identically.
func FromBuffer(buff []byte, cfg *Config) *Stream {
	return FromBytes(buff, cfg)
}

// WithCapacity returns a Stream over a new, empty, growable store with
// room for at least n bytes before its first reallocation. It is intended
// for the write side, where the final size isn't known upfront.
func WithCapacity(n int, cfg *Config) *Stream {
	return newStream(kstore.NewGrowable(n), cfg)
}

// FromByteList returns a Stream over a new, empty, growable store, the
// same as WithCapacity(0, cfg).
func FromByteList(cfg *Config) *Stream {
	return WithCapacity(0, cfg)
}

// FromFile opens path for random-access reading, and for writing too if
// writable is true, returning a Stream over its entire contents. The
// Stream owns the file handle; Close releases it.
func FromFile(path string, writable bool, cfg *Config) (*Stream, error) {
	store, err := kstore.NewFile(path, writable)
	if err != nil {
		return nil, err
	}
	return newStream(store, cfg), nil
}

// FromFileMmap memory-maps path read-only and returns a Stream over it.
// Writes on the returned Stream always fail with kerr.UnsupportedOperation.
func FromFileMmap(path string, cfg *Config) (*Stream, error) {
	store, err := kstore.NewMmap(path)
	if err != nil {
		return nil, err
	}
	return newStream(store, cfg), nil
}

// checkTooBig guards an allocation about to be sized from a length read
// off the stream itself, rejecting it before it happens if n exceeds the
// stream's configured sanity ceiling.
func (s *Stream) checkTooBig(n int64) error {
	if n > s.config.TooBig {
		return kerr.NewIOError(kerr.TooBig, "")
	}
	return nil
}

// Pos returns the number of bytes consumed or produced since this
// stream's origin, excluding any unflushed bit-accumulator tail.
func (s *Stream) Pos() int64 { return s.pos }

// Size returns the total size of the backing store.
func (s *Stream) Size() int64 { return s.store.Len() }

// IsEOF reports whether the cursor is at (or past) the end of the store.
func (s *Stream) IsEOF() bool { return s.pos >= s.store.Len() }

// Seek moves the cursor to an absolute position. It discards any unread
// bit-accumulator residue, the same as a byte-aligned read would.
func (s *Stream) Seek(pos int64) error {
	if pos < 0 || pos > s.store.Len() {
		return kerr.NewIOError(kerr.EndOfStream, "seek out of bounds")
	}
	s.bits.Align()
	s.pos = pos
	return nil
}

// ToByteArray returns the full contents of the backing store, independent
// of the cursor's current position. It only works for in-memory stores
// (Memory or Growable); file-backed and mmap-backed streams return an
// error, since materializing them as a single slice would defeat the
// point of not holding the whole file in memory.
func (s *Stream) ToByteArray() ([]byte, error) {
	switch store := s.store.(type) {
	case *kstore.Memory:
		return store.Bytes(), nil
	case *kstore.Growable:
		return store.Bytes(), nil
	default:
		return nil, kerr.UnsupportedOperation
	}
}

// AsReadonlyView returns a new Stream over the same store, positioned at
// 0, that ignores any writes (they return kerr.UnsupportedOperation). It
// shares the underlying bytes with s; it does not copy them.
func (s *Stream) AsReadonlyView() *Stream {
	view := newStream(&readonlyStore{Store: s.store}, s.config)
	return view
}

type readonlyStore struct {
	kstore.Store
}

func (r *readonlyStore) WriteAt(int64, []byte) error { return kerr.UnsupportedOperation }
func (r *readonlyStore) Writable() bool              { return false }

// ReadByteUnaligned and WriteByteUnaligned give the bit accumulator direct
// byte-at-a-time access to the store without going through AlignToByte
// (which would be circular: the accumulator is what AlignToByte clears).

func (s *Stream) ReadByteUnaligned() (byte, error) {
	b, err := s.store.ReadAt(s.pos, 1)
	if err != nil {
		return 0, err
	}
	s.pos++
	return b[0], nil
}

func (s *Stream) WriteByteUnaligned(b byte) error {
	if err := s.store.WriteAt(s.pos, []byte{b}); err != nil {
		return err
	}
	s.pos++
	return nil
}

// AlignToByte discards any unread bit-accumulator residue on the read
// side, leaving the cursor at the byte boundary one past the last whole
// byte consumed by bit reads. It is always safe to call and is a no-op
// once the accumulator is already empty.
func (s *Stream) AlignToByte() {
	s.bits.Align()
}

// WriteAlignToByte flushes any unwritten bit-accumulator residue on the
// write side, padding the final partial byte with zeros on the unused low
// bits (big-endian order) or high bits (little-endian order), per
// whichever order was last used to write.
func (s *Stream) WriteAlignToByte() error {
	return s.bits.Flush(s)
}

// Close flushes any unwritten bit residue, walks and flushes this
// stream's registered child streams (see WriteBackChildStreams), and
// releases the backing store. Flush failures and close failures are both
// reported; a close failure is primary with an earlier flush failure
// attached as suppressed context. After Close, further operations on s
// are undefined.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	flushErr := s.WriteAlignToByte()
	wbErr := s.WriteBackChildStreams()
	if flushErr == nil {
		flushErr = wbErr
	}

	closeErr := s.store.Close()
	s.config.Logger.Debugf("closed stream at pos %d, flushErr=%v closeErr=%v", s.pos, flushErr, closeErr)
	return kerr.JoinClose(closeErr, flushErr)
}
