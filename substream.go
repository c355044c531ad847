package kstream

import (
	"github.com/stewi1014/kstream/kerr"
	"github.com/stewi1014/kstream/kstore"
)

// Substream carves a bounded window of n bytes out of s, starting at s's
// current position, and returns a Stream over just that window. s's
// cursor advances by exactly n; the returned stream starts at position 0
// with size n. Any unread bit-accumulator residue on s is discarded
// first, the same as a byte-aligned read would do.
//
// If s's backing store is in-memory, the child shares the same
// underlying array: writes to the child are immediately visible through
// s without further action. Otherwise (file- or mmap-backed stores, or a
// growable write sink) the child is an independent copy, and a
// WriteBackHandler is registered automatically so that the child's final
// content is copied back into s at the reserved offset the next time s's
// WriteBackChildStreams runs (typically from s.Close()).
func (s *Stream) Substream(n int64, cfg *Config) (*Stream, error) {
	if n < 0 {
		return nil, kerr.NewIOError(kerr.EndOfStream, "negative substream size")
	}
	if s.store.Len()-s.pos < n {
		return nil, kerr.NewIOError(kerr.EndOfStream, "not enough bytes remaining for substream")
	}
	if err := s.checkTooBig(n); err != nil {
		return nil, err
	}

	s.bits.Align()
	off := s.pos

	var child *Stream
	if mem, ok := s.store.(*kstore.Memory); ok {
		win, err := mem.Window(off, n)
		if err != nil {
			return nil, err
		}
		child = newStream(win, cfgOrDefault(cfg, s.config))
	} else {
		data, err := s.store.ReadAt(off, int(n))
		if err != nil {
			return nil, err
		}
		buf := make([]byte, n)
		copy(buf, data)
		childMem := kstore.NewMemory(buf)
		child = newStream(childMem, cfgOrDefault(cfg, s.config))

		s.AddChildStream(child)
		child.SetWriteBackHandler(off, func(parent *Stream) error {
			if !childMem.Dirty() {
				// Nothing was ever written to the substream: skip the
				// write-back so a read-only parent (Mmap, a non-writable
				// File) doesn't fail on a pure read.
				return nil
			}
			data, err := child.ToByteArray()
			if err != nil {
				return err
			}
			return parent.store.WriteAt(off, data)
		})
	}

	s.pos += n
	child.parent = s
	s.config.Logger.Debugf("substream at offset %d, size %d", off, n)
	return child, nil
}

func cfgOrDefault(cfg, fallback *Config) *Config {
	if cfg != nil {
		return cfg
	}
	return fallback
}
