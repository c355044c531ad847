package kstream

import (
	"bytes"

	"github.com/stewi1014/kstream/kerr"
)

// ReadBytes reads exactly n bytes, or raises kerr.EndOfStream without
// advancing the cursor.
func (s *Stream) ReadBytes(n int) ([]byte, error) {
	if err := s.checkTooBig(int64(n)); err != nil {
		return nil, err
	}
	return s.readAligned(n)
}

// WriteBytes writes data verbatim, aligning any bit residue first. It is
// the write-side counterpart of ReadBytes, used for fixed-content
// constants and raw byte-array fields alike.
func (s *Stream) WriteBytes(data []byte) error {
	return s.writeAligned(data)
}

// ReadBytesFull reads every remaining byte from pos to the end of the
// store.
func (s *Stream) ReadBytesFull() ([]byte, error) {
	s.AlignToByte()
	n := s.store.Len() - s.pos
	if err := s.checkTooBig(n); err != nil {
		return nil, err
	}
	return s.readAligned(int(n))
}

// ReadBytesTerm scans forward one byte at a time looking for term. The
// returned slice includes term iff includeTerm; the cursor lands
// immediately after term iff consumeTerm, otherwise immediately before
// it. If the store is exhausted before term is found, everything read so
// far is returned, and an error is raised iff eosError.
func (s *Stream) ReadBytesTerm(term byte, includeTerm, consumeTerm, eosError bool) ([]byte, error) {
	s.AlignToByte()
	start := s.pos
	size := s.store.Len()

	for s.pos < size {
		b, err := s.store.ReadAt(s.pos, 1)
		if err != nil {
			return nil, err
		}
		if b[0] == term {
			data, err := s.store.ReadAt(start, int(s.pos-start))
			if err != nil {
				return nil, err
			}
			if includeTerm {
				data = append(data, term)
			}
			if consumeTerm {
				s.pos++
			}
			return data, nil
		}
		s.pos++
	}

	data, err := s.store.ReadAt(start, int(s.pos-start))
	if err != nil {
		return nil, err
	}
	if eosError {
		return data, kerr.NewIOError(kerr.EndOfStream, "terminator not found")
	}
	return data, nil
}

// ReadBytesTermMulti is like ReadBytesTerm, but term is a byte sequence of
// length >= 1; a match requires the upcoming len(term) bytes to equal
// term in order. Unlike the single-byte form, if the store is exhausted
// partway through a would-be match, the partial trailing bytes are
// included in the returned data (they can never match, but have already
// been consumed by the scan).
func (s *Stream) ReadBytesTermMulti(term []byte, includeTerm, consumeTerm, eosError bool) ([]byte, error) {
	s.AlignToByte()
	start := s.pos
	size := s.store.Len()

	for s.pos < size {
		remaining := size - s.pos
		n := int64(len(term))
		if remaining >= n {
			candidate, err := s.store.ReadAt(s.pos, len(term))
			if err != nil {
				return nil, err
			}
			if bytes.Equal(candidate, term) {
				data, err := s.store.ReadAt(start, int(s.pos-start))
				if err != nil {
					return nil, err
				}
				if includeTerm {
					data = append(data, term...)
				}
				if consumeTerm {
					s.pos += n
				}
				return data, nil
			}
		}
		s.pos++
	}

	data, err := s.store.ReadAt(start, int(s.pos-start))
	if err != nil {
		return nil, err
	}
	if eosError {
		return data, kerr.NewIOError(kerr.EndOfStream, "terminator not found")
	}
	return data, nil
}

// EnsureFixedContents reads len(expected) bytes and checks they match
// expected exactly, returning a kerr.UnexpectedFixedContent error tagged
// with path if they don't.
func (s *Stream) EnsureFixedContents(expected []byte, path string) ([]byte, error) {
	pos := s.pos
	actual, err := s.readAligned(len(expected))
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(actual, expected) {
		return actual, kerr.UnexpectedFixedContent{
			Actual:   actual,
			Expected: expected,
			Pos:      pos,
			Path:     path,
		}
	}
	return actual, nil
}
