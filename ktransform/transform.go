// Package ktransform provides the pure byte-transform helpers used by
// "process" pipelines in generated code: XOR, rotate, zlib, and the small
// set of byte-array scans and comparisons schema expressions need. None of
// these hold any state or touch a Stream; they operate on plain []byte.
package ktransform

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/stewi1014/kstream/kerr"
)

// ProcessXor XORs every byte of data with the scalar key, returning a new
// slice; data is not modified.
func ProcessXor(data []byte, key byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key
	}
	return out
}

// ProcessXorKey XORs every byte of data with a repeating key, cycling
// through keyBytes. A zero-length keyBytes returns a copy of data
// unchanged.
func ProcessXorKey(data []byte, keyBytes []byte) []byte {
	out := make([]byte, len(data))
	if len(keyBytes) == 0 {
		copy(out, data)
		return out
	}
	for i, b := range data {
		out[i] = b ^ keyBytes[i%len(keyBytes)]
	}
	return out
}

// ProcessRotateLeft circularly rotates each byte of data left by amount
// bits. groupSize must be 1; any other value returns
// kerr.UnsupportedOperation, matching the reference runtime which only
// ever implemented byte-at-a-time rotation.
func ProcessRotateLeft(data []byte, amount int, groupSize int) ([]byte, error) {
	if groupSize != 1 {
		return nil, kerr.UnsupportedOperation
	}
	shift := uint(((amount % 8) + 8) % 8)
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b<<shift | b>>(8-shift)
	}
	return out, nil
}

// UnprocessZlib deflates data, returning a zlib-wrapped stream. It is built
// on klauspost/compress/zlib rather than the standard library's
// compress/zlib, matching this dependency graph's preference for that
// package wherever zlib appears.
func UnprocessZlib(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, kerr.NewIOError(err, "deflating")
	}
	if err := w.Close(); err != nil {
		return nil, kerr.NewIOError(err, "closing deflate stream")
	}
	return buf.Bytes(), nil
}

// ProcessZlib inflates a zlib-wrapped stream produced by UnprocessZlib (or
// any compliant zlib writer).
func ProcessZlib(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, kerr.NewIOError(err, "opening zlib stream")
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, kerr.NewIOError(err, "inflating")
	}
	return out, nil
}

// BytesStripRight returns data with every trailing byte equal to pad
// removed.
func BytesStripRight(data []byte, pad byte) []byte {
	end := len(data)
	for end > 0 && data[end-1] == pad {
		end--
	}
	return data[:end]
}

// BytesTerminate truncates data at the first occurrence of term,
// optionally including term in the result. If term does not occur, data
// is returned unchanged.
func BytesTerminate(data []byte, term byte, includeTerm bool) []byte {
	i := bytes.IndexByte(data, term)
	if i < 0 {
		return data
	}
	if includeTerm {
		return data[:i+1]
	}
	return data[:i]
}

// BytesTerminateMulti is like BytesTerminate but term is a byte sequence.
// An empty term returns an empty slice.
func BytesTerminateMulti(data []byte, term []byte, includeTerm bool) []byte {
	if len(term) == 0 {
		return data[:0]
	}
	i := bytes.Index(data, term)
	if i < 0 {
		return data
	}
	if includeTerm {
		return data[:i+len(term)]
	}
	return data[:i]
}

// ByteArrayCompare performs an unsigned lexicographic comparison of a and
// b, returning -1, 0, or 1.
func ByteArrayCompare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// ByteArrayMin returns whichever of a or b is lexicographically smaller.
func ByteArrayMin(a, b []byte) []byte {
	if bytes.Compare(a, b) <= 0 {
		return a
	}
	return b
}

// ByteArrayMax returns whichever of a or b is lexicographically larger.
func ByteArrayMax(a, b []byte) []byte {
	if bytes.Compare(a, b) >= 0 {
		return a
	}
	return b
}

// ByteArrayIndexOf returns the index of the first occurrence of needle in
// haystack, or -1 if it does not occur.
func ByteArrayIndexOf(haystack, needle []byte) int {
	return bytes.Index(haystack, needle)
}

// Mod returns the Euclidean modulo of a by b: a result in [0, b). b must
// be positive; b <= 0 returns kerr.Arithmetic.
func Mod(a, b int64) (int64, error) {
	if b <= 0 {
		return 0, kerr.Arithmetic
	}
	m := a % b
	if m < 0 {
		m += b
	}
	return m, nil
}
