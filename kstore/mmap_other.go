//go:build !unix

package kstore

import (
	"os"

	"github.com/stewi1014/kstream/kerr"
)

// NewMmap falls back to reading the whole file into memory on platforms
// without the unix mmap syscalls; the returned Store is read-only, the
// same contract as the unix mmap-backed implementation, it just isn't
// actually memory-mapped.
func NewMmap(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return readonlyMemory{NewMemory(data)}, nil
}

// readonlyMemory is a Memory whose writes always fail.
type readonlyMemory struct{ *Memory }

func (readonlyMemory) WriteAt(int64, []byte) error { return kerr.UnsupportedOperation }
func (readonlyMemory) Writable() bool              { return false }
