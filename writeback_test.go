package kstream_test

import (
	"testing"

	"github.com/stewi1014/kstream"
)

// TestWriteBackNested checks that a two-level substream chain (root ->
// child copy-back, child -> grandchild memory-shared) still produces the
// expected bytes once root.Close flushes the chain.
func TestWriteBackNested(t *testing.T) {
	root := kstream.WithCapacity(8, nil)
	if err := root.WriteBytes([]byte{0, 0, 0, 0}); err != nil {
		t.Fatal(err)
	}
	if err := root.Seek(0); err != nil {
		t.Fatal(err)
	}

	child, err := root.Substream(4, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := child.WriteBytes([]byte{0, 0}); err != nil {
		t.Fatal(err)
	}
	if err := child.Seek(0); err != nil {
		t.Fatal(err)
	}

	grandchild, err := child.Substream(2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := grandchild.WriteBytes([]byte{'A', 'B'}); err != nil {
		t.Fatal(err)
	}

	if err := root.Close(); err != nil {
		t.Fatal(err)
	}

	buf, err := root.ToByteArray()
	if err != nil {
		t.Fatal(err)
	}
	if string(buf[:2]) != "AB" {
		t.Fatalf("got %q, want grandchild write-back flushed through child into root", buf[:2])
	}
}
