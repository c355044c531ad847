package ktransform_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"github.com/stewi1014/kstream/ktransform"
)

func TestProcessXor(t *testing.T) {
	got := ktransform.ProcessXor([]byte{0x11, 0x22, 0x33}, 0x0F)
	td.Cmp(t, got, []byte{0x1E, 0x2D, 0x3C})
}

func TestProcessXorKey(t *testing.T) {
	got := ktransform.ProcessXorKey([]byte{0x11, 0x22, 0x33, 0x44}, []byte{0x0F, 0xF0})
	td.Cmp(t, got, []byte{0x1E, 0xD2, 0x3C, 0xB4})
}

func TestProcessRotateLeft(t *testing.T) {
	got, err := ktransform.ProcessRotateLeft([]byte{0b10000001}, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	td.Cmp(t, got, []byte{0b00000011})

	if _, err := ktransform.ProcessRotateLeft([]byte{1}, 1, 2); err == nil {
		t.Error("expected UnsupportedOperation for groupSize != 1, got nil")
	}
}

func TestZlibRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		size := rng.Intn(4096)
		data := make([]byte, size)
		rng.Read(data)

		deflated, err := ktransform.UnprocessZlib(data)
		if err != nil {
			t.Fatalf("UnprocessZlib: %v", err)
		}
		inflated, err := ktransform.ProcessZlib(deflated)
		if err != nil {
			t.Fatalf("ProcessZlib: %v", err)
		}
		if !bytes.Equal(inflated, data) {
			t.Fatalf("round trip mismatch at size %d", size)
		}
	}
}

func TestBytesStripRight(t *testing.T) {
	got := ktransform.BytesStripRight([]byte("hello\x00\x00\x00"), 0)
	td.Cmp(t, got, []byte("hello"))
}

func TestBytesTerminate(t *testing.T) {
	got := ktransform.BytesTerminate([]byte{0x61, 0x62, 0x63, 0x00, 0x64}, 0x00, false)
	td.Cmp(t, got, []byte{0x61, 0x62, 0x63})

	got = ktransform.BytesTerminate([]byte{0x61, 0x62, 0x63, 0x00, 0x64}, 0x00, true)
	td.Cmp(t, got, []byte{0x61, 0x62, 0x63, 0x00})
}

func TestBytesTerminateMulti(t *testing.T) {
	got := ktransform.BytesTerminateMulti([]byte{0x61, 0x0D, 0x0A, 0x62}, []byte{0x0D, 0x0A}, false)
	td.Cmp(t, got, []byte{0x61})

	got = ktransform.BytesTerminateMulti([]byte{0x61, 0x0D, 0x0A, 0x62}, nil, false)
	td.Cmp(t, got, []byte{})
}

func TestByteArrayCompare(t *testing.T) {
	if ktransform.ByteArrayCompare([]byte{1, 2}, []byte{1, 3}) >= 0 {
		t.Error("expected [1,2] < [1,3]")
	}
}

func TestByteArrayIndexOf(t *testing.T) {
	if got := ktransform.ByteArrayIndexOf([]byte("hello"), []byte("ll")); got != 2 {
		t.Errorf("ByteArrayIndexOf = %d, want 2", got)
	}
	if got := ktransform.ByteArrayIndexOf([]byte("hello"), []byte("xx")); got != -1 {
		t.Errorf("ByteArrayIndexOf = %d, want -1", got)
	}
}

func TestMod(t *testing.T) {
	got, err := ktransform.Mod(-1, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 {
		t.Errorf("Mod(-1, 8) = %d, want 7", got)
	}

	if _, err := ktransform.Mod(1, 0); err == nil {
		t.Error("expected Arithmetic error for non-positive divisor")
	}
}
