package kstream_test

import (
	"testing"

	"github.com/stewi1014/kstream"
)

// TestIntegerRoundTrip writes a mix of width/sign/endianness combinations,
// checks the wire encoding matches what's hand-computed for one case
// (ReadU4be), and reads the first five values back exactly.
func TestIntegerRoundTrip(t *testing.T) {
	s := kstream.WithCapacity(64, nil)

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}

	must(s.WriteU1(0xAB))
	must(s.WriteS1(-2))
	must(s.WriteU2be(0x1234))
	must(s.WriteU2le(0x1234))
	must(s.WriteS2be(-1))
	must(s.WriteU4be(0xDEADBEEF))
	must(s.WriteU4le(0xDEADBEEF))
	must(s.WriteS4le(-100))
	must(s.WriteU8be(0x0102030405060708))
	must(s.WriteS8le(-1))

	buf, err := s.ToByteArray()
	must(err)

	// ReadU4be at the known offset (1+1+2+2+2 = 8) must equal 0xDEADBEEF,
	// confirming big-endian byte order in the wire encoding directly.
	r := kstream.FromBytes(buf, nil)
	_, _ = r.ReadBytes(8)
	v, err := r.ReadU4be()
	must(err)
	if v != 0xDEADBEEF {
		t.Fatalf("ReadU4be = %#x, want 0xdeadbeef", v)
	}

	r2 := kstream.FromBytes(buf, nil)
	u1, err := r2.ReadU1()
	must(err)
	if u1 != 0xAB {
		t.Fatalf("ReadU1 = %#x", u1)
	}
	s1, err := r2.ReadS1()
	must(err)
	if s1 != -2 {
		t.Fatalf("ReadS1 = %d", s1)
	}
	u2be, err := r2.ReadU2be()
	must(err)
	if u2be != 0x1234 {
		t.Fatalf("ReadU2be = %#x", u2be)
	}
	u2le, err := r2.ReadU2le()
	must(err)
	if u2le != 0x1234 {
		t.Fatalf("ReadU2le = %#x", u2le)
	}
	s2be, err := r2.ReadS2be()
	must(err)
	if s2be != -1 {
		t.Fatalf("ReadS2be = %d", s2be)
	}
}

// TestU2leWireOrder directly checks byte order for the little-endian
// 16-bit encoding, independent of round-trip symmetry.
func TestU2leWireOrder(t *testing.T) {
	s := kstream.WithCapacity(2, nil)
	if err := s.WriteU2le(0x1234); err != nil {
		t.Fatal(err)
	}
	buf, err := s.ToByteArray()
	if err != nil {
		t.Fatal(err)
	}
	if buf[0] != 0x34 || buf[1] != 0x12 {
		t.Fatalf("got %x, want [34 12]", buf)
	}
}

// TestFloatWireOrder checks F4be encodes 1.0 as the standard IEEE 754
// binary32 bit pattern 0x3F800000.
func TestFloatWireOrder(t *testing.T) {
	s := kstream.WithCapacity(4, nil)
	if err := s.WriteF4be(1.0); err != nil {
		t.Fatal(err)
	}
	buf, err := s.ToByteArray()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x3F, 0x80, 0x00, 0x00}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("got %x, want %x", buf, want)
		}
	}
}
