package kstore

// NewGrowable returns a new, empty Growable store with room for at least
// sizeHint bytes before its first reallocation.
func NewGrowable(sizeHint int) *Growable {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Growable{buff: make([]byte, 0, sizeHint)}
}

// Growable is a write-only-by-default Store backed by a slice that extends
// as needed, used as the serialization sink when the final size of the
// output isn't known until generated code finishes writing. Unlike Memory,
// WriteAt past the current end zero-fills the gap rather than failing, and
// ReadAt is still supported so that a write-back handler can re-read bytes
// it has already produced.
type Growable struct {
	buff []byte
}

// ReadAt implements Store.
func (g *Growable) ReadAt(pos int64, n int) ([]byte, error) {
	if err := checkRead(pos, n, int64(len(g.buff))); err != nil {
		return nil, err
	}
	return g.buff[pos : pos+int64(n)], nil
}

// WriteAt implements Store. Writing past the current end zero-fills the
// gap; writing within the existing bounds overwrites in place, which is
// how write-back handlers fill placeholders reserved earlier.
func (g *Growable) WriteAt(pos int64, data []byte) error {
	end := pos + int64(len(data))
	if end > int64(len(g.buff)) {
		g.grow(end)
	}
	copy(g.buff[pos:end], data)
	return nil
}

// grow extends buff to length n, zero-filling the new tail, reusing
// existing capacity where possible and doubling otherwise.
func (g *Growable) grow(n int64) {
	if n <= int64(cap(g.buff)) {
		old := len(g.buff)
		g.buff = g.buff[:n]
		for i := old; i < int(n); i++ {
			g.buff[i] = 0
		}
		return
	}
	nb := make([]byte, n, n*2+16)
	copy(nb, g.buff)
	g.buff = nb
}

// Len implements Store.
func (g *Growable) Len() int64 { return int64(len(g.buff)) }

// Writable implements Store.
func (g *Growable) Writable() bool { return true }

// Close implements Store. Growable has no resources to release.
func (g *Growable) Close() error { return nil }

// Bytes returns the bytes written so far. It is used by Stream.ToByteArray.
func (g *Growable) Bytes() []byte { return g.buff }
