package kstream

import (
	"github.com/stewi1014/kstream/internal/klog"
	"github.com/stewi1014/kstream/kbits"
)

// Config carries defaults threaded through Stream constructors. It follows
// this codebase's older Config/copyAndFill pattern: the zero value means
// "use the package defaults", and constructors never need a nil check
// beyond calling withDefaults once.
type Config struct {
	// DefaultBitOrder is the bit order a Stream records until its first
	// bit-level read or write. Every bit-level operation names its order
	// explicitly, so no operation falls back to this value.
	// Zero value is kbits.BE.
	DefaultBitOrder kbits.Order

	// TooBig is a sanity ceiling applied to lengths decoded from the
	// stream itself (e.g. a size-prefixed substream) before they're used
	// for allocation. Zero value defaults to 128MiB.
	TooBig int64

	// ZlibLevel is a zlib compression level, in the range accepted by
	// compress/zlib (-2..9). Zero value defaults to the zlib package's own
	// default level. The ktransform zlib helpers take no Config and do not
	// read this field; UnprocessZlib always compresses at the default level.
	ZlibLevel int

	// Logger receives debug-level lifecycle events (construction,
	// substream carve-out, write-back flush, close) if non-nil. Nil
	// (the zero value) disables logging entirely.
	Logger klog.Logger
}

const defaultTooBig = 128 << 20

// defaultZlibLevel mirrors compress/zlib.DefaultCompression without
// importing the standard library package just for the constant.
const defaultZlibLevel = -1

func (c *Config) withDefaults() *Config {
	out := new(Config)
	if c != nil {
		*out = *c
	}
	if out.TooBig == 0 {
		out.TooBig = defaultTooBig
	}
	if out.ZlibLevel == 0 {
		out.ZlibLevel = defaultZlibLevel
	}
	if out.Logger == nil {
		out.Logger = klog.Nop
	}
	return out
}
