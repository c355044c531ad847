package kstream

// Span is positional metadata generated code may attach to a parsed field
// for debugging or visualization. It carries offsets relative to the
// stream's own origin within the root stream, not absolute file offsets,
// so a Span recorded against a substream stays meaningful if that
// substream is later inspected on its own.
type Span struct {
	// Offset is the absolute position of this stream's origin within its
	// root stream.
	Offset int64

	// Start is the position, relative to Offset, where the field began.
	Start int64

	// End is the position, relative to Offset, where the field ended, or
	// -1 if the field's end was never recorded (e.g. parsing failed
	// partway through it).
	End int64
}

// AbsoluteStart returns the field's start position in the root stream.
func (s Span) AbsoluteStart() int64 { return s.Offset + s.Start }

// AbsoluteEnd returns the field's end position in the root stream, and
// false if the field is unparsed (End < 0).
func (s Span) AbsoluteEnd() (int64, bool) {
	if s.End < 0 {
		return 0, false
	}
	return s.Offset + s.End, true
}

// ArraySpan extends Span with the Spans of each item of a repeated field.
type ArraySpan struct {
	Span
	Items []Span
}
