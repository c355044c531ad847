package kstream

// writeBackHandler remembers where, in a parent stream, to re-seek once
// this stream's content is fully produced, and what to write there.
type writeBackHandler struct {
	pos   int64
	write func(parent *Stream) error
}

// SetWriteBackHandler records that, once s is flushed by an ancestor's
// call to WriteBackChildStreams, the ancestor should seek to pos and
// invoke write. It is invoked at most once; a second call replaces the
// first, it does not stack.
func (s *Stream) SetWriteBackHandler(pos int64, write func(parent *Stream) error) {
	s.writeBack = &writeBackHandler{pos: pos, write: write}
}

// AddChildStream registers child to be flushed the next time
// WriteBackChildStreams is called on s. Registration order is preserved;
// children are flushed depth-first, so a grandchild's handler always runs
// before its parent's.
func (s *Stream) AddChildStream(child *Stream) {
	s.children = append(s.children, child)
}

// WriteBackChildStreams walks s's registered child streams in
// registration order, recursively flushing each child's own children
// first, then invoking the child's write-back handler (if any) with s as
// the parent argument. The child list is cleared and s's cursor is
// restored to wherever it was before this call, once all children have
// been dispatched. A child may not re-register itself as its own
// descendant; doing so does not extend this walk, since the list is
// snapshotted before any handler runs.
func (s *Stream) WriteBackChildStreams() error {
	pos := s.pos
	children := s.children
	s.children = nil

	for _, child := range children {
		if err := child.WriteBackChildStreams(); err != nil {
			return err
		}
		if child.writeBack == nil {
			continue
		}
		wb := child.writeBack
		child.writeBack = nil
		if err := s.Seek(wb.pos); err != nil {
			return err
		}
		if err := wb.write(s); err != nil {
			return err
		}
	}

	s.config.Logger.Debugf("write-back flushed %d child streams", len(children))
	return s.Seek(pos)
}
