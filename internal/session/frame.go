package session

// FrameHandle identifies one frame request.
type FrameHandle uint64

// Scheduler runs a callback on the next display refresh.
type Scheduler interface {
	RequestFrame(cb func()) FrameHandle
}

// FrameLoop is a Scheduler with a single slot: a new request replaces the
// outstanding one. Hosts call Fire once per refresh.
type FrameLoop struct {
	pending func()
	handle  FrameHandle
	last    FrameHandle
}

// RequestFrame queues cb for the next Fire.
func (l *FrameLoop) RequestFrame(cb func()) FrameHandle {
	l.last++
	l.pending = cb
	l.handle = l.last
	return l.handle
}

// Pending reports whether a callback is waiting for the next refresh.
func (l *FrameLoop) Pending() bool {
	return l.pending != nil
}

// Handle returns the outstanding request, or 0 when none is queued.
func (l *FrameLoop) Handle() FrameHandle {
	if l.pending == nil {
		return 0
	}
	return l.handle
}

// Fire runs the queued callback, if any. The slot is emptied first so the
// callback can request the following frame.
func (l *FrameLoop) Fire() bool {
	cb := l.pending
	if cb == nil {
		return false
	}
	l.pending = nil
	cb()
	return true
}
