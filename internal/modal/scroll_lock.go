package modal

// Release gives back one acquisition of a ScrollLock. Calling it more than
// once has no further effect.
type Release func()

// ScrollLock is a reference-counted background-scroll suppressor. OnEngage
// runs on the first acquisition and OnRelease when the last one is given
// back, so hooks always fire in matching pairs.
type ScrollLock struct {
	holders   int
	onEngage  func()
	onRelease func()
}

// NewScrollLock creates a lock with optional hooks.
func NewScrollLock(onEngage, onRelease func()) *ScrollLock {
	return &ScrollLock{onEngage: onEngage, onRelease: onRelease}
}

// Acquire takes the lock and returns the matching Release.
func (l *ScrollLock) Acquire() Release {
	l.holders++
	if l.holders == 1 && l.onEngage != nil {
		l.onEngage()
	}
	released := false
	return func() {
		if released {
			return
		}
		released = true
		l.holders--
		if l.holders == 0 && l.onRelease != nil {
			l.onRelease()
		}
	}
}

// Locked reports whether any acquisition is outstanding.
func (l *ScrollLock) Locked() bool { return l.holders > 0 }
