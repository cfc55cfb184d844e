package assimp

import "sync"

// ProgressFunc receives the import progress as a fraction in [0,1] and
// returns false to request cancellation.
type ProgressFunc func(progress float32) bool

type progressState struct {
	mu       sync.Mutex
	fn       ProgressFunc
	calls    int
	canceled bool
	panicked bool
	value    any
}

// update runs the user callback and latches cancellation: once the callback
// has said stop, or panicked, every later update says stop too.
func (p *progressState) update(progress float32) (cont bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	if p.canceled {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			p.canceled = true
			p.panicked = true
			p.value = r
			cont = false
		}
	}()

	if !p.fn(progress) {
		p.canceled = true
		return false
	}
	return true
}

func (p *progressState) err() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case p.panicked:
		return newCallbackError(p.value)
	case p.canceled:
		return newCanceledError("import canceled by progress callback", nil)
	}
	return nil
}
