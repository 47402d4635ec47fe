package cache

import "sync"

// Recorder wraps a Store and records every invalidation it receives.
// Tests use it to assert which keys a mutation dropped.
type Recorder struct {
	Store

	mu      sync.Mutex
	deleted []string
	cleared int
}

// NewRecorder wraps s.
func NewRecorder(s Store) *Recorder {
	return &Recorder{Store: s}
}

// Delete records key and forwards.
func (r *Recorder) Delete(key string) {
	r.mu.Lock()
	r.deleted = append(r.deleted, key)
	r.mu.Unlock()
	r.Store.Delete(key)
}

// DeletePrefix records prefix with a trailing "*" and forwards.
func (r *Recorder) DeletePrefix(prefix string) int {
	r.mu.Lock()
	r.deleted = append(r.deleted, prefix+"*")
	r.mu.Unlock()
	return r.Store.DeletePrefix(prefix)
}

// Clear records the call and forwards.
func (r *Recorder) Clear() {
	r.mu.Lock()
	r.cleared++
	r.mu.Unlock()
	r.Store.Clear()
}

// Invalidations returns the recorded keys and prefixes in call order.
func (r *Recorder) Invalidations() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.deleted...)
}

// Cleared returns how many times Clear was called.
func (r *Recorder) Cleared() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cleared
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted = nil
	r.cleared = 0
}
