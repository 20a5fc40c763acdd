package terrain

import "sync"

// SharedBrush is the brush handle passed between the sidebar and the terrain tool.
// Each call holds the lock for a single read or a single read-modify pass only.
type SharedBrush struct {
	mu    sync.RWMutex
	brush Brush
}

func NewSharedBrush(b Brush) *SharedBrush {
	return &SharedBrush{brush: b}
}

// Load returns a copy; callers never see a brush that is mid-update.
func (s *SharedBrush) Load() Brush {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.brush
}

// Update runs fn under the write lock and reports what fn reported.
// fn must not call back into s.
func (s *SharedBrush) Update(fn func(b *Brush) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.brush)
}

func (s *SharedBrush) Store(b Brush) {
	s.mu.Lock()
	s.brush = b
	s.mu.Unlock()
}
