package profiler

import (
	"sync"
	"time"
)

// Scope measures a single code region from start to stop. Created by
// Profiler.StartScope, which captures a monotonic start reading
// immediately; Stop computes the elapsed time and emits exactly one
// ProfileResult to the profiler.
//
// A Scope belongs to the call site that created it and must not be shared
// across goroutines.
type Scope struct {
	profiler *Profiler
	label    string
	start    time.Time
	mu       sync.Mutex // Guards the double-stop check.
	done     bool
}

// StartScope begins measuring a region identified by label. Stop the
// returned scope on every exit path, typically:
//
//	scope := p.StartScope("parse-config")
//	defer scope.Stop()
//
// On a disabled profiler the returned scope is inert.
func (p *Profiler) StartScope(label Label) *Scope {
	if p.disabled {
		return &Scope{profiler: p, done: true}
	}
	return &Scope{
		profiler: p,
		label:    label,
		start:    p.clock.Now(),
	}
}

// Stop ends the measurement and forwards the record to the profiler.
// Safe to call multiple times - subsequent calls are no-ops.
//
// Elapsed time comes from the monotonic clock, immune to wall-clock
// adjustment. If no session is open the profiler's ErrNoActiveSession is
// returned: a scope stopped outside a session is a caller error, not
// silently dropped, and can surface far from the BeginSession call site.
func (s *Scope) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return nil
	}
	s.done = true

	end := s.profiler.clock.Now()
	return s.profiler.WriteProfile(ProfileResult{
		Name:    s.label,
		Start:   s.start,
		Elapsed: end.Sub(s.start),
		GID:     goroutineID(),
	})
}

// Timed measures fn as one scope, guaranteeing closure on every exit path
// including panics. Returns the Stop error, so running fn under a closed
// session reports ErrNoActiveSession.
func (p *Profiler) Timed(label Label, fn func()) (err error) {
	scope := p.StartScope(label)
	defer func() {
		if stopErr := scope.Stop(); err == nil {
			err = stopErr
		}
	}()
	fn()
	return nil
}
