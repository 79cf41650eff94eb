package profiler

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/zoobzio/clockz"
)

// DefaultPath is the destination used when BeginSession is given an empty
// path.
const DefaultPath = "result.json"

// Session represents one open recording: a human-readable name and the sink
// records are appended to. Exists only between BeginSession and EndSession
// and is owned exclusively by the Profiler; the sink is never exposed for
// direct mutation.
type Session struct {
	// Name is the session label passed to BeginSession. It is not
	// embedded in the output; it identifies the session in
	// SessionAlreadyOpenError and ActiveSession.
	Name string

	sink io.Writer
}

// Profiler manages the session lifecycle and serializes all record writes.
// Safe for concurrent use by multiple goroutines.
//
// One mutex guards both the session state and the output sink: session
// transitions and record appends are mutually exclusive and totally
// ordered. Writers therefore strictly serialize; no buffering or sharding
// is layered on top, which keeps ordering trivial at the cost of lock
// contention under very high scope-creation rates.
//
//nolint:govet // Field order optimized for readability over memory
type Profiler struct {
	clock    clockz.Clock
	mu       sync.Mutex
	current  *Session // nil while no session is open
	written  atomic.Uint64
	disabled bool
}

// New creates a new profiler.
// Uses the real clock for production behavior.
func New() *Profiler {
	return &Profiler{
		clock: clockz.RealClock,
	}
}

// WithClock returns a new profiler with the specified clock.
// Enables clock injection for deterministic testing.
func (*Profiler) WithClock(clock clockz.Clock) *Profiler {
	return &Profiler{
		clock: clock,
	}
}

// NewDisabled creates a profiler whose operations all succeed as no-ops and
// whose scopes emit nothing. The run-time analog of compiling
// instrumentation out: call sites keep their instrumentation and pay close
// to nothing.
func NewDisabled() *Profiler {
	return &Profiler{
		clock:    clockz.RealClock,
		disabled: true,
	}
}

var (
	defaultOnce     sync.Once
	defaultProfiler *Profiler
)

// Default returns the shared process-wide profiler, constructing it on
// first use. Prefer explicit New() instances owned by your application's
// startup and passed to instrumentation sites; Default exists for call
// sites with no way to thread one through. The caller owns teardown:
// arrange for Close before exit.
func Default() *Profiler {
	defaultOnce.Do(func() {
		defaultProfiler = New()
	})
	return defaultProfiler
}

// BeginSession opens a recording session writing to the file at path,
// creating or truncating it. An empty path means DefaultPath.
//
// If a session is already open the call fails with
// *SessionAlreadyOpenError and the open session is untouched. If the file
// cannot be opened it fails with *FileOpenError. On success the trace-file
// header has been written and the session is active.
func (p *Profiler) BeginSession(name, path string) error {
	if p.disabled {
		return nil
	}
	if path == "" {
		path = DefaultPath
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil {
		return &SessionAlreadyOpenError{Name: p.current.Name}
	}

	f, err := os.Create(path)
	if err != nil {
		return &FileOpenError{Path: path, Err: err}
	}

	if err := p.beginLocked(name, f); err != nil {
		_ = f.Close()
		return err
	}
	return nil
}

// BeginSessionWriter opens a recording session on a caller-supplied sink.
// Same state machine as BeginSession; if w implements io.Closer it is
// closed by EndSession.
func (p *Profiler) BeginSessionWriter(name string, w io.Writer) error {
	if p.disabled {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil {
		return &SessionAlreadyOpenError{Name: p.current.Name}
	}
	return p.beginLocked(name, w)
}

// beginLocked writes the header and activates the session.
// Caller holds p.mu and has verified no session is open.
func (p *Profiler) beginLocked(name string, w io.Writer) error {
	if _, err := io.WriteString(w, traceHeader); err != nil {
		return fmt.Errorf("write trace header: %w", err)
	}
	p.current = &Session{Name: name, sink: w}
	return nil
}

// WriteProfile serializes r and appends it to the open session's sink as
// one atomic write. Callable concurrently from any goroutine. Fails with
// ErrNoActiveSession when no session is open; the sink, if any previous
// session left one, is not touched by a rejected call.
func (p *Profiler) WriteProfile(r ProfileResult) error {
	if p.disabled {
		return nil
	}

	// Serialize outside the critical section.
	buf := appendTraceEvent(make([]byte, 0, 128), r)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return ErrNoActiveSession
	}
	if _, err := p.current.sink.Write(buf); err != nil {
		return fmt.Errorf("write trace event: %w", err)
	}
	p.flushLocked()
	p.written.Add(1)
	return nil
}

// EndSession writes the trace-file footer, closes the sink, and clears the
// active session. No-op when no session is open; safe to call twice.
func (p *Profiler) EndSession() error {
	if p.disabled {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.endLocked()
}

// endLocked finalizes framing and releases the sink. Caller holds p.mu.
// Reports the first failure but always clears the session so the profiler
// returns to the closed state.
func (p *Profiler) endLocked() error {
	if p.current == nil {
		return nil
	}

	var firstErr error
	if _, err := io.WriteString(p.current.sink, traceFooter); err != nil {
		firstErr = fmt.Errorf("write trace footer: %w", err)
	}
	p.flushLocked()
	if c, ok := p.current.sink.(io.Closer); ok {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close trace sink: %w", err)
		}
	}
	p.current = nil
	return firstErr
}

// flushLocked pushes buffered sinks through after every append so a crash
// loses at most the footer. os.File writes are unbuffered and need nothing
// here. Caller holds p.mu.
func (p *Profiler) flushLocked() {
	if f, ok := p.current.sink.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}

// ActiveSession reports the open session's name, if any.
func (p *Profiler) ActiveSession() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return "", false
	}
	return p.current.Name, true
}

// WrittenProfiles returns the number of records appended across all
// sessions of this profiler.
func (p *Profiler) WrittenProfiles() uint64 {
	return p.written.Load()
}

// Close ends any still-open session so the output file remains parseable.
// This should be called as part of application teardown.
func (p *Profiler) Close() error {
	return p.EndSession()
}
