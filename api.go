// Package profiler provides a minimal, primitive call-timing instrumentation library.
//
// profiler focuses on measuring named code regions and streaming the results
// as a Chrome Trace Event JSON file, without the complexity of a full tracing
// or sampling stack. It's designed for programs that need quick timeline
// pictures with predictable performance and resource usage.
//
// Core Components:.
//   - Profiler: Manages the recording session and serializes all writes.
//   - Session: One bounded recording interval bound to one output sink.
//   - Scope: Measures a single code region from start to stop.
//   - ProfileResult: One completed measurement forwarded to the Profiler.
//
// Basic Usage:.
//
//	p := profiler.New()
//	defer p.Close()
//
//	if err := p.BeginSession("startup", "startup-trace.json"); err != nil {
//	    return err
//	}
//
//	// Measure a region.
//	scope := p.StartScope("load-assets")
//	loadAssets()
//	if err := scope.Stop(); err != nil {
//	    return err
//	}
//
//	// Or let the library manage scope closure.
//	_ = p.Timed("build-index", buildIndex)
//
//	if err := p.EndSession(); err != nil {
//	    return err
//	}
//
// The resulting file loads directly into any Chrome Trace Event viewer
// (chrome://tracing, Perfetto) with one lane per goroutine.
//
// Thread Safety:.
//
// Profiler is safe for concurrent use by multiple goroutines. BeginSession,
// WriteProfile, and EndSession share one mutex guarding both the session
// state and the output sink, so records never interleave and session
// transitions never occur mid-write. All writers strictly serialize; that
// lock is a known contention point at very high scope rates.
//
// Scope.Stop is safe to call more than once - subsequent calls are no-ops.
// A Scope itself must not be shared across goroutines.
//
// Sessions and Errors:.
//
// At most one session is open per Profiler at any time. Beginning a session
// while one is open fails with *SessionAlreadyOpenError and leaves the open
// session untouched. Stopping a scope with no open session surfaces
// ErrNoActiveSession to the caller - always pair scope usage with an active
// session.
//
// Resource Cleanup:.
//
// Call Profiler.Close() during shutdown to end any still-open session so the
// output file remains parseable.
package profiler

// Label represents a scope name as it appears on the timeline.
type Label = string
