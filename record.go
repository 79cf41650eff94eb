package profiler

import (
	"strconv"
	"time"
)

// Chrome Trace Event framing. The header ends with an empty placeholder
// object so every record can be emitted with a leading comma and the
// traceEvents array stays syntactically valid.
const (
	traceHeader = `{"otherData": {},"traceEvents":[{}`
	traceFooter = "]}"
)

// ProfileResult describes one completed measurement of a code region.
// Immutable once constructed; produced by Scope.Stop and consumed exactly
// once by the profiler's serializer.
//
//nolint:govet // Field order mirrors serialization order
type ProfileResult struct {
	// Name is the region label as it appears on the timeline.
	Name string
	// Start is the wall-clock start of the region. All records in one
	// session share the same epoch so viewers can place events on a
	// common timeline across goroutines.
	Start time.Time
	// Elapsed is the measured duration, taken from the monotonic clock.
	Elapsed time.Duration
	// GID identifies the originating goroutine and buckets the event
	// into a timeline lane.
	GID uint64
}

// appendTraceEvent serializes r as one Chrome Trace complete event with a
// leading comma:
//
//	,{"cat":"function","dur":D,"name":"N","ph":"X","pid":0,"tid":T,"ts":S}
//
// D and S are microseconds with exactly three fractional digits. The label
// is emitted as-is; callers must not use characters that break JSON string
// literals.
func appendTraceEvent(buf []byte, r ProfileResult) []byte {
	buf = append(buf, `,{"cat":"function","dur":`...)
	buf = appendMicros(buf, r.Elapsed.Nanoseconds())
	buf = append(buf, `,"name":"`...)
	buf = append(buf, r.Name...)
	buf = append(buf, `","ph":"X","pid":0,"tid":`...)
	buf = strconv.AppendUint(buf, r.GID, 10)
	buf = append(buf, `,"ts":`...)
	buf = appendMicros(buf, r.Start.UnixNano())
	buf = append(buf, '}')
	return buf
}

// appendMicros renders a nanosecond count as fixed-point microseconds with
// three fractional digits. Formatting stays in integer arithmetic: at
// microseconds-since-Unix-epoch magnitudes a float64 round-trip would
// already jitter in the fractional digits.
func appendMicros(buf []byte, ns int64) []byte {
	if ns < 0 {
		buf = append(buf, '-')
		ns = -ns
	}
	buf = strconv.AppendInt(buf, ns/1000, 10)
	frac := ns % 1000
	buf = append(buf, '.', byte('0'+frac/100), byte('0'+frac/10%10), byte('0'+frac%10))
	return buf
}
