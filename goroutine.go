package profiler

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutineID extracts the current goroutine's ID from runtime.Stack.
// Stable for the goroutine's lifetime, so trace viewers can use it to
// bucket events per lane. Avoids linkname and unsafe.
func goroutineID() uint64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	buf = buf[:n]

	// First line reads "goroutine 123 [running]:".
	const prefix = "goroutine "
	if !bytes.HasPrefix(buf, []byte(prefix)) {
		return 0
	}

	buf = buf[len(prefix):]
	end := bytes.IndexByte(buf, ' ')
	if end < 0 {
		return 0
	}

	gid, err := strconv.ParseUint(string(buf[:end]), 10, 64)
	if err != nil {
		return 0
	}
	return gid
}
