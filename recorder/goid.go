package recorder

import (
	"bytes"
	"runtime"
)

var goroutinePrefix = []byte("goroutine ")

// goid extracts the current goroutine's id from the runtime.Stack
// header. There is no supported accessor for this; the header format
// ("goroutine N [...]") has been stable across every runtime release.
func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := buf[:n]
	if !bytes.HasPrefix(s, goroutinePrefix) {
		return 0
	}
	s = s[len(goroutinePrefix):]
	var id uint64
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
