package gid

import (
	"runtime"
	"strconv"
	"strings"
)

// Current returns the calling goroutine's id. The runtime prints it in
// the first line of every stack trace ("goroutine 18 [running]:") and
// offers no cheaper public way to read it. Ids start at 1, so 0 never
// names a goroutine.
func Current() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	end := strings.IndexByte(header, ' ')
	if end < 0 {
		return 0
	}
	id, err := strconv.ParseUint(header[:end], 10, 64)
	if err != nil {
		return 0
	}
	return id
}
