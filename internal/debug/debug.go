// Package debug is a verbosity-gated log sink. Nothing is printed until a
// logger is installed with SetLogger.
package debug

import (
	"fmt"
	"path/filepath"
	"runtime"
)

func prefix(step int) string {
	_, file, line, ok := runtime.Caller(2 + step)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d: ", filepath.Base(file), line)
}

// SetLogger installs fn as the sink, for instance log.Print. A nil fn
// silences all levels.
func SetLogger(fn func(...any)) {
	logfunc = fn
}

// SetLevel sets the verbosity. Messages logged at a level above it are
// dropped.
func SetLevel(n int) {
	level = n
}

// V reports whether messages at level n are printed.
func V(n int) bool {
	return logfunc != nil && n <= level
}

func Logf(n int, format string, args ...any) {
	if !V(n) {
		return
	}
	logfunc(prefix(0), fmt.Sprintf(format, args...))
}

func Log(n int, args ...any) {
	if !V(n) {
		return
	}
	logfunc(append(append(make([]any, 0, len(args)+1), prefix(0)), args...)...)
}

// logfunc should follow fmt.Sprint formatting rules
var logfunc func(...any)

var level int
