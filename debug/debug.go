// Package debug holds the library's single escape hatch for programming
// errors: preconditions the engine itself guarantees (matrix shapes after an
// internal resize, variable indices in range) are checked with Assert rather
// than surfaced as a result/error, per spec.md's error-handling design.
package debug

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Debug toggles verbose stack capture on Assert failures. Off by default;
// flip with SetDebug in a test's TestMain when chasing an invariant
// violation.
var Debug = false

// SetDebug overrides the Debug toggle; returns the previous value.
func SetDebug(v bool) bool {
	old := Debug
	Debug = v
	return old
}

// Assert panics with msg (plus a stack trace when Debug is set) if cond is
// false. Reserved for internal invariants the library itself guarantees,
// never for caller-supplied input.
func Assert(cond bool, msg string, args ...any) {
	if cond {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	if Debug {
		msg = msg + "\n" + Stack()
	}
	panic(msg)
}

func Stack() string {
	var sbb strings.Builder
	WriteStack(&sbb)
	return sbb.String()
}

func WriteStack(sbb *strings.Builder, forceClean ...bool) {
	// derived from: https://golang.org/pkg/runtime/#example_Frames
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	if n == 0 {
		return
	}
	pc = pc[:n]
	frames := runtime.CallersFrames(pc)
	for {
		frame, more := frames.Next()
		fe := strings.Split(frame.Function, "/")
		function := fe[len(fe)-1]
		file := frame.File

		if !Debug || (len(forceClean) > 1 && forceClean[0]) {
			if strings.Contains(function, "runtime.gopanic") {
				continue
			}
			file = filepath.Base(file)
		}

		sbb.WriteString(function)
		sbb.WriteByte('\n')
		sbb.WriteByte('\t')
		sbb.WriteString(file)
		sbb.WriteByte(':')
		sbb.WriteString(strconv.Itoa(frame.Line))
		sbb.WriteByte('\n')
		if !more {
			break
		}
	}
}
