package sqlward

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ReportFunc receives the formatted diagnostic report of a failed execution.
type ReportFunc func(report string)

const modulePath = "github.com/sqlward/sqlward"

// report assembles the diagnostic report for a failed Result and hands it to
// the registered reporter, if any.
func (s *Service) report(res Result) {
	if s.reporter == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("report: %s\n", uuid.NewString()))
	sb.WriteString(fmt.Sprintf("error: %s\n", res.Err))

	if res.SQL != "" {
		sb.WriteString(fmt.Sprintf("sql: %s\n", res.SQL))
	}

	if len(res.Bindings) > 0 {
		sb.WriteString("bindings:\n")
		keys := make([]string, 0, len(res.Bindings))
		for key := range res.Bindings {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			sb.WriteString(fmt.Sprintf("  %s = %v\n", key, res.Bindings[key]))
		}
	}

	if s.captureCaller {
		if location := callerLocation(); location != "" {
			sb.WriteString(fmt.Sprintf("caller: %s\n", location))
		}
	}

	s.reporter(sb.String())
}

// callerLocation returns the first stack frame outside this package as
// "<file> at line <N>", or an empty string when no such frame exists.
func callerLocation() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, modulePath+".") {
			return fmt.Sprintf("%s at line %d", frame.File, frame.Line)
		}
		if !more {
			return ""
		}
	}
}
