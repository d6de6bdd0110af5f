package testsupport

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"bookloom/internal/external"
)

// Invocation records a single call made through a RecordingInvoker.
type Invocation struct {
	Tool string
	File string
}

// RecordingInvoker is an external.Invoker that never starts a process. It
// records every call and answers from Outcomes keyed by file base name;
// unknown files succeed. OnInvoke, when set, runs before the outcome is
// returned for a successful call so tests can create the files a real tool
// would.
type RecordingInvoker struct {
	mu       sync.Mutex
	Calls    []Invocation
	Outcomes map[string]int
	StartErr map[string]error
	OnInvoke func(tool external.Tool, file string)
}

// NewRecordingInvoker returns an invoker where every file succeeds.
func NewRecordingInvoker() *RecordingInvoker {
	return &RecordingInvoker{Outcomes: map[string]int{}, StartErr: map[string]error{}}
}

// FailFile makes invocations on the named file exit with code.
func (r *RecordingInvoker) FailFile(name string, code int) *RecordingInvoker {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Outcomes[name] = code
	return r
}

// Invoke implements external.Invoker.
func (r *RecordingInvoker) Invoke(ctx context.Context, tool external.Tool, file string) (external.Result, error) {
	r.mu.Lock()
	r.Calls = append(r.Calls, Invocation{Tool: tool.Label(), File: file})
	hook := r.OnInvoke
	base := filepath.Base(file)
	code := r.Outcomes[base]
	startErr := r.StartErr[base]
	r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return external.Result{ExitCode: external.StartFailureExitCode}, err
	}
	if startErr != nil {
		return external.Result{ExitCode: external.StartFailureExitCode}, startErr
	}
	if hook != nil && code == 0 {
		hook(tool, file)
	}
	return external.Result{ExitCode: code}, nil
}

// Files returns the base names passed to the named tool, in call order.
func (r *RecordingInvoker) Files(tool string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, call := range r.Calls {
		if call.Tool == tool {
			out = append(out, filepath.Base(call.File))
		}
	}
	return out
}

// CleanOnPreprocess returns an OnInvoke hook that writes <stem>_clean.txt for
// every file the named tool is asked to process.
func CleanOnPreprocess(tool string, write func(path string)) func(external.Tool, string) {
	return func(t external.Tool, file string) {
		if t.Label() != tool {
			return
		}
		write(strings.TrimSuffix(file, ".txt") + "_clean.txt")
	}
}
