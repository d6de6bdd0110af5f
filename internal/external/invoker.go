package external

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"bookloom/internal/services"
)

// StartFailureExitCode is reported when the child never ran.
const StartFailureExitCode = -1

// Result captures the outcome of one invocation.
type Result struct {
	ExitCode int
	Duration time.Duration
}

// Succeeded reports whether the tool exited with status 0.
func (r Result) Succeeded() bool {
	return r.ExitCode == 0
}

// Invoker runs a tool over a single file and blocks until it exits.
//
// A non-zero exit is not an error: it is reported through Result. The error
// return is reserved for failures to run the tool at all (missing executable,
// cancelled context), in which case Result.ExitCode is StartFailureExitCode
// or the signal status of the killed child.
type Invoker interface {
	Invoke(ctx context.Context, tool Tool, file string) (Result, error)
}

// CommandInvoker runs tools with os/exec. Child output is streamed to Stdout
// and Stderr, which default to the process streams.
type CommandInvoker struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewCommandInvoker returns an invoker bound to the given output streams.
func NewCommandInvoker(stdout, stderr io.Writer) *CommandInvoker {
	return &CommandInvoker{Stdout: stdout, Stderr: stderr}
}

// Invoke implements Invoker.
func (c *CommandInvoker) Invoke(ctx context.Context, tool Tool, file string) (Result, error) {
	if tool.Command == "" {
		return Result{ExitCode: StartFailureExitCode}, services.Wrap(services.ErrConfiguration, "external", "invoke", "no command configured for "+tool.Label(), nil)
	}
	if tool.Dir != "" && !filepath.IsAbs(file) {
		if abs, err := filepath.Abs(file); err == nil {
			file = abs
		}
	}

	argv := tool.CommandLine(file)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec
	cmd.Dir = tool.Dir
	cmd.Stdin = nil
	cmd.Stdout = c.stdout()
	cmd.Stderr = c.stderr()
	if len(tool.Env) > 0 {
		cmd.Env = append(os.Environ(), tool.Env...)
	}

	start := time.Now()
	err := cmd.Run()
	result := Result{Duration: time.Since(start)}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}
		return result, nil
	}

	result.ExitCode = StartFailureExitCode
	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, ctxErr
	}
	return result, services.Wrap(services.ErrExternalTool, "external", "invoke", fmt.Sprintf("start %s", tool.Label()), err)
}

func (c *CommandInvoker) stdout() io.Writer {
	if c == nil || c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c *CommandInvoker) stderr() io.Writer {
	if c == nil || c.Stderr == nil {
		return os.Stderr
	}
	return c.Stderr
}
