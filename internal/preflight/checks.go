package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"bookloom/internal/config"
	"bookloom/internal/deps"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	return checkDirectory(name, path, unix.R_OK|unix.W_OK|unix.X_OK, "read/write ok")
}

// CheckDirectoryReadable verifies that the directory exists and can be listed.
func CheckDirectoryReadable(name, path string) Result {
	return checkDirectory(name, path, unix.R_OK|unix.X_OK, "readable")
}

func checkDirectory(name, path string, mode uint32, okDetail string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, okDetail)}
}

// CheckScript verifies that a tool's script file exists and is readable. A
// tool without a script passes.
func CheckScript(name string, tool config.Tool) Result {
	script := tool.ScriptPath()
	if script == "" {
		return Result{Name: name, Passed: true, Detail: "no script configured"}
	}
	info, err := os.Stat(script)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", script)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", script, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", script)}
	}
	if err := unix.Access(script, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable: %v)", script, err)}
	}
	return Result{Name: name, Passed: true, Detail: script}
}

// CheckTools resolves the configured tool executables on PATH.
func CheckTools(cfg *config.Config) []Result {
	statuses := deps.CheckBinaries(deps.ToolRequirements(cfg))
	missing := make(map[string]bool)
	for _, s := range deps.Missing(statuses) {
		missing[s.Name] = true
	}
	results := make([]Result, 0, len(statuses))
	for _, s := range statuses {
		r := Result{Name: s.Name + " command", Passed: !missing[s.Name]}
		if s.Available {
			r.Detail = s.Command
		} else {
			r.Detail = s.Detail
		}
		results = append(results, r)
	}
	return results
}
