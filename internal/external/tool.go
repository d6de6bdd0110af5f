package external

import (
	"strings"

	"bookloom/internal/config"
)

// Tool is an external program invoked once per file.
type Tool struct {
	Name    string
	Command string
	Args    []string
	Dir     string
	Env     []string
}

// ToolFromConfig expands a configured tool into its command line. The script,
// when set, precedes any extra arguments.
func ToolFromConfig(name string, cfg config.Tool) Tool {
	args := make([]string, 0, len(cfg.Args)+1)
	if script := strings.TrimSpace(cfg.Script); script != "" {
		args = append(args, script)
	}
	args = append(args, cfg.Args...)
	return Tool{
		Name:    name,
		Command: cfg.Command,
		Args:    args,
		Dir:     cfg.WorkDir,
	}
}

// WithEnv returns a copy of the tool with extra KEY=VALUE entries appended to
// the inherited environment.
func (t Tool) WithEnv(env ...string) Tool {
	out := t
	out.Env = append(append([]string(nil), t.Env...), env...)
	return out
}

// CommandLine returns the full argv for file.
func (t Tool) CommandLine(file string) []string {
	argv := make([]string, 0, len(t.Args)+2)
	argv = append(argv, t.Command)
	argv = append(argv, t.Args...)
	return append(argv, file)
}

// Label returns a printable name for logs and console output.
func (t Tool) Label() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Command
}
