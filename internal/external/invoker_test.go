package external_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bookloom/internal/config"
	"bookloom/internal/external"
	"bookloom/internal/services"
	"bookloom/internal/testsupport"
)

func TestToolFromConfigPutsScriptFirst(t *testing.T) {
	tool := external.ToolFromConfig("tts", config.Tool{
		Command: "python3",
		Script:  "main.py",
		Args:    []string{"--voice", "pl"},
		WorkDir: "/srv/tts",
	})
	got := tool.CommandLine("/b/chapters/ch1_clean.txt")
	want := []string{"python3", "main.py", "--voice", "pl", "/b/chapters/ch1_clean.txt"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("unexpected argv %q", got)
	}
	if tool.Dir != "/srv/tts" || tool.Label() != "tts" {
		t.Fatalf("unexpected tool %+v", tool)
	}
}

func TestWithEnvDoesNotAlias(t *testing.T) {
	base := external.Tool{Command: "x", Env: []string{"A=1"}}
	first := base.WithEnv("B=2")
	second := base.WithEnv("C=3")
	if len(base.Env) != 1 {
		t.Fatalf("base env mutated: %q", base.Env)
	}
	if first.Env[1] != "B=2" || second.Env[1] != "C=3" {
		t.Fatalf("env entries aliased: %q %q", first.Env, second.Env)
	}
}

func TestCommandInvokerReportsExitStatus(t *testing.T) {
	dir := t.TempDir()
	script := testsupport.WriteExecutable(t, dir, "tool", `#!/bin/sh
echo "out $1"
echo "err $1" >&2
case "$1" in
  *bad*) exit 4 ;;
esac
exit 0
`)
	var stdout, stderr bytes.Buffer
	invoker := external.NewCommandInvoker(&stdout, &stderr)
	tool := external.Tool{Name: "pre", Command: script}

	res, err := invoker.Invoke(context.Background(), tool, "good.txt")
	if err != nil {
		t.Fatalf("Invoke good: %v", err)
	}
	if !res.Succeeded() || res.ExitCode != 0 {
		t.Fatalf("expected success, got %+v", res)
	}
	if !strings.Contains(stdout.String(), "out good.txt") || !strings.Contains(stderr.String(), "err good.txt") {
		t.Fatalf("child output not forwarded: stdout=%q stderr=%q", stdout.String(), stderr.String())
	}

	res, err = invoker.Invoke(context.Background(), tool, "bad.txt")
	if err != nil {
		t.Fatalf("Invoke bad: %v", err)
	}
	if res.Succeeded() || res.ExitCode != 4 {
		t.Fatalf("expected exit 4, got %+v", res)
	}
}

func TestCommandInvokerStartFailure(t *testing.T) {
	invoker := external.NewCommandInvoker(&bytes.Buffer{}, &bytes.Buffer{})
	tool := external.Tool{Command: filepath.Join(t.TempDir(), "missing-tool")}

	res, err := invoker.Invoke(context.Background(), tool, "ch1.txt")
	if err == nil {
		t.Fatal("expected start failure error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool marker, got %v", err)
	}
	if res.ExitCode != external.StartFailureExitCode || res.Succeeded() {
		t.Fatalf("expected start failure result, got %+v", res)
	}

	res, err = invoker.Invoke(context.Background(), external.Tool{Name: "empty"}, "ch1.txt")
	if !errors.Is(err, services.ErrConfiguration) || res.Succeeded() {
		t.Fatalf("expected configuration error for empty command, got %+v %v", res, err)
	}
}

func TestCommandInvokerPassesDirAndEnv(t *testing.T) {
	work := t.TempDir()
	out := filepath.Join(t.TempDir(), "seen")
	script := testsupport.WriteExecutable(t, t.TempDir(), "tool", `#!/bin/sh
{ pwd; echo "$BOOKLOOM_RESULTS_DIR"; echo "$1"; } > "`+out+`"
`)
	invoker := external.NewCommandInvoker(&bytes.Buffer{}, &bytes.Buffer{})
	tool := external.Tool{Command: script, Dir: work}.WithEnv("BOOKLOOM_RESULTS_DIR=/tmp/results")

	if _, err := invoker.Invoke(context.Background(), tool, "relative.txt"); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("unexpected output %q", data)
	}
	if resolved, _ := filepath.EvalSymlinks(work); lines[0] != work && lines[0] != resolved {
		t.Fatalf("expected working dir %q, got %q", work, lines[0])
	}
	if lines[1] != "/tmp/results" {
		t.Fatalf("expected env to be exported, got %q", lines[1])
	}
	if !filepath.IsAbs(lines[2]) {
		t.Fatalf("expected file argument to be absolute with a work dir, got %q", lines[2])
	}
}

func TestCommandInvokerCancellation(t *testing.T) {
	script := testsupport.WriteExecutable(t, t.TempDir(), "slow", "#!/bin/sh\nexec sleep 30\n")
	invoker := external.NewCommandInvoker(&bytes.Buffer{}, &bytes.Buffer{})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	res, err := invoker.Invoke(ctx, external.Tool{Command: script}, "ch1.txt")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if res.Succeeded() {
		t.Fatalf("cancelled invocation must not succeed: %+v", res)
	}
	if time.Since(start) > 10*time.Second {
		t.Fatal("child was not killed on cancellation")
	}
}
