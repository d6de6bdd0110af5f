package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"bookloom/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.BooksDir = filepath.Join(base, "BOOKS")
	cfgVal.Paths.ResultsDir = filepath.Join(base, "results")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	if err := os.MkdirAll(cfgVal.Paths.BooksDir, 0o755); err != nil {
		t.Fatalf("mkdir books dir: %v", err)
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithoutBookLock disables per-book locking on the test config.
func WithoutBookLock() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Pipeline.LockBook = false
	}
}

// WithStubTools writes shell stand-ins for the preprocessor and TTS tool and
// points the config at them. The preprocessor stub writes <stem>_clean.txt next
// to its input and the TTS stub touches <results>/<stem>.wav. A file whose name
// contains "fail" makes either stub exit 3 without writing output.
func WithStubTools() ConfigOption {
	return func(b *configBuilder) {
		binDir := filepath.Join(b.baseDir, "bin")
		pre := WriteExecutable(b.t, binDir, "fake-preprocessor", preprocessorScript)
		tts := WriteExecutable(b.t, binDir, "fake-tts", ttsScript(b.cfg.Paths.ResultsDir))
		b.cfg.Preprocessor = config.Tool{Command: pre}
		b.cfg.TTS = config.Tool{Command: tts}
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.BooksDir)
}

const preprocessorScript = `#!/bin/sh
case "$1" in
  *fail*) echo "cannot clean $1" >&2; exit 3 ;;
esac
out="${1%.txt}_clean.txt"
tr -s ' ' < "$1" > "$out"
echo "cleaned $1"
`

func ttsScript(resultsDir string) string {
	return `#!/bin/sh
case "$1" in
  *fail*) echo "cannot speak $1" >&2; exit 3 ;;
esac
mkdir -p "` + resultsDir + `"
name=$(basename "$1" .txt)
: > "` + resultsDir + `/$name.wav"
echo "spoke $1"
`
}
