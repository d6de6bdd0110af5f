package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"bookloom/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"BOOKLOOM_BOOKS_DIR", "OUTPUT_DIR", "BOOKLOOM_PREPROCESSOR", "BOOKLOOM_TTS"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	clearEnv(t)
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	workDir := t.TempDir()
	t.Chdir(workDir)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if want := filepath.Join(tempHome, ".local", "share", "bookloom", "logs"); cfg.Paths.LogDir != want {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, want)
	}
	if !filepath.IsAbs(cfg.Paths.BooksDir) || filepath.Base(cfg.Paths.BooksDir) != "BOOKS" {
		t.Fatalf("unexpected books dir: %q", cfg.Paths.BooksDir)
	}
	if filepath.Base(cfg.Paths.ResultsDir) != "results" {
		t.Fatalf("unexpected results dir: %q", cfg.Paths.ResultsDir)
	}
	if cfg.Library.ChaptersDir != "chapters" || cfg.Library.TextExtension != ".txt" || cfg.Library.CleanSuffix != "_clean" {
		t.Fatalf("unexpected library defaults: %+v", cfg.Library)
	}
	if cfg.Preprocessor.Command != "python3" || cfg.Preprocessor.Script != "text_preprocessor.py" {
		t.Fatalf("unexpected preprocessor defaults: %+v", cfg.Preprocessor)
	}
	if cfg.TTS.Script != "main.py" {
		t.Fatalf("unexpected tts defaults: %+v", cfg.TTS)
	}
	if !cfg.Pipeline.LockBook {
		t.Fatal("expected book locking enabled by default")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LogDir, cfg.Paths.ResultsDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
	if _, err := os.Stat(cfg.Paths.BooksDir); !os.IsNotExist(err) {
		t.Fatalf("expected books dir to be left alone, got err=%v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "bookloom.toml")

	type payload struct {
		Paths struct {
			BooksDir string `toml:"books_dir"`
		} `toml:"paths"`
		Library struct {
			CleanSuffix string `toml:"clean_suffix"`
		} `toml:"library"`
		Preprocessor struct {
			Command string   `toml:"command"`
			Script  string   `toml:"script"`
			Args    []string `toml:"args"`
		} `toml:"preprocessor"`
		Pipeline struct {
			LockBook bool `toml:"lock_book"`
		} `toml:"pipeline"`
	}
	custom := payload{}
	custom.Paths.BooksDir = filepath.Join(tempDir, "library")
	custom.Library.CleanSuffix = " -tidy "
	custom.Preprocessor.Command = "clean-text"
	custom.Preprocessor.Script = ""
	custom.Preprocessor.Args = []string{" --debug ", ""}
	custom.Pipeline.LockBook = false
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.BooksDir != custom.Paths.BooksDir {
		t.Fatalf("expected books dir from file, got %q", cfg.Paths.BooksDir)
	}
	if cfg.Library.CleanSuffix != "-tidy" {
		t.Fatalf("expected trimmed clean suffix, got %q", cfg.Library.CleanSuffix)
	}
	if cfg.Preprocessor.Command != "clean-text" || cfg.Preprocessor.Script != "" {
		t.Fatalf("unexpected preprocessor: %+v", cfg.Preprocessor)
	}
	if len(cfg.Preprocessor.Args) != 1 || cfg.Preprocessor.Args[0] != "--debug" {
		t.Fatalf("expected empty args dropped and trimmed, got %q", cfg.Preprocessor.Args)
	}
	if cfg.Pipeline.LockBook {
		t.Fatal("expected lock_book override to be honoured")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("BOOKLOOM_BOOKS_DIR", filepath.Join(dir, "env-books"))
	t.Setenv("OUTPUT_DIR", filepath.Join(dir, "env-results"))
	t.Setenv("BOOKLOOM_TTS", "/opt/tts/bin/speak")

	cfg, _, _, err := config.Load(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.BooksDir != filepath.Join(dir, "env-books") {
		t.Fatalf("expected env books dir, got %q", cfg.Paths.BooksDir)
	}
	if cfg.Paths.ResultsDir != filepath.Join(dir, "env-results") {
		t.Fatalf("expected env results dir, got %q", cfg.Paths.ResultsDir)
	}
	if cfg.TTS.Command != "/opt/tts/bin/speak" {
		t.Fatalf("expected env tts command, got %q", cfg.TTS.Command)
	}
}

func TestNormalizeAddsExtensionDot(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.toml")
	if err := os.WriteFile(path, []byte("[library]\ntext_extension = \"md\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Library.TextExtension != ".md" {
		t.Fatalf("expected .md, got %q", cfg.Library.TextExtension)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*config.Config){
		"chapters dir with separator": func(c *config.Config) { c.Library.ChaptersDir = "a/b" },
		"empty preprocessor command":  func(c *config.Config) { c.Preprocessor.Command = "" },
		"empty tts command":           func(c *config.Config) { c.TTS.Command = "" },
		"bad log format":              func(c *config.Config) { c.Logging.Format = "xml" },
		"bad log level":               func(c *config.Config) { c.Logging.Level = "loud" },
		"missing work dir": func(c *config.Config) {
			c.TTS.WorkDir = filepath.Join(os.TempDir(), "bookloom-does-not-exist-7c1e")
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidateMentionsConfigInit(t *testing.T) {
	cfg := config.Default()
	cfg.Preprocessor.Command = ""
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "bookloom config init") {
		t.Fatalf("expected hint about config init, got %v", err)
	}
}

func TestScriptPath(t *testing.T) {
	tool := config.Tool{Command: "python3", Script: "main.py"}
	if got := tool.ScriptPath(); got != "main.py" {
		t.Fatalf("unexpected script path %q", got)
	}
	tool.WorkDir = "/srv/tts"
	if got := tool.ScriptPath(); got != filepath.Join("/srv/tts", "main.py") {
		t.Fatalf("unexpected script path %q", got)
	}
	tool.Script = "/abs/main.py"
	if got := tool.ScriptPath(); got != "/abs/main.py" {
		t.Fatalf("unexpected script path %q", got)
	}
	if got := (config.Tool{Command: "x"}).ScriptPath(); got != "" {
		t.Fatalf("expected empty script path, got %q", got)
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.TTS.Script != "main.py" {
		t.Fatalf("unexpected sample tts script %q", cfg.TTS.Script)
	}
}
