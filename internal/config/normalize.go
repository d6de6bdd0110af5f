package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLibrary()
	if err := normalizeTool(&c.Preprocessor, "preprocessor", "BOOKLOOM_PREPROCESSOR"); err != nil {
		return err
	}
	if err := normalizeTool(&c.TTS, "tts", "BOOKLOOM_TTS"); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if value, ok := os.LookupEnv("BOOKLOOM_BOOKS_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.BooksDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.BooksDir) == "" {
		c.Paths.BooksDir = defaultBooksDir
	}
	if c.Paths.BooksDir, err = expandPath(strings.TrimSpace(c.Paths.BooksDir)); err != nil {
		return fmt.Errorf("paths.books_dir: %w", err)
	}
	if value, ok := os.LookupEnv("OUTPUT_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.ResultsDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.ResultsDir) == "" {
		c.Paths.ResultsDir = defaultResultsDir
	}
	if c.Paths.ResultsDir, err = expandPath(strings.TrimSpace(c.Paths.ResultsDir)); err != nil {
		return fmt.Errorf("paths.results_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLibrary() {
	c.Library.ChaptersDir = strings.TrimSpace(c.Library.ChaptersDir)
	if c.Library.ChaptersDir == "" {
		c.Library.ChaptersDir = defaultChaptersDir
	}
	c.Library.TextExtension = strings.TrimSpace(c.Library.TextExtension)
	if c.Library.TextExtension == "" {
		c.Library.TextExtension = defaultTextExtension
	}
	if !strings.HasPrefix(c.Library.TextExtension, ".") {
		c.Library.TextExtension = "." + c.Library.TextExtension
	}
	c.Library.CleanSuffix = strings.TrimSpace(c.Library.CleanSuffix)
	if c.Library.CleanSuffix == "" {
		c.Library.CleanSuffix = defaultCleanSuffix
	}
}

// normalizeTool trims fields, applies the command override from envKey, and
// expands the script and working directory when they are set.
func normalizeTool(tool *Tool, section, envKey string) error {
	if value, ok := os.LookupEnv(envKey); ok && strings.TrimSpace(value) != "" {
		tool.Command = strings.TrimSpace(value)
	}
	tool.Command = strings.TrimSpace(tool.Command)
	tool.Script = strings.TrimSpace(tool.Script)
	if len(tool.Args) > 0 {
		args := make([]string, 0, len(tool.Args))
		for _, arg := range tool.Args {
			if trimmed := strings.TrimSpace(arg); trimmed != "" {
				args = append(args, trimmed)
			}
		}
		tool.Args = args
	}
	var err error
	if tool.WorkDir = strings.TrimSpace(tool.WorkDir); tool.WorkDir != "" {
		if tool.WorkDir, err = expandPath(tool.WorkDir); err != nil {
			return fmt.Errorf("%s.work_dir: %w", section, err)
		}
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
