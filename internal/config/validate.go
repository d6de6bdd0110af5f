package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLibrary(); err != nil {
		return err
	}
	if err := validateTool(c.Preprocessor, "preprocessor"); err != nil {
		return err
	}
	if err := validateTool(c.TTS, "tts"); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLibrary() error {
	if c.Library.ChaptersDir == "" {
		return errors.New("library.chapters_dir must be set")
	}
	if strings.ContainsAny(c.Library.ChaptersDir, `/\`) || c.Library.ChaptersDir == "." || c.Library.ChaptersDir == ".." {
		return fmt.Errorf("library.chapters_dir must be a plain directory name, got %q", c.Library.ChaptersDir)
	}
	if len(c.Library.TextExtension) < 2 || !strings.HasPrefix(c.Library.TextExtension, ".") {
		return fmt.Errorf("library.text_extension must look like \".txt\", got %q", c.Library.TextExtension)
	}
	if c.Library.CleanSuffix == "" {
		return errors.New("library.clean_suffix must be set")
	}
	if strings.ContainsRune(c.Library.CleanSuffix, filepath.Separator) {
		return fmt.Errorf("library.clean_suffix must not contain %q", string(filepath.Separator))
	}
	return nil
}

func validateTool(tool Tool, section string) error {
	if tool.Command == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = defaultConfigPath
		}
		return fmt.Errorf("%s.command is required. Edit %s (create with 'bookloom config init')", section, defaultPath)
	}
	if tool.WorkDir != "" {
		info, err := os.Stat(tool.WorkDir)
		if err != nil {
			return fmt.Errorf("%s.work_dir: %w", section, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s.work_dir %q is not a directory", section, tool.WorkDir)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}
