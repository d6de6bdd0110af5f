package config

const (
	defaultConfigPath         = "~/.config/bookloom/config.toml"
	defaultBooksDir           = "BOOKS"
	defaultResultsDir         = "results"
	defaultLogDir             = "~/.local/share/bookloom/logs"
	defaultChaptersDir        = "chapters"
	defaultTextExtension      = ".txt"
	defaultCleanSuffix        = "_clean"
	defaultInterpreter        = "python3"
	defaultPreprocessorScript = "text_preprocessor.py"
	defaultTTSScript          = "main.py"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			BooksDir:   defaultBooksDir,
			ResultsDir: defaultResultsDir,
			LogDir:     defaultLogDir,
		},
		Library: Library{
			ChaptersDir:   defaultChaptersDir,
			TextExtension: defaultTextExtension,
			CleanSuffix:   defaultCleanSuffix,
		},
		Preprocessor: Tool{
			Command: defaultInterpreter,
			Script:  defaultPreprocessorScript,
		},
		TTS: Tool{
			Command: defaultInterpreter,
			Script:  defaultTTSScript,
		},
		Pipeline: Pipeline{
			LockBook: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
