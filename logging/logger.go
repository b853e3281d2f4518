package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/grovetools/navbar/config"
	"github.com/grovetools/navbar/pkg/paths"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	sinks     = make(map[string]sinkState)
	loggersMu sync.Mutex
)

// sinkState remembers how a cached logger's stderr sink was resolved.
type sinkState struct {
	mode   string
	stderr bool
}

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	// Load configuration from navbar.yml
	var logCfg Config
	if cfg, err := config.LoadDefault(); err == nil {
		// Use UnmarshalExtension to safely decode the logging part
		if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
			// Log a warning if parsing fails, but continue with defaults
			logrus.Warnf("Failed to parse 'logging' config: %v", err)
		}
	}

	entry, stderr := configure(component, logCfg, isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))
	loggers[component] = entry
	sinks[component] = sinkState{mode: logCfg.Format.StructuredToStderr, stderr: stderr}
	return entry
}

// EnableDebug raises the component's logger to debug level and attaches
// stderr when auto mode had left it off for an interactive terminal. A
// "never" stderr mode is respected.
func EnableDebug(component string) *logrus.Entry {
	entry := NewLogger(component)

	loggersMu.Lock()
	defer loggersMu.Unlock()

	entry.Logger.SetLevel(logrus.DebugLevel)
	st := sinks[component]
	if st.stderr || st.mode == "never" {
		return entry
	}
	if entry.Logger.Out == io.Discard {
		entry.Logger.SetOutput(os.Stderr)
	} else {
		entry.Logger.SetOutput(io.MultiWriter(entry.Logger.Out, os.Stderr))
	}
	st.stderr = true
	sinks[component] = st
	return entry
}

// Configure builds a logger for component from an explicit configuration.
// interactive reports whether stderr is a terminal; it drives the "auto"
// stderr mode.
func Configure(component string, logCfg Config, interactive bool) *logrus.Entry {
	entry, _ := configure(component, logCfg, interactive)
	return entry
}

// configure also reports whether stderr was attached.
func configure(component string, logCfg Config, interactive bool) (*logrus.Entry, bool) {
	logger := logrus.New()

	// Configure Level
	levelStr := "info"
	if env := os.Getenv("NAVBAR_LOG_LEVEL"); env != "" {
		levelStr = env
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Configure Caller Reporting
	if os.Getenv("NAVBAR_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	// Configure Formatter
	switch logCfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: logCfg.Format})
	}

	var writers []io.Writer

	// The file sink is opt-in; a UI library should not drop files into the
	// working directory on its own.
	if logCfg.File.Enabled {
		logFilePath := paths.DefaultLogFile()
		if logCfg.File.Path != "" {
			logFilePath = paths.Expand(logCfg.File.Path)
		}
		dir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Warnf("Failed to create log directory %s: %v", dir, err)
		} else if file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666); err == nil {
			writers = append(writers, file)
		} else {
			logger.Warnf("Failed to open log file %s: %v", logFilePath, err)
		}
	}

	stderr := shouldLogToStderr(logCfg.Format.StructuredToStderr, logger.GetLevel(), interactive)
	if stderr {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
		// Intentional in auto mode for interactive terminals: the TUI owns the screen.
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	return logger.WithField("component", component), stderr
}

// shouldLogToStderr resolves the structured_to_stderr mode. In "auto" mode
// logs reach stderr only when debugging or when stderr is not a terminal
// (piped output, CI).
func shouldLogToStderr(mode string, level logrus.Level, interactive bool) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		isDebug := os.Getenv("NAVBAR_DEBUG") == "1" || level >= logrus.DebugLevel
		return isDebug || !interactive
	}
}
