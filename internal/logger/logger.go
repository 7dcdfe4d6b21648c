package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/govalues/monet/internal/config"
)

var (
	Logger      *slog.Logger
	atomicLevel *slog.LevelVar
	// output is the log file opened by the last Init, if any.
	output *os.File
)

// Init installs the process logger described by cfg and makes it the slog default.
func Init(cfg *config.LoggerConfig) error {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	atomicLevel = new(slog.LevelVar)
	atomicLevel.Set(level)

	var (
		writer io.Writer
		file   *os.File
	)
	switch strings.ToLower(cfg.OutputPath) {
	case "stderr", "":
		writer = os.Stderr
	case "stdout":
		writer = os.Stdout
	default:
		file, err = os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return fmt.Errorf("opening log output: %w", err)
		}
		writer = file
	}

	Logger = slog.New(newHandler(writer, cfg.Format, atomicLevel))
	slog.SetDefault(Logger)

	return swapOutput(file)
}

// swapOutput records the file of the current logger and closes the previous one.
func swapOutput(file *os.File) error {
	prev := output
	output = file
	if prev == nil {
		return nil
	}
	if err := prev.Close(); err != nil {
		return fmt.Errorf("closing previous log output: %w", err)
	}
	return nil
}

// ParseLevel converts a level name to a slog level.
// An empty name means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func newHandler(w io.Writer, format string, level slog.Leveler) slog.Handler {
	if strings.ToLower(format) == "json" {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:       level,
		TimeFormat:  time.DateTime,
		NoColor:     !isTerminal(w),
		ReplaceAttr: replaceErr,
	})
}

func replaceErr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == "error" && a.Value.Kind() == slog.KindAny {
		if err, ok := a.Value.Any().(error); ok {
			return tint.Err(err)
		}
	}
	return a
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func SetLevel(level slog.Level) {
	if atomicLevel != nil {
		atomicLevel.Set(level)
	}
}

// Get returns the process logger, falling back to a warn-level console
// logger on stderr if Init has not been called.
func Get() *slog.Logger {
	if Logger == nil {
		atomicLevel = new(slog.LevelVar)
		atomicLevel.Set(slog.LevelWarn)
		Logger = slog.New(newHandler(os.Stderr, "console", atomicLevel))
	}
	return Logger
}

func WithComponent(component string) *slog.Logger {
	return Get().With("component", component)
}
