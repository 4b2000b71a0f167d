// Package logging builds the slog handlers used by the prepop binary.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

type levelSettings struct {
	level           slog.Level
	reportCaller    bool
	reportTimestamp bool
}

// parseLevel maps a level name onto slog. "trace" is debug plus caller and
// timestamp reporting; unknown names fall back to info.
func parseLevel(logLevel string) levelSettings {
	switch strings.ToLower(logLevel) {
	case "trace":
		return levelSettings{level: slog.LevelDebug, reportCaller: true, reportTimestamp: true}
	case "debug":
		return levelSettings{level: slog.LevelDebug, reportTimestamp: true}
	case "warn", "warning":
		return levelSettings{level: slog.LevelWarn}
	case "error":
		return levelSettings{level: slog.LevelError}
	default:
		return levelSettings{level: slog.LevelInfo}
	}
}

// SetupHandlerText configures a charmbracelet text handler with the provided writer and log level
func SetupHandlerText(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	s := parseLevel(logLevel)
	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: s.reportTimestamp,
		ReportCaller:    s.reportCaller,
		Level:           log.Level(s.level),
	})
}

// SetupHandlerJSON configures a JSON slog handler with the provided writer and log level
func SetupHandlerJSON(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stdout
	}

	s := parseLevel(logLevel)
	return slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:     s.level,
		AddSource: s.reportCaller,
	})
}

// SetupHandler picks the text or JSON handler by format name.
func SetupHandler(format, logLevel string, writer io.Writer) slog.Handler {
	if strings.EqualFold(format, "json") {
		return SetupHandlerJSON(logLevel, writer)
	}
	return SetupHandlerText(logLevel, writer)
}

// SetupLogger configures the default logger based on provided format and log level
func SetupLogger(format, logLevel string) {
	slog.SetDefault(slog.New(SetupHandler(format, logLevel, nil)))
}
