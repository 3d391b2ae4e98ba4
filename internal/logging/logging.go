// Package logging sets up the process-wide slog logger: json, pretty, or
// compact text output, to stderr or a daily-rotated file, filtered by a
// configured level.
package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"
)

// ParseLevel converts a level string (possibly in tracing-filter form, e.g.
// "info" or "switchboard=debug") to an slog.Level. Unrecognized input falls
// back to Info.
func ParseLevel(levelStr string) slog.Level {
	levelStr = strings.ToLower(strings.TrimSpace(levelStr))
	if idx := strings.LastIndex(levelStr, "="); idx != -1 {
		levelStr = levelStr[idx+1:]
	}
	switch levelStr {
	case "debug", "trace":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Options configures Init.
type Options struct {
	ToFile  bool
	Dir     string // directory holding the date-suffixed switchboard-mcp-<date>.log files; required if ToFile
	JSON    bool
	Compact bool
	Pretty  bool
	Level   string
}

// Init builds and installs the process-wide slog.Logger, returning a
// cleanup func that closes any opened log file.
func Init(opts Options) (func(), error) {
	level := ParseLevel(opts.Level)

	var output *os.File = os.Stderr
	cleanup := func() {}

	if opts.ToFile {
		file, err := openRotatedLogFile(opts.Dir, time.Now())
		if err != nil {
			return nil, err
		}
		output = file
		cleanup = func() { file.Close() }
	}

	handlerOpts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if s := a.Value.String(); s == "WARNING" {
					return slog.String("level", "WARN")
				}
			}
			return a
		},
	}

	var handler slog.Handler
	switch {
	case opts.JSON:
		handler = slog.NewJSONHandler(output, handlerOpts)
	case opts.Compact:
		handler = &compactHandler{handler: slog.NewTextHandler(output, handlerOpts), writer: output}
	case opts.Pretty:
		handler = &prettyHandler{handler: slog.NewTextHandler(output, handlerOpts), writer: output, color: isTerminal(output)}
	default:
		handler = slog.NewTextHandler(output, handlerOpts)
	}

	slog.SetDefault(slog.New(handler))
	return cleanup, nil
}

func isTerminal(file *os.File) bool {
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// compactHandler renders "LEVEL message key=val key=val" with no timestamp.
// No library in the retrieved pack ships a terse handler shaped like this;
// it is a small transform over the stdlib TextHandler's Attrs, not a
// reimplementation of slog itself.
type compactHandler struct {
	handler slog.Handler
	writer  *os.File
}

func (h *compactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *compactHandler) Handle(ctx context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(strings.ToUpper(record.Level.String()))
	b.WriteString(" ")
	b.WriteString(record.Message)
	record.Attrs(func(a slog.Attr) bool {
		b.WriteString(" ")
		b.WriteString(a.Key)
		b.WriteString("=")
		b.WriteString(a.Value.String())
		return true
	})
	b.WriteString("\n")
	_, err := h.writer.WriteString(b.String())
	return err
}

func (h *compactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &compactHandler{handler: h.handler.WithAttrs(attrs), writer: h.writer}
}

func (h *compactHandler) WithGroup(name string) slog.Handler {
	return &compactHandler{handler: h.handler.WithGroup(name), writer: h.writer}
}

// prettyHandler adds a timestamp and, on a real terminal, ANSI color by
// level.
type prettyHandler struct {
	handler slog.Handler
	writer  *os.File
	color   bool
}

func (h *prettyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *prettyHandler) Handle(ctx context.Context, record slog.Record) error {
	var b strings.Builder
	if !record.Time.IsZero() {
		b.WriteString(record.Time.Format("2006-01-02 15:04:05.000"))
		b.WriteString(" ")
	}
	levelStr := strings.ToUpper(record.Level.String())
	if h.color {
		b.WriteString(levelColor(record.Level))
		b.WriteString(levelStr)
		b.WriteString("\033[0m")
	} else {
		b.WriteString(levelStr)
	}
	b.WriteString(" ")
	b.WriteString(record.Message)
	record.Attrs(func(a slog.Attr) bool {
		b.WriteString(" ")
		b.WriteString(a.Key)
		b.WriteString("=")
		b.WriteString(a.Value.String())
		return true
	})
	b.WriteString("\n")
	_, err := h.writer.WriteString(b.String())
	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyHandler{handler: h.handler.WithAttrs(attrs), writer: h.writer, color: h.color}
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	return &prettyHandler{handler: h.handler.WithGroup(name), writer: h.writer, color: h.color}
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "\033[31m"
	case level >= slog.LevelWarn:
		return "\033[33m"
	case level >= slog.LevelInfo:
		return "\033[36m"
	default:
		return "\033[90m"
	}
}
