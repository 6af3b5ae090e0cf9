package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	White  = "\033[37m"
	BgRed  = "\033[41m"
)

type Options struct {
	Output       io.Writer
	Level        slog.Level
	TimeFormat   string
	ShowTime     bool
	EnableColors bool
}

func DefaultOptions() *Options {
	return &Options{
		Output:       os.Stdout,
		Level:        slog.LevelInfo,
		TimeFormat:   "15:04:05",
		ShowTime:     false,
		EnableColors: true,
	}
}

// Handler is a slog.Handler that renders records as plain console lines:
// an optional timestamp, a colored level tag for warnings and errors, and
// the message. Attributes and groups are ignored; this tool logs
// preformatted messages only.
type Handler struct {
	opts *Options
	mu   sync.Mutex
}

func NewHandler(opts *Options) *Handler {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	return &Handler{opts: opts}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level
}

func (h *Handler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *Handler) WithGroup(_ string) slog.Handler { return h }

func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var b strings.Builder

	if h.opts.ShowTime {
		if h.opts.EnableColors {
			b.WriteString(Blue)
		}
		b.WriteString(record.Time.Format(h.opts.TimeFormat))
		if h.opts.EnableColors {
			b.WriteString(Reset)
		}
		b.WriteString(" ")
	}

	if tag := levelTag(record.Level); tag != "" {
		if h.opts.EnableColors {
			b.WriteString(levelColor(record.Level))
			b.WriteString(Bold)
		}
		b.WriteString(tag)
		if h.opts.EnableColors {
			b.WriteString(Reset)
		}
		b.WriteString(" ")
	}

	b.WriteString(record.Message)

	_, err := fmt.Fprintln(h.opts.Output, b.String())
	return err
}

// levelTag returns a short prefix for warn/error records. Info lines carry
// their own outcome symbols, so they get no tag.
func levelTag(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	default:
		return ""
	}
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return Red
	case level >= slog.LevelWarn:
		return Yellow
	case level >= slog.LevelInfo:
		return Green
	default:
		return Cyan
	}
}

func NewLogger(opts *Options) *slog.Logger {
	return slog.New(NewHandler(opts))
}
