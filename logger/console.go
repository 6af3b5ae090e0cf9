package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Console wraps a slog.Logger with leveled, symbol-prefixed helpers and
// factories for the richer widgets (table, progress bar, spinner, timer).
type Console struct {
	Logger    *slog.Logger
	Colorized bool
}

func NewConsole(opts *Options) *Console {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Console{
		Logger:    NewLogger(opts),
		Colorized: opts.EnableColors,
	}
}

func (c *Console) Success(format string, args ...interface{}) {
	msg := "✓ " + fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = Green + msg + Reset
	}
	c.Logger.Info(msg)
}

func (c *Console) Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = Cyan + msg + Reset
	}
	c.Logger.Info(msg)
}

func (c *Console) Log(format string, args ...interface{}) {
	c.Logger.Info(fmt.Sprintf(format, args...))
}

func (c *Console) Warn(format string, args ...interface{}) {
	msg := "⚠ " + fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = Yellow + msg + Reset
	}
	c.Logger.Warn(msg)
}

func (c *Console) Error(format string, args ...interface{}) {
	msg := "✗ " + fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = Red + msg + Reset
	}
	c.Logger.Error(msg)
}

func (c *Console) Fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = BgRed + White + Bold + msg + Reset
	}
	c.Logger.Error(msg)
	os.Exit(1)
}

func (c *Console) StartTimer(name string) *Timer {
	return &Timer{
		Name:      name,
		StartTime: time.Now(),
		Console:   c,
	}
}

func (c *Console) StartSpinner(message string) *Spinner {
	s := &Spinner{
		Message: message,
		Frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		Console: c,
		Done:    make(chan bool),
	}
	s.Start()
	return s
}

func (c *Console) NewProgressBar(total int64, label string) *ProgressBar {
	return NewProgressBar(total, label)
}

func (c *Console) NewTable(headers []string) *Table {
	return NewTable(headers, c.Logger)
}

// Box prints a bordered block with a title, used for version output.
func (c *Console) Box(title, content string) {
	lines := strings.Split(content, "\n")

	width := len(title)
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	width += 4

	fmt.Println("┌─" + title + "─" + strings.Repeat("─", width-len(title)-2) + "┐")
	for _, line := range lines {
		fmt.Println("│ " + line + strings.Repeat(" ", width-len(line)) + " │")
	}
	fmt.Println("└" + strings.Repeat("─", width+2) + "┘")
}
