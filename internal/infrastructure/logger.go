package infrastructure

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/igor-tools/igor-install/internal/domain"
)

type ColorLogger struct {
	out io.Writer

	infoColor    *color.Color
	successColor *color.Color
	warningColor *color.Color
	errorColor   *color.Color
	debugColor   *color.Color
}

// NewColorLogger creates a colorful logger writing to stderr.
func NewColorLogger() domain.Logger {
	return NewColorLoggerWithWriter(os.Stderr)
}

// NewColorLoggerWithWriter is like NewColorLogger but writes to out.
func NewColorLoggerWithWriter(out io.Writer) domain.Logger {
	return &ColorLogger{
		out:          out,
		infoColor:    color.New(color.FgCyan),
		successColor: color.New(color.FgGreen, color.Bold),
		warningColor: color.New(color.FgYellow),
		errorColor:   color.New(color.FgRed, color.Bold),
		debugColor:   color.New(color.FgMagenta, color.Faint),
	}
}

func (l *ColorLogger) line(c *color.Color, label, msg string, args []interface{}) {
	fmt.Fprintf(l.out, "%s %s\n", c.Sprint(label), fmt.Sprintf(msg, args...))
}

func (l *ColorLogger) Info(msg string, args ...interface{}) {
	l.line(l.infoColor, "[info]", msg, args)
}

func (l *ColorLogger) Success(msg string, args ...interface{}) {
	l.line(l.successColor, "[ok]", msg, args)
}

func (l *ColorLogger) Warning(msg string, args ...interface{}) {
	l.line(l.warningColor, "[warn]", msg, args)
}

func (l *ColorLogger) Error(msg string, args ...interface{}) {
	l.line(l.errorColor, "[error]", msg, args)
}

func (l *ColorLogger) Debug(msg string, args ...interface{}) {
	l.line(l.debugColor, "[debug]", msg, args)
}
