package sink

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/vnykmshr/cacheinventory/pkg/inventory"
)

// Logger receives rendered inventory events. Wrap the host's logging library
// in it to route events there through LogSink.
type Logger interface {
	Debug(msg string, fields ...inventory.Field)
	Info(msg string, fields ...inventory.Field)
	Warn(msg string, fields ...inventory.Field)
	Error(msg string, fields ...inventory.Field)
}

// TextLogger writes one line per event through a standard library logger.
// The event name leads the line and the remaining fields follow in order:
//
//	[DEBUG] entry_evicted: Inventory full, evicted oldest entry | key=1 reason=capacity hits=0
type TextLogger struct {
	min    inventory.Level
	logger *log.Logger
}

// NewTextLogger creates a logger writing events at min or above to stdout
func NewTextLogger(min inventory.Level) *TextLogger {
	return NewTextLoggerWithOutput(min, log.New(os.Stdout, "[INVENTORY] ", log.LstdFlags|log.Lmicroseconds))
}

// NewTextLoggerWithOutput creates a logger writing events at min or above to logger
func NewTextLoggerWithOutput(min inventory.Level, logger *log.Logger) *TextLogger {
	return &TextLogger{min: min, logger: logger}
}

func (tl *TextLogger) Debug(msg string, fields ...inventory.Field) {
	tl.write(inventory.LevelDebug, msg, fields)
}

func (tl *TextLogger) Info(msg string, fields ...inventory.Field) {
	tl.write(inventory.LevelInfo, msg, fields)
}

func (tl *TextLogger) Warn(msg string, fields ...inventory.Field) {
	tl.write(inventory.LevelWarn, msg, fields)
}

func (tl *TextLogger) Error(msg string, fields ...inventory.Field) {
	tl.write(inventory.LevelError, msg, fields)
}

func (tl *TextLogger) write(level inventory.Level, msg string, fields []inventory.Field) {
	if level < tl.min {
		return
	}

	var b strings.Builder
	b.WriteString("[" + level.String() + "] ")
	if event, _ := eventOf(fields); event != "" {
		b.WriteString(event + ": ")
	}
	b.WriteString(msg)

	sep := " | "
	for _, f := range fields {
		if f.Key == inventory.FieldEvent {
			continue
		}
		fmt.Fprintf(&b, "%s%s=%v", sep, f.Key, f.Value)
		sep = " "
	}

	tl.logger.Println(b.String())
}

// NoOpLogger discards every message
type NoOpLogger struct{}

func (NoOpLogger) Debug(string, ...inventory.Field) {}
func (NoOpLogger) Info(string, ...inventory.Field)  {}
func (NoOpLogger) Warn(string, ...inventory.Field)  {}
func (NoOpLogger) Error(string, ...inventory.Field) {}

var (
	_ Logger = (*TextLogger)(nil)
	_ Logger = NoOpLogger{}
)
