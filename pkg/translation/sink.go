package translation

import (
	"fmt"
	"log/slog"

	"github.com/jwebster45206/string-extractor/pkg/condition"
)

// Entry is one string collected for translation
type Entry struct {
	Text    Text
	Origin  condition.Origin
	Comment string
}

// Collector records emitted strings in the order they arrive.
type Collector struct {
	entries []Entry
}

// Ensure Collector implements condition.Sink
var _ condition.Sink = (*Collector)(nil)

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{}
}

// Emit parses text and records it. Empty strings are dropped.
func (c *Collector) Emit(text any, origin condition.Origin, comment string) error {
	t, err := ParseText(text)
	if err != nil {
		return fmt.Errorf("%s: %w", origin, err)
	}
	if t.IsEmpty() {
		return nil
	}
	c.entries = append(c.entries, Entry{Text: t, Origin: origin, Comment: comment})
	return nil
}

// Entries returns a copy of the collected entries
func (c *Collector) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of collected entries
func (c *Collector) Len() int {
	return len(c.entries)
}

// LogSink logs every emission before forwarding it to Next.
type LogSink struct {
	Next   condition.Sink
	Logger *slog.Logger
}

var _ condition.Sink = (*LogSink)(nil)

// NewLogSink wraps next with debug logging
func NewLogSink(next condition.Sink, logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{Next: next, Logger: logger}
}

func (l *LogSink) Emit(text any, origin condition.Origin, comment string) error {
	l.Logger.Debug("Emitting translatable string",
		"origin", origin,
		"comment", comment,
		"text", text)

	if err := l.Next.Emit(text, origin, comment); err != nil {
		l.Logger.Warn("String sink rejected text",
			"origin", origin,
			"error", err)
		return err
	}
	return nil
}
