package stringlike

import (
	"log/slog"
	"unicode/utf8"
)

// LogValue implements slog.LogValuer: a Facade logs as its current text and
// code point length.
func (f Facade) LogValue() slog.Value {
	t := f.UTF8String()
	return slog.GroupValue(
		slog.String("text", t),
		slog.Int("len", utf8.RuneCountInString(t)),
	)
}
