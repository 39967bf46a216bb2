package ndjson

import (
	"io"

	"pkt.systems/ndjson/internal/ansi"
)

// TokenKind is the semantic class of the next span of literal text, used
// only to pick a display colour.
type TokenKind int

const (
	// KindNone renders with the terminal's default colour (reset).
	KindNone TokenKind = iota
	// KindKey renders object keys.
	KindKey
	// KindValue renders numbers, booleans and null.
	KindValue
	// KindString renders string content.
	KindString
)

// ColorWriter writes literal text interleaved with colour escape codes,
// emitting a code only when the token kind of the text actually changes.
// One ColorWriter serves the whole output stream; its kind state carries
// across lines so same-kind runs never repeat a sequence.
type ColorWriter struct {
	w    io.Writer
	sw   io.StringWriter
	pal  ansi.Palette
	kind TokenKind
	last TokenKind
}

// NewColorWriter returns a writer for w using pal. A zero Palette keeps
// the write path identical but emits no escape codes.
func NewColorWriter(w io.Writer, pal ansi.Palette) *ColorWriter {
	cw := &ColorWriter{w: w, pal: pal}
	if sw, ok := w.(io.StringWriter); ok {
		cw.sw = sw
	}
	return cw
}

// SetKind records the kind for subsequent writes. It has no immediate
// effect on the output; the matching escape code is flushed by the next
// non-empty WriteString whose kind differs from the last flushed one.
func (cw *ColorWriter) SetKind(kind TokenKind) {
	cw.kind = kind
}

// WriteString writes s preceded, when due, by the escape code for the
// current kind. An empty s is a complete no-op: it neither flushes a
// pending kind change nor consumes it.
func (cw *ColorWriter) WriteString(s string) error {
	if s == "" {
		return nil
	}
	if cw.kind != cw.last {
		if err := cw.writeRaw(cw.sequence(cw.kind)); err != nil {
			return err
		}
		cw.last = cw.kind
	}
	return cw.writeRaw(s)
}

func (cw *ColorWriter) sequence(kind TokenKind) string {
	switch kind {
	case KindKey:
		return cw.pal.Key
	case KindValue:
		return cw.pal.Value
	case KindString:
		return cw.pal.String
	default:
		if cw.pal == (ansi.Palette{}) {
			return ""
		}
		return ansi.Reset
	}
}

func (cw *ColorWriter) writeRaw(s string) error {
	if s == "" {
		return nil
	}
	var err error
	if cw.sw != nil {
		_, err = cw.sw.WriteString(s)
	} else {
		_, err = io.WriteString(cw.w, s)
	}
	return err
}
