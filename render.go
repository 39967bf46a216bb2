package ndjson

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"pkt.systems/ndjson/internal/ansi"
)

// Options controls the stream entry points. The zero value (and nil)
// renders with the default palette.
type Options struct {
	// NoColor renders the same structural output without any escape
	// codes. The raw-copy passthrough for non-terminal sinks lives in the
	// CLI, not here.
	NoColor bool
}

// ErrInvalidUTF8 reports an input line that is not valid UTF-8. This is an
// input-layer failure, not a JSON parse failure, so it aborts the stream.
var ErrInvalidUTF8 = errors.New("ndjson: input is not valid UTF-8")

// ColorizeStream reads newline delimited text from r and writes the
// colorized rendering to w, one line per line. Lines that are not a single
// non-degenerate JSON document pass through unchanged. The first read or
// write error aborts the stream.
func ColorizeStream(w io.Writer, r io.Reader, opts *Options) error {
	pal := ansi.PaletteDefault
	if opts != nil && opts.NoColor {
		pal = ansi.Palette{}
	}
	cw := NewColorWriter(w, pal)
	br := bufio.NewReader(r)
	for {
		line, err := readLine(br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !utf8.Valid(line) {
			return fmt.Errorf("%w: %q", ErrInvalidUTF8, line)
		}
		if err := renderLine(cw, line); err != nil {
			return err
		}
		cw.SetKind(KindNone)
		if err := cw.WriteString("\n"); err != nil {
			return err
		}
	}
}

// readLine returns the next line without its trailing newline. A final
// unterminated line is returned as-is; io.EOF only surfaces once no bytes
// remain.
func readLine(br *bufio.Reader) ([]byte, error) {
	line, err := br.ReadBytes('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return line, nil
		}
		return nil, err
	}
	line = line[:len(line)-1]
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line, nil
}

// renderLine classifies one line and emits either its structural rendering
// or the original bytes. Top-level empty objects, empty arrays and bare
// scalars read better untouched, so they take the raw path alongside
// parse failures.
func renderLine(cw *ColorWriter, line []byte) error {
	v, err := Parse(line)
	if err == nil {
		switch t := v.(type) {
		case Object:
			if len(t) > 0 {
				return writeMembers(cw, t)
			}
		case Array:
			if len(t) > 0 {
				return writeValue(cw, t)
			}
		}
	}
	cw.SetKind(KindNone)
	return cw.WriteString(string(line))
}

// writeValue renders v as a nested value: strings unquoted, arrays in
// brackets, objects in braces, scalars in their canonical text.
func writeValue(cw *ColorWriter, v Value) error {
	switch t := v.(type) {
	case String:
		cw.SetKind(KindString)
		return cw.WriteString(string(t))
	case Array:
		cw.SetKind(KindNone)
		if err := cw.WriteString("["); err != nil {
			return err
		}
		for i, el := range t {
			if i != 0 {
				cw.SetKind(KindNone)
				if err := cw.WriteString(", "); err != nil {
					return err
				}
			}
			if err := writeValue(cw, el); err != nil {
				return err
			}
		}
		cw.SetKind(KindNone)
		return cw.WriteString("]")
	case Object:
		if len(t) == 0 {
			cw.SetKind(KindNone)
			return cw.WriteString("{}")
		}
		cw.SetKind(KindNone)
		if err := cw.WriteString("{ "); err != nil {
			return err
		}
		if err := writeMembers(cw, t); err != nil {
			return err
		}
		cw.SetKind(KindNone)
		return cw.WriteString(" }")
	default:
		cw.SetKind(KindValue)
		return cw.WriteString(scalarText(v))
	}
}

// writeMembers renders object pairs without surrounding braces. The
// top-level object goes through here directly; nested objects wrap the
// same iteration in "{ " and " }".
func writeMembers(cw *ColorWriter, obj Object) error {
	for i, m := range obj {
		if i != 0 {
			cw.SetKind(KindNone)
			if err := cw.WriteString(" "); err != nil {
				return err
			}
		}
		cw.SetKind(KindKey)
		if err := cw.WriteString(m.Key); err != nil {
			return err
		}
		cw.SetKind(KindNone)
		if err := cw.WriteString(": "); err != nil {
			return err
		}
		if err := writeValue(cw, m.Value); err != nil {
			return err
		}
	}
	return nil
}

func scalarText(v Value) string {
	switch t := v.(type) {
	case Number:
		return string(t)
	case Bool:
		return strconv.FormatBool(bool(t))
	default:
		return "null"
	}
}
