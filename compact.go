package ndjson

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"pkt.systems/jpact"
)

// CompactTo rewrites each structured line of r as minimal JSON on w, one
// document per line. Classification matches ColorizeStream: lines that
// would pass through there pass through here too, byte for byte.
func CompactTo(w io.Writer, r io.Reader, _ *Options) error {
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
		if err := compactLine(w, line); err != nil {
			return err
		}
		if err := writeNewline(w); err != nil {
			return err
		}
	}
}

func compactLine(w io.Writer, line []byte) error {
	if structuredLine(line) {
		return jpact.CompactWriter(w, bytes.NewReader(line), 0)
	}
	_, err := w.Write(line)
	return err
}

// structuredLine reports whether the line classifies as a non-empty object
// or array, the same gate the colorizer applies.
func structuredLine(line []byte) bool {
	v, err := Parse(line)
	if err != nil {
		return false
	}
	switch t := v.(type) {
	case Object:
		return len(t) > 0
	case Array:
		return len(t) > 0
	default:
		return false
	}
}

var newlineBytes = []byte{'\n'}

func writeNewline(w io.Writer) error {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw.WriteByte('\n')
	}
	_, err := w.Write(newlineBytes)
	return err
}
