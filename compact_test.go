package ndjson

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestCompactToStructuredLines(t *testing.T) {
	in := `{"a": 1, "b": [1, 2]}` + "\n" +
		`[ "x",  "y" ]` + "\n"
	want := `{"a":1,"b":[1,2]}` + "\n" +
		`["x","y"]` + "\n"

	var buf bytes.Buffer
	if err := CompactTo(&buf, strings.NewReader(in), nil); err != nil {
		t.Fatalf("CompactTo failed: %v", err)
	}
	if got := buf.String(); got != want {
		t.Fatalf("unexpected compact output\nexpected: %q\nactual:   %q", want, got)
	}
}

func TestCompactToRawLines(t *testing.T) {
	in := "text\n{}\n[]\n123\n{broken\n"

	var buf bytes.Buffer
	if err := CompactTo(&buf, strings.NewReader(in), nil); err != nil {
		t.Fatalf("CompactTo failed: %v", err)
	}
	if got := buf.String(); got != in {
		t.Fatalf("expected raw lines to pass through\nexpected: %q\nactual:   %q", in, got)
	}
}

func TestCompactToInvalidUTF8(t *testing.T) {
	var buf bytes.Buffer
	err := CompactTo(&buf, bytes.NewReader([]byte{0xff, '\n'}), nil)
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestCompactToWriteError(t *testing.T) {
	if err := CompactTo(errWriter{}, strings.NewReader("text\n"), nil); err == nil {
		t.Fatalf("expected write error")
	}
}
