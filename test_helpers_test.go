package ndjson

import (
	"bytes"
	"errors"
	"regexp"
)

type noStringWriter struct {
	buf bytes.Buffer
}

func (w *noStringWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *noStringWriter) String() string {
	return w.buf.String()
}

type errWriter struct{}

func (errWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("write err")
}

type errStringWriter struct{}

func (errStringWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("write err")
}

func (errStringWriter) WriteString(_ string) (int, error) {
	return 0, errors.New("write string err")
}

type failAfterStringWriter struct {
	count int
	fail  int
	buf   bytes.Buffer
}

func (w *failAfterStringWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *failAfterStringWriter) WriteString(s string) (int, error) {
	w.count++
	if w.count > w.fail {
		return 0, errors.New("write string err")
	}
	return w.buf.WriteString(s)
}

type errReader struct{}

func (errReader) Read(_ []byte) (int, error) {
	return 0, errors.New("read err")
}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
