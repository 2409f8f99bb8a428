package trace

import (
	"bufio"
	"io"

	"github.com/tidwall/sjson"
)

// JSONSink writes one JSON object per line to an underlying writer,
// built field-by-field with sjson rather than encoding/json so that a
// consumer can pull individual fields back out with gjson without
// decoding the whole line.
type JSONSink struct {
	w *bufio.Writer
}

// NewJSONSink wraps w. Callers that need every line flushed promptly
// (e.g. a CLI writing to a terminal) should call Flush when done.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{w: bufio.NewWriter(w)}
}

// Emit renders e as a single JSON line and writes it.
func (s *JSONSink) Emit(e Entry) error {
	line := "{}"
	var err error
	for _, set := range []struct {
		path string
		val  interface{}
	}{
		{"step", e.Step},
		{"source", e.Source},
		{"cont", e.Cont},
		{"env", e.Env},
		{"stack", e.Stack},
		{"stackDepth", e.StackDepth},
	} {
		line, err = sjson.Set(line, set.path, set.val)
		if err != nil {
			return err
		}
	}
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

// Flush pushes any buffered lines to the underlying writer.
func (s *JSONSink) Flush() error {
	return s.w.Flush()
}
