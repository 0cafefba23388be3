package accesslog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// RecordSource yields one raw access log record per call. Next returns
// io.EOF once the source is exhausted. Sources are not safe for
// concurrent use.
type RecordSource interface {
	Next() (*Record, error)
}

const (
	// initialLineBuffer is the starting buffer size for line scanning.
	initialLineBuffer = 64 * 1024
	// maxLineBytes is the largest accepted log line. Lines are scanned
	// one at a time; the whole log is never buffered.
	maxLineBytes = 16 * 1024 * 1024
)

// jsonLineSource reads newline-delimited JSON records from a byte
// stream. Blank lines are skipped.
type jsonLineSource struct {
	scanner *bufio.Scanner
	line    int
}

func newJSONLineSource(r io.Reader) *jsonLineSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineBytes)
	return &jsonLineSource{scanner: scanner}
}

// Next returns the next record in the stream.
func (s *jsonLineSource) Next() (*Record, error) {
	for s.scanner.Scan() {
		s.line++
		data := bytes.TrimSpace(s.scanner.Bytes())
		if len(data) == 0 {
			continue
		}
		rec, err := parseRecord(data)
		if err != nil {
			return nil, &RecordError{Line: s.line, Err: err}
		}
		return rec, nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, &SourceError{Err: err}
	}
	return nil, io.EOF
}

// Line returns the 1-based number of the most recently scanned line.
func (s *jsonLineSource) Line() int {
	return s.line
}

// parseRecord parses one line into a Record. Numbers are kept as
// json.Number so 64-bit identifiers survive intact.
func parseRecord(data []byte) (*Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	// A line must hold exactly one JSON object.
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after record", ErrMalformedRecord)
	}
	return NewRecord(fields), nil
}
