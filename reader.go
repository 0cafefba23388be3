package accesslog

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// readerState tracks the lifecycle of a Reader.
type readerState int

const (
	stateOpen readerState = iota
	stateExhausted
	stateFailed
	stateClosed
)

// Reader decodes access log messages from an underlying byte source. It
// exclusively owns the source for its lifetime: the source is acquired
// when the reader is constructed and released exactly once by Close,
// including after exhaustion or failure.
//
// Readers are synchronous and not safe for concurrent use. ReadMessage
// may block on the underlying I/O; callers needing hard cancellation
// must apply a timeout to the I/O primitive itself.
type Reader struct {
	src    RecordSource
	closer io.Closer
	log    zerolog.Logger
	state  readerState
	err    error
	record int
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets a diagnostic logger for the reader. The reader logs a
// debug event per decoded message and a warn event per failed record. By
// default all diagnostics are discarded.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Reader) {
		r.log = log
	}
}

// Open opens the access log file at the given path for reading. It fails
// with a SourceError if the file cannot be opened.
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	r := NewReader(f, opts...)
	r.closer = f
	return r, nil
}

// NewReader creates a Reader over the given byte stream. If src also
// implements io.Closer it is closed by Close.
func NewReader(src io.Reader, opts ...Option) *Reader {
	r := &Reader{
		src: newJSONLineSource(src),
		log: zerolog.Nop(),
	}
	if c, ok := src.(io.Closer); ok {
		r.closer = c
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewReaderFromSource creates a Reader over a caller-supplied record
// source. The reader takes ownership of the source; if it implements
// io.Closer it is closed by Close.
func NewReaderFromSource(src RecordSource, opts ...Option) *Reader {
	r := &Reader{
		src: src,
		log: zerolog.Nop(),
	}
	if c, ok := src.(io.Closer); ok {
		r.closer = c
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadMessage returns the next decoded message from the log.
//
// On clean exhaustion it returns io.EOF, and every later call returns
// io.EOF again. A record-scoped failure (malformed line, missing or
// unrecognized discriminator, illegal type combination, field format
// error) is returned as a RecordError and does not poison the reader:
// line framing is still intact, so the next call resumes at the next
// record, and the caller decides whether to skip or abort. A
// source-level I/O failure is terminal; the reader enters the failed
// state and every later call returns the same error. After Close,
// ReadMessage fails fast with ErrReaderClosed.
func (r *Reader) ReadMessage() (Message, error) {
	switch r.state {
	case stateClosed:
		return nil, ErrReaderClosed
	case stateExhausted:
		return nil, io.EOF
	case stateFailed:
		return nil, r.err
	}

	rec, err := r.src.Next()
	if err != nil {
		if err == io.EOF {
			r.state = stateExhausted
			return nil, io.EOF
		}
		if errors.Is(err, ErrMalformedRecord) {
			r.log.Warn().Err(err).Msg("skippable malformed access log record")
			return nil, err
		}
		r.state = stateFailed
		r.err = err
		r.log.Warn().Err(err).Msg("access log source failed")
		return nil, err
	}
	r.record++

	msg, err := Decode(rec)
	if err != nil {
		err = &RecordError{Line: r.position(), Err: err}
		r.log.Warn().Err(err).Msg("undecodable access log record")
		return nil, err
	}

	r.log.Debug().
		Int("line", r.position()).
		Stringer("message-type", msg.MessageType()).
		Msg("decoded access log message")
	return msg, nil
}

// position reports the current record position, preferring the source's
// own line accounting when it has one.
func (r *Reader) position() int {
	if ls, ok := r.src.(interface{ Line() int }); ok {
		return ls.Line()
	}
	return r.record
}

// Close releases the underlying source. It is valid in every state;
// closing an already-closed reader is a no-op.
func (r *Reader) Close() error {
	if r.state == stateClosed {
		return nil
	}
	r.state = stateClosed
	if r.closer != nil {
		c := r.closer
		r.closer = nil
		return c.Close()
	}
	return nil
}
