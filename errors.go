package accesslog

import (
	"errors"
	"fmt"
)

// Decoding errors
var (
	// ErrSourceUnavailable is returned when the underlying byte source
	// cannot be opened or read.
	ErrSourceUnavailable = errors.New("accesslog: log source unavailable")

	// ErrMalformedRecord is returned when a line is not a well-formed
	// JSON object.
	ErrMalformedRecord = errors.New("accesslog: malformed log record")

	// ErrMissingField is returned when a required field (timestamp,
	// message-type, or operation-type where applicable) is absent.
	ErrMissingField = errors.New("accesslog: missing required field")

	// ErrInvalidEnum is returned when a message-type or operation-type
	// field holds an unrecognized token.
	ErrInvalidEnum = errors.New("accesslog: unrecognized enum value")

	// ErrIllegalCombination is returned when a record pairs a message
	// type with an operation type outside the legal set.
	ErrIllegalCombination = errors.New("accesslog: illegal message-type/operation-type combination")

	// ErrFieldFormat is returned when a present field has the wrong JSON
	// kind or fails a post-parse check.
	ErrFieldFormat = errors.New("accesslog: invalid field format")

	// ErrReaderClosed is returned when reading from a closed Reader.
	ErrReaderClosed = errors.New("accesslog: reader is closed")
)

// FieldError reports a field that is present but does not have the
// expected kind or format.
type FieldError struct {
	Field    string // Field name as it appears in the log record
	Expected string // Description of the expected kind
	Err      error  // Underlying error, if any
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("accesslog: field %q: expected %s: %v", e.Field, e.Expected, e.Err)
	}
	return fmt.Sprintf("accesslog: field %q: expected %s", e.Field, e.Expected)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is allows FieldError to match ErrFieldFormat with errors.Is.
func (e *FieldError) Is(target error) bool {
	return target == ErrFieldFormat
}

// MissingFieldError reports an absent required field.
type MissingFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("accesslog: required field %q is missing", e.Field)
}

// Is allows MissingFieldError to match ErrMissingField with errors.Is.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// InvalidEnumError reports an enum field with an unrecognized token.
type InvalidEnumError struct {
	Field string // Field name as it appears in the log record
	Value string // The unrecognized token
}

// Error implements the error interface.
func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("accesslog: field %q holds unrecognized value %q", e.Field, e.Value)
}

// Is allows InvalidEnumError to match ErrInvalidEnum with errors.Is.
func (e *InvalidEnumError) Is(target error) bool {
	return target == ErrInvalidEnum
}

// IllegalCombinationError reports a message-type/operation-type pairing
// outside the legal set.
type IllegalCombinationError struct {
	MessageType   MessageType
	OperationType OperationType
}

// Error implements the error interface.
func (e *IllegalCombinationError) Error() string {
	return fmt.Sprintf("accesslog: operation type %s is not valid for message type %s",
		e.OperationType, e.MessageType)
}

// Is allows IllegalCombinationError to match ErrIllegalCombination with
// errors.Is.
func (e *IllegalCombinationError) Is(target error) bool {
	return target == ErrIllegalCombination
}

// RecordError wraps a record-scoped decoding failure with the position of
// the record in the stream. Line is 1-based and counts physical lines for
// malformed input and decoded records otherwise.
type RecordError struct {
	Line int
	Err  error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	return fmt.Sprintf("accesslog: record at line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// SourceError reports a failure to open or read the underlying byte source.
type SourceError struct {
	Path string // Path of the source, if known
	Err  error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("accesslog: source %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("accesslog: source: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is allows SourceError to match ErrSourceUnavailable with errors.Is.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}
