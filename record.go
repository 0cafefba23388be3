package accesslog

import (
	"encoding/json"
	"time"
)

// TimestampFormat is the text encoding used for every timestamp field in
// the access log: RFC 3339 with optional fractional seconds.
const TimestampFormat = time.RFC3339Nano

// Record is one raw access log record: a field-name to value mapping
// produced from a single log line. Values hold the JSON kinds produced by
// encoding/json with UseNumber: string, json.Number, bool, []interface{},
// map[string]interface{}, or nil.
//
// The typed accessors implement a two-tier policy: an absent (or JSON
// null) field yields the type's empty value, never an error, so the log
// format can evolve by field addition without breaking readers; a field
// that is present with the wrong kind fails with a FieldError naming the
// field and the expected kind.
type Record struct {
	fields map[string]interface{}
}

// NewRecord creates a Record over the given field map. The record takes
// ownership of the map; callers must not modify it afterwards.
func NewRecord(fields map[string]interface{}) *Record {
	if fields == nil {
		fields = map[string]interface{}{}
	}
	return &Record{fields: fields}
}

// Has reports whether the named field is present with a non-null value.
func (r *Record) Has(name string) bool {
	v, ok := r.fields[name]
	return ok && v != nil
}

// String returns the named string field, or nil if it is absent.
func (r *Record) String(name string) (*string, error) {
	v, ok := r.fields[name]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, &FieldError{Field: name, Expected: "string"}
	}
	return &s, nil
}

// RequiredString returns the named string field, failing with a
// MissingFieldError if it is absent.
func (r *Record) RequiredString(name string) (string, error) {
	s, err := r.String(name)
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", &MissingFieldError{Field: name}
	}
	return *s, nil
}

// Int returns the named integer field, or nil if it is absent.
func (r *Record) Int(name string) (*int64, error) {
	v, ok := r.fields[name]
	if !ok || v == nil {
		return nil, nil
	}
	n, ok := v.(json.Number)
	if !ok {
		return nil, &FieldError{Field: name, Expected: "integer"}
	}
	i, err := n.Int64()
	if err != nil {
		return nil, &FieldError{Field: name, Expected: "integer", Err: err}
	}
	return &i, nil
}

// Float returns the named floating-point field, or nil if it is absent.
func (r *Record) Float(name string) (*float64, error) {
	v, ok := r.fields[name]
	if !ok || v == nil {
		return nil, nil
	}
	n, ok := v.(json.Number)
	if !ok {
		return nil, &FieldError{Field: name, Expected: "number"}
	}
	f, err := n.Float64()
	if err != nil {
		return nil, &FieldError{Field: name, Expected: "number", Err: err}
	}
	return &f, nil
}

// Bool returns the named boolean field, or nil if it is absent.
func (r *Record) Bool(name string) (*bool, error) {
	v, ok := r.fields[name]
	if !ok || v == nil {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, &FieldError{Field: name, Expected: "boolean"}
	}
	return &b, nil
}

// Date returns the named timestamp field, or nil if it is absent. A
// present value that does not parse with TimestampFormat fails with a
// FieldError.
func (r *Record) Date(name string) (*time.Time, error) {
	s, err := r.String(name)
	if err != nil {
		return nil, &FieldError{Field: name, Expected: "timestamp", Err: err}
	}
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(TimestampFormat, *s)
	if err != nil {
		return nil, &FieldError{Field: name, Expected: "timestamp", Err: err}
	}
	return &t, nil
}

// StringList returns the named field as an ordered list of strings, or
// nil if it is absent.
func (r *Record) StringList(name string) ([]string, error) {
	v, ok := r.fields[name]
	if !ok || v == nil {
		return nil, nil
	}
	arr, ok := v.([]interface{})
	if !ok {
		return nil, &FieldError{Field: name, Expected: "array of strings"}
	}
	list := make([]string, 0, len(arr))
	for _, elem := range arr {
		s, ok := elem.(string)
		if !ok {
			return nil, &FieldError{Field: name, Expected: "array of strings"}
		}
		list = append(list, s)
	}
	return list, nil
}

// StringSet returns the named field as an unordered set of strings, or
// nil if it is absent. Duplicate values collapse to a single member.
func (r *Record) StringSet(name string) (map[string]struct{}, error) {
	list, err := r.StringList(name)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, nil
	}
	set := make(map[string]struct{}, len(list))
	for _, s := range list {
		set[s] = struct{}{}
	}
	return set, nil
}

// Object returns the named field as a nested Record, or nil if it is
// absent.
func (r *Record) Object(name string) (*Record, error) {
	v, ok := r.fields[name]
	if !ok || v == nil {
		return nil, nil
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, &FieldError{Field: name, Expected: "object"}
	}
	return &Record{fields: obj}, nil
}

// ObjectList returns the named field as an ordered list of nested
// Records, or nil if it is absent.
func (r *Record) ObjectList(name string) ([]*Record, error) {
	v, ok := r.fields[name]
	if !ok || v == nil {
		return nil, nil
	}
	arr, ok := v.([]interface{})
	if !ok {
		return nil, &FieldError{Field: name, Expected: "array of objects"}
	}
	list := make([]*Record, 0, len(arr))
	for _, elem := range arr {
		obj, ok := elem.(map[string]interface{})
		if !ok {
			return nil, &FieldError{Field: name, Expected: "array of objects"}
		}
		list = append(list, &Record{fields: obj})
	}
	return list, nil
}
