package accesslog

import (
	"errors"
	"testing"
	"time"
)

// mustRecord parses a JSON log line into a Record, failing the test on error.
func mustRecord(t *testing.T, line string) *Record {
	t.Helper()
	rec, err := parseRecord([]byte(line))
	if err != nil {
		t.Fatalf("parseRecord failed: %v", err)
	}
	return rec
}

func TestRecordStringAbsent(t *testing.T) {
	rec := mustRecord(t, `{"present":"value","null-field":null}`)

	tests := []struct {
		name  string
		field string
		want  *string
	}{
		{"absent field", "missing", nil},
		{"null field", "null-field", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rec.String(tt.field)
			if err != nil {
				t.Fatalf("String(%q) returned error: %v", tt.field, err)
			}
			if got != nil {
				t.Errorf("String(%q) = %q, want nil", tt.field, *got)
			}
		})
	}

	got, err := rec.String("present")
	if err != nil {
		t.Fatalf("String(present) returned error: %v", err)
	}
	if got == nil || *got != "value" {
		t.Errorf("String(present) = %v, want \"value\"", got)
	}
}

func TestRecordWrongKind(t *testing.T) {
	rec := mustRecord(t, `{"str":"text","num":42,"bool":true,"arr":["a"],"obj":{"k":"v"},"mixed":["a",1]}`)

	tests := []struct {
		name string
		call func() error
	}{
		{"string from number", func() error { _, err := rec.String("num"); return err }},
		{"int from string", func() error { _, err := rec.Int("str"); return err }},
		{"int from bool", func() error { _, err := rec.Int("bool"); return err }},
		{"float from string", func() error { _, err := rec.Float("str"); return err }},
		{"bool from number", func() error { _, err := rec.Bool("num"); return err }},
		{"list from string", func() error { _, err := rec.StringList("str"); return err }},
		{"list with non-string element", func() error { _, err := rec.StringList("mixed"); return err }},
		{"set from object", func() error { _, err := rec.StringSet("obj"); return err }},
		{"object from array", func() error { _, err := rec.Object("arr"); return err }},
		{"object list from object", func() error { _, err := rec.ObjectList("obj"); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrFieldFormat) {
				t.Errorf("error %v does not match ErrFieldFormat", err)
			}
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Errorf("error %v is not a *FieldError", err)
			}
		})
	}
}

func TestRecordScalars(t *testing.T) {
	rec := mustRecord(t, `{"int":9223372036854775807,"float":12.5,"bool":false}`)

	i, err := rec.Int("int")
	if err != nil {
		t.Fatalf("Int returned error: %v", err)
	}
	if i == nil || *i != 9223372036854775807 {
		t.Errorf("Int = %v, want max int64", i)
	}

	f, err := rec.Float("float")
	if err != nil {
		t.Fatalf("Float returned error: %v", err)
	}
	if f == nil || *f != 12.5 {
		t.Errorf("Float = %v, want 12.5", f)
	}

	b, err := rec.Bool("bool")
	if err != nil {
		t.Fatalf("Bool returned error: %v", err)
	}
	if b == nil || *b != false {
		t.Errorf("Bool = %v, want false", b)
	}

	// Fractional value is not an integer
	if _, err := rec.Int("float"); !errors.Is(err, ErrFieldFormat) {
		t.Errorf("Int on fractional value: got %v, want ErrFieldFormat", err)
	}
}

func TestRecordDate(t *testing.T) {
	rec := mustRecord(t, `{"good":"2026-08-24T12:30:45.123Z","bad":"24/Aug/2026","num":42,"absent-check":null}`)

	ts, err := rec.Date("good")
	if err != nil {
		t.Fatalf("Date(good) returned error: %v", err)
	}
	want := time.Date(2026, time.August, 24, 12, 30, 45, 123000000, time.UTC)
	if ts == nil || !ts.Equal(want) {
		t.Errorf("Date(good) = %v, want %v", ts, want)
	}

	if _, err := rec.Date("bad"); !errors.Is(err, ErrFieldFormat) {
		t.Errorf("Date(bad): got %v, want ErrFieldFormat", err)
	}

	// A non-string value keeps the wrong-kind cause in the chain.
	_, err = rec.Date("num")
	if !errors.Is(err, ErrFieldFormat) {
		t.Fatalf("Date(num): got %v, want ErrFieldFormat", err)
	}
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("Date(num): error %v is not a *FieldError", err)
	}
	if fieldErr.Err == nil {
		t.Error("Date(num): wrong-kind cause was dropped from the error chain")
	}

	ts, err = rec.Date("missing")
	if err != nil || ts != nil {
		t.Errorf("Date(missing) = (%v, %v), want (nil, nil)", ts, err)
	}
}

func TestRecordRequiredString(t *testing.T) {
	rec := mustRecord(t, `{"present":"x"}`)

	if _, err := rec.RequiredString("absent"); !errors.Is(err, ErrMissingField) {
		t.Errorf("RequiredString(absent): got %v, want ErrMissingField", err)
	}

	s, err := rec.RequiredString("present")
	if err != nil || s != "x" {
		t.Errorf("RequiredString(present) = (%q, %v), want (\"x\", nil)", s, err)
	}
}

func TestRecordStringListOrderAndSet(t *testing.T) {
	rec := mustRecord(t, `{"list":["c","a","b","a"]}`)

	list, err := rec.StringList("list")
	if err != nil {
		t.Fatalf("StringList returned error: %v", err)
	}
	want := []string{"c", "a", "b", "a"}
	if len(list) != len(want) {
		t.Fatalf("StringList length = %d, want %d", len(list), len(want))
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("StringList[%d] = %q, want %q", i, list[i], want[i])
		}
	}

	set, err := rec.StringSet("list")
	if err != nil {
		t.Fatalf("StringSet returned error: %v", err)
	}
	if len(set) != 3 {
		t.Errorf("StringSet size = %d, want 3", len(set))
	}
	for _, member := range []string{"a", "b", "c"} {
		if _, ok := set[member]; !ok {
			t.Errorf("StringSet missing member %q", member)
		}
	}
}

func TestRecordObjects(t *testing.T) {
	rec := mustRecord(t, `{"obj":{"inner":"v"},"objs":[{"n":"first"},{"n":"second"}]}`)

	obj, err := rec.Object("obj")
	if err != nil {
		t.Fatalf("Object returned error: %v", err)
	}
	inner, err := obj.String("inner")
	if err != nil || inner == nil || *inner != "v" {
		t.Errorf("nested String = (%v, %v), want \"v\"", inner, err)
	}

	objs, err := rec.ObjectList("objs")
	if err != nil {
		t.Fatalf("ObjectList returned error: %v", err)
	}
	if len(objs) != 2 {
		t.Fatalf("ObjectList length = %d, want 2", len(objs))
	}
	n, _ := objs[1].String("n")
	if n == nil || *n != "second" {
		t.Errorf("ObjectList[1].n = %v, want \"second\"", n)
	}

	missing, err := rec.Object("missing")
	if err != nil || missing != nil {
		t.Errorf("Object(missing) = (%v, %v), want (nil, nil)", missing, err)
	}
}

func TestParseRecordMalformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"not json", "not json at all"},
		{"truncated object", `{"timestamp":`},
		{"scalar line", `42`},
		{"trailing data", `{"a":1} {"b":2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRecord([]byte(tt.line))
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("parseRecord(%q): got %v, want ErrMalformedRecord", tt.line, err)
			}
		})
	}
}
