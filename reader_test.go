package accesslog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/rs/zerolog"
)

func TestReaderStream(t *testing.T) {
	log := `{"timestamp":"2026-08-24T12:30:45.123Z","message-type":"CONNECT"}
{"timestamp":"2026-08-24T12:30:46.001Z","message-type":"CONNECT","source-address":"2.3.4.5","source-port":1234,"protocol":"LDAP"}
`
	r := NewReader(strings.NewReader(log))
	defer r.Close()

	msg, err := r.ReadMessage()
	if err != nil {
		t.Fatalf("first ReadMessage failed: %v", err)
	}
	first := msg.(*ConnectMessage)
	if first.SourceAddress != nil || first.SourcePort != nil || first.Protocol != nil {
		t.Error("first record should carry no optional connect fields")
	}

	msg, err = r.ReadMessage()
	if err != nil {
		t.Fatalf("second ReadMessage failed: %v", err)
	}
	second := msg.(*ConnectMessage)
	if second.SourceAddress == nil || *second.SourceAddress != "2.3.4.5" {
		t.Errorf("SourceAddress = %v, want 2.3.4.5", second.SourceAddress)
	}
	if second.SourcePort == nil || *second.SourcePort != 1234 {
		t.Errorf("SourcePort = %v, want 1234", second.SourcePort)
	}
	if second.Protocol == nil || *second.Protocol != "LDAP" {
		t.Errorf("Protocol = %v, want LDAP", second.Protocol)
	}

	// Exhaustion is stable across calls.
	for i := 0; i < 3; i++ {
		if _, err := r.ReadMessage(); err != io.EOF {
			t.Fatalf("ReadMessage after exhaustion: got %v, want io.EOF", err)
		}
	}
}

func TestReaderSkipsBlankLines(t *testing.T) {
	log := "\n\n" +
		`{"timestamp":"2026-08-24T12:30:45Z","message-type":"DISCONNECT","disconnect-reason":"Client Unbind"}` +
		"\n   \n"
	r := NewReader(strings.NewReader(log))
	defer r.Close()

	msg, err := r.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage failed: %v", err)
	}
	d := msg.(*DisconnectMessage)
	if d.Reason == nil || *d.Reason != "Client Unbind" {
		t.Errorf("Reason = %v, want Client Unbind", d.Reason)
	}
	if _, err := r.ReadMessage(); err != io.EOF {
		t.Errorf("ReadMessage: got %v, want io.EOF", err)
	}
}

func TestReaderResyncAfterMalformedLine(t *testing.T) {
	log := `{"timestamp":"2026-08-24T12:30:45Z","message-type":"CONNECT"}
this line is not JSON
{"timestamp":"2026-08-24T12:30:47Z","message-type":"DISCONNECT"}
`
	r := NewReader(strings.NewReader(log))
	defer r.Close()

	if _, err := r.ReadMessage(); err != nil {
		t.Fatalf("first ReadMessage failed: %v", err)
	}

	_, err := r.ReadMessage()
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("second ReadMessage: got %v, want ErrMalformedRecord", err)
	}
	var recErr *RecordError
	if !errors.As(err, &recErr) {
		t.Fatalf("error %v is not a *RecordError", err)
	}
	if recErr.Line != 2 {
		t.Errorf("RecordError.Line = %d, want 2", recErr.Line)
	}

	// The bad line does not poison the reader.
	msg, err := r.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage after malformed line failed: %v", err)
	}
	if msg.MessageType() != MessageTypeDisconnect {
		t.Errorf("MessageType = %s, want DISCONNECT", msg.MessageType())
	}
	if _, err := r.ReadMessage(); err != io.EOF {
		t.Errorf("ReadMessage: got %v, want io.EOF", err)
	}
}

func TestReaderResyncAfterDecodeError(t *testing.T) {
	log := `{"timestamp":"2026-08-24T12:30:45Z","message-type":"RESULT","operation-type":"UNBIND"}
{"timestamp":"2026-08-24T12:30:46Z","message-type":"CONNECT"}
`
	r := NewReader(strings.NewReader(log))
	defer r.Close()

	_, err := r.ReadMessage()
	if !errors.Is(err, ErrIllegalCombination) {
		t.Fatalf("first ReadMessage: got %v, want ErrIllegalCombination", err)
	}
	var recErr *RecordError
	if !errors.As(err, &recErr) {
		t.Fatalf("error %v is not a *RecordError", err)
	}
	if recErr.Line != 1 {
		t.Errorf("RecordError.Line = %d, want 1", recErr.Line)
	}

	msg, err := r.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage after decode error failed: %v", err)
	}
	if msg.MessageType() != MessageTypeConnect {
		t.Errorf("MessageType = %s, want CONNECT", msg.MessageType())
	}
}

func TestReaderSourceFailureIsSticky(t *testing.T) {
	ioErr := errors.New("disk gone")
	src := io.MultiReader(
		strings.NewReader(`{"timestamp":"2026-08-24T12:30:45Z","message-type":"CONNECT"}`+"\n"),
		iotest.ErrReader(ioErr),
	)
	r := NewReader(src)
	defer r.Close()

	if _, err := r.ReadMessage(); err != nil {
		t.Fatalf("first ReadMessage failed: %v", err)
	}

	_, err := r.ReadMessage()
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("second ReadMessage: got %v, want ErrSourceUnavailable", err)
	}
	if !errors.Is(err, ioErr) {
		t.Errorf("error %v does not wrap the underlying I/O error", err)
	}

	// Every later call reports the same terminal error.
	_, again := r.ReadMessage()
	if again != err {
		t.Errorf("ReadMessage after failure: got %v, want the original %v", again, err)
	}
}

func TestReaderClose(t *testing.T) {
	r := NewReader(strings.NewReader(`{"timestamp":"2026-08-24T12:30:45Z","message-type":"CONNECT"}` + "\n"))

	if err := r.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := r.ReadMessage(); !errors.Is(err, ErrReaderClosed) {
		t.Errorf("ReadMessage after Close: got %v, want ErrReaderClosed", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close: got %v, want nil", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "no-such.log"))
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("Open: got %v, want ErrSourceUnavailable", err)
	}
	var srcErr *SourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("error %v is not a *SourceError", err)
	}
	if srcErr.Path == "" {
		t.Error("SourceError.Path should name the file")
	}
}

func TestOpenReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "access.log")
	var lines strings.Builder
	for i := 0; i < 5; i++ {
		fmt.Fprintf(&lines, `{"timestamp":"2026-08-24T12:30:%02dZ","message-type":"CONNECT","connection-id":%d}`+"\n", 45+i, i)
	}
	if err := os.WriteFile(path, []byte(lines.String()), 0o644); err != nil {
		t.Fatalf("writing log file: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	for i := 0; i < 5; i++ {
		msg, err := r.ReadMessage()
		if err != nil {
			t.Fatalf("ReadMessage %d failed: %v", i, err)
		}
		conn := msg.(*ConnectMessage)
		if conn.ConnectionID == nil || *conn.ConnectionID != int64(i) {
			t.Errorf("ConnectionID = %v, want %d", conn.ConnectionID, i)
		}
	}
	if _, err := r.ReadMessage(); err != io.EOF {
		t.Errorf("ReadMessage: got %v, want io.EOF", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestReaderLogsSkippedRecords(t *testing.T) {
	var buf bytes.Buffer
	log := `not json
{"timestamp":"2026-08-24T12:30:45Z","message-type":"CONNECT"}
`
	r := NewReader(strings.NewReader(log), WithLogger(zerolog.New(&buf)))
	defer r.Close()

	if _, err := r.ReadMessage(); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("ReadMessage: got %v, want ErrMalformedRecord", err)
	}
	if !strings.Contains(buf.String(), "malformed") {
		t.Errorf("logger output %q does not mention the malformed record", buf.String())
	}

	if _, err := r.ReadMessage(); err != nil {
		t.Fatalf("ReadMessage after logged skip failed: %v", err)
	}
}
