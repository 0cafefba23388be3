package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "access.log")
	data := `{"timestamp":"2026-08-24T12:30:45Z","message-type":"CONNECT","connection-id":1}
{"timestamp":"2026-08-24T12:30:46Z","message-type":"REQUEST","operation-type":"SEARCH","connection-id":1,"operation-id":0}
not a json line
{"timestamp":"2026-08-24T12:30:47Z","message-type":"DISCONNECT","connection-id":1}
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing test log: %v", err)
	}
	return path
}

func TestRunNoArgs(t *testing.T) {
	if code := run([]string{"accesslog"}); code != 1 {
		t.Errorf("run with no args = %d, want 1", code)
	}
}

func TestRunHelp(t *testing.T) {
	if code := run([]string{"accesslog", "help"}); code != 0 {
		t.Errorf("run help = %d, want 0", code)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	if code := run([]string{"accesslog", "bogus"}); code != 1 {
		t.Errorf("run bogus = %d, want 1", code)
	}
}

func TestCatCommand(t *testing.T) {
	path := writeTestLog(t)
	if code := run([]string{"accesslog", "cat", path}); code != 0 {
		t.Errorf("run cat = %d, want 0", code)
	}
}

func TestStatsCommand(t *testing.T) {
	path := writeTestLog(t)
	if code := run([]string{"accesslog", "stats", path}); code != 0 {
		t.Errorf("run stats = %d, want 0", code)
	}
}

func TestCatMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such.log")
	if code := run([]string{"accesslog", "cat", missing}); code != 1 {
		t.Errorf("run cat on missing file = %d, want 1", code)
	}
}
