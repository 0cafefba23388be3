package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	accesslog "github.com/KilimcininKorOglu/oba-accesslog"
)

// openReader opens the named log file, wiring diagnostics to stderr when
// verbose is set.
func openReader(path string, verbose bool) (*accesslog.Reader, error) {
	var opts []accesslog.Option
	if verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		opts = append(opts, accesslog.WithLogger(logger))
	}
	return accesslog.Open(path, opts...)
}

// catCmd prints one summary line per decoded message. Undecodable
// records are skipped and counted.
func catCmd(args []string) int {
	fs := flag.NewFlagSet("cat", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "log skipped records to stderr")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: accesslog cat [-v] <file>")
		return 1
	}

	r, err := openReader(fs.Arg(0), *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "accesslog: %v\n", err)
		return 1
	}
	defer r.Close()

	skipped := 0
	for {
		msg, err := r.ReadMessage()
		if err == io.EOF {
			break
		}
		var recErr *accesslog.RecordError
		if errors.As(err, &recErr) {
			skipped++
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "accesslog: %v\n", err)
			return 1
		}
		fmt.Println(summarize(msg))
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "accesslog: skipped %d undecodable record(s)\n", skipped)
	}
	return 0
}

// statsCmd prints per-message-type counts for a log file.
func statsCmd(args []string) int {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "log skipped records to stderr")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: accesslog stats [-v] <file>")
		return 1
	}

	r, err := openReader(fs.Arg(0), *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "accesslog: %v\n", err)
		return 1
	}
	defer r.Close()

	counts := make(map[string]int)
	skipped := 0
	for {
		msg, err := r.ReadMessage()
		if err == io.EOF {
			break
		}
		var recErr *accesslog.RecordError
		if errors.As(err, &recErr) {
			skipped++
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "accesslog: %v\n", err)
			return 1
		}
		key := msg.MessageType().String()
		if op, ok := msg.(accesslog.OperationMessage); ok {
			key = key + " " + op.OperationType().String()
		}
		counts[key]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%8d  %s\n", counts[k], k)
	}
	if skipped > 0 {
		fmt.Printf("%8d  (undecodable)\n", skipped)
	}
	return 0
}

// summarize renders a one-line human-readable form of a message.
func summarize(msg accesslog.Message) string {
	h := msg.Header()
	var b strings.Builder
	b.WriteString(h.Timestamp.Format(accesslog.TimestampFormat))
	b.WriteByte(' ')
	b.WriteString(msg.MessageType().String())
	if op, ok := msg.(accesslog.OperationMessage); ok {
		b.WriteByte(' ')
		b.WriteString(op.OperationType().String())
	}
	if h.ConnectionID != nil {
		fmt.Fprintf(&b, " conn=%d", *h.ConnectionID)
	}
	if op, ok := msg.(accesslog.OperationMessage); ok {
		oh := op.Operation()
		if oh.OperationID != nil {
			fmt.Fprintf(&b, " op=%d", *oh.OperationID)
		}
	}
	return b.String()
}
