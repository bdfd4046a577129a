package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"pgnsplit/internal/splitter"
)

func TestPrintErrorSkipsLoggedFailures(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, &reportedError{err: &splitter.ReadError{Path: "x.pgn", Err: errors.New("boom")}})
	if buf.Len() != 0 {
		t.Fatalf("expected no output for logged error, got %q", buf.String())
	}

	printError(&buf, fmt.Errorf("load config: %w", errors.New("bad key")))
	requireContains(t, buf.String(), "load config: bad key")
}

func TestMissingInputReportedOnce(t *testing.T) {
	env := setupCLITestEnv(t)

	_, stderr, err := runCLI(t, []string{"split"}, env.configPath)
	if err == nil {
		t.Fatal("expected read error")
	}
	var readErr *splitter.ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected ReadError in chain, got %v", err)
	}

	var printed bytes.Buffer
	printError(&printed, err)
	if printed.Len() != 0 {
		t.Fatalf("read failure printed again: %q", printed.String())
	}
	if n := strings.Count(stderr, "input read failed"); n != 1 {
		t.Fatalf("expected one logged read failure, got %d in %q", n, stderr)
	}
}
