package preflight_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pgnsplit/internal/preflight"
	"pgnsplit/internal/testsupport"
)

func TestRunAllPasses(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithCatalog())
	testsupport.WriteInput(t, cfg, testsupport.Collection(1))

	results := preflight.RunAll(cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(results))
	}
	if failed := preflight.Failed(results); len(failed) != 0 {
		t.Fatalf("unexpected failures: %+v", failed)
	}
}

func TestRunAllReportsMissingPaths(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithoutOutputDir())

	results := preflight.RunAll(cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(results))
	}
	failed := preflight.Failed(results)
	if len(failed) != 2 {
		t.Fatalf("expected input and output checks to fail, got %+v", results)
	}
	for _, r := range failed {
		if !strings.Contains(r.Detail, "does not exist") {
			t.Fatalf("unexpected detail for %s: %q", r.Name, r.Detail)
		}
	}
}

func TestCheckReadableFileRejectsDirectory(t *testing.T) {
	r := preflight.CheckReadableFile("Input", t.TempDir())
	if r.Passed || !strings.Contains(r.Detail, "is a directory") {
		t.Fatalf("unexpected result: %+v", r)
	}
}

func TestCheckDirectoryAccessRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := preflight.CheckDirectoryAccess("Output", path)
	if r.Passed || !strings.Contains(r.Detail, "is not a directory") {
		t.Fatalf("unexpected result: %+v", r)
	}
}

func TestCheckCreatableDirectory(t *testing.T) {
	base := t.TempDir()
	r := preflight.CheckCreatableDirectory("State", filepath.Join(base, "a", "b"))
	if !r.Passed || !strings.Contains(r.Detail, "will be created") {
		t.Fatalf("unexpected result: %+v", r)
	}
	r = preflight.CheckCreatableDirectory("State", base)
	if !r.Passed || !strings.Contains(r.Detail, "write ok") {
		t.Fatalf("unexpected result for existing dir: %+v", r)
	}
}

func TestRunAllChecksStateDirWithoutCatalog(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteInput(t, cfg, testsupport.Collection(1))
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	cfg.Paths.StateDir = filepath.Join(blocker, "state")

	failed := preflight.Failed(preflight.RunAll(cfg))
	if len(failed) != 1 || failed[0].Name != "State directory" {
		t.Fatalf("expected only the state directory check to fail, got %+v", failed)
	}
}
