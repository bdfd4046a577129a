package testsupport

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"pgnsplit/internal/config"
)

// SampleTags and SampleMoves are a minimal tag section and movetext pair.
const (
	SampleTags  = "[Event \"Casual\"]\n[White \"A\"]\n[Black \"B\"]\n[Result \"1-0\"]"
	SampleMoves = "1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7# 1-0"
)

// WriteInput writes content to the dataset's input file and returns its path.
func WriteInput(t testing.TB, cfg *config.Config, content string) string {
	t.Helper()

	path := cfg.InputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// Collection builds n games separated by blank lines, each a tag section and
// movetext block.
func Collection(n int) string {
	games := make([]string, 0, n)
	for i := 0; i < n; i++ {
		games = append(games, SampleTags+"\n\n"+SampleMoves)
	}
	return strings.Join(games, "\n\n") + "\n"
}

// OutputFiles returns the sorted names of files in the output directory.
func OutputFiles(t testing.TB, cfg *config.Config) []string {
	t.Helper()

	entries, err := os.ReadDir(cfg.Paths.OutputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("read output dir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

// ReadOutput returns the content of one output file.
func ReadOutput(t testing.TB, cfg *config.Config, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(cfg.Paths.OutputDir, name))
	if err != nil {
		t.Fatalf("read output %s: %v", name, err)
	}
	return string(data)
}
