package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Golden compares a tool's text payload against a golden file under
// testdata/. Set GOLDEN_UPDATE to rewrite the golden files.
func Golden(t *testing.T, name, got string) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")

	if os.Getenv("GOLDEN_UPDATE") != "" {
		if err := os.MkdirAll("testdata", 0755); err != nil {
			t.Fatalf("failed to create testdata dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0644); err != nil {
			t.Fatalf("failed to update golden file: %v", err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v\nGot:\n%s", path, err, got)
	}
	if got != string(want) {
		t.Errorf("payload mismatch for %s\nWant:\n%s\nGot:\n%s", name, want, got)
	}
}
