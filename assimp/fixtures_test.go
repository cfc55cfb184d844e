package assimp

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// fixturePath resolves a file under testdata.
func fixturePath(t testing.TB, name string) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("failed to resolve fixture %s: %v", name, err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("fixture %s unavailable: %v", path, err)
	}
	return path
}

// copyFixture copies a testdata file into dir under a new name.
func copyFixture(t *testing.T, dir string, name string, target string) string {
	t.Helper()
	// #nosec G304 -- test fixture reads from controlled test data directory
	data, err := os.ReadFile(fixturePath(t, name))
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", name, err)
	}
	path := filepath.Join(dir, target)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write fixture copy: %v", err)
	}
	return path
}

// missingPath returns a path under a fresh temp dir that does not exist.
func missingPath(t *testing.T, label string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), fmt.Sprintf("missing-%s.obj", label))
}
