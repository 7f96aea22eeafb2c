// ABOUTME: Tests for shared CLI utilities
// ABOUTME: Verifies input resolution order and empty-input handling

package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transcript.txt")
	if err := os.WriteFile(path, []byte("  from file \n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tests := []struct {
		name  string
		file  string
		args  []string
		stdin string
		want  string
	}{
		{"file wins", path, []string{"arg"}, "stdin", "from file"},
		{"single arg", "", []string{"hello"}, "stdin", "hello"},
		{"args joined", "", []string{"I", "feel", "ok"}, "", "I feel ok"},
		{"stdin fallback", "", nil, "piped text\n", "piped text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readInput(tt.file, tt.args, strings.NewReader(tt.stdin))
			if err != nil {
				t.Fatalf("readInput() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("readInput() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadInput_Errors(t *testing.T) {
	if _, err := readInput("", nil, strings.NewReader("   \n\t")); err == nil {
		t.Error("expected error for empty input")
	}

	_, err := readInput(filepath.Join(t.TempDir(), "missing.txt"), nil, strings.NewReader(""))
	if err == nil || !strings.Contains(err.Error(), "reading file") {
		t.Errorf("expected reading file error, got %v", err)
	}
}
