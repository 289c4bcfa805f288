package workbook

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScanDirectory(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "enero.xlsx"))
	touch(t, filepath.Join(root, "FEBRERO.CSV"))
	touch(t, filepath.Join(root, "~$enero.xlsx"))
	touch(t, filepath.Join(root, "notas.txt"))
	touch(t, filepath.Join(root, "norte", "marzo.xlsx"))
	touch(t, filepath.Join(root, "output", "archivo_organizado_con_tallas.xlsx"))
	touch(t, filepath.Join(root, ".git", "x.xlsx"))

	files, err := ScanDirectory(root, []string{"**/output/**"})
	if err != nil {
		t.Fatal(err)
	}

	var rel []string
	for _, f := range files {
		r, _ := filepath.Rel(root, f)
		rel = append(rel, filepath.ToSlash(r))
	}
	sort.Strings(rel)

	want := []string{"FEBRERO.CSV", "enero.xlsx", "norte/marzo.xlsx"}
	if len(rel) != len(want) {
		t.Fatalf("got %v, want %v", rel, want)
	}
	for i := range want {
		if rel[i] != want[i] {
			t.Errorf("file %d: got %s, want %s", i, rel[i], want[i])
		}
	}
}

func TestScanDirectoryMissingRoot(t *testing.T) {
	if _, err := ScanDirectory(filepath.Join(t.TempDir(), "nope"), nil); err == nil {
		t.Error("expected an error for a missing root")
	}
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		path, pattern string
		want          bool
	}{
		{"output", "**/output/**", true},
		{"a/output", "**/output/**", true},
		{"outputs", "**/output/**", false},
		{"archive", "arch*", true},
		{"a/archive", "arch*", false},
		{"x", "**", false},
	}
	for _, tt := range tests {
		if got := matchGlob(tt.path, tt.pattern); got != tt.want {
			t.Errorf("matchGlob(%q, %q) = %v, want %v", tt.path, tt.pattern, got, tt.want)
		}
	}
}
