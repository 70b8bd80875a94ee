package synonyms

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDelimiterFor(t *testing.T) {
	tests := []struct {
		filename string
		want     string
		wantErr  bool
	}{
		{"synonyms_EN-GB.csv", ",", false},
		{"synonyms_EN-GB.tsv", "\t", false},
		{"SYNONYMS.CSV", ",", false},
		{"synonyms.txt", "", true},
		{"synonyms", "", true},
		{"synonyms.db", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := DelimiterFor(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DelimiterFor(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("DelimiterFor(%q) = %q, want %q", tt.filename, got, tt.want)
			}
			if tt.wantErr {
				var formatErr *UnsupportedFormatError
				if !errors.As(err, &formatErr) {
					t.Errorf("expected UnsupportedFormatError, got %T", err)
				}
			}
		})
	}
}

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "synonyms.csv")
	content := "cat,feline\n\ndog,canine\r\nfeline,animal\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	f, err := Read(path)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}

	want := [][]string{
		{"cat", "feline"},
		{"dog", "canine"},
		{"feline", "animal"},
	}
	if !reflect.DeepEqual(f.Groups, want) {
		t.Errorf("Read() groups = %v, want %v", f.Groups, want)
	}
	if f.Delimiter != "," {
		t.Errorf("Read() delimiter = %q, want %q", f.Delimiter, ",")
	}
}

func TestRead_UnsupportedExtension(t *testing.T) {
	// The format check runs before any I/O, so the path does not need to
	// exist.
	_, err := Read(filepath.Join(t.TempDir(), "synonyms.json"))

	var formatErr *UnsupportedFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
	if formatErr.Filename != "synonyms.json" {
		t.Errorf("Filename = %q, want %q", formatErr.Filename, "synonyms.json")
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWrite(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.tsv")
	f := &File{
		Path:      path,
		Delimiter: "\t",
		Groups:    [][]string{{"big", "large"}, nil, {"small", "tiny"}},
	}

	if err := f.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	want := "big\tlarge\nsmall\ttiny\n"
	if string(content) != want {
		t.Errorf("written content = %q, want %q", string(content), want)
	}
}

func TestGroup_EndToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "synonyms.csv")
	content := "cat,feline\ndog,canine\nfeline,animal\nlonely\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if err := Group(path); err != nil {
		t.Fatalf("Group() failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read grouped file: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(got), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "cat,feline,animal" {
		t.Errorf("line 0 = %q, want %q", lines[0], "cat,feline,animal")
	}
	if lines[1] != "dog,canine" {
		t.Errorf("line 1 = %q, want %q", lines[1], "dog,canine")
	}
}

func TestGroup_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "synonyms.tsv")
	content := "big\tlarge\nbig\tlarge\nhuge\tbig\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if err := Group(path); err != nil {
		t.Fatalf("first Group() failed: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}

	if err := Group(path); err != nil {
		t.Fatalf("second Group() failed: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}

	if string(first) != string(second) {
		t.Errorf("second run changed the file: %q vs %q", first, second)
	}
}

func TestGroup_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "synonyms.csv")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if err := Group(path); err != nil {
		t.Fatalf("Group() failed on empty file: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if len(content) != 0 {
		t.Errorf("expected empty output, got %q", content)
	}
}
