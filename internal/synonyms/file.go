package synonyms

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File is an in-memory synonym file: one group of interchangeable words per
// line, fields separated by the delimiter implied by the file extension.
type File struct {
	Path      string
	Delimiter string
	Groups    [][]string
}

// DelimiterFor maps a file extension to its field delimiter. Only .csv and
// .tsv files are accepted.
func DelimiterFor(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ",", nil
	case ".tsv":
		return "\t", nil
	default:
		return "", &UnsupportedFormatError{Filename: filepath.Base(filename)}
	}
}

// Read loads a synonym file into memory. The extension check happens before
// any I/O, so an unsupported format never touches the file.
func Read(path string) (*File, error) {
	sep, err := DelimiterFor(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read synonym file: %w", err)
	}

	f := &File{Path: path, Delimiter: sep}
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		f.Groups = append(f.Groups, strings.Split(line, sep))
	}
	return f, nil
}

// Write serializes the groups to path, one delimiter-joined line per group,
// in a single whole-file write.
func (f *File) Write(path string) error {
	var b strings.Builder
	for _, group := range f.Groups {
		if len(group) == 0 {
			continue
		}
		b.WriteString(strings.Join(group, f.Delimiter))
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write synonym file: %w", err)
	}
	return nil
}

// Save writes the groups back to the file they were read from.
func (f *File) Save() error {
	return f.Write(f.Path)
}

// Group consolidates the synonym file at path in place: read, consolidate,
// write back.
func Group(path string) error {
	f, err := Read(path)
	if err != nil {
		return err
	}
	if err := f.Consolidate(); err != nil {
		return err
	}
	return f.Save()
}
