package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileSink persists the report to a file and displays the persisted copy
type FileSink struct {
	Path string
}

// NewFileSink creates a sink writing to path
func NewFileSink(path string) *FileSink {
	return &FileSink{Path: path}
}

// Publish persists the report and then displays what was written
func (s *FileSink) Publish(report string, w io.Writer) error {
	if err := s.Persist(report); err != nil {
		return err
	}
	return s.Display(w)
}

// Persist replaces the report file. The content goes to a temporary file in
// the same directory which is closed and renamed over the target, so readers
// never see a partial report.
func (s *FileSink) Persist(report string) error {
	dir := filepath.Dir(s.Path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create report file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := io.WriteString(tmp, report); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close report: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set report permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", s.Path, err)
	}

	return nil
}

// Display reopens the persisted report and copies it verbatim to w
func (s *FileSink) Display(w io.Writer) error {
	file, err := os.Open(s.Path)
	if err != nil {
		return fmt.Errorf("failed to open report %s: %w", s.Path, err)
	}
	defer file.Close()

	if _, err := io.Copy(w, file); err != nil {
		return fmt.Errorf("failed to display report: %w", err)
	}

	return nil
}
