package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DirSink writes files into a directory, creating it on first use.
type DirSink struct {
	Dir string

	mu      sync.Mutex
	written []string
}

// NewDirSink creates a sink for dir.
func NewDirSink(dir string) *DirSink {
	return &DirSink{Dir: dir}
}

// Save implements Sink. suggestedName is reduced to its base name so it cannot escape Dir.
func (s *DirSink) Save(data []byte, suggestedName string) error {
	name := filepath.Base(suggestedName)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return fmt.Errorf("invalid file name %q", suggestedName)
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", s.Dir, err)
	}
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	s.mu.Lock()
	s.written = append(s.written, path)
	s.mu.Unlock()
	return nil
}

// Written returns the paths written so far.
func (s *DirSink) Written() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.written...)
}
