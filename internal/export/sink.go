package export

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/fitts/internal/round"
)

// Sink delivers a finished payload to the user.
type Sink interface {
	// Save stores payload under the suggested name and returns where it went.
	Save(name string, payload []byte) (string, error)
}

// FileSink writes into a fixed directory.
type FileSink struct {
	Dir string
}

func (s FileSink) Save(name string, payload []byte) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// DirMemory remembers where the user last saved results.
type DirMemory interface {
	LastExportDir() string
	RememberExportDir(dir string) error
}

// SelectFunc asks the user for a destination path.
type SelectFunc func(suggested string) (string, error)

// DialogSink asks for a destination with a native save dialog and falls back
// to Fallback when the dialog is cancelled or unavailable.
type DialogSink struct {
	Fallback Sink
	Memory   DirMemory
	// Select defaults to a zenity save dialog.
	Select SelectFunc
}

func (s DialogSink) Save(name string, payload []byte) (string, error) {
	dir := ""
	if s.Memory != nil {
		dir = s.Memory.LastExportDir()
	}
	selectFn := s.Select
	if selectFn == nil {
		selectFn = zenitySelect
	}

	path, err := selectFn(filepath.Join(dir, name))
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			log.Printf("[Export] Save dialog cancelled, using fallback")
		} else {
			log.Printf("[Export] Save dialog failed: %v, using fallback", err)
		}
		return s.fallback(name, payload)
	}

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if s.Memory != nil {
		if err := s.Memory.RememberExportDir(filepath.Dir(path)); err != nil {
			log.Printf("[Export] Warning: failed to remember export dir: %v", err)
		}
	}
	return path, nil
}

func (s DialogSink) fallback(name string, payload []byte) (string, error) {
	if s.Fallback == nil {
		return "", errors.New("no fallback sink configured")
	}
	return s.Fallback.Save(name, payload)
}

func zenitySelect(suggested string) (string, error) {
	return zenity.SelectFileSave(
		zenity.Title("Save Results"),
		zenity.Filename(suggested),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "CSV",
			Patterns: []string{"*.csv"},
		}},
	)
}

// Export formats records and saves them through sink. It is called once per session.
func Export(sink Sink, name string, records []round.Record) (string, error) {
	path, err := sink.Save(name, CSV(records))
	if err != nil {
		return "", fmt.Errorf("export results: %w", err)
	}
	log.Printf("[Export] Saved %d rounds to %s", len(records), path)
	return path, nil
}
