// Package artifact persists converter output as JSON documents on disk.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/couchcryptid/geoloc-model-export/internal/domain"
)

// wordsDir is the subdirectory holding per-word artifacts.
const wordsDir = "words"

// Writer persists word records and the model summary under an output
// directory. Writes are append-only in character: there is no rollback, and
// a partially written artifact after a mid-stream failure is acceptable.
type Writer struct {
	outputDir string
}

// NewWriter creates the output layout (the words/ subdirectory, idempotently)
// and returns a Writer rooted at outputDir.
func NewWriter(outputDir string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Join(outputDir, wordsDir), 0o755); err != nil {
		return nil, fmt.Errorf("create output layout: %w", err)
	}
	return &Writer{outputDir: outputDir}, nil
}

// WriteWord persists one word record at words/<word>.json. Callers are
// expected to have filtered unsaveable words via domain.WordIsSaveable; the
// word string is used verbatim as the file name.
func (w *Writer) WriteWord(rec *domain.WordRecord) error {
	path := filepath.Join(w.outputDir, wordsDir, rec.Word+".json")
	if err := writeJSON(path, rec); err != nil {
		return fmt.Errorf("write word %q: %w", rec.Word, err)
	}
	return nil
}

// WriteModel persists the model summary at model.json.
func (w *Writer) WriteModel(doc *domain.ModelDocument) error {
	path := filepath.Join(w.outputDir, "model.json")
	if err := writeJSON(path, doc); err != nil {
		return fmt.Errorf("write model document: %w", err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	// Artifacts are consumed by web frontends reading raw UTF-8; keep the
	// output unescaped.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
