// Package output writes a rendered dataset to a single file on a filesystem.
package output

import (
	"fmt"

	"github.com/zarlcorp/core/pkg/zfilesystem"

	"github.com/zarlcorp/zfake/internal/record"
	"github.com/zarlcorp/zfake/internal/render"
)

const filePerm = 0o644

// Writer renders datasets and stores them on a filesystem.
type Writer struct {
	fs zfilesystem.ReadWriteFileFS
}

// NewWriter creates a writer rooted at fsys.
func NewWriter(fsys zfilesystem.ReadWriteFileFS) *Writer {
	return &Writer{fs: fsys}
}

// Write renders ds in format f and writes it to f.FileName(). The dataset is
// fully rendered before anything touches the filesystem, so a failed render
// leaves no file behind. It returns the written file name.
func (w *Writer) Write(f render.Format, ds record.Dataset) (string, error) {
	data, err := render.Marshal(ds, f)
	if err != nil {
		return "", fmt.Errorf("write dataset: %w", err)
	}

	name := f.FileName()
	if err := w.fs.WriteFile(name, data, filePerm); err != nil {
		return "", fmt.Errorf("write dataset: write %s: %w", name, err)
	}

	return name, nil
}
