// Package fileutil provides atomic file replacement with tmp+mv semantics.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteTmpThenMove writes a file next to outPath then atomically renames it
// over outPath. writeFunc receives the open temporary file and must write the
// complete content. On any failure the temporary file is removed and an
// existing outPath is left untouched.
func WriteTmpThenMove(outPath string, writeFunc func(w io.Writer) error) (err error) {
	outDir := filepath.Dir(outPath)
	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(outDir, "."+filepath.Base(outPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := writeFunc(tmp); err != nil {
		return err
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, filePerm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename temp to final: %w", err)
	}

	return nil
}

// WriteFile atomically replaces path with data.
func WriteFile(path string, data []byte) error {
	return WriteTmpThenMove(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
