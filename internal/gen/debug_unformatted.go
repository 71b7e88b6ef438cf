package gen

import (
	"os"
	"path/filepath"
)

// writeDebugUnformatted keeps the unformatted source in outDir and returns its
// path. The sidecar does not end in .go so it never joins the package build.
func writeDebugUnformatted(outDir, filename string, content []byte) (string, error) {
	if outDir == "" || filename == "" {
		return "", nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}

	p := filepath.Join(outDir, filename+".unformatted")

	return p, os.WriteFile(p, content, 0o644)
}
