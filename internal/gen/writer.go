package gen

import (
	"fmt"

	"perft-bench/internal/diagnostic"
	"perft-bench/internal/fileutil"
)

// WriteFile writes the generated file to outputPath. The previous artifact is
// replaced atomically; on failure it is left untouched and no partial file
// remains.
func WriteFile(file *GeneratedFile, outputPath string) error {
	if err := fileutil.WriteFile(outputPath, file.Content); err != nil {
		return diagnostic.New(diagnostic.EmitError, diagnostic.StageEmit, outputPath, "",
			fmt.Errorf("writing file %s: %w", file.Filename, err))
	}

	return nil
}
