package site

import (
	"context"
	"os"
	"path/filepath"
	"sort"
)

// stageWrite flushes the in-memory output set to the output directory,
// in sorted path order. With output.clean the directory is recreated
// first, so stale files from removed entries cannot linger.
func stageWrite(_ context.Context, bs *BuildState) error {
	outDir := bs.Config.OutputDir()

	if bs.Config.Output.Clean {
		if err := os.RemoveAll(outDir); err != nil {
			return newFatalStageError(stageWriteName, err)
		}
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return newFatalStageError(stageWriteName, err)
	}

	paths := make([]string, 0, len(bs.Files))
	for p := range bs.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		dest := filepath.Join(outDir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return newFatalStageError(stageWriteName, err)
		}
		if err := os.WriteFile(dest, bs.Files[p], 0o644); err != nil {
			return newFatalStageError(stageWriteName, err)
		}
	}
	return nil
}
