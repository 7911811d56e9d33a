package site

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// stageAssets copies the static tree into the in-memory output set,
// preserving structure. A missing static directory is a warning, not an
// error — many sites have none.
func stageAssets(_ context.Context, bs *BuildState) error {
	staticDir := bs.Config.StaticDir()
	if st, err := os.Stat(staticDir); err != nil || !st.IsDir() {
		return newWarnStageError(stageAssetsName, fmt.Errorf("static directory not found: %s", staticDir))
	}

	err := filepath.WalkDir(staticDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != staticDir {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(staticDir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := bs.AddFile(filepath.ToSlash(rel), data); err != nil {
			return err
		}
		bs.Report.Assets++
		return nil
	})
	if err != nil {
		return newFatalStageError(stageAssetsName, err)
	}
	return nil
}
