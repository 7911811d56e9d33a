package site

import (
	"context"
	"fmt"
	"log/slog"
)

// stageRender renders every published entry to its output path. Unknown
// shortcodes surface as a single warning after the loop; render failures
// are fatal.
func stageRender(ctx context.Context, bs *BuildState) error {
	var shortcodeWarnings int

	for _, e := range bs.Set.Published() {
		select {
		case <-ctx.Done():
			return newCanceledStageError(stageRenderName, ctx.Err())
		default:
		}

		out, warnings, err := bs.Renderer.Entry(e)
		if err != nil {
			return newFatalStageError(stageRenderName, err)
		}
		for _, w := range warnings {
			slog.Warn("Shortcode warning", "source", e.SourcePath, "warning", w)
			shortcodeWarnings++
		}

		if err := bs.AddFile(e.OutputPath(), out); err != nil {
			return newFatalStageError(stageRenderName, err)
		}
		bs.Report.Pages++
	}

	if shortcodeWarnings > 0 {
		return newWarnStageError(stageRenderName, fmt.Errorf("%d shortcode warning(s)", shortcodeWarnings))
	}
	return nil
}
