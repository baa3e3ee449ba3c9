// Package report renders run results: the plain-text parameter block,
// trajectory and angle plots, and an interactive HTML chart page.
package report

import (
	"fmt"

	"github.com/banshee-data/motion.report/internal/estimator"
	"github.com/banshee-data/motion.report/internal/fsutil"
)

// WriteSummary writes the run parameter block to path. The line format
// is stable; downstream tooling parses it.
func WriteSummary(fs fsutil.FileSystem, path string, s *estimator.Summary) error {
	text := fmt.Sprintf(
		"\n-------------------- Robot Parameters -----------------------\n"+
			"Video FPS: %d frames per second\n"+
			"Sampling Interval: every %d frames\n"+
			"Average Speed: %.2f pixels per second\n"+
			"Total Distance: %.2f pixels\n"+
			"Total Time: %.2f seconds\n"+
			"--------------------------------------------------------------\n",
		s.FPS, s.SampleInterval, s.AverageSpeed, s.TotalDistance, s.TotalTime,
	)
	if err := fs.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write summary %s: %w", path, err)
	}
	return nil
}
