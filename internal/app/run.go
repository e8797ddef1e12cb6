package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/bishin/internal/collect"
	"github.com/vk/bishin/internal/ctxlog"
	"github.com/vk/bishin/internal/generate"
	"github.com/vk/bishin/internal/job"
)

// Run executes the full pipeline: discover the test tree, compile the module
// graph, and generate one script plus one job record per test. Any failure
// in any stage aborts the run.
func (a *App) Run(ctx context.Context) ([]job.Job, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	graph, err := collect.Load(ctx, a.config.TestDir)
	if err != nil {
		return nil, fmt.Errorf("failed to collect test modules: %w", err)
	}
	a.logger.Info("Test modules collected.",
		"modules", len(graph.Modules()), "leaf_modules", len(graph.LeafModules()))

	outDir := a.config.GeneratedDir()
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", outDir, err)
	}

	jobs, err := generate.Jobs(ctx, outDir, graph)
	if err != nil {
		return nil, fmt.Errorf("failed to generate test jobs: %w", err)
	}
	a.logger.Info("Test jobs generated.", "count", len(jobs), "out_dir", outDir)

	a.logger.Debug("App.Run method finished.")
	return jobs, nil
}
