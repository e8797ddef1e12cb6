// Package generate derives executable jobs from a compiled module graph,
// writing one generated shell script per test as a side effect.
package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vk/bishin/internal/collect"
	"github.com/vk/bishin/internal/ctxlog"
	"github.com/vk/bishin/internal/job"
	"github.com/vk/bishin/internal/parser"
)

// shebang is the first line of every generated script. A blank line follows
// it before the verbatim test body.
const shebang = "#!/usr/bin/env bash"

// WriteError reports a failure writing a generated test script.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write generated test script %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// moduleTests pairs a leaf module's path with the tests parsed out of its
// file, in source order.
type moduleTests struct {
	modulePath []string
	tests      []parser.Test
}

// testJob holds the per-test data derived before anything touches disk.
type testJob struct {
	// fullPath is the module path of the test, test name included as the
	// final component.
	fullPath []string
	// scriptPath is where the generated script will be written.
	scriptPath string
	// scriptContents is the full generated script.
	scriptContents string
}

// Jobs parses every leaf module in the graph, writes one generated script
// per test into outDir, and returns the resulting job records.
//
// The call is all-or-nothing: any parse or write failure aborts the batch
// and no job list is returned. Scripts written before a failing write are
// left on disk. Ordering is deterministic: leaf modules in module-path
// order, tests within a module in source order.
func Jobs(ctx context.Context, outDir string, graph *collect.ModuleGraph) ([]job.Job, error) {
	logger := ctxlog.FromContext(ctx)

	testJobs, err := makeTestJobs(outDir, graph)
	if err != nil {
		return nil, err
	}
	logger.Debug("Derived test jobs.", "count", len(testJobs), "out_dir", outDir)

	if err := writeTestScripts(testJobs); err != nil {
		return nil, err
	}
	logger.Debug("Generated test scripts written.")

	jobs := make([]job.Job, 0, len(testJobs))
	for _, tj := range testJobs {
		jobs = append(jobs, tj.job())
	}
	return jobs, nil
}

// makeTestJobs parses all leaf modules up front, then derives the per-test
// jobs. Parsing everything before deriving keeps parse failures from
// leaving half a batch of scripts behind.
func makeTestJobs(outDir string, graph *collect.ModuleGraph) ([]testJob, error) {
	var parsed []moduleTests
	for _, module := range graph.LeafModules() {
		mt, err := loadModuleTests(module)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, mt)
	}

	var testJobs []testJob
	for _, mt := range parsed {
		testJobs = append(testJobs, testJobsForModule(outDir, mt)...)
	}
	return testJobs, nil
}

// loadModuleTests parses the tests associated with one leaf module.
func loadModuleTests(module collect.Module) (moduleTests, error) {
	tests, err := parser.ParseFile(module.FilePath())
	if err != nil {
		return moduleTests{}, err
	}
	return moduleTests{
		modulePath: module.PathComponents(),
		tests:      tests,
	}, nil
}

// testJobsForModule derives the job data for every test in a module.
func testJobsForModule(outDir string, mt moduleTests) []testJob {
	jobs := make([]testJob, 0, len(mt.tests))
	for _, test := range mt.tests {
		fullPath := append(slices.Clone(mt.modulePath), test.Name)
		jobs = append(jobs, testJob{
			fullPath:       fullPath,
			scriptPath:     filepath.Join(outDir, scriptFileName(fullPath)),
			scriptContents: transformBody(test.Body),
		})
	}
	return jobs
}

// scriptFileName computes the generated filename for a test: every path
// component joined with "_", prefixed with "test_" and suffixed with ".sh".
func scriptFileName(fullPath []string) string {
	return "test_" + strings.Join(fullPath, "_") + ".sh"
}

// transformBody turns a test body into a shell script: a shebang line, a
// blank line, then the body verbatim.
func transformBody(body string) string {
	return shebang + "\n\n" + body
}

// writeTestScripts writes every script, overwriting unconditionally.
func writeTestScripts(testJobs []testJob) error {
	for _, tj := range testJobs {
		if err := os.WriteFile(tj.scriptPath, []byte(tj.scriptContents), 0o644); err != nil {
			return &WriteError{Path: tj.scriptPath, Err: err}
		}
	}
	return nil
}

// job converts derived test data into the final job record: run the
// generated script under bash, with no environment overrides.
func (tj testJob) job() job.Job {
	return job.Job{
		Name: strings.Join(tj.fullPath, "_"),
		Args: []string{"bash", tj.scriptPath},
		Envs: map[string]string{},
	}
}
