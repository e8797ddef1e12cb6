// Package job defines the executable job records produced at the end of the
// generation pipeline. Jobs are plain data, intended to be handed off to an
// external runner.
package job

// Job describes a single executable unit of work: an invocation plus the
// environment it should run with.
type Job struct {
	// Name uniquely identifies the job. It is derived from the module path
	// of the test, joined with underscores, with the test name as the final
	// component.
	Name string
	// Args is the full invocation, program first.
	Args []string
	// Envs holds per-job environment overrides. Currently always empty;
	// reserved for future per-test environment injection.
	Envs map[string]string
}
