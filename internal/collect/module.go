package collect

import (
	"slices"
	"strings"
)

// Module is a single node of the compiled graph: either a container
// (a directory that holds other modules) or a leaf (a test file).
// Modules are immutable once constructed; two modules are the same module
// iff their path components are equal.
type Module struct {
	modulePath []string
	file       string
}

// Name returns the final component of the module path.
func (m Module) Name() string {
	if len(m.modulePath) == 0 {
		return ""
	}
	return m.modulePath[len(m.modulePath)-1]
}

// FilePath returns the path of the test file this module was compiled from,
// or the empty string for container modules.
func (m Module) FilePath() string {
	return m.file
}

// IsLeaf reports whether this module corresponds to a test file.
func (m Module) IsLeaf() bool {
	return m.file != ""
}

// PathComponents returns a copy of the module path components, root excluded.
func (m Module) PathComponents() []string {
	return slices.Clone(m.modulePath)
}

// Path returns the module path rendered as a single string, components
// joined by "::".
func (m Module) Path() string {
	return strings.Join(m.modulePath, "::")
}
