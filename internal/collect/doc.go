// Package collect turns a directory tree of test files into a compiled
// module graph.
//
// Discovery walks the tree and records one node per filesystem entry, with
// parent/child edges derived from path containment. Compilation then prunes
// directories that carry no test files, verifies the graph is acyclic, and
// resolves each surviving node's module path by a depth-first walk from the
// synthetic root.
//
// The compiled ModuleGraph exposes two read views: all modules (containers
// included) and leaf modules (test files only). Both are sorted by module
// path so that downstream generation is deterministic regardless of the
// order the filesystem happened to enumerate entries in.
package collect
