package collect

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/vk/bishin/internal/ctxlog"
)

// FileExtension is the filename extension that marks a regular file as a
// test file.
const FileExtension = ".b"

// rootName is the name given to the synthetic root node. The root never
// appears in module paths or graph views.
const rootName = "root"

// Load discovers every test file under rootPath and compiles the result into
// a module graph. The walk is sequential and aborts on the first I/O error.
func Load(ctx context.Context, rootPath string) (*ModuleGraph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Discovering test modules.", "root", rootPath)

	proto, err := discover(rootPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovery walk complete.", "entries", len(proto.nodes))

	graph, err := proto.compile()
	if err != nil {
		return nil, err
	}
	logger.Debug("Module graph compiled.",
		"modules", len(graph.Modules()), "leaf_modules", len(graph.LeafModules()))
	return graph, nil
}

// discover walks the subtree rooted at rootPath and records one node per
// filesystem entry, plus parent/child edges from path containment.
func discover(rootPath string) (*protoGraph, error) {
	// Walk entry paths are cleaned; clean the root too so parent lookups by
	// filepath.Dir line up.
	rootPath = filepath.Clean(rootPath)

	proto := &protoGraph{}
	pathToNode := make(map[string]int)

	walkErr := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == rootPath {
				return &ReadRootDirError{Path: rootPath, Err: err}
			}
			return &WalkError{Err: err}
		}

		node := protoNode{
			name:   entryName(d.Name()),
			parent: -1,
		}
		if len(proto.nodes) == 0 {
			// The first entry is the root directory itself. It is never a
			// leaf, even if its name carries the test-file extension.
			node.name = rootName
		} else if d.Type().IsRegular() && filepath.Ext(d.Name()) == FileExtension {
			node.file = path
		}

		idx := len(proto.nodes)
		proto.nodes = append(proto.nodes, node)
		pathToNode[path] = idx

		if parent, ok := pathToNode[filepath.Dir(path)]; ok && idx != parent {
			proto.nodes[idx].parent = parent
			proto.nodes[parent].children = append(proto.nodes[parent].children, idx)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	if len(proto.nodes) == 0 {
		return nil, ErrEmpty
	}
	return proto, nil
}

// entryName returns the stem of a filesystem entry name: the base name with
// any extension stripped.
func entryName(base string) string {
	return strings.TrimSuffix(base, filepath.Ext(base))
}
