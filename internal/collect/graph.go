package collect

import (
	"slices"
)

// protoNode is a transient discovery record for one filesystem entry. Nodes
// live in a flat arena slice; edges are parent/child index lists. The arena
// avoids pointer-heavy ownership and makes bottom-up pruning and iterative
// traversal cheap.
type protoNode struct {
	name     string
	file     string // non-empty iff this entry is a test file
	parent   int    // index into the arena, -1 for the root
	children []int
	pruned   bool
}

// protoGraph is the raw discovery output before compilation.
type protoGraph struct {
	nodes []protoNode // nodes[0] is always the synthetic root
}

// ModuleGraph is the compiled, immutable module structure. The synthetic
// root is excluded from both views.
type ModuleGraph struct {
	modules []Module // every surviving non-root module, sorted by path
}

// compile prunes empty containers, checks acyclicity, and resolves module
// paths, producing the final graph.
func (p *protoGraph) compile() (*ModuleGraph, error) {
	p.prune()

	if err := p.checkAcyclic(); err != nil {
		return nil, err
	}

	modules := p.resolvePaths()

	leaves := 0
	for _, m := range modules {
		if m.IsLeaf() {
			leaves++
		}
	}
	if leaves == 0 {
		return nil, ErrEmpty
	}

	slices.SortFunc(modules, func(a, b Module) int {
		return slices.Compare(a.modulePath, b.modulePath)
	})
	return &ModuleGraph{modules: modules}, nil
}

// prune drops every non-root node that has no unpruned children and no file.
// Nodes are appended to the arena in walk order, so a child's index is always
// greater than its parent's; one reverse pass therefore reaches the fixed
// point (dropping an empty directory may empty its parent in turn).
func (p *protoGraph) prune() {
	for i := len(p.nodes) - 1; i > 0; i-- {
		n := &p.nodes[i]
		if n.file != "" {
			continue
		}
		if p.liveChildren(i) == 0 {
			n.pruned = true
		}
	}
}

func (p *protoGraph) liveChildren(idx int) int {
	live := 0
	for _, c := range p.nodes[idx].children {
		if !p.nodes[c].pruned {
			live++
		}
	}
	return live
}

// checkAcyclic verifies the surviving graph is a DAG by a depth-first walk
// with visit marking. Containment edges cannot form a cycle, so a failure
// here is an internal invariant violation.
func (p *protoGraph) checkAcyclic() error {
	const (
		white = iota // unvisited
		grey         // on the current DFS path
		black        // fully explored
	)
	color := make([]int, len(p.nodes))

	var stack [][2]int // (node index, next child offset)
	for start := range p.nodes {
		if color[start] != white || p.nodes[start].pruned {
			continue
		}
		color[start] = grey
		stack = append(stack, [2]int{start, 0})
		for len(stack) > 0 {
			top := len(stack) - 1
			node := stack[top][0]
			children := p.nodes[node].children
			if stack[top][1] < len(children) {
				child := children[stack[top][1]]
				stack[top][1]++
				if p.nodes[child].pruned {
					continue
				}
				switch color[child] {
				case grey:
					return errCycle
				case white:
					color[child] = grey
					stack = append(stack, [2]int{child, 0})
				}
				continue
			}
			color[node] = black
			stack = stack[:top]
		}
	}
	return nil
}

// resolvePaths walks the graph depth-first from the root, accumulating each
// node's ancestor name chain. The stack-based walk bounds memory independent
// of tree depth. The root contributes nothing to any path; leaves have no
// children, so the walk never continues past one.
func (p *protoGraph) resolvePaths() []Module {
	type frame struct {
		node int
		path []string
	}

	var modules []Module
	stack := []frame{{node: 0, path: nil}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := p.nodes[f.node]
		if f.node != 0 {
			modules = append(modules, Module{modulePath: f.path, file: n.file})
		}
		if n.file != "" {
			continue
		}
		for _, c := range n.children {
			if p.nodes[c].pruned {
				continue
			}
			childPath := make([]string, len(f.path)+1)
			copy(childPath, f.path)
			childPath[len(f.path)] = p.nodes[c].name
			stack = append(stack, frame{node: c, path: childPath})
		}
	}
	return modules
}

// Modules returns every module in the graph, containers included, sorted by
// module path compared component-wise. The synthetic root is excluded.
func (g *ModuleGraph) Modules() []Module {
	return slices.Clone(g.modules)
}

// LeafModules returns only the modules that correspond to test files, in the
// same deterministic order as Modules.
func (g *ModuleGraph) LeafModules() []Module {
	var leaves []Module
	for _, m := range g.modules {
		if m.IsLeaf() {
			leaves = append(leaves, m)
		}
	}
	return leaves
}
