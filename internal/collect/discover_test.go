package collect

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/bishin/internal/testutil"
)

func modulePaths(modules []Module) []string {
	paths := make([]string, 0, len(modules))
	for _, m := range modules {
		paths = append(paths, m.Path())
	}
	return paths
}

func TestLoadFlatFiles(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"foo.b": "",
		"bar.b": "",
	})

	graph, err := Load(context.Background(), root)
	require.NoError(t, err)

	want := []string{"bar", "foo"}
	if diff := cmp.Diff(want, modulePaths(graph.Modules())); diff != "" {
		t.Fatalf("module paths mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, want, modulePaths(graph.LeafModules()))
}

func TestLoadNestedDirectories(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"foo.b":            "",
		"bar.b":            "",
		"subdir/baz.b":     "",
		"subdir/qux.b":     "",
		"subdir/inner/a.b": "",
	})

	graph, err := Load(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"bar",
		"foo",
		"subdir",
		"subdir::baz",
		"subdir::inner",
		"subdir::inner::a",
		"subdir::qux",
	}, modulePaths(graph.Modules()))

	assert.Equal(t, []string{
		"bar",
		"foo",
		"subdir::baz",
		"subdir::inner::a",
		"subdir::qux",
	}, modulePaths(graph.LeafModules()))
}

func TestLoadNestedLeafModulePath(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"subdir/baz.b": "",
	})

	graph, err := Load(context.Background(), root)
	require.NoError(t, err)

	leaves := graph.LeafModules()
	require.Len(t, leaves, 1)
	assert.Equal(t, []string{"subdir", "baz"}, leaves[0].PathComponents())
	assert.Equal(t, "baz", leaves[0].Name())
	assert.Equal(t, filepath.Join(root, "subdir", "baz.b"), leaves[0].FilePath())

	// The container appears in the full view but is not a leaf.
	all := graph.Modules()
	require.Len(t, all, 2)
	assert.Equal(t, "subdir", all[0].Path())
	assert.False(t, all[0].IsLeaf())
	assert.Empty(t, all[0].FilePath())
}

func TestLoadEmptyDirectoriesOnly(t *testing.T) {
	root := testutil.WriteTree(t, nil)
	testutil.MakeDirs(t, root, "a", "b/c", "b/c/d")

	_, err := Load(context.Background(), root)
	require.ErrorIs(t, err, ErrEmpty)
}

func TestLoadEmptyRoot(t *testing.T) {
	root := testutil.WriteTree(t, nil)

	_, err := Load(context.Background(), root)
	require.ErrorIs(t, err, ErrEmpty)
}

func TestLoadPrunesEmptySiblings(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"foo.b": "",
	})
	testutil.MakeDirs(t, root, "empty", "also/empty/nested")

	graph, err := Load(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, []string{"foo"}, modulePaths(graph.Modules()))
	assert.Equal(t, []string{"foo"}, modulePaths(graph.LeafModules()))
}

func TestLoadIgnoresOtherFileTypes(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"foo.b":         "",
		"readme.md":     "notes",
		"sub/data.json": "{}",
		"sub/bar.b":     "",
	})

	graph, err := Load(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, []string{"foo", "sub", "sub::bar"}, modulePaths(graph.Modules()))
}

func TestLoadMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := Load(context.Background(), missing)
	var rootErr *ReadRootDirError
	require.ErrorAs(t, err, &rootErr)
	assert.Equal(t, missing, rootErr.Path)
}

func TestLoadDeterministicAcrossRuns(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"z.b":     "",
		"a.b":     "",
		"m/x.b":   "",
		"m/c.b":   "",
		"b/q/r.b": "",
	})

	first, err := Load(context.Background(), root)
	require.NoError(t, err)
	second, err := Load(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, modulePaths(first.Modules()), modulePaths(second.Modules()))
	assert.Equal(t, modulePaths(first.LeafModules()), modulePaths(second.LeafModules()))
}
