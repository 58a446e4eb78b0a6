package discovery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-brain/toolregistry/internal/domain/discovery"
)

// writeTool creates a minimal tool directory with a main script.
func writeTool(t *testing.T, root, name, script string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, script), []byte("print('hi')\n"), 0644))
	return dir
}

func TestFindScript_PriorityOrder(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "MyTool")
	require.NoError(t, os.MkdirAll(dir, 0755))

	write := func(name string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(""), 0644))
	}

	// Lowest priority first, then work upward.
	write("aardvark.py")
	script, ok := discovery.FindScript(dir)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "aardvark.py"), script)

	write("__main__.py")
	script, _ = discovery.FindScript(dir)
	assert.Equal(t, filepath.Join(dir, "__main__.py"), script)

	write("main.py")
	script, _ = discovery.FindScript(dir)
	assert.Equal(t, filepath.Join(dir, "main.py"), script)

	write("MyTool.py")
	script, _ = discovery.FindScript(dir)
	assert.Equal(t, filepath.Join(dir, "MyTool.py"), script)

	write("mytool.py")
	script, _ = discovery.FindScript(dir)
	assert.Equal(t, filepath.Join(dir, "mytool.py"), script)
}

func TestFindScript_IgnoresTestAndInitFiles(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "Thing")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test_thing.py"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "__init__.py"), []byte(""), 0644))

	_, ok := discovery.FindScript(dir)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "impl.py"), []byte(""), 0644))
	script, ok := discovery.FindScript(dir)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "impl.py"), script)
}

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeTool(t, root, "AlphaTool", "alphatool.py")
	writeTool(t, root, "BetaTool", "main.py")

	// Directories that must be skipped.
	writeTool(t, root, ".hidden", "main.py")
	writeTool(t, root, "_private", "main.py")
	writeTool(t, root, "tests", "main.py")
	writeTool(t, root, "branding", "main.py")
	writeTool(t, root, "__pycache__", "main.py")

	// A directory with no script is not a tool.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "NotATool"), 0755))

	// A plain file at the root level is ignored.
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.py"), []byte(""), 0644))

	scanner := discovery.NewScanner(nil)
	candidates := scanner.Scan([]string{root})

	var names []string
	for _, c := range candidates {
		names = append(names, filepath.Base(c.Dir))
	}
	assert.ElementsMatch(t, []string{"AlphaTool", "BetaTool"}, names)
}

func TestScanner_MissingRootIsSkippedSilently(t *testing.T) {
	scanner := discovery.NewScanner(nil)
	candidates := scanner.Scan([]string{"/no/such/root/anywhere"})
	assert.Empty(t, candidates)
}

func TestScanner_MultipleRoots(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	writeTool(t, rootA, "One", "one.py")
	writeTool(t, rootB, "Two", "two.py")

	scanner := discovery.NewScanner(nil)
	candidates := scanner.Scan([]string{rootA, "/missing", rootB})
	assert.Len(t, candidates, 2)
}
