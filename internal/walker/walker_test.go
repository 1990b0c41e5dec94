package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poma-odoo/odoo-sort-go/pkg/core"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestNewWalker(t *testing.T) {
	tmpDir := t.TempDir()
	w := New(tmpDir, core.DefaultConfig())
	assert.NotNil(t, w)
}

func TestWalkerWalkSync_CollectsPyFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "models", "sale.py"), "class Sale:\n    pass\n")
	writeFile(t, filepath.Join(tmpDir, "models", "__init__.py"), "")
	writeFile(t, filepath.Join(tmpDir, "README.md"), "# readme")

	files, errs := New(tmpDir, core.DefaultConfig()).WalkSync()

	assert.Empty(t, errs)
	assert.Len(t, files, 2)
}

func TestWalkerSkipsDotGitAndPycache(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "main.py"), "x = 1\n")
	writeFile(t, filepath.Join(tmpDir, ".git", "objects", "pack.py"), "x = 1\n")
	writeFile(t, filepath.Join(tmpDir, "__pycache__", "main.cpython.py"), "x = 1\n")

	files, errs := New(tmpDir, core.DefaultConfig()).WalkSync()

	assert.Empty(t, errs)
	require.Len(t, files, 1)
	assert.Contains(t, files[0], "main.py")
}

func TestWalkerHonorsExcludeGlobs(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "models", "sale.py"), "x = 1\n")
	writeFile(t, filepath.Join(tmpDir, "migrations", "0001.py"), "x = 1\n")

	cfg := core.DefaultConfig()
	cfg.Settings.Exclude = []string{"migrations/*"}

	w := New(tmpDir, cfg)
	files, errs := w.WalkSync()

	assert.Empty(t, errs)
	require.Len(t, files, 1)
	assert.Contains(t, files[0], "sale.py")
	assert.Equal(t, 1, w.Stats().SkippedFiles)
}

func TestWalkerWithWorkers(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.py"), "x = 1\n")
	writeFile(t, filepath.Join(tmpDir, "b.py"), "x = 1\n")

	files, errs := New(tmpDir, core.DefaultConfig()).WithWorkers(2).WalkSync()

	assert.Empty(t, errs)
	assert.Len(t, files, 2)
}
