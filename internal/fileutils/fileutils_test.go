package fileutils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ted-editor/tools/internal/logging"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), FileMode))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir), "a directory is not a file")
	assert.True(t, DirExists(dir))
	assert.False(t, DirExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))
}

func TestWriteFileCreatesParents(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "keywords.h")

	require.NoError(t, WriteFile(target, []byte("first version")))
	require.NoError(t, WriteFile(target, []byte("second")))

	b, err := ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second", string(b), "file should be truncated on rewrite")
}

func TestWriteFileReadOnlyTarget(t *testing.T) {
	target := filepath.Join(t.TempDir(), "keywords.h")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0444))

	logs := &bytes.Buffer{}
	prev := logging.CurrentHandler().Output()
	logging.SetOutput(logs)
	defer logging.SetOutput(prev)

	require.NoError(t, WriteFile(target, []byte("new")))
	assert.Contains(t, logs.String(), "is read-only, overwriting it anyway")

	fi, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0444), fi.Mode().Perm(), "original permissions are restored")
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHash(t *testing.T) {
	target := filepath.Join(t.TempDir(), "data")
	data := []byte("static const Keyword syntax_keywords_c_a[1] = {{\"auto\", SYNTAX_KEYWORD}};\n")
	require.NoError(t, WriteFile(target, data))

	sum, err := HashFile(target)
	require.NoError(t, err)
	assert.Equal(t, Hash(data), sum)
	assert.NotEqual(t, Hash([]byte("other")), sum)
}

func TestWriteFileIfChanged(t *testing.T) {
	target := filepath.Join(t.TempDir(), "keywords.h")

	changed, err := WriteFileIfChanged(target, []byte("one"))
	require.NoError(t, err)
	assert.True(t, changed, "missing file is always written")

	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(target, old, old))

	changed, err = WriteFileIfChanged(target, []byte("one"))
	require.NoError(t, err)
	assert.False(t, changed)
	fi, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, fi.ModTime().Equal(old), "unchanged file keeps its mtime")

	changed, err = WriteFileIfChanged(target, []byte("two"))
	require.NoError(t, err)
	assert.True(t, changed)
	b, err := ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "two", string(b))
}
