package progress

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepo_MissingFileIsEmpty(t *testing.T) {
	repo := NewFileRepo(filepath.Join(t.TempDir(), "progress.json"))
	s, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, s)
	assert.Empty(t, s)
}

func TestFileRepo_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "progress.json")
	repo := NewFileRepo(path)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleStore()))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleStore(), got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "{\n  \"G_1\": {\n    \""), "expected 2-space indented JSON, got:\n%s", raw)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must be cleaned up")
}

func TestFileRepo_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileRepo(path).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode progress file")
}

func TestFileRepo_Backup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	repo := NewFileRepo(path)

	bak, err := repo.Backup()
	require.NoError(t, err)
	assert.Empty(t, bak, "nothing to back up")

	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))
	bak, err = repo.Backup()
	require.NoError(t, err)
	assert.Equal(t, path+".bak", bak)

	data, err := os.ReadFile(bak)
	require.NoError(t, err)
	assert.Equal(t, "{broken", string(data))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileRepo_EmptyAndNullFile(t *testing.T) {
	for _, content := range []string{"", "null"} {
		path := filepath.Join(t.TempDir(), "progress.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		s, err := NewFileRepo(path).Load(context.Background())
		require.NoError(t, err, "content %q", content)
		assert.NotNil(t, s, "content %q", content)
	}
}

func TestMemoryRepo_CopiesOnLoadAndSave(t *testing.T) {
	repo := NewMemoryRepo(sampleStore())
	ctx := context.Background()

	s, err := repo.Load(ctx)
	require.NoError(t, err)
	s["G_1"]["y"] = true

	again, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, again["G_1"]["y"], "Load must return a copy")

	require.NoError(t, repo.Save(ctx, s))
	s["G_1"]["x"] = false
	again, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, again["G_1"]["x"], "Save must store a copy")
	assert.Equal(t, 1, repo.Saves)
}
