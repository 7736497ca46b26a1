package library

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndGetScene(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveScene("demo", "hcl", "camera {\n  location = [0,0,0]\n  look_at = [0,0,10]\n}\n"))

	e, err := s.GetScene("demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", e.Name)
	assert.Equal(t, "hcl", e.Format)
	assert.Contains(t, e.Source, "camera")
	assert.False(t, e.CreatedAt.IsZero())
}

func TestGetSceneNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.GetScene("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestSaveSceneReplaces(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveScene("demo", "hcl", "v1"))
	require.NoError(t, s.SaveScene("demo", "json", "v2"))

	e, err := s.GetScene("demo")
	require.NoError(t, err)
	assert.Equal(t, "json", e.Format)
	assert.Equal(t, "v2", e.Source)

	all, err := s.ListScenes()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestListScenesOrdered(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveScene("zebra", "hcl", "z"))
	require.NoError(t, s.SaveScene("apple", "hcl", "a"))

	all, err := s.ListScenes()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "apple", all[0].Name)
	assert.Equal(t, "zebra", all[1].Name)
}

func TestDeleteScene(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveScene("demo", "hcl", "x"))
	require.NoError(t, s.DeleteScene("demo"))
	require.NoError(t, s.DeleteScene("demo"), "deleting twice is fine")

	_, err := s.GetScene("demo")
	require.Error(t, err)
}

func TestRenderHistory(t *testing.T) {
	s := openTestStore(t)

	id1, err := s.RecordRender("demo", "demo.png", "ok", "", 1500*time.Millisecond)
	require.NoError(t, err)
	id2, err := s.RecordRender("demo", "", "failed", "Parse Error: unexpected token", 40*time.Millisecond)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	entries, err := s.Renders("demo")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "demo", e.Scene)
	}

	none, err := s.Renders("other")
	require.NoError(t, err)
	assert.Empty(t, none)
}
