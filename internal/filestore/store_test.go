package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/reditus/pkg/types"
)

const ns = "2026programstate"

func attachTemp(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s := NewStore()
	require.NoError(t, s.Attach(types.Config{Backend: types.BackendFile, DataDir: dir}))
	t.Cleanup(func() { s.Detach() })
	return s, dir
}

func TestStoreAttach(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := NewStore()
	require.NoError(t, s.Attach(types.Config{Backend: types.BackendFile, DataDir: dir}))
	defer s.Detach()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.Equal(t, types.ErrAlreadyAttached, s.Attach(types.Config{Backend: types.BackendFile, DataDir: dir}))
}

func TestStoreDetached(t *testing.T) {
	s, _ := attachTemp(t)
	require.NoError(t, s.Detach())
	require.NoError(t, s.Detach())

	_, err := s.Get(ns)
	assert.Equal(t, types.ErrStoreDetached, err)
	assert.Equal(t, types.ErrStoreDetached, s.Put(ns, []byte("{}")))
	_, err = s.History(ns)
	assert.Equal(t, types.ErrStoreDetached, err)
}

func TestStoreGetMissing(t *testing.T) {
	s, _ := attachTemp(t)
	_, err := s.Get(ns)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestStoreRejectsPathNamespaces(t *testing.T) {
	s, _ := attachTemp(t)
	for _, bad := range []string{"", "..", "../escape", `a\b`} {
		assert.ErrorIs(t, s.Put(bad, []byte("{}")), types.ErrInvalidNamespace, bad)
	}
}

func TestStorePutGet(t *testing.T) {
	s, dir := attachTemp(t)

	require.NoError(t, s.Put(ns, []byte(`{"curIndex": 1}`)))
	require.NoError(t, s.Put(ns, []byte(`{"curIndex": 2}`)))

	got, err := s.Get(ns)
	require.NoError(t, err)
	assert.Equal(t, `{"curIndex": 2}`, string(got))

	_, err = os.Stat(filepath.Join(dir, ns+valueSuffix))
	assert.NoError(t, err)

	// No temp files are left behind.
	matches, err := filepath.Glob(filepath.Join(dir, ".reditus-*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestStoreHistory(t *testing.T) {
	s, _ := attachTemp(t)

	require.NoError(t, s.Put(ns, []byte(`{"curIndex": 0}`)))
	require.NoError(t, s.Put(ns, []byte(`{"curIndex": 1}`)))
	require.NoError(t, s.Put("2025programstate", []byte(`{"curIndex": 7}`)))

	history, err := s.History(ns)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, int64(1), history[0].Version)
	assert.Equal(t, int64(2), history[1].Version)
	assert.JSONEq(t, `{"curIndex":0}`, string(history[0].Value))
	assert.JSONEq(t, `{"curIndex":1}`, string(history[1].Value))
	assert.NotEqual(t, history[0].SnapshotID, history[1].SnapshotID)
	assert.False(t, history[1].CreatedAt.IsZero())

	other, err := s.History("2025programstate")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestStoreHistorySkipsMalformedLines(t *testing.T) {
	s, dir := attachTemp(t)
	require.NoError(t, s.Put(ns, []byte(`{"curIndex": 0}`)))

	f, err := os.OpenFile(filepath.Join(dir, ns+historySuffix), os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("{not json\n\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, s.Put(ns, []byte(`{"curIndex": 1}`)))

	history, err := s.History(ns)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.JSONEq(t, `{"curIndex":1}`, string(history[1].Value))
}

func TestStoreHistoryOfInvalidValue(t *testing.T) {
	s, _ := attachTemp(t)
	require.NoError(t, s.Put(ns, []byte(`not json`)))

	history, err := s.History(ns)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, `"not json"`, string(history[0].Value))
}
