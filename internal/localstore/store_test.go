package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	found, err := store.Get(ctx, "missing", &record{})
	require.NoError(t, err)
	assert.False(t, found)

	in := record{Name: "cart", Count: 3}
	require.NoError(t, store.Set(ctx, KeyCart, in))

	var out record
	found, err = store.Get(ctx, KeyCart, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)

	require.NoError(t, store.Delete(ctx, KeyCart))
	found, err = store.Get(ctx, KeyCart, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStoreCorruptValueReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyCart+".json"), []byte("{broken"), 0o644))

	var out record
	found, err := store.Get(ctx, KeyCart, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStoreDeleteMissingKeyIsNoop(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, store.Delete(context.Background(), "never-written"))
}

func TestMemoryStoreCorruptValueReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.SetRaw(KeyWishlist, []byte("not json"))

	var out []int64
	found, err := store.Get(ctx, KeyWishlist, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, KeyUsers, []record{{Name: "a"}, {Name: "b"}}))
	var out []record
	found, err := store.Get(ctx, KeyUsers, &out)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, out, 2)

	require.NoError(t, store.Delete(ctx, KeyUsers))
	found, _ = store.Get(ctx, KeyUsers, &out)
	assert.False(t, found)
}
