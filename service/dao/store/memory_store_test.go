package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/procman/service/dao"
)

type record struct {
	ID   string
	Kind string
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	srv := NewMemoryStore[string, record](func(r *record) string { return r.ID },
		WithFilter[string, record](func(r *record, parameters []*dao.Parameter) bool {
			if len(parameters) == 0 {
				return true
			}
			return r.Kind == parameters[0].Value
		}))

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, srv.Save(ctx, &record{ID: id, Kind: "x"}))
	}
	require.NoError(t, srv.Save(ctx, &record{ID: "a", Kind: "y"}))
	assert.Equal(t, 3, srv.Len())

	all, err := srv.List(ctx)
	require.NoError(t, err)
	var ids []string
	for _, r := range all {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)

	filtered, err := srv.List(ctx, dao.NewParameter("Kind", "y"))
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].ID)

	_, err = srv.Load(ctx, "missing")
	assert.ErrorIs(t, err, dao.ErrNotFound)
	assert.ErrorIs(t, srv.Delete(ctx, "missing"), dao.ErrNotFound)
	assert.ErrorIs(t, srv.Save(ctx, nil), dao.ErrNilEntity)
	assert.ErrorIs(t, srv.Save(ctx, &record{}), dao.ErrInvalidID)

	require.NoError(t, srv.Delete(ctx, "a"))
	loaded, err := srv.Load(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "b", loaded.ID)
	assert.Equal(t, 2, srv.Len())
}
