package meta

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

func TestService_Load(t *testing.T) {
	ctx := context.Background()
	t.Setenv("PROCMAN_INIT", "root")
	srv := New(afs.New(), "mem://localhost/procman")
	require.NoError(t, srv.Upload(ctx, "config.yaml", []byte("init:\n  name: ${env.PROCMAN_INIT}\n  priority: 2\n")))

	exists, err := srv.Exists(ctx, "config.yaml")
	require.NoError(t, err)
	assert.True(t, exists)

	var doc struct {
		Init struct {
			Name     string `yaml:"name"`
			Priority int    `yaml:"priority"`
		} `yaml:"init"`
	}
	require.NoError(t, srv.Load(ctx, "config.yaml", &doc))
	assert.Equal(t, "root", doc.Init.Name)
	assert.Equal(t, 2, doc.Init.Priority)

	data, err := srv.Download(ctx, "mem://localhost/procman/config.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "${env.PROCMAN_INIT}")

	assert.Error(t, srv.Load(ctx, "missing.yaml", &doc))
	require.NoError(t, srv.Upload(ctx, "bad.yaml", []byte("init: [")))
	assert.Error(t, srv.Load(ctx, "bad.yaml", &doc))
}
