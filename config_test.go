package procman_test

import (
	"context"
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "github.com/viant/afs/embed"
	"github.com/viant/procman"
	"github.com/viant/procman/model/types"
	"github.com/viant/procman/service/allocator"
)

//go:embed testdata/*
var embedFS embed.FS

func TestLoadConfig(t *testing.T) {
	ctx := context.Background()
	cfg, err := procman.LoadConfig(ctx, "embed:///testdata/config.yaml", &embedFS)
	require.NoError(t, err)
	assert.Equal(t, "root", cfg.Init.Name)
	assert.Equal(t, 1, cfg.Init.Priority)
	assert.Equal(t, []allocator.Spec{{ID: "cpu", Units: 2}, {ID: "disk", Units: 3}}, cfg.Resources)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.Events.Enabled)
	assert.Equal(t, 16, cfg.Events.Buffer)
	assert.Equal(t, "procman", cfg.Tracing.Service)

	_, err = procman.LoadConfig(ctx, "embed:///testdata/invalid.yaml", &embedFS)
	assert.True(t, types.ErrInvalidConfig.Equal(err))

	_, err = procman.LoadConfig(ctx, "embed:///testdata/missing.yaml", &embedFS)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		description string
		mutate      func(c *procman.Config)
		expectErr   bool
	}{
		{description: "default", mutate: func(c *procman.Config) {}},
		{description: "empty init", mutate: func(c *procman.Config) { c.Init.Name = " " }, expectErr: true},
		{description: "no resources", mutate: func(c *procman.Config) { c.Resources = nil }, expectErr: true},
		{description: "empty resource id", mutate: func(c *procman.Config) { c.Resources[0].ID = "" }, expectErr: true},
		{description: "duplicate resource id", mutate: func(c *procman.Config) { c.Resources[1].ID = "r1" }, expectErr: true},
		{description: "zero units", mutate: func(c *procman.Config) { c.Resources[2].Units = 0 }, expectErr: true},
		{description: "negative buffer", mutate: func(c *procman.Config) { c.Events.Buffer = -1 }, expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			cfg := procman.DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if !tc.expectErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, types.ErrInvalidConfig.Equal(err))
		})
	}
}
