package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/procman/service/meta"
)

func TestRunCommand(t *testing.T) {
	ctx := context.Background()
	fs := meta.New(afs.New(), "")
	require.NoError(t, fs.Upload(ctx, "mem://localhost/procman/script.txt", []byte("init\ncr a 1\ncr b 2\nto\nreq R4 5\n")))

	testCases := []struct {
		description string
		args        []string
		expectOut   string
		expectFile  string
	}{
		{
			description: "stdout",
			args:        []string{"run", "--input", "mem://localhost/procman/script.txt", "--log-level", "error"},
			expectOut:   "init a b b error\n",
		},
		{
			description: "output url",
			args:        []string{"run", "-i", "mem://localhost/procman/script.txt", "-o", "mem://localhost/procman/out.txt"},
			expectFile:  "init a b b error\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			cmd := NewCmdProcman()
			out := &bytes.Buffer{}
			cmd.SetOut(out)
			cmd.SetArgs(tc.args)
			require.NoError(t, cmd.ExecuteContext(ctx))
			assert.Equal(t, tc.expectOut, out.String())
			if tc.expectFile != "" {
				data, err := fs.Download(ctx, "mem://localhost/procman/out.txt")
				require.NoError(t, err)
				assert.Equal(t, tc.expectFile, string(data))
			}
		})
	}

	t.Run("events enabled with a long script", func(t *testing.T) {
		config := "log:\n  level: error\nevents:\n  enabled: true\n  buffer: 4\n"
		require.NoError(t, fs.Upload(ctx, "mem://localhost/procman/events.yaml", []byte(config)))
		script := "init\ncr a 1\n" + strings.Repeat("to\nreq R1 1\nrel R1 1\n", 200)
		require.NoError(t, fs.Upload(ctx, "mem://localhost/procman/long.txt", []byte(script)))

		cmd := NewCmdProcman()
		out := &bytes.Buffer{}
		cmd.SetOut(out)
		cmd.SetArgs([]string{"run", "-c", "mem://localhost/procman/events.yaml", "-i", "mem://localhost/procman/long.txt"})
		require.NoError(t, cmd.ExecuteContext(ctx))
		assert.Equal(t, "init a"+strings.Repeat(" a", 600)+"\n", out.String())
	})

	t.Run("missing input", func(t *testing.T) {
		cmd := NewCmdProcman()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"run"})
		assert.Error(t, cmd.ExecuteContext(ctx))
	})
}
