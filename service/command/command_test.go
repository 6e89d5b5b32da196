package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/procman/model/types"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		description string
		line        string
		expect      *Command
		expectErr   bool
	}{
		{description: "blank", line: "   "},
		{description: "empty", line: ""},
		{description: "init", line: "init", expect: &Command{Kind: KindInit}},
		{description: "upper case keyword", line: "INIT", expect: &Command{Kind: KindInit}},
		{description: "create", line: "cr a 3", expect: &Command{Kind: KindCreate, Name: "a", Priority: 3}},
		{description: "create extra spaces", line: "  cr\tb   2  ", expect: &Command{Kind: KindCreate, Name: "b", Priority: 2}},
		{description: "create negative priority", line: "cr c -1", expect: &Command{Kind: KindCreate, Name: "c", Priority: -1}},
		{description: "create missing priority", line: "cr a", expectErr: true},
		{description: "create bad priority", line: "cr a 3x", expectErr: true},
		{description: "destroy", line: "de a", expect: &Command{Kind: KindDestroy, Name: "a"}},
		{description: "destroy missing name", line: "de", expectErr: true},
		{description: "request", line: "req R2 2", expect: &Command{Kind: KindRequest, Name: "R2", Units: 2}},
		{description: "request default units", line: "req r1", expect: &Command{Kind: KindRequest, Name: "r1", Units: 1}},
		{description: "release", line: "rel 3 1", expect: &Command{Kind: KindRelease, Name: "3", Units: 1}},
		{description: "timeout", line: "to", expect: &Command{Kind: KindTimeout}},
		{description: "timeout extra argument", line: "to now", expectErr: true},
		{description: "info", line: "info a", expect: &Command{Kind: KindInfo, Name: "a"}},
		{description: "resource", line: "res R4", expect: &Command{Kind: KindResource, Name: "R4"}},
		{description: "list", line: "ls", expect: &Command{Kind: KindList}},
		{description: "exit", line: "exit", expect: &Command{Kind: KindQuit}},
		{description: "unknown", line: "fork a", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := Parse(tc.line)
			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, types.ErrInvalidCommand.Equal(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, actual)
		})
	}
}

func TestCommand_Mutating(t *testing.T) {
	assert.True(t, (&Command{Kind: KindCreate}).Mutating())
	assert.True(t, (&Command{Kind: KindTimeout}).Mutating())
	assert.False(t, (&Command{Kind: KindInfo}).Mutating())
	assert.False(t, (&Command{Kind: KindQuit}).Mutating())
}
