package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/procman/model/process"
	"github.com/viant/procman/service/dao"
)

func TestFilterByState(t *testing.T) {
	testCases := []struct {
		description string
		state       process.State
		parameters  []*dao.Parameter
		expect      bool
	}{
		{description: "no parameters", state: process.StateReady, expect: true},
		{description: "single match", state: process.StateReady, parameters: []*dao.Parameter{dao.NewParameter(StateParameter, "ready")}, expect: true},
		{description: "single mismatch", state: process.StateBlocked, parameters: []*dao.Parameter{dao.NewParameter(StateParameter, "ready")}, expect: false},
		{description: "any of", state: process.StateBlocked, parameters: []*dao.Parameter{dao.NewParameter(StateParameter, "ready", "blocked")}, expect: true},
		{description: "typed states", state: process.StateRunning, parameters: []*dao.Parameter{{Name: StateParameter, Value: []process.State{process.StateReady}}}, expect: false},
		{description: "other parameter ignored", state: process.StateRunning, parameters: []*dao.Parameter{dao.NewParameter("Name", "x")}, expect: true},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expect, FilterByState(tc.state, tc.parameters))
		})
	}
}
