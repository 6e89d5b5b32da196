package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/procman/model/process"
	"github.com/viant/procman/model/types"
	"github.com/viant/procman/service/event"
)

func TestService_Reschedule(t *testing.T) {
	testCases := []struct {
		description   string
		running       *process.Process
		blocked       bool
		ready         []*process.Process
		expectRunning string
		expectReady   []string
		expectErr     bool
	}{
		{
			description: "empty queue and slot is fatal",
			expectErr:   true,
		},
		{
			description:   "empty slot installs head",
			ready:         []*process.Process{process.New("a", 1, ""), process.New("b", 2, "")},
			expectRunning: "b",
			expectReady:   []string{"a"},
		},
		{
			description:   "empty queue keeps running",
			running:       process.New("a", 0, ""),
			expectRunning: "a",
			expectReady:   []string{},
		},
		{
			description:   "higher priority preempts",
			running:       process.New("low", 3, ""),
			ready:         []*process.Process{process.New("high", 5, "")},
			expectRunning: "high",
			expectReady:   []string{"low"},
		},
		{
			description:   "equal priority does not preempt",
			running:       process.New("a", 5, ""),
			ready:         []*process.Process{process.New("b", 5, "")},
			expectRunning: "a",
			expectReady:   []string{"b"},
		},
		{
			description:   "lower priority does not preempt",
			running:       process.New("a", 5, ""),
			ready:         []*process.Process{process.New("b", 1, "")},
			expectRunning: "a",
			expectReady:   []string{"b"},
		},
		{
			description:   "blocked running is replaced without requeue",
			running:       process.New("a", 5, ""),
			blocked:       true,
			ready:         []*process.Process{process.New("b", 1, "")},
			expectRunning: "b",
			expectReady:   []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			srv := New()
			if tc.running != nil {
				srv.Install(tc.running)
				if tc.blocked {
					srv.Suspend(tc.running, "R1", 1)
				}
			}
			for _, p := range tc.ready {
				srv.Enqueue(p)
			}
			err := srv.Reschedule()
			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, types.IsFatal(err))
				assert.Nil(t, srv.Running())
				return
			}
			require.NoError(t, err)
			require.NotNil(t, srv.Running())
			assert.Equal(t, tc.expectRunning, srv.Running().Name)
			assert.Equal(t, process.StateRunning, srv.Running().State)
			assert.Equal(t, tc.expectReady, srv.Ready().Names())
			for _, p := range srv.Ready().Processes() {
				assert.Equal(t, process.StateReady, p.State)
			}

			// a second pass with no intervening change is a no-op
			require.NoError(t, srv.Reschedule())
			assert.Equal(t, tc.expectRunning, srv.Running().Name)
			assert.Equal(t, tc.expectReady, srv.Ready().Names())
		})
	}
}

func TestService_Yield(t *testing.T) {
	srv := New()
	a := process.New("a", 2, "")
	b := process.New("b", 2, "")
	srv.Install(a)
	srv.Enqueue(b)

	require.NoError(t, srv.Yield())
	assert.Equal(t, "b", srv.Running().Name)
	assert.Equal(t, []string{"a"}, srv.Ready().Names())

	require.NoError(t, srv.Yield())
	assert.Equal(t, "a", srv.Running().Name)
	assert.Equal(t, []string{"b"}, srv.Ready().Names())

	t.Run("alone keeps running", func(t *testing.T) {
		srv := New()
		solo := process.New("solo", 0, "")
		srv.Install(solo)
		require.NoError(t, srv.Yield())
		assert.Equal(t, "solo", srv.Running().Name)
		assert.Equal(t, 0, srv.Ready().Len())
	})

	t.Run("blocked running cannot yield", func(t *testing.T) {
		srv := New()
		p := process.New("p", 0, "")
		srv.Install(p)
		srv.Suspend(p, "R1", 1)
		err := srv.Yield()
		assert.True(t, types.IsFatal(err))
		assert.Equal(t, process.StateBlocked, p.State)
	})
}

func TestService_Wake(t *testing.T) {
	var kinds []event.Kind
	srv := New(WithNotify(func(t *event.Transition) { kinds = append(kinds, t.Kind) }))
	running := process.New("run", 1, "")
	other := process.New("other", 0, "")
	srv.Install(running)
	srv.Suspend(running, "R1", 1)
	srv.Suspend(other, "R1", 1)

	srv.Wake(running)
	assert.Equal(t, process.StateRunning, running.State)
	assert.False(t, srv.Ready().Contains("run"))

	srv.Wake(other)
	assert.Equal(t, process.StateReady, other.State)
	assert.Nil(t, other.BlockedOn)
	assert.True(t, srv.Ready().Contains("other"))
	assert.Equal(t, []event.Kind{event.KindScheduled, event.KindBlocked, event.KindBlocked, event.KindUnblocked, event.KindUnblocked}, kinds)
}

func TestService_Evict(t *testing.T) {
	srv := New()
	a := process.New("a", 1, "")
	b := process.New("b", 0, "")
	srv.Install(a)
	srv.Enqueue(b)

	srv.Evict("b")
	assert.Equal(t, 0, srv.Ready().Len())
	srv.Evict("a")
	assert.Nil(t, srv.Running())
	assert.True(t, types.IsFatal(srv.Reschedule()))
}
