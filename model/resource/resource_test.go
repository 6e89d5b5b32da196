package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResource_Ledger(t *testing.T) {
	r := New("R3", 3)
	assert.Equal(t, 2, r.Commit("A", 2))
	assert.Equal(t, 1, r.Available)
	assert.Equal(t, r.Total, r.Available+r.AttachedTotal())

	units, ok := r.Attached("A")
	assert.True(t, ok)
	assert.Equal(t, 2, units)

	assert.Equal(t, 2, r.Detach("A"))
	_, ok = r.Attached("A")
	assert.False(t, ok)
	r.Return(2)
	assert.Equal(t, 3, r.Available)
}

func TestResource_Waiters(t *testing.T) {
	testCases := []struct {
		description string
		available   int
		waiters     []Waiter
		expect      string
	}{
		{
			description: "earliest satisfiable waiter wins",
			available:   2,
			waiters:     []Waiter{{Process: "B", Units: 2}, {Process: "A", Units: 1}},
			expect:      "B",
		},
		{
			description: "unsatisfiable head is skipped",
			available:   1,
			waiters:     []Waiter{{Process: "B", Units: 2}, {Process: "A", Units: 1}},
			expect:      "A",
		},
		{
			description: "nothing fits",
			available:   0,
			waiters:     []Waiter{{Process: "B", Units: 2}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			r := New("R4", 4)
			r.Available = tc.available
			for _, w := range tc.waiters {
				r.AddWaiter(w.Process, w.Units)
			}
			next := r.NextSatisfiable()
			if tc.expect == "" {
				assert.Nil(t, next)
				return
			}
			if assert.NotNil(t, next) {
				assert.Equal(t, tc.expect, next.Process)
			}
		})
	}
}

func TestResource_AddWaiterAccumulates(t *testing.T) {
	r := New("R4", 4)
	r.AddWaiter("A", 1)
	r.AddWaiter("B", 1)
	assert.Equal(t, 3, r.AddWaiter("A", 2))

	snapshot := r.Snapshot()
	assert.Equal(t, []string{"A", "B"}, snapshot.WaitOrder)
	assert.Equal(t, map[string]int{"A": 3, "B": 1}, snapshot.Blocked)

	waiter, ok := r.RemoveWaiter("A")
	assert.True(t, ok)
	assert.Equal(t, 3, waiter.Units)
	_, ok = r.RemoveWaiter("A")
	assert.False(t, ok)
}
