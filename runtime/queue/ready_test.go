package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/procman/model/process"
)

func TestReady_Order(t *testing.T) {
	testCases := []struct {
		description string
		inserts     []*process.Process
		expect      []string
	}{
		{
			description: "descending priority",
			inserts: []*process.Process{
				process.New("low", 0, ""),
				process.New("high", 2, ""),
				process.New("mid", 1, ""),
			},
			expect: []string{"high", "mid", "low"},
		},
		{
			description: "ties keep insertion order",
			inserts: []*process.Process{
				process.New("a", 1, ""),
				process.New("b", 1, ""),
				process.New("x", 2, ""),
				process.New("c", 1, ""),
			},
			expect: []string{"x", "a", "b", "c"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			q := NewReady()
			for _, p := range tc.inserts {
				q.Insert(p)
			}
			assert.Equal(t, tc.expect, q.Names())
			assert.Equal(t, len(tc.expect), q.Len())
		})
	}
}

func TestReady_PeekPop(t *testing.T) {
	q := NewReady()
	_, ok := q.Peek()
	assert.False(t, ok)
	_, ok = q.Pop()
	assert.False(t, ok)

	q.Insert(process.New("a", 1, ""))
	q.Insert(process.New("b", 3, ""))

	head, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, "b", head.Name)
	assert.Equal(t, 2, q.Len())

	head, ok = q.Pop()
	assert.True(t, ok)
	assert.Equal(t, "b", head.Name)
	assert.False(t, q.Contains("b"))
	assert.Equal(t, []string{"a"}, q.Names())
}

func TestReady_Remove(t *testing.T) {
	q := NewReady()
	for _, name := range []string{"a", "b", "c"} {
		q.Insert(process.New(name, 1, ""))
	}
	assert.True(t, q.Remove("b"))
	assert.False(t, q.Remove("b"))
	assert.False(t, q.Remove("missing"))
	assert.Equal(t, []string{"a", "c"}, q.Names())
}

func TestReady_ReinsertGoesBehindPeers(t *testing.T) {
	q := NewReady()
	a := process.New("a", 2, "")
	b := process.New("b", 2, "")
	q.Insert(a)
	q.Insert(b)
	head, _ := q.Pop()
	assert.Equal(t, "a", head.Name)
	q.Insert(a)
	assert.Equal(t, []string{"b", "a"}, q.Names())
}
