package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcess_Block(t *testing.T) {
	p := New("A", 1, "init")
	p.Block("R2", 1)
	p.Block("R2", 1)
	assert.Equal(t, StateBlocked, p.State)
	assert.Equal(t, &Wait{Resource: "R2", Units: 2}, p.BlockedOn)

	p.SetState(StateReady)
	assert.Nil(t, p.BlockedOn)
}

func TestProcess_Children(t *testing.T) {
	p := New("P", 1, "init")
	p.AddChild("C1")
	p.AddChild("C2")
	p.AddChild("C3")
	p.RemoveChild("C2")
	assert.Equal(t, []string{"C1", "C3"}, p.Children)
}

func TestProcess_Snapshot(t *testing.T) {
	p := New("A", 2, "init")
	p.SetHolding("R3", 2)
	p.SetHolding("R1", 1)
	p.SetHolding("R4", 0)
	assert.Equal(t, []string{"R1", "R3"}, p.HeldResources())

	snapshot := p.Snapshot()
	snapshot.Held["R1"] = 5
	assert.Equal(t, 1, p.Holding("R1"), "snapshot must be detached")
	assert.Equal(t, "init", snapshot.Parent)
	assert.Equal(t, StateReady, snapshot.State)
}
