package queue

import (
	"github.com/google/btree"
	"github.com/viant/procman/model/process"
)

// Ready keeps ready processes ordered by descending priority. Equal
// priorities keep insertion order: every insert takes a fresh sequence
// number, so an entry never overtakes a peer queued before it.
type Ready struct {
	tree  *btree.BTreeG[*entry]
	index map[string]*entry
	seq   uint64
}

type entry struct {
	process  *process.Process
	priority int
	seq      uint64
}

func less(a, b *entry) bool {
	if a.priority != b.priority {
		return a.priority > b.priority
	}
	return a.seq < b.seq
}

// NewReady creates an empty ready queue
func NewReady() *Ready {
	return &Ready{
		tree:  btree.NewG(16, less),
		index: make(map[string]*entry),
	}
}

// Insert adds p behind every queued process of the same or higher priority.
// Inserting a process that is already queued moves it to the back of its
// priority band.
func (q *Ready) Insert(p *process.Process) {
	if p == nil {
		return
	}
	q.Remove(p.Name)
	q.seq++
	e := &entry{process: p, priority: p.Priority, seq: q.seq}
	q.tree.ReplaceOrInsert(e)
	q.index[p.Name] = e
}

// Peek returns the highest priority process without removing it
func (q *Ready) Peek() (*process.Process, bool) {
	e, ok := q.tree.Min()
	if !ok {
		return nil, false
	}
	return e.process, true
}

// Pop removes and returns the highest priority process
func (q *Ready) Pop() (*process.Process, bool) {
	e, ok := q.tree.DeleteMin()
	if !ok {
		return nil, false
	}
	delete(q.index, e.process.Name)
	return e.process, true
}

// Remove drops the named process; it is a no-op when absent
func (q *Ready) Remove(name string) bool {
	e, ok := q.index[name]
	if !ok {
		return false
	}
	q.tree.Delete(e)
	delete(q.index, name)
	return true
}

// Contains reports whether the named process is queued
func (q *Ready) Contains(name string) bool {
	_, ok := q.index[name]
	return ok
}

// Len returns number of queued processes
func (q *Ready) Len() int {
	return q.tree.Len()
}

// Names returns queued process names in dequeue order
func (q *Ready) Names() []string {
	ret := make([]string, 0, q.tree.Len())
	q.tree.Ascend(func(e *entry) bool {
		ret = append(ret, e.process.Name)
		return true
	})
	return ret
}

// Processes returns queued processes in dequeue order
func (q *Ready) Processes() []*process.Process {
	ret := make([]*process.Process, 0, q.tree.Len())
	q.tree.Ascend(func(e *entry) bool {
		ret = append(ret, e.process)
		return true
	})
	return ret
}
