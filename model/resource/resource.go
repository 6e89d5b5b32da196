package resource

import (
	"sort"
)

// Waiter is a pending request registered by a blocked process
type Waiter struct {
	Process string `json:"process"`
	Units   int    `json:"units"`
}

// Resource is a multi-unit resource together with its ledger: units attached
// per holder and the pending requests in registration order.
// Available plus the sum of attached units always equals Total.
type Resource struct {
	ID        string `json:"id" yaml:"id"`
	Total     int    `json:"total" yaml:"units"`
	Available int    `json:"available" yaml:"-"`
	attached  map[string]int
	waiters   []*Waiter
}

// New creates a resource with all units available
func New(id string, total int) *Resource {
	return &Resource{
		ID:        id,
		Total:     total,
		Available: total,
		attached:  make(map[string]int),
	}
}

// Attached returns units attached to holder
func (r *Resource) Attached(holder string) (int, bool) {
	units, ok := r.attached[holder]
	return units, ok
}

// Commit attaches units to holder, taking them from availability
func (r *Resource) Commit(holder string, units int) int {
	r.attached[holder] += units
	r.Available -= units
	return r.attached[holder]
}

// Detach removes the holder entry and returns its units without touching
// availability.
func (r *Resource) Detach(holder string) int {
	units := r.attached[holder]
	delete(r.attached, holder)
	return units
}

// Restore records units attached to holder without touching availability
func (r *Resource) Restore(holder string, units int) {
	if units <= 0 {
		delete(r.attached, holder)
		return
	}
	r.attached[holder] = units
}

// Return puts units back into availability
func (r *Resource) Return(units int) {
	r.Available += units
}

// AddWaiter registers a pending request; a holder already waiting keeps its
// position and accumulates units. It returns the cumulative pending units.
func (r *Resource) AddWaiter(holder string, units int) int {
	for _, waiter := range r.waiters {
		if waiter.Process == holder {
			waiter.Units += units
			return waiter.Units
		}
	}
	r.waiters = append(r.waiters, &Waiter{Process: holder, Units: units})
	return units
}

// RemoveWaiter drops the pending request of holder
func (r *Resource) RemoveWaiter(holder string) (*Waiter, bool) {
	for i, waiter := range r.waiters {
		if waiter.Process == holder {
			r.waiters = append(r.waiters[:i], r.waiters[i+1:]...)
			return waiter, true
		}
	}
	return nil, false
}

// Waiting returns the pending units of holder
func (r *Resource) Waiting(holder string) (int, bool) {
	for _, waiter := range r.waiters {
		if waiter.Process == holder {
			return waiter.Units, true
		}
	}
	return 0, false
}

// NextSatisfiable returns the earliest registered waiter whose pending units
// fit into the available units.
func (r *Resource) NextSatisfiable() *Waiter {
	for _, waiter := range r.waiters {
		if waiter.Units <= r.Available {
			return waiter
		}
	}
	return nil
}

// AttachedTotal returns the sum of attached units
func (r *Resource) AttachedTotal() int {
	total := 0
	for _, units := range r.attached {
		total += units
	}
	return total
}

// Snapshot returns a read-only copy of the resource
func (r *Resource) Snapshot() *Snapshot {
	if r == nil {
		return nil
	}
	ret := &Snapshot{
		ID:        r.ID,
		Total:     r.Total,
		Available: r.Available,
		Attached:  make(map[string]int, len(r.attached)),
		Blocked:   make(map[string]int, len(r.waiters)),
		WaitOrder: make([]string, 0, len(r.waiters)),
	}
	for holder, units := range r.attached {
		ret.Attached[holder] = units
	}
	for _, waiter := range r.waiters {
		ret.Blocked[waiter.Process] = waiter.Units
		ret.WaitOrder = append(ret.WaitOrder, waiter.Process)
	}
	return ret
}

// Snapshot is a detached view of a resource ledger
type Snapshot struct {
	ID        string         `json:"id" yaml:"id"`
	Total     int            `json:"total" yaml:"total"`
	Available int            `json:"available" yaml:"available"`
	Attached  map[string]int `json:"attached" yaml:"attached"`
	Blocked   map[string]int `json:"blocked" yaml:"blocked"`
	WaitOrder []string       `json:"waitOrder" yaml:"waitOrder"`
}

// Holders returns holder names in ascending order
func (s *Snapshot) Holders() []string {
	ret := make([]string, 0, len(s.Attached))
	for holder := range s.Attached {
		ret = append(ret, holder)
	}
	sort.Strings(ret)
	return ret
}
