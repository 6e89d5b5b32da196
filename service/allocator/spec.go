package allocator

import "fmt"

// Spec defines a resource created on initialisation
type Spec struct {
	ID    string `json:"id" yaml:"id"`
	Units int    `json:"units" yaml:"units"`
}

// DefaultSpecs returns R1..R4 with capacities 1..4
func DefaultSpecs() []Spec {
	ret := make([]Spec, 0, 4)
	for i := 1; i <= 4; i++ {
		ret = append(ret, Spec{ID: fmt.Sprintf("R%d", i), Units: i})
	}
	return ret
}
