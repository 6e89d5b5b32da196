package process

// State represents the scheduling state of a process
type State string

const (
	StateReady   State = "ready"
	StateRunning State = "running"
	StateBlocked State = "blocked"
)

func (s State) IsReady() bool {
	return s == StateReady
}

func (s State) IsRunning() bool {
	return s == StateRunning
}

func (s State) IsBlocked() bool {
	return s == StateBlocked
}

func (s State) String() string {
	return string(s)
}
