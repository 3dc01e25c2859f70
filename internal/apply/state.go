package apply

//go:generate go tool stringer -type=State -linecomment -output=state_string.go

// State is the lifecycle state of one platform within a run.
type State int

const (
	StateDiscovered State = iota // discovered
	StateIndexed                 // indexed
	StateApplied                 // applied
	StateFailed                  // failed
)

// MarshalYAML renders the state by name.
func (s State) MarshalYAML() (any, error) {
	return s.String(), nil
}
