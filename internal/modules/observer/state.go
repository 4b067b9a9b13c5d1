package observer

// State is the value a Subject publishes. It is compared by value.
type State struct {
	Attribute int
}

func NewState(attribute int) State {
	return State{Attribute: attribute}
}

func (s State) Equal(other State) bool {
	return s.Attribute == other.Attribute
}
