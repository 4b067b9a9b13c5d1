package observer

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"
)

// Subject holds a State and notifies its observers, in subscription order,
// whenever the state changes. A single mutex guards the state, the observer
// list and the handles, and it is held while observers are notified, so
// OnNext must not call back into the same subject.
type Subject struct {
	mu            sync.Mutex
	number        int
	state         State
	observers     []Observer
	unsubscribers map[Observer]*Unsubscriber
	logger        zerolog.Logger
}

// newSubject always publishes the initial state, so a fresh subject logs one
// broadcast to its empty observer list.
func newSubject(number int, initial State, logger zerolog.Logger) *Subject {
	s := &Subject{
		number:        number,
		unsubscribers: make(map[Observer]*Unsubscriber),
		logger:        logger,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.change(initial)
	return s
}

func (s *Subject) Number() int {
	return s.number
}

func (s *Subject) Name() string {
	return fmt.Sprintf("Subject %d", s.number)
}

func (s *Subject) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetState stores state and notifies every observer. Setting the current
// value again does nothing.
func (s *Subject) SetState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state.Equal(s.state) {
		return
	}
	s.change(state)
}

// Observers returns the subscribed observers in subscription order.
func (s *Subject) Observers() []Observer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.observers)
}

// Subscribe attaches o and immediately sends it the current state. Subscribing
// an observer that is already attached sends nothing and returns the handle
// it already holds.
func (s *Subject) Subscribe(o Observer) *Unsubscriber {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.Contains(s.observers, o) {
		s.logger.Info().
			Str("subject", s.Name()).
			Str("observer", o.Name()).
			Msgf("%s is attached to %s", o.Name(), s.Name())
		s.observers = append(s.observers, o)
		s.notify(o)
	}
	u, ok := s.unsubscribers[o]
	if !ok {
		u = newUnsubscriber(s.number, o.Name(), func() { s.detach(o) })
		s.unsubscribers[o] = u
	}
	return u
}

func (s *Subject) detach(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := slices.Index(s.observers, o); i >= 0 {
		s.logger.Info().
			Str("subject", s.Name()).
			Str("observer", o.Name()).
			Msgf("%s is detached from %s", o.Name(), s.Name())
		s.observers = slices.Delete(s.observers, i, i+1)
	}
	delete(s.unsubscribers, o)
}

// change must be called with mu held.
func (s *Subject) change(state State) {
	s.state = state
	s.logger.Info().
		Str("subject", s.Name()).
		Int("attribute", state.Attribute).
		Msgf("%s's SubjectState changed to: %d", s.Name(), state.Attribute)
	s.notify(nil)
}

// notify delivers the current state to target, or to every observer when
// target is nil. It must be called with mu held.
func (s *Subject) notify(target Observer) {
	if len(s.observers) == 0 {
		s.logger.Info().
			Str("subject", s.Name()).
			Msgf("%s has no Observers", s.Name())
		return
	}
	for _, o := range s.observers {
		if target != nil && o != target {
			continue
		}
		s.logger.Info().
			Str("subject", s.Name()).
			Str("observer", o.Name()).
			Msgf("%s is notifying %s about SubjectState change", s.Name(), o.Name())
		o.OnNext(s.state)
	}
}
