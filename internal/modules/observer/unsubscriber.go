package observer

import "sync"

// Unsubscriber detaches one observer from one subject. Only the first call to
// Unsubscribe has an effect.
type Unsubscriber struct {
	SubjectNumber int
	ObserverName  string

	once   sync.Once
	detach func()
}

func newUnsubscriber(subjectNumber int, observerName string, detach func()) *Unsubscriber {
	return &Unsubscriber{
		SubjectNumber: subjectNumber,
		ObserverName:  observerName,
		detach:        detach,
	}
}

func (u *Unsubscriber) Unsubscribe() {
	u.once.Do(u.detach)
}
