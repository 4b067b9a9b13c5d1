package observer

import "github.com/rs/zerolog"

// Registry creates subjects and observers and numbers them. Subjects and
// observers are counted separately, both starting at 1.
type Registry struct {
	logger   zerolog.Logger
	subjects Sequence
	printers Sequence
}

func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{logger: logger}
}

func (r *Registry) Logger() zerolog.Logger {
	return r.logger
}

func (r *Registry) NewSubject(initial State) *Subject {
	return newSubject(r.subjects.Next(), initial, r.logger)
}

func (r *Registry) NewObserver() *Printer {
	return newPrinter(r.printers.Next(), r.logger)
}
