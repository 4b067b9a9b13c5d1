package observer

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrUnsupportedOperation is returned by the notification channels a Printer
// does not implement.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// Observer receives state changes from the subjects it is subscribed to.
// Implementations are used as map keys and must be comparable, which any
// pointer type is.
type Observer interface {
	Name() string
	OnNext(state State)
}

// Printer is an Observer that writes every state it receives to its logger.
type Printer struct {
	number int
	logger zerolog.Logger
}

func newPrinter(number int, logger zerolog.Logger) *Printer {
	return &Printer{number: number, logger: logger}
}

func (p *Printer) Number() int {
	return p.number
}

func (p *Printer) Name() string {
	return fmt.Sprintf("Observer %d", p.number)
}

func (p *Printer) OnNext(state State) {
	p.logger.Info().
		Str("observer", p.Name()).
		Int("attribute", state.Attribute).
		Msgf("%s received new SubjectState: %d", p.Name(), state.Attribute)
}

// OnCompleted is not supported; subjects here never complete.
func (p *Printer) OnCompleted() error {
	return fmt.Errorf("%s: completion: %w", p.Name(), ErrUnsupportedOperation)
}

// OnError is not supported; subjects here never fail.
func (p *Printer) OnError(err error) error {
	return fmt.Errorf("%s: error notification %v: %w", p.Name(), err, ErrUnsupportedOperation)
}
