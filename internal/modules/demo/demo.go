package demo

import (
	"github.com/reusedev/observer-hub/internal/modules/observer"
)

// Run creates two subjects and four observers, wires them together, changes
// the subjects' states, detaches Observer 1 from both subjects and changes the
// states again. Every step is written to the registry's logger.
func Run(reg *observer.Registry) {
	logger := reg.Logger()
	section := func(title string) {
		logger.Info().Msgf("** %s **", title)
	}

	section("Creating Subjects")
	subject1 := reg.NewSubject(observer.NewState(1))
	subject2 := reg.NewSubject(observer.NewState(2))

	section("Creating Observers")
	observer1 := reg.NewObserver()
	observer2 := reg.NewObserver()
	observer3 := reg.NewObserver()
	observer4 := reg.NewObserver()

	section("Attaching Observers to Subjects")
	observer1Subject1 := subject1.Subscribe(observer1)
	subject1.Subscribe(observer2)
	observer1Subject2 := subject2.Subscribe(observer1)
	subject2.Subscribe(observer3)
	subject2.Subscribe(observer4)

	section("Modifying subject states")
	subject1.SetState(observer.NewState(10))
	subject2.SetState(observer.NewState(20))

	section("Detaching Observer 1 from Subject 1 and Subject 2")
	observer1Subject1.Unsubscribe()
	observer1Subject2.Unsubscribe()

	section("Modifying subject states")
	subject1.SetState(observer.NewState(88))
	subject2.SetState(observer.NewState(99))
}
