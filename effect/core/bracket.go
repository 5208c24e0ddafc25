package core

// Unit is the empty value produced by effects run purely for their side
// effects, such as the release phase of a bracket.
type Unit struct{}

// Outcome tags how the use phase of a bracket finished.
type Outcome int

const (
	// Completed means use produced a successful outcome.
	Completed Outcome = iota
	// Errored means use failed, or panicked before producing an outcome.
	Errored
)

func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Errored:
		return "errored"
	default:
		return "unknown"
	}
}

// BracketCase runs acquire; on success it runs use against the acquired
// resource, then always runs release with the resource and an Outcome tag
// describing how use finished, and only then surfaces use's outcome.
//
// If acquire fails, neither use nor release run and acquire's failure
// propagates directly. If use panics, release still runs (tagged Errored,
// its own outcome discarded) and the panic continues unwinding afterwards.
//
// If release itself fails, release's failure replaces use's outcome. Release
// is sequenced after use, so its error is the later one on the chain and
// wins; this rule is deliberate and tested, pick recovery inside release if
// a resource teardown error should not mask the use error.
func BracketCase[R, A any](
	acquire Deferred[R],
	use func(R) Deferred[A],
	release func(R, Outcome) Deferred[Unit],
) Deferred[A] {
	return func() Result[A] {
		acquired := acquire()
		if acquired.IsErr() {
			return Err[A](acquired.Err())
		}
		resource := acquired.Value()

		var used Result[A]
		finished := false
		defer func() {
			if finished {
				return
			}
			// use panicked: release still runs, then the panic resumes
			// unwinding. Release's outcome has nowhere to go here.
			release(resource, Errored)()
		}()
		used = use(resource)()
		finished = true

		outcome := Completed
		if used.IsErr() {
			outcome = Errored
		}
		if released := release(resource, outcome)(); released.IsErr() {
			return Err[A](released.Err())
		}
		return used
	}
}
