// Package pipeline composes fallible stages: functions from an input
// to an output-or-error. The CLI's compile subcommand chains its
// reader, compiler, optimizer and backend stages through it instead of
// hand-inlining the error-check-and-bail boilerplate at each step.
package pipeline

// Stage is one fallible step from In to Out.
type Stage[In, Out any] func(In) (Out, error)

// Run executes the stage. It exists so a Stage value reads like a
// method call at call sites instead of a bare function application.
func (s Stage[In, Out]) Run(in In) (Out, error) {
	return s(in)
}

// Then composes first and second into a single stage: second never
// runs if first fails, and first's error is returned unchanged.
func Then[In, Mid, Out any](first Stage[In, Mid], second Stage[Mid, Out]) Stage[In, Out] {
	return func(in In) (Out, error) {
		mid, err := first(in)
		if err != nil {
			var zero Out
			return zero, err
		}
		return second(mid)
	}
}

// Const lifts a fixed output into a stage that ignores its input and
// never fails, useful for seeding a pipeline whose first real stage
// takes no meaningful In.
func Const[In, Out any](v Out) Stage[In, Out] {
	return func(In) (Out, error) {
		return v, nil
	}
}
