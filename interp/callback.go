package interp

import "github.com/sarchlab/zfunge/value"

// DebugInspectable is the read-only view a Debugger is given of the
// current State at each step.
type DebugInspectable interface {
	InspectStack() []value.StackValue
	InspectPos() (x, y int)
	InspectNext() rune
}

// Debugger observes each step before it is dispatched. The direct
// interpreter and compiler both use a no-op Debugger; debugger.Wrapper
// is the only interesting implementation.
type Debugger interface {
	DebugStep(s DebugInspectable)
}

// NoopDebugger never traces.
type NoopDebugger struct{}

func (NoopDebugger) DebugStep(DebugInspectable) {}

// Callback is the capability bundle every front-end supplies to drive
// Interpret. End is the type produced when the loop terminates, either
// via '@' (End()) or a symbolic branch (IfZero()).
type Callback[End any] interface {
	// Output emits one character.
	Output(v value.StackValue)
	// Input obtains one character.
	Input() value.StackValue
	// Duplicate materializes a symbolic value so both copies the
	// caller ends up holding refer to the same underlying runtime
	// value rather than recomputing a shared subexpression.
	Duplicate(d value.DynamicValue) value.StackValue
	// IfZero branches on a symbolic discriminant. t is the
	// zero-branch continuation, f the non-zero-branch continuation.
	IfZero(d value.DynamicValue, t, f QueuedState) End
	// End terminates the interpreter loop.
	End() End
}
