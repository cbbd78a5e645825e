package interp

import (
	"github.com/sarchlab/zfunge/grid"
	"github.com/sarchlab/zfunge/value"
)

// StringmodeState is tri-state, per spec.md §3.
type StringmodeState int

const (
	// Not is the default mode: characters dispatch as opcodes.
	Not StringmodeState = iota
	// Once captures exactly one character as a literal, then reverts
	// to Not.
	Once
	// Stringmode captures every character but '"' as a literal.
	Stringmode
)

// State is the interpreter's per-execution record. delta is nil at
// program entry; the first call to Next forces Right while reading
// the cell at the current IP.
//
// QueuedState is a type alias: a State snapshot doubles as a deferred
// continuation the compiler enqueues for each branch of a symbolic
// conditional.
type State struct {
	Grid  *grid.Grid
	IP    grid.IP
	Delta *grid.Delta

	Stack      []value.StackValue
	Stringmode StringmodeState
}

// QueuedState is a cloneable snapshot of State used by the compiler to
// enqueue both branches of a symbolic conditional.
type QueuedState = State

// New builds the initial State for a freshly loaded grid.
func New(g *grid.Grid) State {
	return State{
		Grid:       g,
		IP:         g.IP(),
		Delta:      nil,
		Stack:      nil,
		Stringmode: Not,
	}
}

// Clone returns an independent copy: mutating the stack or delta of
// either the original or the clone never affects the other.
func (s State) Clone() State {
	clone := s
	clone.Stack = append([]value.StackValue(nil), s.Stack...)
	if s.Delta != nil {
		d := *s.Delta
		clone.Delta = &d
	}
	return clone
}

// WithDelta returns a clone of State with delta set to d, sharing no
// mutable aliasing with the receiver.
func (s State) WithDelta(d grid.Delta) State {
	clone := s.Clone()
	clone.Delta = &d
	return clone
}

// Next fetches the character at the (possibly just-advanced) IP and
// advances for the following call. It is total: the grid is toroidal,
// so it never signals exhaustion.
func (s *State) Next() rune {
	if s.Delta != nil {
		s.IP = s.IP.Advance(*s.Delta)
	} else {
		d := grid.Right
		s.Delta = &d
	}
	return s.Grid.At(s.IP)
}

// Advance skips one extra cell in the current delta (or Right if none
// has been set yet), used by '#'.
func (s *State) Advance() {
	d := grid.Right
	if s.Delta != nil {
		d = *s.Delta
	}
	s.IP = s.IP.Advance(d)
}

// Push appends v to the top of the stack.
func (s *State) Push(v value.StackValue) {
	s.Stack = append(s.Stack, v)
}

// Pop returns Const(0) on an empty stack, per spec.md's invariant.
func (s *State) Pop() value.StackValue {
	if len(s.Stack) == 0 {
		return value.Const(0)
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top
}

// SetDelta sets the IP's direction of travel.
func (s *State) SetDelta(d grid.Delta) {
	s.Delta = &d
}

// ToggleStringmode flips between Not and Stringmode, used by '"'.
func (s *State) ToggleStringmode() {
	if s.Stringmode == Stringmode {
		s.Stringmode = Not
	} else {
		s.Stringmode = Stringmode
	}
}

// OnceStringmode switches to the single-character capture mode, used
// by '\''.
func (s *State) OnceStringmode() {
	s.Stringmode = Once
}

// InStringmode reports whether the current mode pushes characters as
// literals instead of dispatching them as opcodes.
func (s *State) InStringmode() bool {
	return s.Stringmode != Not
}

// Inspect* implement the DebugInspectable contract: what a debugger
// callback is allowed to observe about the state without being able
// to mutate it.
func (s *State) InspectStack() []value.StackValue { return s.Stack }
func (s *State) InspectPos() (x, y int)           { return s.IP.X, s.IP.Y }
func (s *State) InspectNext() rune {
	// Interpret calls DebugStep after Next has fetched the cell at the
	// current IP and before dispatching it, so the cell at InspectPos is
	// the instruction that runs next.
	return s.Grid.At(s.IP)
}
