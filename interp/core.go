// Package interp is the symbolic interpreter core: a single driver
// loop shared by the direct interpreter, the compiler, and the
// debugger. It is parameterized over a Callback[End] capability that
// decides what happens at I/O and at symbolic control-flow points, and
// a Debugger capability that observes each step.
package interp

import (
	"github.com/sarchlab/zfunge/ferr"
	"github.com/sarchlab/zfunge/grid"
	"github.com/sarchlab/zfunge/value"
)

// Interpret runs state to completion against cb and dbg, returning
// whatever End value the callback produced. It terminates only via
// '@' (cb.End()) or a symbolic '_'/'|' delegation (cb.IfZero()); any
// other unrecognized instruction outside stringmode is a fatal,
// surfaced UnimplementedInstruction error, not a panic.
func Interpret[End any](state *State, cb Callback[End], dbg Debugger) (End, error) {
	var zero End

	for {
		c := state.Next()
		dbg.DebugStep(state)

		switch {
		case c == '"':
			state.ToggleStringmode()
			continue

		case state.InStringmode():
			state.Push(value.Const(int32(c)))
			if state.Stringmode == Once {
				state.Stringmode = Not
			}
			continue
		}

		switch {
		case c == '\'':
			state.OnceStringmode()

		case c == ' ':
			// no-op

		case c == '<':
			state.SetDelta(grid.Left)
		case c == '>':
			state.SetDelta(grid.Right)
		case c == '^':
			state.SetDelta(grid.Up)
		case c == 'v':
			state.SetDelta(grid.Down)

		case c == '#':
			state.Advance()

		case c >= '0' && c <= '9':
			state.Push(value.Const(int32(c - '0')))

		case c >= 'a' && c <= 'f':
			state.Push(value.Const(int32(10 + c - 'a')))

		case c == '+':
			b := state.Pop()
			a := state.Pop()
			state.Push(value.AddOp(a, b))

		case c == '*':
			b := state.Pop()
			a := state.Pop()
			state.Push(value.MulOp(a, b))

		case c == '-':
			// spec's explicit operand-order clarification: the value
			// popped first (the one that was on top) is a, and the
			// result is a - b.
			a := state.Pop()
			b := state.Pop()
			state.Push(value.SubOp(a, b))

		case c == ':':
			v := state.Pop()
			switch tv := v.(type) {
			case value.Const:
				state.Push(tv)
				state.Push(tv)
			case value.Dynamic:
				materialized := cb.Duplicate(tv.Value)
				state.Push(materialized)
				state.Push(materialized)
			}

		case c == '_':
			v := state.Pop()
			switch tv := v.(type) {
			case value.Const:
				if int32(tv) == 0 {
					state.SetDelta(grid.Right)
				} else {
					state.SetDelta(grid.Left)
				}
			case value.Dynamic:
				return cb.IfZero(tv.Value, state.WithDelta(grid.Right), state.WithDelta(grid.Left)), nil
			}

		case c == '|':
			v := state.Pop()
			switch tv := v.(type) {
			case value.Const:
				if int32(tv) == 0 {
					state.SetDelta(grid.Down)
				} else {
					state.SetDelta(grid.Up)
				}
			case value.Dynamic:
				return cb.IfZero(tv.Value, state.WithDelta(grid.Down), state.WithDelta(grid.Up)), nil
			}

		case c == '~':
			state.Push(cb.Input())

		case c == ',':
			cb.Output(state.Pop())

		case c == '@':
			return cb.End(), nil

		default:
			return zero, ferr.Unimplemented(c)
		}
	}
}
