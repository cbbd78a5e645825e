// Package compiler turns a grid into a block-structured IR by running
// the symbolic interpreter core against a scratch callback that
// records actions and, on a symbolic branch, enqueues both
// continuations as new blocks.
package compiler

import "github.com/sarchlab/zfunge/value"

// Action is one IR instruction inside a Block.
type Action interface {
	isAction()
}

// Input records that a fresh Tagged value was bound to ID by reading
// one input character.
type Input struct {
	ID int
}

// OutputChar emits one character, either a literal Const or a symbolic
// Dynamic tree to be computed by the backend.
type OutputChar struct {
	Value value.StackValue
}

// OutputString is introduced only by the string-print coalescing
// optimizer pass (see the optimize package); the compiler driver never
// emits it directly.
type OutputString struct {
	S string
}

// Tag records that materializing a DynamicValue (via ':') bound it to
// a fresh id, so later references share one computed value instead of
// recomputing the subexpression.
type Tag struct {
	ID    int
	Value value.DynamicValue
}

func (Input) isAction()        {}
func (OutputChar) isAction()   {}
func (OutputString) isAction() {}
func (Tag) isAction()          {}

// Terminator is how a Block hands control to the next block, or ends
// the program.
type Terminator interface {
	isTerminator()
}

// End terminates the program from this block.
type End struct{}

// If is the IR form of a symbolic '_'/'|'. ZeroIdx is the block to run
// when Value evaluates to zero, NonZeroIdx otherwise — this mirrors
// the interpreter core's if_zero(d, t, f) contract (§4.4), where t is
// always the zero branch. A backend translating this terminator must
// branch on Value == 0 to ZeroIdx, else NonZeroIdx.
type If struct {
	Value      value.DynamicValue
	ZeroIdx    int
	NonZeroIdx int
}

func (End) isTerminator() {}
func (If) isTerminator()  {}

// Block is one basic block of the compiled program: a straight-line
// run of Actions ending in a Terminator.
type Block struct {
	Actions []Action
	End     Terminator
}
