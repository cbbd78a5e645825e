// Package ferr is the unified error type threaded through every
// pipeline stage, mirroring the single Error enum the whole system
// propagates per the error handling design.
package ferr

import "fmt"

// Kind distinguishes the handful of ways a stage can fail.
type Kind int

const (
	// IO wraps an underlying read/write failure.
	IO Kind = iota
	// InterpreterEOF is reserved: the interpreter loop exhausted
	// without reaching '@' or a symbolic branch. Unreachable on a
	// well-formed toroidal grid, kept for completeness.
	InterpreterEOF
	// UnimplementedInstruction carries the offending character.
	UnimplementedInstruction
	// InvalidOptimization is a CLI-level parse error for -O.
	InvalidOptimization
	// GridShape means rows of unequal length reached Grid.New.
	GridShape
	// CompilerDivergent means the compiler's work queue grew past its
	// bound without draining. Additive: not part of spec.md's five
	// named kinds, see DESIGN.md.
	CompilerDivergent
)

func (k Kind) String() string {
	switch k {
	case IO:
		return "IO"
	case InterpreterEOF:
		return "InterpreterEOF"
	case UnimplementedInstruction:
		return "UnimplementedInstruction"
	case InvalidOptimization:
		return "InvalidOptimization"
	case GridShape:
		return "GridShape"
	case CompilerDivergent:
		return "CompilerDivergent"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the single error type every stage returns.
type Error struct {
	Kind    Kind
	Char    rune // set for UnimplementedInstruction
	Message string
	Wrapped error // set for IO
}

func (e *Error) Error() string {
	switch e.Kind {
	case IO:
		return fmt.Sprintf("%s", e.Wrapped)
	case UnimplementedInstruction:
		return fmt.Sprintf("unimplemented instruction: %q", e.Char)
	case InterpreterEOF:
		return "interpreter ran out of input without reaching an end state"
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WrapIO builds an IO error from an underlying error.
func WrapIO(err error) *Error {
	return &Error{Kind: IO, Wrapped: err, Message: err.Error()}
}

// EOF builds the reserved InterpreterEOF error.
func EOF() *Error {
	return &Error{Kind: InterpreterEOF}
}

// Unimplemented builds an UnimplementedInstruction error for c.
func Unimplemented(c rune) *Error {
	return &Error{Kind: UnimplementedInstruction, Char: c}
}

// InvalidOpt builds an InvalidOptimization error for the given -O value.
func InvalidOpt(level string) *Error {
	return &Error{Kind: InvalidOptimization, Message: fmt.Sprintf("invalid optimization level: %q", level)}
}

// Shape builds a GridShape error with a human-readable message.
func Shape(message string) *Error {
	return &Error{Kind: GridShape, Message: message}
}

// Divergent builds a CompilerDivergent error.
func Divergent(message string) *Error {
	return &Error{Kind: CompilerDivergent, Message: message}
}
