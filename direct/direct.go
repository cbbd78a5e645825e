// Package direct is the direct-exec front-end: a concrete,
// side-effecting Callback that prints output characters, reads one
// byte from stdin on input, and panics if it is ever asked to
// materialize or branch on a symbolic value — direct execution cannot
// produce an unknown, so hitting one here is a bug in the front-end,
// not in the user's program.
package direct

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sarchlab/zfunge/interp"
	"github.com/sarchlab/zfunge/value"
)

// Callback is the direct interpreter's side-effecting front-end. Its
// End type is struct{}, the Go analogue of Rust's ().
type Callback struct {
	out io.Writer
	in  *bufio.Reader
}

// New builds a direct-exec callback reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Callback {
	return &Callback{out: out, in: bufio.NewReader(in)}
}

func (c *Callback) Output(v value.StackValue) {
	cv, ok := v.(value.Const)
	if !ok {
		panic("direct: cannot output a symbolic value")
	}
	fmt.Fprintf(c.out, "%c", rune(int32(cv)))
}

func (c *Callback) Input() value.StackValue {
	b, err := c.in.ReadByte()
	if err != nil {
		return value.Const(0)
	}
	return value.Const(int32(b))
}

func (c *Callback) Duplicate(value.DynamicValue) value.StackValue {
	panic("direct: duplication of a symbolic value is not supported by the direct interpreter")
}

func (c *Callback) IfZero(value.DynamicValue, interp.QueuedState, interp.QueuedState) struct{} {
	panic("direct: symbolic branching is not supported by the direct interpreter")
}

func (c *Callback) End() struct{} {
	return struct{}{}
}

var _ interp.Callback[struct{}] = (*Callback)(nil)
