// Package value implements the stack-value algebra: a sum type over
// concrete integers and symbolic expression trees. No Dynamic subtree
// is ever eagerly simplified; AddOp/SubOp/MulOp fold only when both
// operands of an arithmetic op are Const.
package value

import "fmt"

// StackValue is either a Const or a Dynamic. It is implemented as a Go
// interface sum type: each concrete type below carries its own data
// and the marker method prevents other packages from inventing new
// variants.
type StackValue interface {
	stackValue()
	fmt.Stringer
}

// Const is a concrete integer.
type Const int32

func (Const) stackValue()      {}
func (c Const) String() string { return fmt.Sprintf("Const(%d)", int32(c)) }

// Dynamic wraps a symbolic expression tree.
type Dynamic struct {
	Value DynamicValue
}

func (Dynamic) stackValue() {}
func (d Dynamic) String() string {
	return fmt.Sprintf("Dynamic(%s)", d.Value)
}

// DynamicValue is the symbolic tree: an opaque Tagged unknown, or
// recursive Add/Sub/Mul over two StackValue leaves (each leaf may
// itself be Const or Dynamic).
type DynamicValue interface {
	dynamicValue()
	fmt.Stringer
}

// Tagged is an opaque unknown introduced by an input or a
// branch/duplicate materialization. id is a dense index, unique
// within a single compilation.
type Tagged int

func (Tagged) dynamicValue()    {}
func (t Tagged) String() string { return fmt.Sprintf("Tagged(%d)", int(t)) }

// Add, Sub, Mul are the three recursive symbolic arithmetic nodes.
// Each owns its operands by value; since StackValue is an interface,
// no subtree is ever shared between two trees — duplication always
// goes through a fresh Tagged binding instead (see interp.Callback.Duplicate).
type Add struct{ LHS, RHS StackValue }
type Sub struct{ LHS, RHS StackValue }
type Mul struct{ LHS, RHS StackValue }

func (Add) dynamicValue() {}
func (Sub) dynamicValue() {}
func (Mul) dynamicValue() {}

func (a Add) String() string { return fmt.Sprintf("Add(%s, %s)", a.LHS, a.RHS) }
func (s Sub) String() string { return fmt.Sprintf("Sub(%s, %s)", s.LHS, s.RHS) }
func (m Mul) String() string { return fmt.Sprintf("Mul(%s, %s)", m.LHS, m.RHS) }

// AddOp, SubOp, MulOp are the sole constructors for symbolic
// arithmetic results: they fold when both operands are Const and
// otherwise build the corresponding Dynamic node. lhs/rhs are
// consumed by value (the interpreter pops them before calling these),
// so no reference cycle can form.
//
// SubOp follows the spec's explicit operand-order clarification for
// '-': the value popped first (the one that was on top of the stack)
// is lhs, and the result is lhs - rhs.
func AddOp(lhs, rhs StackValue) StackValue {
	if a, ok := lhs.(Const); ok {
		if b, ok := rhs.(Const); ok {
			return Const(int32(a) + int32(b))
		}
	}
	return Dynamic{Value: Add{LHS: lhs, RHS: rhs}}
}

func SubOp(lhs, rhs StackValue) StackValue {
	if a, ok := lhs.(Const); ok {
		if b, ok := rhs.(Const); ok {
			return Const(int32(a) - int32(b))
		}
	}
	return Dynamic{Value: Sub{LHS: lhs, RHS: rhs}}
}

func MulOp(lhs, rhs StackValue) StackValue {
	if a, ok := lhs.(Const); ok {
		if b, ok := rhs.(Const); ok {
			return Const(int32(a) * int32(b))
		}
	}
	return Dynamic{Value: Mul{LHS: lhs, RHS: rhs}}
}
