// Package backend defines the narrow contract the compiler's IR is
// translated against, standing in for a real LLVM binding (out of
// scope per spec.md §1). Translate walks []compiler.Block and drives
// a Builder; tests exercise it against a recording fake builder since
// no real code generator is wired up.
package backend

import (
	"fmt"
	"log/slog"

	"github.com/rs/xid"

	"github.com/sarchlab/zfunge/compiler"
	"github.com/sarchlab/zfunge/ferr"
	"github.com/sarchlab/zfunge/value"
)

// BlockRef is an opaque handle a Builder hands back for a basic block
// it created, so Translate never has to know the concrete IR type a
// real binding would use.
type BlockRef any

// Value is an opaque handle a Builder hands back for a computed
// runtime value (an i32 in the real LLVM translation).
type Value any

// Builder is the capability bundle Translate drives. A real
// implementation wraps an actual LLVM module/builder pair; the
// recording fake in backend_test.go exists purely to exercise
// Translate's walk without a real code generator.
type Builder interface {
	// DeclareFunction declares the host-environment helpers getchar,
	// putchar, puts and the main entry point, called once up front.
	DeclareFunction(name string) error
	// AddBlock creates one backend basic block for IR block index idx,
	// named per spec.md §4.7 ("entry" for index 0).
	AddBlock(idx int, name string) BlockRef
	// SetInsertPoint moves the builder's cursor to b.
	SetInsertPoint(b BlockRef)
	// ConstantInt materializes a literal i32.
	ConstantInt(v int32) Value
	// CallGetChar emits a call to getchar, returning its result.
	CallGetChar() Value
	// CallPutChar emits a call to putchar(v).
	CallPutChar(v Value)
	// GlobalString allocates an internal constant global byte array
	// named name containing s plus a trailing zero byte, returning a
	// pointer to it.
	GlobalString(name, s string) Value
	// CallPuts emits a call to puts(ptr).
	CallPuts(ptr Value)
	// BuildAdd/BuildSub/BuildMul emit the corresponding arithmetic
	// instruction and return its result.
	BuildAdd(lhs, rhs Value) Value
	BuildSub(lhs, rhs Value) Value
	BuildMul(lhs, rhs Value) Value
	// BuildCondBr emits a conditional branch: to zeroDst when cond == 0,
	// to nonZeroDst otherwise.
	BuildCondBr(cond Value, zeroDst, nonZeroDst BlockRef)
	// BuildRetZero emits `ret 0`, ending main successfully.
	BuildRetZero()
}

// Translate walks blocks and drives b per spec.md §4.7. Block 0 is
// always the entry; every block is created up front (AddBlock for all
// indices) before any is filled, so forward references to any block
// index are always valid.
func Translate(blocks []compiler.Block, b Builder) error {
	if len(blocks) == 0 {
		return ferr.Shape("translator requires at least one block")
	}
	slog.Info("Translate", "Step", "Start", "Blocks", len(blocks))

	if err := b.DeclareFunction("main"); err != nil {
		return err
	}

	refs := make([]BlockRef, len(blocks))
	for i := range blocks {
		name := fmt.Sprintf("block%d", i)
		if i == 0 {
			name = "entry"
		}
		refs[i] = b.AddBlock(i, name)
	}

	bound := map[int]Value{}
	for i, blk := range blocks {
		slog.Info("Translate", "Step", "Block", "Idx", i, "Actions", len(blk.Actions))
		b.SetInsertPoint(refs[i])

		for _, action := range blk.Actions {
			switch a := action.(type) {
			case compiler.Input:
				bound[a.ID] = b.CallGetChar()

			case compiler.OutputChar:
				v, err := computeStackValue(a.Value, bound, b)
				if err != nil {
					return err
				}
				b.CallPutChar(v)

			case compiler.OutputString:
				ptr := b.GlobalString(xid.New().String(), a.S)
				b.CallPuts(ptr)

			case compiler.Tag:
				v, err := compute(a.Value, bound, b)
				if err != nil {
					return err
				}
				bound[a.ID] = v

			default:
				return ferr.Shape(fmt.Sprintf("translator: unrecognized action %T", action))
			}
		}

		switch t := blk.End.(type) {
		case compiler.End:
			b.BuildRetZero()

		case compiler.If:
			v, err := compute(t.Value, bound, b)
			if err != nil {
				return err
			}
			b.BuildCondBr(v, refs[t.ZeroIdx], refs[t.NonZeroIdx])

		default:
			return ferr.Shape(fmt.Sprintf("translator: unrecognized terminator %T", blk.End))
		}
	}

	slog.Info("Translate", "Step", "Done")
	return nil
}

// computeStackValue computes the backend Value of a StackValue: a
// Const materializes directly, a Dynamic recurses into its tree.
func computeStackValue(v value.StackValue, bound map[int]Value, b Builder) (Value, error) {
	switch tv := v.(type) {
	case value.Const:
		return b.ConstantInt(int32(tv)), nil
	case value.Dynamic:
		return compute(tv.Value, bound, b)
	default:
		return nil, ferr.Shape(fmt.Sprintf("translator: unrecognized stack value %T", v))
	}
}

// compute computes the backend Value of a DynamicValue tree.
func compute(d value.DynamicValue, bound map[int]Value, b Builder) (Value, error) {
	switch tv := d.(type) {
	case value.Tagged:
		v, ok := bound[int(tv)]
		if !ok {
			panic(fmt.Sprintf("backend: translator looking up unknown tag %d", int(tv)))
		}
		return v, nil

	case value.Add:
		lhs, err := computeStackValue(tv.LHS, bound, b)
		if err != nil {
			return nil, err
		}
		rhs, err := computeStackValue(tv.RHS, bound, b)
		if err != nil {
			return nil, err
		}
		return b.BuildAdd(lhs, rhs), nil

	case value.Sub:
		lhs, err := computeStackValue(tv.LHS, bound, b)
		if err != nil {
			return nil, err
		}
		rhs, err := computeStackValue(tv.RHS, bound, b)
		if err != nil {
			return nil, err
		}
		return b.BuildSub(lhs, rhs), nil

	case value.Mul:
		lhs, err := computeStackValue(tv.LHS, bound, b)
		if err != nil {
			return nil, err
		}
		rhs, err := computeStackValue(tv.RHS, bound, b)
		if err != nil {
			return nil, err
		}
		return b.BuildMul(lhs, rhs), nil

	default:
		return nil, ferr.Shape(fmt.Sprintf("translator: unrecognized dynamic value %T", d))
	}
}
