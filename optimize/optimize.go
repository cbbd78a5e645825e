// Package optimize implements optimizer passes over compiled blocks.
// Passes are pure functions []compiler.Block -> []compiler.Block;
// block indices embedded in terminators remain stable across a pass.
package optimize

import (
	"github.com/sarchlab/zfunge/compiler"
	"github.com/sarchlab/zfunge/value"
)

// Level selects which passes Run applies.
type Level int

const (
	// None runs no passes; Run returns its input unchanged.
	None Level = iota
	// All applies every pass currently defined — today, just the
	// string-print coalescing pass.
	All
)

// Pass transforms the action list of every block, leaving each
// block's terminator untouched.
type Pass interface {
	Apply(blocks []compiler.Block) []compiler.Block
}

// Run applies the passes level selects, in order.
func Run(level Level, blocks []compiler.Block) []compiler.Block {
	if level == None {
		return blocks
	}
	out := blocks
	for _, p := range passesFor(level) {
		out = p.Apply(out)
	}
	return out
}

func passesFor(level Level) []Pass {
	switch level {
	case All:
		return []Pass{StringPrintPass{}}
	default:
		return nil
	}
}

// StringPrintPass collects maximal contiguous runs of
// OutputChar(Const(c)) within a block and replaces each run with a
// single OutputString, leaving every other action and the terminator
// untouched. The character output is preserved except that a Const
// which is not a valid Unicode codepoint is dropped from its run.
type StringPrintPass struct{}

func (StringPrintPass) Apply(blocks []compiler.Block) []compiler.Block {
	out := make([]compiler.Block, len(blocks))
	for i, b := range blocks {
		out[i] = compiler.Block{Actions: coalesce(b.Actions), End: b.End}
	}
	return out
}

func coalesce(actions []compiler.Action) []compiler.Action {
	result := make([]compiler.Action, 0, len(actions))
	var run []rune

	flush := func() {
		if len(run) == 0 {
			return
		}
		result = append(result, compiler.OutputString{S: string(run)})
		run = nil
	}

	for _, a := range actions {
		oc, ok := a.(compiler.OutputChar)
		if !ok {
			flush()
			result = append(result, a)
			continue
		}
		c, ok := oc.Value.(value.Const)
		if !ok {
			flush()
			result = append(result, a)
			continue
		}
		r := rune(int32(c))
		if !validRune(r) {
			// The Open Question on char-conversion failure (§9) is
			// resolved by discarding the offending codepoint rather
			// than aborting the whole pass.
			continue
		}
		run = append(run, r)
	}
	flush()

	return result
}

func validRune(r rune) bool {
	return r >= 0 && r <= 0x10FFFF && !(r >= 0xD800 && r <= 0xDFFF)
}
