package compiler

import (
	"log/slog"

	"github.com/sarchlab/zfunge/ferr"
	"github.com/sarchlab/zfunge/grid"
	"github.com/sarchlab/zfunge/interp"
	"github.com/sarchlab/zfunge/value"
)

// maxPendingStates bounds the compiler's work queue. The driver does
// not dedupe QueuedStates (an open question the design leaves
// unresolved, see DESIGN.md); bounding the queue and erroring out is
// the chosen way to keep a divergent program from running forever.
const maxPendingStates = 4096

type pendingState struct {
	idx   int
	state interp.QueuedState
}

// Driver accumulates Blocks by running the interpreter core against a
// per-block scratch Callback, popping the work queue in LIFO order
// until it is empty.
type Driver struct {
	blocks  []Block
	pending []pendingState
	nextTag int
	err     error
}

// NewDriver returns an empty compiler driver.
func NewDriver() *Driver {
	return &Driver{}
}

// Compile runs g's entry state to completion, returning the blocks
// reached. blocks[0] is always the entry.
func (d *Driver) Compile(g *grid.Grid) ([]Block, error) {
	st := interp.New(g)
	entry := d.reserveIdx()
	d.enqueue(entry, st)

	for len(d.pending) > 0 {
		item := d.pending[len(d.pending)-1]
		d.pending = d.pending[:len(d.pending)-1]
		slog.Info("Compile", "Step", "BlockStart", "Idx", item.idx, "QueueDepth", len(d.pending))

		cb := &scratchCallback{driver: d}
		block, err := interp.Interpret[Block](&item.state, cb, interp.NoopDebugger{})
		if err != nil {
			return nil, err
		}
		if d.err != nil {
			return nil, d.err
		}
		d.blocks[item.idx] = block
	}

	slog.Info("Compile", "Step", "Done", "Blocks", len(d.blocks))
	return d.blocks, nil
}

// reserveIdx allocates a stable block index ahead of the block being
// filled in, so a Block's terminator can reference a sibling before
// that sibling has run.
func (d *Driver) reserveIdx() int {
	idx := len(d.blocks)
	d.blocks = append(d.blocks, Block{})
	return idx
}

func (d *Driver) enqueue(idx int, st interp.QueuedState) {
	if d.err != nil {
		return
	}
	if len(d.pending) >= maxPendingStates {
		slog.Warn("Compile", "Behavior", "QueueBoundExceeded", "Bound", maxPendingStates)
		d.err = ferr.Divergent("compiler work queue exceeded its bound; this program's symbolic state-space may be unbounded")
		return
	}
	d.pending = append(d.pending, pendingState{idx: idx, state: st})
}

// scratchCallback is the per-block Callback[Block] the driver hands to
// the interpreter core for exactly one block's worth of execution.
type scratchCallback struct {
	driver  *Driver
	actions []Action
}

func (c *scratchCallback) Output(v value.StackValue) {
	c.actions = append(c.actions, OutputChar{Value: v})
}

func (c *scratchCallback) Input() value.StackValue {
	id := c.driver.nextTag
	c.driver.nextTag++
	c.actions = append(c.actions, Input{ID: id})
	return value.Dynamic{Value: value.Tagged(id)}
}

func (c *scratchCallback) Duplicate(d value.DynamicValue) value.StackValue {
	id := c.driver.nextTag
	c.driver.nextTag++
	c.actions = append(c.actions, Tag{ID: id, Value: d})
	return value.Dynamic{Value: value.Tagged(id)}
}

func (c *scratchCallback) IfZero(d value.DynamicValue, t, f interp.QueuedState) Block {
	zeroIdx := c.driver.reserveIdx()
	nonZeroIdx := c.driver.reserveIdx()
	c.driver.enqueue(zeroIdx, t)
	c.driver.enqueue(nonZeroIdx, f)
	return Block{Actions: c.actions, End: If{Value: d, ZeroIdx: zeroIdx, NonZeroIdx: nonZeroIdx}}
}

func (c *scratchCallback) End() Block {
	return Block{Actions: c.actions, End: End{}}
}

var _ interp.Callback[Block] = (*scratchCallback)(nil)
