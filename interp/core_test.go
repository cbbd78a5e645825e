package interp_test

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/sarchlab/zfunge/grid"
	"github.com/sarchlab/zfunge/interp"
	"github.com/sarchlab/zfunge/value"
)

func mustGrid(t *testing.T, lines ...string) *grid.Grid {
	t.Helper()
	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	rows := make([][]rune, len(lines))
	for i, l := range lines {
		row := []rune(l)
		for len(row) < width {
			row = append(row, ' ')
		}
		rows[i] = row
	}
	g, err := grid.New(rows)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// outputCollector is a trivial Callback[string] used to assert on the
// characters emitted, matching scenarios 1/2 of spec.md §8.
type outputCollector struct {
	out   []rune
	input []rune
}

func (o *outputCollector) Output(v value.StackValue) {
	c, ok := v.(value.Const)
	if !ok {
		panic("outputCollector received a non-Const value")
	}
	o.out = append(o.out, rune(int32(c)))
}

func (o *outputCollector) Input() value.StackValue {
	if len(o.input) == 0 {
		return value.Const(0)
	}
	c := o.input[0]
	o.input = o.input[1:]
	return value.Const(int32(c))
}

func (o *outputCollector) Duplicate(value.DynamicValue) value.StackValue {
	panic("outputCollector cannot duplicate symbolic values")
}

func (o *outputCollector) IfZero(value.DynamicValue, interp.QueuedState, interp.QueuedState) string {
	panic("outputCollector cannot branch on symbolic values")
}

func (o *outputCollector) End() string {
	return string(o.out)
}

func run(t *testing.T, program string) string {
	t.Helper()
	g := mustGrid(t, program)
	st := interp.New(g)
	cb := &outputCollector{}
	out, err := interp.Interpret[string](&st, cb, interp.NoopDebugger{})
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestScenarioHelloWorldWithJumpOverEnd(t *testing.T) {
	got := run(t, `0"olleH">:#,_@`)
	if got != "Hello" {
		t.Fatalf("got %q, want %q", got, "Hello")
	}
}

func TestScenarioStringmodeWrap(t *testing.T) {
	got := run(t, `"ABC",,,@`)
	if got != "CBA" {
		t.Fatalf("got %q, want %q", got, "CBA")
	}
}

func TestPopOnEmptyStackReturnsConstZero(t *testing.T) {
	st := interp.New(mustGrid(t, "@"))
	if v := st.Pop(); v != value.Const(0) {
		t.Fatalf("Pop() on empty stack = %v, want Const(0)", v)
	}
}

func TestStringmodeTransitions(t *testing.T) {
	st := interp.New(mustGrid(t, `"`))
	if st.Stringmode != interp.Not {
		t.Fatal("expected initial mode Not")
	}
	st.ToggleStringmode()
	if st.Stringmode != interp.Stringmode {
		t.Fatal("expected Stringmode after toggling from Not")
	}
	st.ToggleStringmode()
	if st.Stringmode != interp.Not {
		t.Fatal("expected Not after toggling from Stringmode")
	}

	st.OnceStringmode()
	if st.Stringmode != interp.Once {
		t.Fatal("expected Once after OnceStringmode")
	}
}

func TestDuplicateOfDynamicDelegatesToCallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := NewMockCallback(ctrl)
	materialized := value.Dynamic{Value: value.Tagged(7)}
	mock.EXPECT().Input().Return(value.Dynamic{Value: value.Tagged(0)})
	mock.EXPECT().Duplicate(value.Tagged(0)).Return(materialized)
	mock.EXPECT().Output(materialized).Times(2)
	mock.EXPECT().End().Return(testEnd{Label: "done"})

	st := interp.New(mustGrid(t, `~:,,@`))
	got, err := interp.Interpret[testEnd](&st, mock, interp.NoopDebugger{})
	if err != nil {
		t.Fatal(err)
	}
	if got.Label != "done" {
		t.Fatalf("got %+v, want Label=done", got)
	}
}

func TestSymbolicIfZeroDelegatesBothBranches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := NewMockCallback(ctrl)
	mock.EXPECT().Input().Return(value.Dynamic{Value: value.Tagged(0)})
	mock.EXPECT().IfZero(value.Tagged(0), gomock.Any(), gomock.Any()).
		DoAndReturn(func(d value.DynamicValue, t, f interp.QueuedState) testEnd {
			if t.Delta == nil || *t.Delta != grid.Right {
				panic("zero branch should carry Right delta")
			}
			if f.Delta == nil || *f.Delta != grid.Left {
				panic("nonzero branch should carry Left delta")
			}
			return testEnd{Label: "branched"}
		})

	st := interp.New(mustGrid(t, `~_@ `))
	got, err := interp.Interpret[testEnd](&st, mock, interp.NoopDebugger{})
	if err != nil {
		t.Fatal(err)
	}
	if got.Label != "branched" {
		t.Fatalf("got %+v, want Label=branched", got)
	}
}

// These two cases isolate the concrete (non-symbolic) '_' truth
// convention matching scenario 8: popping a zero sends the IP right,
// a nonzero value sends it left. Each program pushes onto a second
// row via 'v' so the branch's two neighbors are never the cell that
// did the pushing, and the "wrong way" neighbor is a ',' that would
// print a NUL (from the now-empty stack) before its own '@' — so a
// flipped convention would show up as "\x00" output, not a hang.
func TestConcreteIfZeroTruthConventionRight(t *testing.T) {
	g := mustGrid(t, "0v", ",_@@")
	st := interp.New(g)
	cb := &outputCollector{}
	out, err := interp.Interpret[string](&st, cb, interp.NoopDebugger{})
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Fatalf("got %q, want no output (popping a zero sends '_' rightward)", out)
	}
}

func TestConcreteIfZeroTruthConventionLeft(t *testing.T) {
	g := mustGrid(t, "1v", "@_,@")
	st := interp.New(g)
	cb := &outputCollector{}
	out, err := interp.Interpret[string](&st, cb, interp.NoopDebugger{})
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Fatalf("got %q, want no output (popping a nonzero sends '_' leftward)", out)
	}
}

func TestUnimplementedInstructionIsAFatalErrorNotAPanic(t *testing.T) {
	st := interp.New(mustGrid(t, `z@`))
	cb := &outputCollector{}
	_, err := interp.Interpret[string](&st, cb, interp.NoopDebugger{})
	if err == nil {
		t.Fatal("expected an UnimplementedInstruction error")
	}
}
