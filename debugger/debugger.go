// Package debugger wraps the direct-exec callback with a pre-step hook
// that can print a trace of the stack, the next IP, and the upcoming
// instruction, and optionally stop for a REPL command between steps.
package debugger

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sarchlab/zfunge/direct"
	"github.com/sarchlab/zfunge/interp"
)

// Mode selects how the wrapper behaves between instructions.
type Mode int

const (
	// Step traces every instruction and blocks for one line of input.
	Step Mode = iota
	// Continue runs freely, tracing only while tracing is toggled on.
	Continue
)

func (m Mode) String() string {
	titleCaser := cases.Title(language.English)
	switch m {
	case Step:
		return titleCaser.String("step")
	case Continue:
		return titleCaser.String("continue")
	default:
		return "unknown"
	}
}

// Wrapper is a Debugger that traces interpreter steps and, in Step
// mode, reads REPL commands from in between them. It embeds a
// *direct.Callback so it can also be used directly as the
// interp.Callback[struct{}] the debugged run executes against.
//
// REPL commands and the program's own '~' input share one stdin
// stream, so both must read through the same *bufio.Reader: two
// independent buffered readers over the same underlying io.Reader
// would each pull ahead into their own buffer and silently steal
// bytes from the other.
type Wrapper struct {
	*direct.Callback

	mode    Mode
	tracing bool

	in  *bufio.Reader
	out io.Writer
}

// New builds a debugger wrapper in Step mode with tracing enabled,
// reading REPL commands from in and writing both traces and the
// debugged program's own output to out.
func New(in io.Reader, out io.Writer) *Wrapper {
	shared := bufio.NewReader(in)
	return &Wrapper{
		Callback: direct.New(shared, out),
		mode:     Step,
		tracing:  true,
		in:       shared,
		out:      out,
	}
}

// SetMode overrides the wrapper's starting mode, for front-ends (the
// "d" CLI subcommand's --continue flag) that want to skip the initial
// Step-mode prompting.
func (w *Wrapper) SetMode(m Mode) { w.mode = m }

// SetTracing overrides whether Continue-mode steps are traced.
func (w *Wrapper) SetTracing(on bool) { w.tracing = on }

// DebugStep implements interp.Debugger. In Step mode it always prints
// the trace and reads one command line; in Continue mode it prints
// only when tracing is on and never blocks.
func (w *Wrapper) DebugStep(s interp.DebugInspectable) {
	switch w.mode {
	case Step:
		w.printTrace(s)
		w.readCommand()
	case Continue:
		if w.tracing {
			w.printTrace(s)
		}
	}
}

func (w *Wrapper) printTrace(s interp.DebugInspectable) {
	x, y := s.InspectPos()
	next := s.InspectNext()

	cells := make([]string, 0, len(s.InspectStack()))
	for _, v := range s.InspectStack() {
		cells = append(cells, fmt.Sprintf("%v", v))
	}

	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("[%s] next (%d, %d) = %q", w.mode, x, y, next))
	t.AppendHeader(table.Row{"stack"})
	t.AppendRow(table.Row{strings.Join(cells, " ")})
	fmt.Fprintln(w.out, t.Render())
}

// readCommand interprets one line of REPL input: "c" switches to
// Continue mode, "t" toggles tracing, anything else is a bare
// single-step advance.
func (w *Wrapper) readCommand() {
	line, err := w.in.ReadString('\n')
	if err != nil && line == "" {
		return
	}
	switch strings.TrimSpace(line) {
	case "c":
		w.mode = Continue
	case "t":
		w.tracing = !w.tracing
	}
}

var _ interp.Debugger = (*Wrapper)(nil)
var _ interp.Callback[struct{}] = (*Wrapper)(nil)
