// Command zfunge is the CLI orchestrator: it wires the reader,
// optimizer, compiler/interpreter/debugger, and backend stages behind
// three subcommands (compile, interpret, debug).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tebeka/atexit"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/zfunge/backend"
	"github.com/sarchlab/zfunge/compiler"
	"github.com/sarchlab/zfunge/debugger"
	"github.com/sarchlab/zfunge/direct"
	"github.com/sarchlab/zfunge/ferr"
	"github.com/sarchlab/zfunge/grid"
	"github.com/sarchlab/zfunge/interp"
	"github.com/sarchlab/zfunge/optimize"
	"github.com/sarchlab/zfunge/pipeline"
	"github.com/sarchlab/zfunge/reader"
)

func main() {
	atexit.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: zfunge c|i|d [flags] FILENAME")
		return 1
	}

	var err error
	switch args[0] {
	case "c":
		err = runCompile(args[1:])
	case "i":
		err = runInterpret(args[1:])
	case "d":
		err = runDebug(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", args[0])
		return 1
	}
	if err != nil {
		slog.Error("Run", "Subcommand", args[0], "Error", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runCompile(args []string) error {
	fs := flag.NewFlagSet("c", flag.ContinueOnError)
	var optO, optLong string
	fs.StringVar(&optO, "O", "", `optimization level ("" or "0")`)
	fs.StringVar(&optLong, "optimize", "", "alias for -O")
	debugFile := fs.Bool("debug-file", false, "dump the loaded grid")
	debugUnopt := fs.Bool("debug-unoptimized-ir", false, "dump the IR before optimization")
	debugIR := fs.Bool("debug-ir", false, "dump the IR after optimization")
	debugLLVM := fs.Bool("debug-llvm", false, "dump the backend call trace")
	if err := fs.Parse(args); err != nil {
		return ferr.WrapIO(err)
	}
	if fs.NArg() != 1 {
		return ferr.Shape("zfunge c requires exactly one FILENAME argument")
	}

	level, err := parseOptLevel(mergeOptFlag(optO, optLong))
	if err != nil {
		return err
	}

	loadStage := pipeline.Stage[string, *grid.Grid](func(path string) (*grid.Grid, error) {
		g, err := reader.Load(path)
		if err != nil {
			return nil, err
		}
		if *debugFile {
			dumpGrid(g)
		}
		return g, nil
	})

	compileStage := pipeline.Stage[*grid.Grid, []compiler.Block](func(g *grid.Grid) ([]compiler.Block, error) {
		blocks, err := compiler.NewDriver().Compile(g)
		if err != nil {
			return nil, err
		}
		if *debugUnopt {
			dumpBlocks("unoptimized IR", blocks)
		}
		return blocks, nil
	})

	optimizeStage := pipeline.Stage[[]compiler.Block, []compiler.Block](func(blocks []compiler.Block) ([]compiler.Block, error) {
		blocks = optimize.Run(level, blocks)
		if *debugIR {
			dumpBlocks("optimized IR", blocks)
		}
		return blocks, nil
	})

	backendStage := pipeline.Stage[[]compiler.Block, *tracingBuilder](func(blocks []compiler.Block) (*tracingBuilder, error) {
		b := &tracingBuilder{}
		if err := backend.Translate(blocks, b); err != nil {
			return nil, err
		}
		return b, nil
	})

	compile := pipeline.Then(pipeline.Then(pipeline.Then(loadStage, compileStage), optimizeStage), backendStage)

	slog.Info("Compile", "Step", "PipelineStart", "File", fs.Arg(0), "OptLevel", level)
	b, err := compile.Run(fs.Arg(0))
	if err != nil {
		return err
	}
	if *debugLLVM {
		dumpTrace(b.trace)
	}
	return nil
}

// mergeOptFlag lets -O and --optimize bind to independent flag.Value
// destinations while still behaving as one option: "0" from either
// flag wins since it is the only non-default value the CLI accepts.
func mergeOptFlag(short, long string) string {
	if short == "0" || long == "0" {
		return "0"
	}
	return ""
}

func parseOptLevel(s string) (optimize.Level, error) {
	switch s {
	case "":
		return optimize.All, nil
	case "0":
		return optimize.None, nil
	default:
		return optimize.None, ferr.InvalidOpt(s)
	}
}

func runInterpret(args []string) error {
	fs := flag.NewFlagSet("i", flag.ContinueOnError)
	debugFile := fs.Bool("debug-file", false, "dump the loaded grid")
	if err := fs.Parse(args); err != nil {
		return ferr.WrapIO(err)
	}
	if fs.NArg() != 1 {
		return ferr.Shape("zfunge i requires exactly one FILENAME argument")
	}

	g, err := reader.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	if *debugFile {
		dumpGrid(g)
	}

	slog.Info("Interpret", "Step", "Start", "File", fs.Arg(0))
	st := interp.New(g)
	cb := direct.New(os.Stdin, os.Stdout)
	_, err = interp.Interpret[struct{}](&st, cb, interp.NoopDebugger{})
	return err
}

func runDebug(args []string) error {
	fs := flag.NewFlagSet("d", flag.ContinueOnError)
	var traceT, traceLong, continueC, continueLong bool
	fs.BoolVar(&traceT, "t", false, "trace Continue-mode steps")
	fs.BoolVar(&traceLong, "trace", false, "alias for -t")
	fs.BoolVar(&continueC, "c", false, "start in Continue mode")
	fs.BoolVar(&continueLong, "continue", false, "alias for -c")
	debugFile := fs.Bool("debug-file", false, "dump the loaded grid")
	if err := fs.Parse(args); err != nil {
		return ferr.WrapIO(err)
	}
	if fs.NArg() != 1 {
		return ferr.Shape("zfunge d requires exactly one FILENAME argument")
	}

	g, err := reader.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	if *debugFile {
		dumpGrid(g)
	}

	w := debugger.New(os.Stdin, os.Stdout)
	if continueC || continueLong {
		w.SetMode(debugger.Continue)
		w.SetTracing(traceT || traceLong)
	}

	slog.Info("Debug", "Step", "Start", "File", fs.Arg(0), "Continue", continueC || continueLong)
	st := interp.New(g)
	_, err = interp.Interpret[struct{}](&st, w, w)
	return err
}

func dumpGrid(g *grid.Grid) {
	t := table.NewWriter()
	t.SetTitle("grid")
	for _, row := range g.Rows() {
		t.AppendRow(table.Row{string(row)})
	}
	fmt.Println(t.Render())
}

// debugBlock is a flattened, human-readable view of a compiler.Block
// for the --debug-unoptimized-ir/--debug-ir YAML dumps; the real
// Action/Terminator sum types don't round-trip cleanly through YAML,
// and these dumps are diagnostics, not a serialization format.
type debugBlock struct {
	Actions []string `yaml:"actions"`
	End     string   `yaml:"end"`
}

func dumpBlocks(title string, blocks []compiler.Block) {
	dump := make([]debugBlock, len(blocks))
	for i, blk := range blocks {
		db := debugBlock{End: describeTerminator(blk.End)}
		for _, a := range blk.Actions {
			db.Actions = append(db.Actions, describeAction(a))
		}
		dump[i] = db
	}

	out, err := yaml.Marshal(dump)
	if err != nil {
		fmt.Fprintf(os.Stderr, "debug dump %s failed: %v\n", title, err)
		return
	}
	fmt.Printf("--- %s ---\n%s", title, out)
}

func describeAction(a compiler.Action) string {
	switch v := a.(type) {
	case compiler.Input:
		return fmt.Sprintf("Input(%d)", v.ID)
	case compiler.OutputChar:
		return fmt.Sprintf("OutputChar(%v)", v.Value)
	case compiler.OutputString:
		return fmt.Sprintf("OutputString(%q)", v.S)
	case compiler.Tag:
		return fmt.Sprintf("Tag(%d, %v)", v.ID, v.Value)
	default:
		return fmt.Sprintf("%T", a)
	}
}

func describeTerminator(t compiler.Terminator) string {
	switch v := t.(type) {
	case compiler.End:
		return "End"
	case compiler.If:
		return fmt.Sprintf("If(%v, zero=%d, nonzero=%d)", v.Value, v.ZeroIdx, v.NonZeroIdx)
	default:
		return fmt.Sprintf("%T", t)
	}
}

func dumpTrace(trace []string) {
	t := table.NewWriter()
	t.SetTitle("backend call trace")
	for _, line := range trace {
		t.AppendRow(table.Row{line})
	}
	fmt.Println(t.Render())
}

// tracingBuilder is the backend.Builder this CLI drives. It stands in
// for a real LLVM binding (out of scope, per the backend package's
// doc comment): it records every call as a trace line instead of
// emitting real machine code.
type tracingBuilder struct {
	trace    []string
	insertPt int
}

func (b *tracingBuilder) DeclareFunction(name string) error {
	b.trace = append(b.trace, fmt.Sprintf("declare %s", name))
	return nil
}

func (b *tracingBuilder) AddBlock(idx int, name string) backend.BlockRef {
	b.trace = append(b.trace, fmt.Sprintf("block %d: %s", idx, name))
	return idx
}

func (b *tracingBuilder) SetInsertPoint(ref backend.BlockRef) {
	b.insertPt = ref.(int)
}

func (b *tracingBuilder) ConstantInt(v int32) backend.Value {
	b.trace = append(b.trace, fmt.Sprintf("  [%d] const %d", b.insertPt, v))
	return v
}

func (b *tracingBuilder) CallGetChar() backend.Value {
	v := fmt.Sprintf("getchar#%d", len(b.trace))
	b.trace = append(b.trace, fmt.Sprintf("  [%d] %s = call getchar", b.insertPt, v))
	return v
}

func (b *tracingBuilder) CallPutChar(v backend.Value) {
	b.trace = append(b.trace, fmt.Sprintf("  [%d] call putchar(%v)", b.insertPt, v))
}

func (b *tracingBuilder) GlobalString(name, s string) backend.Value {
	ptr := "ptr:" + name
	b.trace = append(b.trace, fmt.Sprintf("  [%d] %s = global %q", b.insertPt, ptr, s))
	return ptr
}

func (b *tracingBuilder) CallPuts(ptr backend.Value) {
	b.trace = append(b.trace, fmt.Sprintf("  [%d] call puts(%v)", b.insertPt, ptr))
}

func (b *tracingBuilder) BuildAdd(lhs, rhs backend.Value) backend.Value {
	return b.buildArith("add", lhs, rhs)
}

func (b *tracingBuilder) BuildSub(lhs, rhs backend.Value) backend.Value {
	return b.buildArith("sub", lhs, rhs)
}

func (b *tracingBuilder) BuildMul(lhs, rhs backend.Value) backend.Value {
	return b.buildArith("mul", lhs, rhs)
}

func (b *tracingBuilder) buildArith(op string, lhs, rhs backend.Value) backend.Value {
	v := fmt.Sprintf("%s#%d", op, len(b.trace))
	b.trace = append(b.trace, fmt.Sprintf("  [%d] %s = %s(%v, %v)", b.insertPt, v, op, lhs, rhs))
	return v
}

func (b *tracingBuilder) BuildCondBr(cond backend.Value, zeroDst, nonZeroDst backend.BlockRef) {
	b.trace = append(b.trace, fmt.Sprintf("  [%d] condbr %v, zero->block%v, nonzero->block%v", b.insertPt, cond, zeroDst, nonZeroDst))
}

func (b *tracingBuilder) BuildRetZero() {
	b.trace = append(b.trace, fmt.Sprintf("  [%d] ret 0", b.insertPt))
}

var _ backend.Builder = (*tracingBuilder)(nil)
