package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"mazegen/pkg/engine/i18n"
	"mazegen/pkg/engine/logging"
	"mazegen/pkg/engine/terminal"
	"mazegen/pkg/game/audit"
	"mazegen/pkg/game/generator"
	"mazegen/pkg/game/renderer"
	"mazegen/pkg/game/renderer/console"
	"mazegen/pkg/game/renderer/ebiten"
	"mazegen/pkg/game/renderer/svg"
	"mazegen/pkg/game/renderer/tui"
	"mazegen/pkg/game/setup"
	"mazegen/pkg/game/solver"
	"mazegen/pkg/game/state"
)

// outputList collects repeated -o flags
type outputList []string

func (o *outputList) String() string {
	return strings.Join(*o, ",")
}

func (o *outputList) Set(v string) error {
	*o = append(*o, v)
	return nil
}

// cliOptions holds the parsed command line
type cliOptions struct {
	shape       string
	width       int
	height      int
	rings       int
	spokes      int
	bias        float64
	lengthBias  float64
	rooms       int
	roomMinW    int
	roomMaxW    int
	roomMinH    int
	roomMaxH    int
	layout      string
	seed        int64
	solve       bool
	legacySolve bool
	print       bool
	noColor     bool
	outputs     outputList
	stroke      float64
	opacity     float64
	innerRadius float64
	view        bool
	console     bool
	verify      bool
	stats       bool
	logLevel    string
}

func parseFlags() *cliOptions {
	o := &cliOptions{}
	def := setup.DefaultConfig()

	flag.StringVar(&o.shape, "shape", "rect", "maze shape: rect, radial or dungeon")
	flag.IntVar(&o.width, "width", def.Width, "grid width in cells (rect, dungeon)")
	flag.IntVar(&o.height, "height", def.Height, "grid height in cells (rect, dungeon)")
	flag.IntVar(&o.rings, "rings", def.Rings, "number of rings (radial)")
	flag.IntVar(&o.spokes, "spokes", def.Spokes, "number of spokes (radial)")
	flag.Float64Var(&o.bias, "bias", def.Weights.Bias, "weight of column moves in [0,1]; row moves get 1-bias")
	flag.Float64Var(&o.lengthBias, "length-bias", def.Weights.LengthBias, "extra weight for Up/Out and Left moves in [0,1]")
	flag.IntVar(&o.rooms, "rooms", def.Rooms.Count, "number of rooms (dungeon)")
	flag.IntVar(&o.roomMinW, "room-min-width", def.Rooms.MinWidth, "minimum room width (dungeon)")
	flag.IntVar(&o.roomMaxW, "room-max-width", def.Rooms.MaxWidth, "maximum room width (dungeon)")
	flag.IntVar(&o.roomMinH, "room-min-height", def.Rooms.MinHeight, "minimum room height (dungeon)")
	flag.IntVar(&o.roomMaxH, "room-max-height", def.Rooms.MaxHeight, "maximum room height (dungeon)")
	flag.StringVar(&o.layout, "layout", def.Rooms.Layout.String(), "room layout: scatter or bsp (dungeon)")
	flag.Int64Var(&o.seed, "seed", 0, "random seed; 0 seeds from the clock")
	flag.BoolVar(&o.solve, "solve", false, "compute and mark the path from entrance to exit")
	flag.BoolVar(&o.legacySolve, "legacy-solve", false, "rebuild the path by adjacency scan instead of predecessor links")
	flag.BoolVar(&o.print, "print", false, "print the maze as text to stdout (rect, dungeon)")
	flag.BoolVar(&o.noColor, "no-color", false, "disable colored text output")
	flag.Var(&o.outputs, "o", "write the maze to a file; .svg writes SVG, anything else text (repeatable)")
	flag.Float64Var(&o.stroke, "stroke", 1, "SVG wall thickness")
	flag.Float64Var(&o.opacity, "opacity", 0.5, "SVG solution fill opacity")
	flag.Float64Var(&o.innerRadius, "inner-radius", 1, "radius of the radial maze's central hole, in rings")
	flag.BoolVar(&o.view, "view", false, "open an interactive window")
	flag.BoolVar(&o.console, "console", false, "browse the maze full-screen in the terminal (rect, dungeon)")
	flag.BoolVar(&o.verify, "verify", false, "check connectivity and wall symmetry after building")
	flag.BoolVar(&o.stats, "stats", false, "print a summary of the maze")
	flag.StringVar(&o.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), i18n.T("USAGE", filepath.Base(os.Args[0])))
		flag.PrintDefaults()
	}
	flag.Parse()
	return o
}

// config turns the flags into a setup.Config
func (o *cliOptions) config(log logrus.FieldLogger) (setup.Config, error) {
	shape, err := setup.ParseShape(o.shape)
	if err != nil {
		return setup.Config{}, err
	}
	layout, err := generator.ParseLayout(o.layout)
	if err != nil {
		return setup.Config{}, err
	}

	cfg := setup.DefaultConfig()
	cfg.Shape = shape
	cfg.Width, cfg.Height = o.width, o.height
	cfg.Rings, cfg.Spokes = o.rings, o.spokes
	cfg.Weights = generator.Weights{Bias: o.bias, LengthBias: o.lengthBias}
	cfg.Rooms = generator.RoomSettings{
		Count:     o.rooms,
		MinWidth:  o.roomMinW,
		MaxWidth:  o.roomMaxW,
		MinHeight: o.roomMinH,
		MaxHeight: o.roomMaxH,
		Layout:    layout,
	}
	cfg.Seed = o.seed
	cfg.Solve = o.solve || o.legacySolve
	if o.legacySolve {
		cfg.SolveMode = solver.Adjacency
	}
	cfg.Logger = log
	return cfg, cfg.Validate()
}

func main() {
	opts := parseFlags()
	log := logging.New(opts.logLevel)

	if err := run(opts, log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts *cliOptions, log *logrus.Logger) error {
	cfg, err := opts.config(log)
	if err != nil {
		return errors.New(i18n.T("INVALID_CONFIG", err))
	}

	if opts.view || opts.console {
		s, err := state.NewSession(cfg)
		if err != nil {
			return errors.New(i18n.T("BUILD_FAILED", err))
		}
		if opts.console {
			return runConsole(s, log)
		}
		v, err := ebiten.New(s, log)
		if err != nil {
			return err
		}
		return v.Run()
	}

	maze, err := setup.Build(cfg)
	if err != nil {
		return errors.New(i18n.T("BUILD_FAILED", err))
	}

	if opts.verify {
		if err := verify(maze); err != nil {
			return err
		}
	}

	if opts.stats {
		printStats(maze)
	}

	if opts.print {
		if err := printText(maze, opts.noColor, log); err != nil {
			return err
		}
	}

	geo := renderer.DefaultGeometry()
	geo.InnerRadius = opts.innerRadius
	renderer.Register(&svg.SVGRenderer{Geometry: geo, Stroke: opts.stroke, Opacity: opts.opacity})

	for _, path := range opts.outputs {
		if err := writeOutput(path, maze); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, i18n.T("OUTPUT_WRITTEN", path))
	}
	return nil
}

func runConsole(s *state.Session, log logrus.FieldLogger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	c, err := console.New(screen, s, log)
	if err != nil {
		return err
	}
	return c.Run()
}

// verify fails unless the maze is connected with symmetric walls. Mazes
// without rooms must also be free of cycles.
func verify(maze *setup.Maze) error {
	r := audit.Inspect(maze.Topology)
	ok := r.Components == 1 && r.Asymmetric == 0
	if len(maze.Rooms()) == 0 {
		ok = ok && r.Cycles == 0
	}
	if !ok {
		return errors.New(i18n.T("VERIFY_FAILED", r.Components, r.Cycles, r.Asymmetric))
	}
	fmt.Fprintln(os.Stderr, i18n.T("VERIFY_OK", r.Components, r.Cycles, r.Asymmetric))
	return nil
}

func printStats(maze *setup.Maze) {
	fmt.Println(i18n.T("SUMMARY", maze.Shape.String(), maze.Topology.Len(), maze.Stats.Passages, maze.Stats.DeadEnds, maze.Seed))
	if rooms := maze.Rooms(); len(rooms) > 0 {
		fmt.Println(i18n.T("ROOMS_CARVED", len(rooms)))
	}
	if maze.Solved() {
		fmt.Println(i18n.T("PATH_LENGTH", len(maze.Path)))
	}
}

func printText(maze *setup.Maze, noColor bool, log logrus.FieldLogger) error {
	width := tui.Width(maze.Topology.Cols())
	if !terminal.Fits(width) {
		log.Warn(i18n.T("TOO_WIDE", width, terminal.GetWidth()))
	}
	useColor := !noColor && terminal.IsTerminal(os.Stdout)
	if err := tui.New(useColor).Render(os.Stdout, maze.Topology); err != nil {
		return errors.New(i18n.T("RENDER_FAILED", "text", err))
	}
	return nil
}

// outputError carries a translated message while keeping the cause
// available to errors.Is
type outputError struct {
	msg string
	err error
}

func (e *outputError) Error() string { return e.msg }

func (e *outputError) Unwrap() error { return e.err }

// writeOutput picks the renderer from the file extension. The maze is
// rendered in memory so a failed render leaves no file behind.
func writeOutput(path string, maze *setup.Maze) error {
	name := "text"
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		name = "svg"
	}
	r, err := renderer.Lookup(name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, maze.Topology); err != nil {
		return &outputError{msg: i18n.T("RENDER_FAILED", path, err), err: err}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.New(i18n.T("WRITE_FAILED", path, err))
	}
	return nil
}
