package config

import "flag"

// Flags is the parsed command line: the positional map file plus every
// tuning knob, alongside the set of flag names the user actually passed
// (Set), so a config file's values are overridden only where the command
// line was explicit about it.
type Flags struct {
	File   string
	Config string

	WindowWidth    int
	WindowHeight   int
	GridSize       int
	SpawnFrequency int
	Lookahead      int
	StepMillis     int
	OddCycleSteps  int
	EvenCycleSteps int

	Set map[string]bool
}

// ParseFlags parses args (typically os.Args[1:]) against the CLI's
// flag names and defaults, retained verbatim for compatibility:
// --window_width 1024, --window_height 1024, --grid_size 12,
// --spawn_frequency 8, --lookahead 3, --step_ms 25, --odd_cycle_steps 8,
// --even_cycle_steps 50, plus a required positional map file.
func ParseFlags(args []string) (*Flags, error) {
	fs := flag.NewFlagSet("citytraffic", flag.ContinueOnError)
	f := &Flags{}

	fs.StringVar(&f.Config, "config", "", "optional YAML file of simulator tuning knobs, overridden by any flag explicitly passed")
	fs.IntVar(&f.WindowWidth, "window_width", 1024, "renderer window width in pixels")
	fs.IntVar(&f.WindowHeight, "window_height", 1024, "renderer window height in pixels")
	fs.IntVar(&f.GridSize, "grid_size", 12, "pixel size of one grid tile in the renderer")
	fs.IntVar(&f.SpawnFrequency, "spawn_frequency", 8, "1/frequency spawn probability per source per tick")
	fs.IntVar(&f.Lookahead, "lookahead", 3, "driver lookahead depth")
	fs.IntVar(&f.StepMillis, "step_ms", 25, "tick pacing interval in milliseconds")
	fs.IntVar(&f.OddCycleSteps, "odd_cycle_steps", 8, "traffic light duration for odd-indexed groups")
	fs.IntVar(&f.EvenCycleSteps, "even_cycle_steps", 50, "traffic light duration for even-indexed groups")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() < 1 {
		return nil, ErrMissingMapFile
	}
	f.File = fs.Arg(0)

	f.Set = map[string]bool{}
	fs.Visit(func(flg *flag.Flag) {
		f.Set[flg.Name] = true
	})
	return f, nil
}
