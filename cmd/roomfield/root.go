package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-room/internal/config"
	"github.com/cwbudde/algo-room/room/budget"
	"github.com/cwbudde/algo-room/room/engine"
)

// app carries state shared by all subcommands.
type app struct {
	cfgPath string
	verbose bool

	v   *viper.Viper
	cfg config.Config
	log *slog.Logger
}

// flagBinding ties a command-line flag to a configuration key.
type flagBinding struct {
	flag, key string
}

var bindings = []flagBinding{
	{"lx", "room.lx"},
	{"ly", "room.ly"},
	{"lz", "room.lz"},
	{"sx", "source.x"},
	{"sy", "source.y"},
	{"sz", "source.z"},
	{"nx", "modes.nx_max"},
	{"ny", "modes.ny_max"},
	{"nz", "modes.nz_max"},
	{"filter", "modes.filter"},
	{"freq", "acoustics.frequency"},
	{"zeta", "acoustics.zeta"},
	{"crossover", "acoustics.crossover"},
	{"alpha", "acoustics.absorption"},
	{"animate", "acoustics.animate"},
	{"time", "acoustics.time"},
	{"res", "render.resolution"},
	{"export", "render.high_res"},
	{"memory-limit", "render.memory_limit"},
	{"workers", "engine.workers"},
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "roomfield",
		Short:         "Modal and statistical pressure fields of rectangular rooms",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "TOML configuration file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")

	pf.Float64("lx", 5, "room length in m [1, 50]")
	pf.Float64("ly", 4, "room width in m [1, 50]")
	pf.Float64("lz", 3, "room height in m [1, 50]")
	pf.Float64("sx", 2.5, "source x in m (default: room centre)")
	pf.Float64("sy", 2, "source y in m (default: room centre)")
	pf.Float64("sz", 1.5, "source z in m (default: room centre)")
	pf.Int("nx", 5, "highest mode index along x [1, 10]")
	pf.Int("ny", 5, "highest mode index along y [1, 10]")
	pf.Int("nz", 5, "highest mode index along z [1, 10]")
	pf.String("filter", "All", "mode classes: All, Axial, Tangential, Oblique")
	pf.Float64("freq", 100, "drive frequency in Hz [20, 3000]")
	pf.Float64("zeta", 0.01, "damping as a fraction of critical [0, 0.05]")
	pf.Float64("crossover", 800, "modal/statistical crossover in Hz [100, 3000]")
	pf.Float64("alpha", 0.2, "average wall absorption (0, 1]")
	pf.Bool("animate", false, "take a time snapshot instead of the steady-state magnitude")
	pf.Float64("time", 0, "snapshot time in s [0, 1]")
	pf.Int("res", 32, "grid resolution per axis [24, 96], up to 128 with --export")
	pf.Bool("export", false, "high-resolution export path")
	pf.Uint64("memory-limit", 2<<30, "bytes of memory one evaluation may consider")
	pf.Int("workers", 0, "accumulator goroutines (0 = GOMAXPROCS)")

	root.AddCommand(newFieldCmd(a), newModesCmd(a), newResponseCmd(a))

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	v, err := config.New(a.cfgPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	for _, b := range bindings {
		f := flags.Lookup(b.flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(b.key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", b.flag, err)
		}
	}

	if flags.Changed("sx") || flags.Changed("sy") || flags.Changed("sz") {
		v.Set("source.centered", false)
	}

	cfg, err := config.Decode(v)
	if err != nil {
		return err
	}

	a.v = v
	a.cfg = cfg
	a.log.Debug("configuration loaded", "file", v.ConfigFileUsed(), "resolution", cfg.Render.Resolution)

	return nil
}

// engine builds an Engine from the engine and render sections.
func (a *app) engine() (*engine.Engine, error) {
	return engine.New(
		engine.WithSpeedOfSound(a.cfg.Engine.SpeedOfSound),
		engine.WithEpsilon(a.cfg.Engine.Epsilon),
		engine.WithWorkers(a.cfg.Engine.Workers),
		engine.WithBudget(budget.Ceiling{Available: a.cfg.Render.MemoryLimit}),
	)
}

// request resolves the configuration into a validated engine request.
func (a *app) request() (engine.Request, error) {
	req, err := a.cfg.Request()
	if err != nil {
		return engine.Request{}, err
	}

	if err := req.Validate(); err != nil {
		return engine.Request{}, err
	}

	return req, nil
}
