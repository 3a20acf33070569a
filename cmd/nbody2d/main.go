// Command nbody2d drives the 2D gravitational N-body physics core: it
// seeds a scene, steps the engine facade, and reports or archives the
// result, or hands the body store to the live Bubble Tea viewer when
// asked for an interactive run.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/nbody2d/internal/body"
	"github.com/san-kum/nbody2d/internal/config"
	"github.com/san-kum/nbody2d/internal/engine"
	"github.com/san-kum/nbody2d/internal/forces"
	"github.com/san-kum/nbody2d/internal/scenes"
	"github.com/san-kum/nbody2d/internal/storage"
	"github.com/san-kum/nbody2d/internal/tui"
)

var (
	dataDir string

	scene      string
	numBodies  int
	dt         float64
	duration   float64
	seed       int64
	integrator string
	presetName string
	configFile string
	theta      float64
	fps        int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nbody2d",
		Short: "2D gravitational N-body simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, args)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".nbody2d", "run archive directory")

	addSceneFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&scene, "scene", "galaxy", "scene: solar, binary, galaxy, cluster")
		cmd.Flags().IntVar(&numBodies, "bodies", 200, "body count for galaxy/cluster scenes")
		cmd.Flags().Float64Var(&dt, "dt", config.DefaultConfig().TimeStep, "physics time step")
		cmd.Flags().Int64Var(&seed, "seed", 1, "scene RNG seed")
		cmd.Flags().StringVar(&integrator, "integrator", "leapfrog", "leapfrog, euler, verlet")
		cmd.Flags().StringVar(&presetName, "preset", "", "named config preset")
		cmd.Flags().StringVar(&configFile, "config", "", "YAML config file path")
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headlessly and archive the result",
		RunE:  runHeadless,
	}
	addSceneFlags(runCmd)
	runCmd.Flags().Float64Var(&duration, "time", 10.0, "simulated duration in seconds")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with the interactive live viewer",
		RunE:  runLive,
	}
	addSceneFlags(liveCmd)
	liveCmd.Flags().IntVar(&fps, "fps", 60, "unused; the live viewer ticks every 16ms")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark force-evaluator method selection across body counts",
		RunE:  runBench,
	}
	benchCmd.Flags().Float64Var(&theta, "theta", config.DefaultTheta, "barnes-hut opening angle")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list archived runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "chart a stored run's max body speed over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run's metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available config presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, benchCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// resolveConfig replaces the defaults with a named preset or a YAML file
// (loaded over the defaults, so a file given together with a preset
// replaces the preset), matching the flag names addSceneFlags registers.
func resolveConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if presetName != "" {
		p := config.GetPreset(presetName)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q", presetName)
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.Integrator = integrator
	return cfg, nil
}

func buildScene(s *body.Store, g float64) error {
	switch scene {
	case "solar":
		scenes.SolarSystem(s, g, 6)
	case "binary":
		scenes.Binary(s, g, 20.0, 15.0)
	case "galaxy":
		scenes.GalaxyDisc(s, g, numBodies, seed)
	case "cluster":
		scenes.Cluster(s, numBodies, 150, seed)
	default:
		return fmt.Errorf("unknown scene %q", scene)
	}
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	store := body.NewStore()
	if err := buildScene(store, cfg.GravitationalConstant); err != nil {
		return err
	}

	eng := engine.New(cfg)
	steps := int(duration / dt)

	const recordEvery = 50
	frames := make([]storage.Frame, 0, steps/recordEvery+1)

	recordFrame := func(t float64) {
		n := store.Len()
		f := storage.Frame{Time: t, Positions: make([]body.Vec2, n), Velocities: make([]body.Vec2, n)}
		for i := 0; i < n; i++ {
			b := store.At(i)
			f.Positions[i], f.Velocities[i] = b.Pos, b.Vel
		}
		frames = append(frames, f)
	}

	recordFrame(0)
	for i := 0; i < steps; i++ {
		if err := eng.Step(store, dt); err != nil {
			return err
		}
		if (i+1)%recordEvery == 0 {
			recordFrame(float64(i+1) * dt)
		}
	}

	energy := eng.Energy(store)
	fmt.Printf("bodies=%d steps=%d method=%s energy=%.4f\n",
		store.Len(), steps, eng.Stats().Method, energy.Total)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(scene, dt, duration, seed, cfg.Integrator, frames, eng.Stats(), energy)
	if err != nil {
		return err
	}
	fmt.Println("saved run:", runID)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if dt == 0 {
		dt = cfg.TimeStep
	}
	if scene == "" {
		scene = "galaxy"
	}
	if numBodies == 0 {
		numBodies = 200
	}

	store := body.NewStore()
	if err := buildScene(store, cfg.GravitationalConstant); err != nil {
		return err
	}

	eng := engine.New(cfg)
	reset := func(s *body.Store) { _ = buildScene(s, cfg.GravitationalConstant) }

	m := tui.NewModel(store, eng, dt, reset)
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	cfg.BarnesHutTheta = theta

	counts := []int{10, 60, 150, 500, 2000, 5000}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODIES\tMETHOD\tTIME\tPAIR_OPS")

	for _, n := range counts {
		store := body.NewStore()
		scenes.Cluster(store, n, 200, 7)

		a := &body.Arrays{}
		a.Refresh(store)

		start := time.Now()
		result := forces.Evaluate(a, cfg)
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%s\t%v\t%d\n", n, result.Method, elapsed, result.PairOps)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tDURATION\tDT\tBODIES\tINTEG")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%d\t%s\n",
			run.ID, run.Scene,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration, run.Dt, run.BodyCount, run.Integrator)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot for run %s", runID)
	}

	fmt.Printf("run: %s  scene: %s  bodies: %d\n\n", meta.ID, meta.Scene, meta.BodyCount)

	speeds := make([]float64, len(frames))
	for i, f := range frames {
		var maxV float64
		for _, v := range f.Velocities {
			if s := v.Len(); s > maxV {
				maxV = s
			}
		}
		speeds[i] = maxV
	}

	graph := asciigraph.Plot(speeds,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("max body speed over time"))
	fmt.Println(graph)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
