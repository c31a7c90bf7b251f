package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/atomlab/atomsim/internal/atom"
	"github.com/atomlab/atomsim/internal/chem"
	"github.com/atomlab/atomsim/internal/config"
	"github.com/atomlab/atomsim/internal/engine"
	"github.com/atomlab/atomsim/internal/logging"
	"github.com/atomlab/atomsim/internal/nuclear"
	"github.com/atomlab/atomsim/internal/orbital"
	"github.com/atomlab/atomsim/internal/particle"
	"github.com/atomlab/atomsim/internal/scene"
	"github.com/atomlab/atomsim/internal/storage"
	"github.com/atomlab/atomsim/internal/viz"
)

var (
	dataDir    string
	configFile string
	logLevel   string
	dt         float64
	duration   float64
	workers    int
	frameRate  int
	// plot axes
	atomIndex int
	axisName  string
	// reaction inputs
	atomicNum  int
	massNum    int
	atomicNum2 int
	massNum2   int
	newLevel   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atomsim",
		Short: "atomic and nuclear sandbox simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".atomsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a scene and save the trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScene,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scene config file (yaml)")
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep override")
	runCmd.Flags().Float64Var(&duration, "time", 0, "duration override")
	runCmd.Flags().IntVar(&workers, "workers", 0, "coulomb solver workers override")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run a scene with live terminal visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "scene config file (yaml)")
	liveCmd.Flags().Float64Var(&dt, "dt", 0, "timestep override")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot one atom coordinate over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&atomIndex, "atom", 0, "atom index")
	plotCmd.Flags().StringVar(&axisName, "axis", "x", "coordinate axis (x, y, z)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and trajectory as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run trajectory as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	reactCmd := &cobra.Command{
		Use:   "react",
		Short: "trigger a reaction or transition and print its energy",
	}

	fissionCmd := &cobra.Command{
		Use:   "fission",
		Short: "fission a nucleus",
		RunE:  reactFission,
	}
	fissionCmd.Flags().IntVar(&atomicNum, "z", 92, "atomic number")
	fissionCmd.Flags().IntVar(&massNum, "a", 235, "mass number")

	fusionCmd := &cobra.Command{
		Use:   "fusion",
		Short: "fuse two nuclei",
		RunE:  reactFusion,
	}
	fusionCmd.Flags().IntVar(&atomicNum, "z1", 1, "first atomic number")
	fusionCmd.Flags().IntVar(&massNum, "a1", 2, "first mass number")
	fusionCmd.Flags().IntVar(&atomicNum2, "z2", 1, "second atomic number")
	fusionCmd.Flags().IntVar(&massNum2, "a2", 3, "second mass number")

	jumpCmd := &cobra.Command{
		Use:   "jump",
		Short: "jump a ground-state electron to a new orbital level",
		RunE:  reactJump,
	}
	jumpCmd.Flags().IntVar(&atomicNum, "z", 1, "atomic number")
	jumpCmd.Flags().IntVar(&massNum, "a", 1, "mass number")
	jumpCmd.Flags().IntVar(&newLevel, "level", 2, "target orbital level")

	bindingCmd := &cobra.Command{
		Use:   "binding",
		Short: "binding energy per nucleon of a nucleus",
		RunE:  reactBinding,
	}
	bindingCmd.Flags().IntVar(&atomicNum, "z", 26, "atomic number")
	bindingCmd.Flags().IntVar(&massNum, "a", 56, "mass number")

	reactCmd.AddCommand(fissionCmd, fusionCmd, jumpCmd, bindingCmd)

	bondCmd := &cobra.Command{
		Use:   "bond [z1] [z2]",
		Short: "bond type and energy for an element pair",
		Args:  cobra.ExactArgs(2),
		RunE:  bondPair,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, presetsCmd, reactCmd, bondCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the scene: --config wins, then the preset argument,
// then the h2o preset.
func loadConfig(args []string) (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	name := "h2o"
	if len(args) > 0 {
		name = args[0]
	}
	cfg := config.GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) logging.Logger {
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	return logging.New(level)
}

func applyOverrides(cfg *config.Config) {
	if dt > 0 {
		cfg.Dt = dt
	}
	if duration > 0 {
		cfg.Duration = duration
	}
	if workers > 0 {
		cfg.Workers = workers
	}
}

func runScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	applyOverrides(cfg)

	log := newLogger(cfg)
	eng, err := scene.Build(cfg, log)
	if err != nil {
		return err
	}
	eng.AddMetric(engine.NewKineticEnergy())
	eng.AddMetric(engine.NewMomentumDrift())

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running scene %s...\n", cfg.Name)
	start := time.Now()

	result, err := eng.Run(context.Background(), engine.Config{Dt: cfg.Dt, Duration: cfg.Duration})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Name, cfg.Dt, cfg.Duration, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6e\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	applyOverrides(cfg)

	// Diagnostics would corrupt the TUI frame.
	log := logging.NewNoOp()
	eng, err := scene.Build(cfg, log)
	if err != nil {
		return err
	}

	m := viz.NewModel(eng, nuclear.NewReactor(log), orbital.NewModel(log), cfg.Name, cfg.Dt, frameRate)
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
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
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tDURATION\tDT\tATOMS\tSTEPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%d\t%d\n",
			run.ID,
			run.Scene,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.AtomCount,
			run.Steps,
		)
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

	frames, _, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}
	if atomIndex < 0 || atomIndex >= len(frames[0]) {
		return fmt.Errorf("atom index %d out of range (%d atoms)", atomIndex, len(frames[0]))
	}

	data := make([]float64, len(frames))
	for i, frame := range frames {
		switch axisName {
		case "x":
			data[i] = frame[atomIndex].X
		case "y":
			data[i] = frame[atomIndex].Y
		case "z":
			data[i] = frame[atomIndex].Z
		default:
			return fmt.Errorf("unknown axis %q (want x, y, or z)", axisName)
		}
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scene: %s\n", meta.Scene)
	fmt.Printf("samples: %d\n\n", len(frames))

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("atom %d %s (m) vs time", atomIndex, axisName)),
	)
	fmt.Println(graph)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	frames, times, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	out := struct {
		Metadata *storage.RunMetadata `json:"metadata"`
		Times    []float64            `json:"times"`
		Frames   [][]r3.Vec           `json:"frames"`
	}{meta, times, frames}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	frames, times, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range frames[0] {
		header = append(header,
			fmt.Sprintf("atom%d_x", i),
			fmt.Sprintf("atom%d_y", i),
			fmt.Sprintf("atom%d_z", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, frame := range frames {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, pos := range frame {
			row = append(row,
				strconv.FormatFloat(pos.X, 'f', 6, 64),
				strconv.FormatFloat(pos.Y, 'f', 6, 64),
				strconv.FormatFloat(pos.Z, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func reactFission(cmd *cobra.Command, args []string) error {
	log := logging.New(effectiveLevel())
	reactor := nuclear.NewReactor(log)

	n := particle.NewNucleus(atomicNum, massNum, r3.Vec{})
	ev := reactor.SimulateFission(n)

	fmt.Printf("fission Z=%d A=%d: %.6e eV\n", atomicNum, massNum, ev)
	return nil
}

func reactFusion(cmd *cobra.Command, args []string) error {
	log := logging.New(effectiveLevel())
	reactor := nuclear.NewReactor(log)

	n1 := particle.NewNucleus(atomicNum, massNum, r3.Vec{})
	n2 := particle.NewNucleus(atomicNum2, massNum2, r3.Vec{})
	ev := reactor.SimulateFusion(n1, n2)

	fmt.Printf("fusion (Z=%d A=%d) + (Z=%d A=%d): %.6e eV\n", atomicNum, massNum, atomicNum2, massNum2, ev)
	return nil
}

func reactJump(cmd *cobra.Command, args []string) error {
	log := logging.New(effectiveLevel())
	orbits := orbital.NewModel(log)

	a := atom.New(atomicNum, massNum, r3.Vec{})
	electrons := a.Electrons()
	if len(electrons) == 0 {
		return fmt.Errorf("atom Z=%d has no electrons", atomicNum)
	}

	deltaE := orbits.SimulateElectronJump(electrons[0], a, newLevel)
	wavelength := orbital.EnergyToWavelengthNm(deltaE)
	band := orbital.ClassifyBand(wavelength)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "delta_e\t%.6f eV\n", deltaE)
	fmt.Fprintf(w, "wavelength\t%.2f nm\n", wavelength)
	fmt.Fprintf(w, "band\t%s\n", band)
	return w.Flush()
}

func reactBinding(cmd *cobra.Command, args []string) error {
	reactor := nuclear.NewReactor(logging.New(effectiveLevel()))
	ev := reactor.BindingEnergyPerNucleon(atomicNum, massNum)
	fmt.Printf("binding energy Z=%d A=%d: %.6e eV/nucleon\n", atomicNum, massNum, ev)
	return nil
}

func bondPair(cmd *cobra.Command, args []string) error {
	z1, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad atomic number %q", args[0])
	}
	z2, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad atomic number %q", args[1])
	}

	calc := chem.NewCalculator(logging.New(effectiveLevel()))

	a := atom.New(z1, 2*z1, r3.Vec{})
	b := atom.New(z2, 2*z2, r3.Vec{})
	t := calc.DetermineBondType(a, b)
	fmt.Printf("bond Z=%d / Z=%d: %s, %.2f eV\n", z1, z2, t, calc.BondEnergy(t))
	return nil
}

func effectiveLevel() string {
	if logLevel != "" {
		return logLevel
	}
	return config.DefaultLogLevel
}
