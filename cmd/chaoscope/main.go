package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/chaoscope/internal/analysis"
	"github.com/san-kum/chaoscope/internal/chaos"
	"github.com/san-kum/chaoscope/internal/config"
	"github.com/san-kum/chaoscope/internal/motion"
	"github.com/san-kum/chaoscope/internal/render"
	"github.com/san-kum/chaoscope/internal/scene"
	"github.com/san-kum/chaoscope/internal/storage"
	"github.com/san-kum/chaoscope/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	// Lorenz parameters
	sigma     float64
	rho       float64
	beta      float64
	dt        float64
	numPoints int
	startX    float64
	startY    float64
	startZ    float64
	delta     float64
	// Output options
	quality   string
	output    string
	frameRate int
	// Config file and preset
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chaoscope",
		Short: "chaotic systems animation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".chaoscope", "data directory")

	liveCmd := &cobra.Command{
		Use:   "live [scene]",
		Short: "animate a scene in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	addLorenzFlags(liveCmd)
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	renderCmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "render a scene to SVG or GIF",
		Args:  cobra.ExactArgs(1),
		RunE:  renderScene,
	}
	addLorenzFlags(renderCmd)
	renderCmd.Flags().StringVar(&quality, "quality", render.QualityMedium, "quality preset")
	renderCmd.Flags().StringVarP(&output, "out", "o", "", "output file (.svg or .gif)")
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	renderCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	trajectoryCmd := &cobra.Command{
		Use:   "trajectory",
		Short: "generate and store a lorenz trajectory",
		RunE:  runTrajectory,
	}
	addLorenzFlags(trajectoryCmd)
	trajectoryCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	trajectoryCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "x-z phase portrait of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run points to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportCSV(args[0], os.Stdout)
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and points to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(args[0], os.Stdout)
		},
	}

	divergeCmd := &cobra.Command{
		Use:   "diverge",
		Short: "show how nearby trajectories separate",
		RunE:  runDiverge,
	}
	addLorenzFlags(divergeCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [scene]",
		Short: "list available presets for a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for scene: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(liveCmd, renderCmd, trajectoryCmd, listCmd, plotCmd, phaseCmd, exportCSVCmd, exportJSONCmd, divergeCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addLorenzFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&sigma, "sigma", config.DefaultSigma, "lorenz sigma")
	cmd.Flags().Float64Var(&rho, "rho", config.DefaultRho, "lorenz rho")
	cmd.Flags().Float64Var(&beta, "beta", config.DefaultBeta, "lorenz beta")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().IntVar(&numPoints, "points", config.DefaultNumPoints, "number of points")
	cmd.Flags().Float64Var(&startX, "x", 10, "initial x")
	cmd.Flags().Float64Var(&startY, "y", 10, "initial y")
	cmd.Flags().Float64Var(&startZ, "z", 10, "initial z")
	cmd.Flags().Float64Var(&delta, "delta", 0.01, "neighbor perturbation")
}

// resolveLorenz layers preset, config file, and CLI flags into final
// parameters. Flags set explicitly on the command line win.
func resolveLorenz(cmd *cobra.Command, sceneName string) (chaos.Point, chaos.Params, float64, error) {
	var cfg *config.Config
	if preset != "" {
		cfg = config.GetPreset(sceneName, preset)
		if cfg == nil {
			return chaos.Point{}, chaos.Params{}, 0,
				fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(sceneName))
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return chaos.Point{}, chaos.Params{}, 0, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cfg != nil {
		if !cmd.Flags().Changed("sigma") {
			sigma = cfg.Lorenz.Sigma
		}
		if !cmd.Flags().Changed("rho") {
			rho = cfg.Lorenz.Rho
		}
		if !cmd.Flags().Changed("beta") {
			beta = cfg.Lorenz.Beta
		}
		if !cmd.Flags().Changed("dt") {
			dt = cfg.Lorenz.Dt
		}
		if !cmd.Flags().Changed("points") {
			numPoints = cfg.Lorenz.NumPoints
		}
		if !cmd.Flags().Changed("x") {
			startX = cfg.Lorenz.X
		}
		if !cmd.Flags().Changed("y") {
			startY = cfg.Lorenz.Y
		}
		if !cmd.Flags().Changed("z") {
			startZ = cfg.Lorenz.Z
		}
		if !cmd.Flags().Changed("delta") {
			delta = cfg.Lorenz.Delta
		}
	}

	start := chaos.Point{X: startX, Y: startY, Z: startZ}
	prm := chaos.Params{Sigma: sigma, Rho: rho, Beta: beta, Dt: dt, NumPoints: numPoints}
	return start, prm, delta, nil
}

// resolvePendulum layers preset and config file onto the default pendulum
// scene. There are no per-parameter pendulum flags, so the config wins
// whenever one is given.
func resolvePendulum() (scene.Pendulum, error) {
	s := scene.NewPendulum()
	var cfg *config.Config
	if preset != "" {
		cfg = config.GetPreset("pendulum", preset)
		if cfg == nil {
			return s, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets("pendulum"))
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return s, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cfg != nil {
		s.Params = cfg.Pendulum.Params()
		if cfg.Pendulum.Trail > 0 {
			s.TrailCap = cfg.Pendulum.Trail
		}
	}
	return s, nil
}

// neighborDeltas spreads four perturbed starts around the base point.
func neighborDeltas(d float64) []chaos.Point {
	return []chaos.Point{{}, {X: d}, {Y: d}, {X: -d}, {Y: -d}}
}

func resolveLorenzScene(cmd *cobra.Command) (scene.Lorenz, error) {
	s := scene.NewLorenz()
	start, prm, d, err := resolveLorenz(cmd, "lorenz")
	if err != nil {
		return s, err
	}
	s.Base = start
	s.Params = prm
	s.Deltas = neighborDeltas(d)
	return s, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	sceneName := args[0]

	lz := scene.NewLorenz()
	pend := scene.NewPendulum()
	cpx := scene.NewComplex()
	var err error
	switch sceneName {
	case "lorenz":
		lz, err = resolveLorenzScene(cmd)
	case "pendulum":
		pend, err = resolvePendulum()
	case "complex":
		if preset != "" && config.GetPreset("complex", preset) == nil {
			err = fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets("complex"))
		}
	default:
		err = fmt.Errorf("unknown scene: %s (scenes: lorenz, pendulum, complex)", sceneName)
	}
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(sceneName, frameRate, lz, pend, cpx), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func renderScene(cmd *cobra.Command, args []string) error {
	sceneName := args[0]

	var strokes []render.Stroke
	switch sceneName {
	case "lorenz":
		s, err := resolveLorenzScene(cmd)
		if err != nil {
			return err
		}
		strokes = s.Strokes()
	case "pendulum":
		s, err := resolvePendulum()
		if err != nil {
			return err
		}
		strokes = s.Strokes()
	case "complex":
		if preset != "" && config.GetPreset("complex", preset) == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets("complex"))
		}
		strokes = scene.NewComplex().Strokes()
	default:
		return fmt.Errorf("unknown scene: %s (scenes: lorenz, pendulum, complex)", sceneName)
	}

	opts := render.QualityPreset(quality)
	if output == "" {
		output = sceneName + ".svg"
	}

	if strings.HasSuffix(output, ".gif") {
		return renderGIF(strokes, opts)
	}

	svg := render.StrokesToSVG(strokes, opts)
	if err := os.WriteFile(output, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s, %dx%d)\n", output, opts.Quality, opts.PixelWidth, opts.PixelHeight)
	return nil
}

// renderGIF replays the strokes progressively so the GIF shows the scene
// being traced out rather than the finished frame.
func renderGIF(strokes []render.Stroke, opts render.Options) error {
	for len(strokes) > 0 && len(strokes[0].Points) == 0 {
		strokes = strokes[1:]
	}
	if len(strokes) == 0 {
		return fmt.Errorf("nothing to render")
	}

	w, h := opts.CanvasSize()
	canvas := render.NewCanvas(w, h)
	rec := render.NewRecorder(opts.FrameRate)

	// shared frame across all strokes
	minX, minY := strokes[0].Points[0].X, strokes[0].Points[0].Y
	maxX, maxY := minX, minY
	for _, st := range strokes {
		for _, p := range st.Points {
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	cw, ch := canvas.PixelSize()
	toScreen := func(x, y float64) (int, int) {
		sx := int((x - minX) / spanX * float64(cw-1))
		sy := int((1 - (y-minY)/spanY) * float64(ch-1))
		return sx, sy
	}

	frames := opts.FrameRate * 4 // four seconds of animation
	if frames < 1 {
		frames = 1
	}
	for f := 1; f <= frames; f++ {
		canvas.Clear()
		progress := float64(f) / float64(frames)
		for _, st := range strokes {
			n := int(progress * float64(len(st.Points)))
			prev := false
			var px, py int
			for i := 0; i < n; i++ {
				sx, sy := toScreen(st.Points[i].X, st.Points[i].Y)
				if prev {
					canvas.DrawLine(px, py, sx, sy)
				}
				px, py, prev = sx, sy, true
			}
		}
		rec.Capture(canvas)
	}

	if err := rec.WriteFile(output); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s, %d frames)\n", output, opts.Quality, rec.FrameCount())
	return nil
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	start, prm, _, err := resolveLorenz(cmd, "lorenz")
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Println("generating lorenz trajectory...")
	begin := time.Now()
	points, deriv := chaos.TrajectoryWithDerivative(start, prm)
	elapsed := time.Since(begin)

	runID, err := st.Save(start, prm, points, deriv)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("points: %d\n", len(points))
	fmt.Printf("final derivative: (%.6f, %.6f, %.6f)\n", deriv.X, deriv.Y, deriv.Z)
	return nil
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
	fmt.Fprintln(w, "ID\tTIME\tSIGMA\tRHO\tBETA\tDT\tPOINTS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.3f\t%.4f\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Sigma,
			run.Rho,
			run.Beta,
			run.Dt,
			run.NumPoints,
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

	points, _, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(points))

	axes := []struct {
		caption string
		value   func(chaos.Point) float64
	}{
		{"x vs time", func(p chaos.Point) float64 { return p.X }},
		{"y vs time", func(p chaos.Point) float64 { return p.Y }},
		{"z vs time", func(p chaos.Point) float64 { return p.Z }},
	}

	for _, axis := range axes {
		data := make([]float64, len(points))
		for i, p := range points {
			data[i] = axis.value(p)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(axis.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	points, _, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	// Divergent runs can round-trip NaN or Inf through the CSV; those
	// samples have no position on the grid and are dropped.
	plotted := make([]motion.Point2, 0, len(points))
	minX, maxX := math.Inf(1), math.Inf(-1)
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Z) || math.IsInf(p.Z, 0) {
			continue
		}
		plotted = append(plotted, motion.Point2{X: p.X, Y: p.Z})
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minZ = math.Min(minZ, p.Z)
		maxZ = math.Max(maxZ, p.Z)
	}
	if len(plotted) == 0 {
		return fmt.Errorf("no finite points to plot")
	}

	fmt.Printf("phase portrait (x vs z): %s\n\n", runID)
	fmt.Println(render.Scatter(plotted, 80, 30))
	fmt.Printf("\nx: [%.2f, %.2f]  z: [%.2f, %.2f]\n", minX, maxX, minZ, maxZ)
	if skipped := len(points) - len(plotted); skipped > 0 {
		fmt.Printf("skipped %d non-finite samples\n", skipped)
	}
	return nil
}

func runDiverge(cmd *cobra.Command, args []string) error {
	start, prm, d, err := resolveLorenz(cmd, "lorenz")
	if err != nil {
		return err
	}

	a := chaos.Trajectory(start, prm)
	b := chaos.Trajectory(start.Add(chaos.Point{X: d}), prm)

	sep := analysis.Separation(a, b)
	if len(sep) == 0 {
		return fmt.Errorf("no data")
	}

	graph := asciigraph.Plot(sep,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("separation, initial offset %g", d)),
	)
	fmt.Println(graph)
	fmt.Println()

	fmt.Printf("initial separation: %.6f\n", sep[0])
	fmt.Printf("final separation:   %.6f\n", sep[len(sep)-1])
	fmt.Printf("growth ratio:       %.1fx\n", analysis.DivergenceRatio(sep))
	fmt.Printf("lyapunov estimate:  %.4f\n", analysis.Lyapunov(start, prm, 1e-8))
	return nil
}
