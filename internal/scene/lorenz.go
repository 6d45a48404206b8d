package scene

import (
	"github.com/san-kum/chaoscope/internal/chaos"
	"github.com/san-kum/chaoscope/internal/motion"
	"github.com/san-kum/chaoscope/internal/render"
)

// Trajectory palette, one color per initial condition.
var LorenzColors = []string{"#58c4dd", "#fc6255", "#83c167", "#ffff00", "#9a72ac"}

// Lorenz is the butterfly-effect scene: several trajectories whose initial
// conditions differ by a hair, drawn together.
type Lorenz struct {
	Base   chaos.Point
	Deltas []chaos.Point
	Params chaos.Params
	Colors []string
}

// NewLorenz returns the scene as originally staged: base point (10,10,10)
// and four neighbors offset by ±0.01 along x or y.
func NewLorenz() Lorenz {
	return Lorenz{
		Base: chaos.Point{X: 10, Y: 10, Z: 10},
		Deltas: []chaos.Point{
			{},
			{X: 0.01},
			{Y: 0.01},
			{X: -0.01},
			{Y: -0.01},
		},
		Params: chaos.DefaultParams(),
		Colors: LorenzColors,
	}
}

// Starts returns the perturbed initial conditions.
func (s Lorenz) Starts() []chaos.Point {
	starts := make([]chaos.Point, len(s.Deltas))
	for i, d := range s.Deltas {
		starts[i] = s.Base.Add(d)
	}
	return starts
}

// Trajectories integrates every initial condition.
func (s Lorenz) Trajectories() [][]chaos.Point {
	starts := s.Starts()
	trajs := make([][]chaos.Point, len(starts))
	for i, start := range starts {
		trajs[i] = chaos.Trajectory(start, s.Params)
	}
	return trajs
}

// scaled applies the stage transform: points shrunk by 20 and dropped by 2
// along z so the attractor sits centered in frame.
func scaled(traj []chaos.Point) []render.Vec3 {
	out := make([]render.Vec3, len(traj))
	for i, p := range traj {
		out[i] = render.Vec3{X: p.X / 20, Y: p.Y / 20, Z: p.Z/20 - 2}
	}
	return out
}

// Paths3 returns the scaled 3D polylines for wireframe rendering.
func (s Lorenz) Paths3() [][]render.Vec3 {
	trajs := s.Trajectories()
	out := make([][]render.Vec3, len(trajs))
	for i, traj := range trajs {
		out[i] = scaled(traj)
	}
	return out
}

// Strokes projects the trajectories onto the x-z plane, the profile that
// shows the two attractor lobes.
func (s Lorenz) Strokes() []render.Stroke {
	trajs := s.Trajectories()
	strokes := make([]render.Stroke, len(trajs))
	for i, traj := range trajs {
		pts := make([]motion.Point2, len(traj))
		for j, p := range traj {
			pts[j] = motion.Point2{X: p.X / 20, Y: p.Z/20 - 2}
		}
		strokes[i] = render.Stroke{Color: s.color(i), Points: pts}
	}
	return strokes
}

func (s Lorenz) color(i int) string {
	if len(s.Colors) == 0 {
		return ""
	}
	return s.Colors[i%len(s.Colors)]
}
