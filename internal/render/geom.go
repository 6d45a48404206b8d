package render

import (
	"math"
	"sort"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Camera projects 3D points onto the canvas with simple perspective.
type Camera struct {
	Distance         float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 5, Zoom: 1.0}
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// rotate applies the camera's axis rotations to a point.
func (c *Camera) rotate(p Vec3) Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project maps a 3D point to sub-pixel canvas coordinates. Returns the
// screen position, depth, and whether the point lands on screen.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.rotate(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	px := minDim / 3.0
	sx := int(rot.X*scale*px) + sw/2
	sy := int(-rot.Y*scale*px) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type Edge struct {
	Start, End Vec3
}

// Wireframe is a set of edges drawn back to front.
type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe         { return &Wireframe{} }
func (w *Wireframe) AddEdge(s, e Vec3) { w.Edges = append(w.Edges, Edge{s, e}) }
func (w *Wireframe) AddPoint(p Vec3)   { w.Edges = append(w.Edges, Edge{p, p}) }
func (w *Wireframe) Clear()            { w.Edges = w.Edges[:0] }

// AddPath connects consecutive points with edges.
func (w *Wireframe) AddPath(pts []Vec3) {
	for i := 1; i < len(pts); i++ {
		w.AddEdge(pts[i-1], pts[i])
	}
}

type projectedEdge struct {
	x1, y1, x2, y2 int
	depth          float64
}

// Draw3D renders the wireframe to the canvas with a painter's sort.
func Draw3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	sw, sh := c.PixelSize()
	proj := make([]projectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, sw, sh)
		x2, y2, d2, v2 := cam.Project(e.End, sw, sh)
		if v1 || v2 {
			proj = append(proj, projectedEdge{x1, y1, x2, y2, (d1 + d2) / 2})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		if e.x1 == e.x2 && e.y1 == e.y2 {
			c.Set(e.x1, e.y1)
		} else {
			c.DrawLine(e.x1, e.y1, e.x2, e.y2)
		}
	}
}
