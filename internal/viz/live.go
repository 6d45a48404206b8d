// Package viz hosts the terminal animation loop. Each scene's state lives in
// an explicit frame value carried on the model; the tick handler advances the
// frame and redraws the braille canvas from scratch.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/chaoscope/internal/chaos"
	"github.com/san-kum/chaoscope/internal/render"
	"github.com/san-kum/chaoscope/internal/scene"
	"github.com/san-kum/chaoscope/internal/trail"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
)

type TickMsg time.Time

// Model drives one scene in the terminal.
type Model struct {
	sceneName string
	frameRate int
	canvas    *render.Canvas
	camera    *render.Camera
	running   bool
	t         float64

	// lorenz scene
	lorenz       scene.Lorenz
	lorenzStates []chaos.Point
	lorenzTrails []*trail.Ring[render.Vec3]

	// pendulum scene
	pend      scene.Pendulum
	pendFrame scene.PendulumFrame

	// complex motion scene
	cpx      scene.Complex
	cpxFrame scene.ComplexFrame

	thetaHistory  []float64
	energyHistory []float64

	recorder  *render.Recorder
	recording bool
	gifPath   string
	saveErr   error
}

// NewModel prepares the named scene at t=0. The scene values carry whatever
// parameters the caller resolved from flags, config, or presets.
func NewModel(sceneName string, frameRate int, lz scene.Lorenz, pend scene.Pendulum, cpx scene.Complex) Model {
	if frameRate < 1 {
		frameRate = 30
	}
	m := Model{
		sceneName: sceneName,
		frameRate: frameRate,
		canvas:    render.NewCanvas(width, height),
		camera:    render.NewCamera(),
		running:   true,
		gifPath:   sceneName + ".gif",
		lorenz:    lz,
		pend:      pend,
		cpx:       cpx,
	}
	m.resetScene()
	return m
}

// resetScene rewinds to t=0 keeping the configured scene parameters.
func (m *Model) resetScene() {
	m.t = 0
	m.thetaHistory = m.thetaHistory[:0]
	m.energyHistory = m.energyHistory[:0]
	switch m.sceneName {
	case "pendulum":
		m.pendFrame = m.pend.NewFrame()
	case "complex":
		m.cpxFrame = m.cpx.NewFrame()
	default:
		m.lorenzStates = m.lorenz.Starts()
		m.lorenzTrails = make([]*trail.Ring[render.Vec3], len(m.lorenzStates))
		for i := range m.lorenzTrails {
			m.lorenzTrails[i] = trail.New[render.Vec3](trail.DefaultCap)
		}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.resetScene()
		case "g":
			if m.recording {
				m.saveErr = m.recorder.WriteFile(m.gifPath)
				m.recorder = nil
				m.recording = false
			} else {
				m.recorder = render.NewRecorder(m.frameRate)
				m.recording = true
				m.saveErr = nil
			}
		case "x":
			m.camera.RotX += 0.1
		case "X":
			m.camera.RotX -= 0.1
		case "y":
			m.camera.RotY += 0.1
		case "Y":
			m.camera.RotY -= 0.1
		case "z":
			m.camera.RotZ += 0.1
		case "Z":
			m.camera.RotZ -= 0.1
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		m.draw()
		if m.recording {
			m.recorder.Capture(m.canvas)
		}
		return m, tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// step advances the scene by one animation tick.
func (m *Model) step() {
	dt := 1.0 / float64(m.frameRate)
	switch m.sceneName {
	case "pendulum":
		m.pendFrame = m.pend.Advance(m.pendFrame, dt)
		m.t = m.pendFrame.T
		m.pushHistory(&m.thetaHistory, m.pendFrame.Theta)
		m.pushHistory(&m.energyHistory, m.pendFrame.PE+m.pendFrame.KE)
	case "complex":
		m.cpxFrame = m.cpx.Advance(m.cpxFrame, dt)
		m.t = m.cpxFrame.T
	default:
		prm := m.lorenz.Params
		for i, p := range m.lorenzStates {
			next := chaos.Step(p, prm)
			m.lorenzStates[i] = next
			m.lorenzTrails[i].Push(render.Vec3{X: next.X / 20, Y: next.Y / 20, Z: next.Z/20 - 2})
		}
		m.t += prm.Dt
		m.pushHistory(&m.thetaHistory, m.lorenzStates[0].Z)
	}
}

func (m *Model) pushHistory(hist *[]float64, v float64) {
	*hist = append(*hist, v)
	if len(*hist) > historyCapacity {
		*hist = (*hist)[1:]
	}
}

func (m *Model) draw() {
	m.canvas.Clear()
	switch m.sceneName {
	case "pendulum":
		m.drawPendulum()
	case "complex":
		m.drawComplex()
	default:
		m.drawLorenz()
	}
}

func (m *Model) drawLorenz() {
	wf := render.NewWireframe()
	for _, tr := range m.lorenzTrails {
		wf.AddPath(tr.Points())
		if last, ok := tr.Last(); ok {
			wf.AddPoint(last)
		}
	}
	// slow orbit unless the user has taken the camera
	if m.camera.RotX == 0 && m.camera.RotZ == 0 {
		m.camera.RotY += 0.005
	}
	render.Draw3D(m.canvas, wf, m.camera)
}

func (m *Model) drawPendulum() {
	cw, ch := m.canvas.PixelSize()
	cx, cy := cw/2, 8
	scale := float64(ch) * 0.18

	f := m.pendFrame
	bx := cx + int(f.Bob.X*scale)
	by := cy - int(f.Bob.Y*scale)

	for _, pt := range f.BobTrail.Points() {
		m.canvas.Set(cx+int(pt.X*scale), cy-int(pt.Y*scale))
	}
	m.canvas.Set(cx, cy)
	m.canvas.DrawLine(cx, cy, bx, by)
	m.canvas.DrawDot(bx, by)

	// phase portrait in the lower-right corner
	px0, py0 := cw-cw/5, ch-ch/4
	pscale := scale * 0.25
	for _, pt := range f.PhaseTrail.Points() {
		m.canvas.Set(px0+int(pt.X*pscale), py0-int(pt.Y*pscale))
	}
}

func (m *Model) drawComplex() {
	cw, ch := m.canvas.PixelSize()
	cx, cy := cw/2, ch/2
	scale := float64(ch) * 0.22

	f := m.cpxFrame
	m.canvas.DrawCircle(cx, cy, int(scale))
	for _, c := range m.cpx.RingCenters(f) {
		m.canvas.DrawCircle(cx+int(c.X*scale), cy-int(c.Y*scale), int(m.cpx.RingRadius*scale))
	}
	for _, pt := range f.DotTrail.Points() {
		m.canvas.Set(cx+int(pt.X*scale), cy-int(pt.Y*scale))
	}
	m.canvas.DrawDot(cx+int(f.Dot.X*scale), cy-int(f.Dot.Y*scale))
}

func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.sceneName)) + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if m.recording {
		status += "  " + recordStyle.Render("● REC")
	}
	if m.saveErr != nil {
		status += "  " + recordStyle.Render(fmt.Sprintf("gif save failed: %v", m.saveErr))
	}
	s.WriteString(status + "\n\n")

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")

	switch m.sceneName {
	case "pendulum":
		f := m.pendFrame
		s.WriteString(labelStyle.Render("Theta") + valueStyle.Render(fmt.Sprintf("%.3f rad", f.Theta)) + "\n")
		s.WriteString(labelStyle.Render("Theta dot") + valueStyle.Render(fmt.Sprintf("%.3f rad/s", f.ThetaDot)) + "\n")
		s.WriteString(labelStyle.Render("Omega") + valueStyle.Render(fmt.Sprintf("%.3f rad/s", m.pend.Params.Omega())) + "\n\n")
		s.WriteString(labelStyle.Render("PE") + ProgressBar(f.PE/2, 14) + valueStyle.Render(fmt.Sprintf(" %.2f", f.PE)) + "\n")
		s.WriteString(labelStyle.Render("KE") + ProgressBar(f.KE/2, 14) + valueStyle.Render(fmt.Sprintf(" %.2f", f.KE)) + "\n")
		if len(m.thetaHistory) > 1 {
			chart := asciigraph.Plot(m.thetaHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("theta"))
			s.WriteString(graphStyle.Render(chart) + "\n")
		}
	case "complex":
		f := m.cpxFrame
		s.WriteString(labelStyle.Render("Dot") + valueStyle.Render(fmt.Sprintf("(%.2f, %.2f)", f.Dot.X, f.Dot.Y)) + "\n")
		s.WriteString(labelStyle.Render("Trail") + valueStyle.Render(fmt.Sprintf("%d pts", f.DotTrail.Len())) + "\n")
		if m.cpx.Done(f) {
			s.WriteString(labelStyle.Render("Phase") + valueStyle.Render("done") + "\n")
		} else if f.SpiralT > 0 {
			s.WriteString(labelStyle.Render("Phase") + valueStyle.Render("spiral") + "\n")
		} else {
			s.WriteString(labelStyle.Render("Phase") + valueStyle.Render("epicycle") + "\n")
		}
	default:
		p := m.lorenzStates[0]
		s.WriteString(labelStyle.Render("X") + valueStyle.Render(fmt.Sprintf("%.3f", p.X)) + "\n")
		s.WriteString(labelStyle.Render("Y") + valueStyle.Render(fmt.Sprintf("%.3f", p.Y)) + "\n")
		s.WriteString(labelStyle.Render("Z") + valueStyle.Render(fmt.Sprintf("%.3f", p.Z)) + "\n")
		if len(m.thetaHistory) > 1 {
			chart := asciigraph.Plot(m.thetaHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("z(t)"))
			s.WriteString(graphStyle.Render(chart) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nG:Record  X/Y/Z:Rotate +/-:Zoom"))
	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}
