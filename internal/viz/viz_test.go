package viz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/chaoscope/internal/scene"
)

func newTestModel(name string) Model {
	return NewModel(name, 30, scene.NewLorenz(), scene.NewPendulum(), scene.NewComplex())
}

func tick(m Model) Model {
	updated, _ := m.Update(TickMsg(time.Now()))
	return updated.(Model)
}

func pressKey(m Model, r rune) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return updated.(Model)
}

func TestProgressBarWidth(t *testing.T) {
	for _, pct := range []float64{-0.5, 0, 0.3, 0.7, 1, 1.5} {
		bar := ProgressBar(pct, 10)
		if bar == "" {
			t.Errorf("empty bar for %v", pct)
		}
	}
}

func TestModelStepAdvancesTime(t *testing.T) {
	for _, name := range []string{"lorenz", "pendulum", "complex"} {
		m := newTestModel(name)
		next := tick(m)
		if next.t <= 0 {
			t.Errorf("%s: time did not advance, t=%v", name, next.t)
		}
	}
}

func TestModelResetOnKey(t *testing.T) {
	m := newTestModel("pendulum")
	for i := 0; i < 10; i++ {
		m = tick(m)
	}
	if m.t == 0 {
		t.Fatal("expected nonzero time after ticks")
	}
	m.resetScene()
	if m.t != 0 {
		t.Errorf("reset left t=%v", m.t)
	}
	if m.pendFrame.T != 0 {
		t.Errorf("reset left frame at t=%v", m.pendFrame.T)
	}
}

func TestModelKeepsConfiguredPendulum(t *testing.T) {
	pend := scene.NewPendulum()
	pend.Params.Theta0 = 0.3
	pend.Params.Damping = 0.05
	m := NewModel("pendulum", 30, scene.NewLorenz(), pend, scene.NewComplex())
	if m.pendFrame.Theta != 0.3 {
		t.Errorf("initial frame ignores theta0: %v", m.pendFrame.Theta)
	}
	m.resetScene()
	if m.pend.Params.Damping != 0.05 {
		t.Errorf("reset dropped damping: %v", m.pend.Params.Damping)
	}
	if m.pendFrame.Theta != 0.3 {
		t.Errorf("reset dropped theta0: %v", m.pendFrame.Theta)
	}
}

func TestRecordingStopSurfacesSaveError(t *testing.T) {
	m := newTestModel("pendulum")
	m = pressKey(m, 'g')
	if !m.recording {
		t.Fatal("expected recording after g")
	}
	m = tick(m)
	m.gifPath = filepath.Join(t.TempDir(), "missing", "out.gif")
	m = pressKey(m, 'g')
	if m.recording {
		t.Fatal("expected recording to stop")
	}
	if m.saveErr == nil {
		t.Fatal("expected save error for unwritable path")
	}
	if !strings.Contains(m.View(), "save failed") {
		t.Error("save error not shown in view")
	}
}

func TestRecordingStopWritesGIF(t *testing.T) {
	m := newTestModel("pendulum")
	m = pressKey(m, 'g')
	m = tick(m)
	m.gifPath = filepath.Join(t.TempDir(), "out.gif")
	path := m.gifPath
	m = pressKey(m, 'g')
	if m.saveErr != nil {
		t.Fatalf("unexpected save error: %v", m.saveErr)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("gif not written: %v", err)
	}
	if strings.Contains(m.View(), "save failed") {
		t.Error("view reports failure after clean save")
	}
}
