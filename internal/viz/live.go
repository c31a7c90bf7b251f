// Package viz renders the running sandbox in the terminal: atoms projected
// onto a braille canvas with a stats panel and kinetic-energy sparkline.
// Reaction and transition triggers stay keyboard-driven, mirroring the
// collaborator contract of the core: the engine never fires them itself.
package viz

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/atomlab/atomsim/internal/engine"
	"github.com/atomlab/atomsim/internal/nuclear"
	"github.com/atomlab/atomsim/internal/orbital"
)

const (
	canvasWidth   = 60
	canvasHeight  = 18
	historyLimit  = 120
	worldHalfSpan = 6.0 // meters mapped to the canvas half-width
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(42)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(11)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	eventStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// TickMsg drives the frame loop.
type TickMsg time.Time

// Model is the bubbletea model for the live sandbox view.
type Model struct {
	eng     *engine.Engine
	reactor *nuclear.Reactor
	orbits  *orbital.Model

	scene   string
	dt      float64
	t       float64
	fps     int
	running bool

	canvas    *Canvas
	keHistory []float64
	lastEvent string
}

// NewModel wires a live view around an already-built engine.
func NewModel(eng *engine.Engine, reactor *nuclear.Reactor, orbits *orbital.Model, sceneName string, dt float64, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		eng:     eng,
		reactor: reactor,
		orbits:  orbits,
		scene:   sceneName,
		dt:      dt,
		fps:     fps,
		running: true,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.running {
			steps := int(1.0 / (float64(m.fps) * m.dt))
			if steps < 1 {
				steps = 1
			}
			for i := 0; i < steps; i++ {
				m.eng.Update(m.dt)
				m.t += m.dt
			}
			m.keHistory = append(m.keHistory, m.eng.KineticEnergy())
			if len(m.keHistory) > historyLimit {
				m.keHistory = m.keHistory[1:]
			}
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "f":
			m.triggerFission()
		case "u":
			m.triggerFusion()
		case "j":
			m.triggerJump()
		}
	}
	return m, nil
}

// triggerFission fires the reactor at the first uranium nucleus in the
// scene.
func (m *Model) triggerFission() {
	for _, a := range m.eng.Atoms() {
		if a.AtomicNumber() == 92 && a.MassNumber() == 235 {
			ev := m.reactor.SimulateFission(a.Nucleus())
			m.lastEvent = fmt.Sprintf("fission: %.3e eV", ev)
			return
		}
	}
	m.lastEvent = "fission: no U-235 in scene"
}

// triggerFusion fires the reactor at the first D/T pair in the scene.
func (m *Model) triggerFusion() {
	atoms := m.eng.Atoms()
	for i := 0; i < len(atoms); i++ {
		for j := i + 1; j < len(atoms); j++ {
			ev := m.reactor.SimulateFusion(atoms[i].Nucleus(), atoms[j].Nucleus())
			if ev > 0 {
				m.lastEvent = fmt.Sprintf("fusion: %.3e eV", ev)
				return
			}
		}
	}
	m.lastEvent = "fusion: no D-T pair in scene"
}

// triggerJump bounces the first electron in the scene between n=3 and the
// ground state, reporting the photon.
func (m *Model) triggerJump() {
	for _, a := range m.eng.Atoms() {
		electrons := a.Electrons()
		if len(electrons) == 0 {
			continue
		}
		e := electrons[0]
		target := 3
		if e.OrbitalLevel == 3 {
			target = 1
		}
		deltaE := m.orbits.SimulateElectronJump(e, a, target)
		wavelength := orbital.EnergyToWavelengthNm(deltaE)
		band := orbital.ClassifyBand(wavelength)
		m.lastEvent = fmt.Sprintf("jump n→%d: %.3f eV, %.1f nm (%s)", target, deltaE, wavelength, band)
		return
	}
	m.lastEvent = "jump: no electrons in scene"
}

func (m Model) View() string {
	m.canvas.Clear()

	// Project atoms onto the x/y plane, nucleus plus electrons.
	for _, a := range m.eng.Atoms() {
		m.plot(a.Nucleus().Pos)
		for _, e := range a.Electrons() {
			m.plot(e.Pos)
		}
	}

	var stats string
	stats += headerStyle.Render("atomsim · "+m.scene) + "\n"
	stats += row("time", fmt.Sprintf("%.3f s", m.t))
	stats += row("atoms", fmt.Sprintf("%d", len(m.eng.Atoms())))
	stats += row("molecules", fmt.Sprintf("%d", len(m.eng.Molecules())))
	stats += row("kinetic", fmt.Sprintf("%.3e J", m.eng.KineticEnergy()))
	stats += row("momentum", fmt.Sprintf("%.3e kg·m/s", r3.Norm(m.eng.Momentum())))
	if m.lastEvent != "" {
		stats += "\n" + eventStyle.Render(m.lastEvent) + "\n"
	}
	if !m.running {
		stats += "\n" + eventStyle.Render("paused") + "\n"
	}
	if len(m.keHistory) > 2 {
		stats += "\n" + asciigraph.Plot(m.keHistory,
			asciigraph.Height(5),
			asciigraph.Width(36),
			asciigraph.Caption("kinetic energy"),
		) + "\n"
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		panelStyle.Render(stats),
	)
	help := helpStyle.Render("space pause · f fission · u fusion · j electron jump · q quit")
	return body + "\n" + help + "\n"
}

// plot maps a world position to canvas sub-pixels, y up.
func (m Model) plot(pos r3.Vec) {
	if math.IsNaN(pos.X) || math.IsNaN(pos.Y) {
		return
	}
	w := float64(m.canvas.Width * 2)
	h := float64(m.canvas.Height * 4)
	x := int((pos.X + worldHalfSpan) / (2 * worldHalfSpan) * w)
	y := int((worldHalfSpan - pos.Y) / (2 * worldHalfSpan) * h)
	m.canvas.Set(x, y)
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}
