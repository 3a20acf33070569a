package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/nbody2d/internal/body"
	"github.com/san-kum/nbody2d/internal/engine"
	"github.com/san-kum/nbody2d/internal/viz"
)

const (
	canvasWidth  = 90
	canvasHeight = 30
	tickRate     = 16 * time.Millisecond

	energyHistoryLen = 60
	sparklineWidth   = 40
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the Bubble Tea program state for the live N-body viewer.
type Model struct {
	store  *body.Store
	engine *engine.Engine
	reset  func(*body.Store)

	canvas *viz.Canvas
	scale  float64

	dt       float64
	paused   bool
	themeIdx int
	fps      float64
	lastTick time.Time

	energyHistory []float64

	width, height int
}

// NewModel builds a live viewer over store, advancing it with eng at dt
// per tick. reset reseeds store's contents when the user presses 'r'.
func NewModel(store *body.Store, eng *engine.Engine, dt float64, reset func(*body.Store)) Model {
	return Model{
		store:  store,
		engine: eng,
		reset:  reset,
		canvas: viz.NewCanvas(canvasWidth, canvasHeight),
		scale:  4.0,
		dt:     dt,
		width:  canvasWidth + 4,
		height: canvasHeight + 8,
	}
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			if dt := now.Sub(m.lastTick).Seconds(); dt > 0 {
				m.fps = 1.0 / dt
			}
		}
		m.lastTick = now
		if !m.paused {
			_ = m.engine.Step(m.store, m.dt)
			m.sampleEnergy()
		}
		m.render()
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "r":
		if m.reset != nil {
			m.store.Clear()
			m.reset(m.store)
			m.energyHistory = nil
		}
	case "t":
		m.themeIdx = (m.themeIdx + 1) % len(viz.Themes)
		viz.SetTheme(viz.Themes[m.themeIdx].Name)
	case "+", "=":
		m.scale *= 1.2
	case "-":
		m.scale /= 1.2
	}
	return m, nil
}

// render redraws the canvas from the current body store; it does not
// advance the simulation. Each body's trail is drawn as braille dots, and
// its current position as a glyph scaled by its radius so massive bodies
// read as marks rather than single pixels.
func (m *Model) render() {
	m.canvas.Clear()
	subW, subH := canvasWidth*2, canvasHeight*4
	cx, cy := subW/2, subH/2

	m.store.Iter(func(b *body.Body) bool {
		hasPrev := false
		prevX, prevY := 0, 0
		b.Trail.Iter(func(p body.Vec2) bool {
			tx := cx + int(p.X/m.scale)
			ty := cy - int(p.Y/m.scale)
			if hasPrev {
				m.canvas.DrawLine(prevX, prevY, tx, ty)
			}
			prevX, prevY, hasPrev = tx, ty, true
			return true
		})

		px := cx + int(b.Pos.X/m.scale)
		py := cy - int(b.Pos.Y/m.scale)
		m.canvas.SetBody(px, py, b.Radius/m.scale)
		return true
	})
}

// sampleEnergy records the store's current total energy for the trend
// sparkline, capped at energyHistoryLen samples.
func (m *Model) sampleEnergy() {
	e := m.engine.Energy(m.store)
	m.energyHistory = append(m.energyHistory, e.Total)
	if len(m.energyHistory) > energyHistoryLen {
		m.energyHistory = m.energyHistory[len(m.energyHistory)-energyHistoryLen:]
	}
}

func (m Model) View() string {
	var b strings.Builder

	stats := m.engine.Stats()
	status := viz.StatusRunning.Render("running")
	if m.paused {
		status = viz.StatusPaused.Render("paused")
	}

	header := fmt.Sprintf("N-body live  %s  bodies=%d  method=%s  fps=%.0f  theme=%s",
		status, m.store.Len(), stats.Method, m.fps, viz.CurrentTheme.Name)
	b.WriteString(viz.HeaderStyle.Render(header))
	b.WriteString("\n")

	canvasStyle := lipgloss.NewStyle().Foreground(viz.CurrentTheme.Primary)
	b.WriteString(canvasStyle.Render(m.canvas.String()))

	metricsLine := fmt.Sprintf(
		"total=%.2fms force=%.2fms integrate=%.2fms collide=%.2fms collisions=%d",
		stats.TotalMs, stats.ForceMs, stats.IntegrateMs, stats.CollideMs, stats.Collisions)
	b.WriteString(viz.MetricLabel.Render(metricsLine))
	b.WriteString("\n")

	energyLine := "energy " + viz.SparklineChart(m.energyHistory, sparklineWidth)
	b.WriteString(viz.MetricLabel.Render(energyLine))
	b.WriteString("\n")

	b.WriteString(viz.KeyHint.Render("space pause · r reset · t theme · +/- zoom · q quit"))
	b.WriteString("\n")

	return lipgloss.NewStyle().Render(b.String())
}
