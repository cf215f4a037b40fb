package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Question-jpeg/Pendulum/internal/canvas"
	"github.com/Question-jpeg/Pendulum/internal/config"
	"github.com/Question-jpeg/Pendulum/pendulum"
)

const (
	frameRate  = 60
	panelWidth = 34
	threshold  = 0x6000
)

var (
	canvasStyle      = lipgloss.NewStyle().Padding(0, 1)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(panelWidth - 2)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// param is one tunable value of the panel.
type param struct {
	name string
	step float64
	get  func(pendulum.Params) float64
	set  func(*pendulum.Params, float64)
}

var params = []param{
	{"speed", 1,
		func(p pendulum.Params) float64 { return p.Speed },
		func(p *pendulum.Params, v float64) { p.Speed = v }},
	{"rotation", 0.05,
		func(p pendulum.Params) float64 { return p.Coef },
		func(p *pendulum.Params, v float64) { p.Coef = v }},
	{"length 1", 5,
		func(p pendulum.Params) float64 { return p.L[0] },
		func(p *pendulum.Params, v float64) { p.L[0] = v }},
	{"length 2", 5,
		func(p pendulum.Params) float64 { return p.L[1] },
		func(p *pendulum.Params, v float64) { p.L[1] = v }},
	{"width", 0.25,
		func(p pendulum.Params) float64 { return p.LineWidth },
		func(p *pendulum.Params, v float64) { p.LineWidth = v }},
}

// model holds the simulator and the terminal view state.
type model struct {
	pend    *pendulum.Pendulum
	painter *canvas.Painter
	units   float64 // trace units across the shorter side

	width, height int
	canvas        pendulum.Size
	screen        string

	selected int
	batches  int
	showHelp bool
	err      error
}

func newModel(conf *config.Config) model {
	p := pendulum.New(conf.Params())
	p.SetRunning(conf.Running)
	return model{
		pend:  p,
		units: float64(conf.Width),
	}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "space":
			m.pend.SetRunning(!m.pend.Running())
		case "e":
			m.pend.Erase()
		case "r":
			m.pend.Reset()
		case "s":
			if m.pend.Params().Style == pendulum.StyleLine {
				m.pend.SetStyle(pendulum.StyleDotted)
			} else {
				m.pend.SetStyle(pendulum.StyleLine)
			}
		case "tab":
			m.selected = (m.selected + 1) % len(params)
		case "shift+tab":
			m.selected = (m.selected + len(params) - 1) % len(params)
		case "up", "k":
			m.adjust(1)
		case "down", "j":
			m.adjust(-1)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		m.pend.Update(m.canvas)
		m.draw()
		return m, tick()
	}
	return m, nil
}

// resize rebuilds the painter for the new drawing area. The scale keeps
// units trace units across its shorter side.
func (m *model) resize(w, h int) {
	m.width, m.height = w, h
	cols := max(w-panelWidth-2, 1)
	rows := max(h, 1)
	pw, ph := cols*canvas.CellWidth, rows*canvas.CellHeight

	scale := float64(min(pw, ph)) / m.units
	m.painter = canvas.NewPainter(pw, ph, scale)
	m.canvas = pendulum.Size{W: float64(pw) / scale, H: float64(ph) / scale}
}

// adjust moves the selected parameter by dir steps within its bounds.
func (m *model) adjust(dir float64) {
	sel := params[m.selected]
	next := m.pend.Params()
	sel.set(&next, sel.get(next)+dir*sel.step)
	next = next.Clamp(pendulum.MaxArmLength(m.units))

	m.pend.SetSpeed(next.Speed)
	m.pend.SetCoef(next.Coef)
	m.pend.SetLineWidth(next.LineWidth)
	m.pend.SetArmLength(1, next.L[0])
	m.pend.SetArmLength(2, next.L[1])
}

func (m *model) draw() {
	frame := m.pend.Geometry()
	m.batches = len(frame.History)
	if m.painter == nil {
		return
	}
	dc, err := m.painter.Paint(frame)
	if err != nil {
		m.err = err
		return
	}
	m.screen = canvas.Braille(dc.Image(), threshold)
}

func (m model) View() string {
	if m.painter == nil {
		return "starting..."
	}

	status := "RUNNING"
	if !m.pend.Running() {
		status = "PAUSED"
	}
	var s strings.Builder
	s.WriteString(headerStyle.Render("PENDULUM") + "\n")
	s.WriteString(status + "\n\n")

	cur := m.pend.Params()
	for i, p := range params {
		line := fmt.Sprintf("%-9s %7.2f", p.name, p.get(cur))
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + valueStyle.Render(line) + "\n")
		}
	}
	s.WriteString("  " + valueStyle.Render(fmt.Sprintf("%-9s %7s", "style", cur.Style)) + "\n\n")

	s.WriteString(labelStyle.Render("Points") + valueStyle.Render(fmt.Sprint(m.pend.Trace().Count())) + "\n")
	s.WriteString(labelStyle.Render("Batches") + valueStyle.Render(fmt.Sprint(m.batches)) + "\n")
	if m.err != nil {
		s.WriteString(activeParamStyle.Render(m.err.Error()) + "\n")
	}
	if m.showHelp {
		s.WriteString(helpStyle.Render("SP:Pause  E:Erase  R:Reset\nTab:Select  ↑↓:Tune\nS:Style  ?:Help  Q:Quit"))
	} else {
		s.WriteString(helpStyle.Render("?:Help  Q:Quit"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(m.screen), statsStyle.Render(s.String()))
}
