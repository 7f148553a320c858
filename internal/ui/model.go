package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rawataarushi/marithon/internal/config"
	"github.com/rawataarushi/marithon/internal/models"
	"github.com/rawataarushi/marithon/internal/sim"
	"github.com/rawataarushi/marithon/internal/weather"
	"github.com/rawataarushi/marithon/internal/zonelookup"
)

// AppState represents the current state of the application
type AppState int

const (
	StateRouteList AppState = iota // Browse and toggle trade routes
	StateLoading                   // Prefetching weather for the selected route
	StateVoyage                    // Stepping through the voyage
	StateError                     // Error state
)

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	cfg      *config.Config
	provider weather.Provider

	// Routes
	routes    []models.Route
	routeList list.Model
	hidden    map[string]bool // route IDs toggled off
	selected  *models.Route

	// Voyage
	stepper *sim.Stepper
	step    *sim.Step
	running bool
	zone    *zonelookup.ZoneInfo

	spinner spinner.Model
}

// NewModel creates a new application model
func NewModel(cfg *config.Config, provider weather.Provider, routes []models.Route) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		state:     StateRouteList,
		cfg:       cfg,
		provider:  provider,
		routes:    routes,
		routeList: createRouteList(routes, 80, 20),
		hidden:    make(map[string]bool),
		spinner:   s,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.routeList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	switch msg := msg.(type) {
	case errMsg:
		m.err = msg.err
		m.state = StateError
		return m, nil

	case prefetchDoneMsg:
		m.stepper = msg.stepper
		m.state = StateVoyage
		m.running = true
		return m, tea.Batch(m.advance(), m.lookupZone())

	case stepTickMsg:
		if m.state != StateVoyage || !m.running {
			return m, nil
		}
		return m.advanceStep()

	case zoneFoundMsg:
		if m.step != nil && msg.waypointIndex == m.step.WaypointIndex {
			m.zone = msg.zone
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.routeList, cmd = m.routeList.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateRouteList:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if item, ok := m.routeList.SelectedItem().(routeItem); ok {
				m.hidden[item.route.ID] = !m.hidden[item.route.ID]
			}
			return m, nil
		case "enter":
			if item, ok := m.routeList.SelectedItem().(routeItem); ok {
				return m.startVoyage(item.route)
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.routeList, cmd = m.routeList.Update(msg)
		return m, cmd

	case StateVoyage:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.state = StateRouteList
			m.stepper = nil
			m.step = nil
			m.zone = nil
			m.running = false
			return m, nil
		case " ":
			m.running = !m.running
			if m.running {
				return m, m.tick()
			}
			return m, nil
		case "n":
			// Manual single step while paused.
			if !m.running {
				return m.advanceStep()
			}
			return m, nil
		}
		return m, nil

	case StateError:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc", "enter":
			m.state = StateRouteList
			m.err = nil
			return m, nil
		}
		return m, nil

	default:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}
}

// startVoyage builds a stepper for the route and kicks off the weather
// prefetch. Stepping begins only after every waypoint has data.
func (m Model) startVoyage(route models.Route) (tea.Model, tea.Cmd) {
	stepper, err := sim.New(route, m.cfg.Sim.BaseSpeed, m.cfg.Ship, m.cfg.Fuel, m.cfg.Cost, m.provider)
	if err != nil {
		m.err = err
		m.state = StateError
		return m, nil
	}

	m.selected = &route
	m.state = StateLoading
	m.step = nil
	m.zone = nil

	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		stepper.Prefetch(context.Background())
		return prefetchDoneMsg{stepper: stepper}
	})
}

// advance computes the first step of the voyage.
func (m *Model) advance() tea.Cmd {
	step, err := m.stepper.StepAt(0)
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	m.step = &step
	return m.tick()
}

// advanceStep moves to the next waypoint, or stops at the end of the route.
func (m Model) advanceStep() (tea.Model, tea.Cmd) {
	if m.stepper == nil || m.step == nil {
		return m, nil
	}

	next := m.step.WaypointIndex + 1
	if next >= m.stepper.Steps() {
		m.running = false
		return m, nil
	}

	step, err := m.stepper.StepAt(next)
	if err != nil {
		m.err = err
		m.state = StateError
		return m, nil
	}
	m.step = &step
	m.zone = nil

	cmds := []tea.Cmd{m.lookupZone()}
	if m.running {
		cmds = append(cmds, m.tick())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.Sim.StepInterval, func(t time.Time) tea.Msg {
		return stepTickMsg(t)
	})
}

// lookupZone annotates the current waypoint with its NOAA marine zone.
// Skipped offline since first use downloads the zone shapefile.
func (m Model) lookupZone() tea.Cmd {
	if m.cfg.Weather.Offline || m.step == nil {
		return nil
	}

	idx := m.step.WaypointIndex
	coord := m.step.Position
	dbPath := m.cfg.Weather.DBPath

	return func() tea.Msg {
		zone, err := zonelookup.NearestZone(dbPath, coord, 150)
		if err != nil {
			return zoneFoundMsg{waypointIndex: idx, zone: nil}
		}
		return zoneFoundMsg{waypointIndex: idx, zone: zone}
	}
}

// View renders the application
func (m Model) View() string {
	switch m.state {
	case StateRouteList:
		return m.renderRouteListView()
	case StateLoading:
		return fmt.Sprintf("\n  %s Fetching weather for %s...\n", m.spinner.View(), m.selected.Name)
	case StateVoyage:
		return m.renderVoyageView()
	case StateError:
		return fmt.Sprintf("\n  %s\n\n%s",
			adverseStyle.Render(fmt.Sprintf("Error: %v", m.err)),
			helpStyle.Render("  esc: back · q: quit"))
	default:
		return ""
	}
}

func (m Model) renderRouteListView() string {
	visible := 0
	for _, r := range m.routes {
		if !m.hidden[r.ID] {
			visible++
		}
	}

	footer := helpStyle.Render(fmt.Sprintf(
		"  %d/%d routes shown · space: toggle · enter: sail · q: quit",
		visible, len(m.routes)))

	return m.routeList.View() + "\n" + footer
}

func (m Model) renderVoyageView() string {
	if m.step == nil {
		return "\n  " + m.spinner.View() + " Preparing voyage..."
	}

	paneWidth := m.width/3 - 2
	if paneWidth < 30 {
		paneWidth = 30
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderWeatherPane(paneWidth),
		m.renderVoyagePane(paneWidth),
		m.renderCostPane(paneWidth),
	)

	status := "sailing"
	if !m.running {
		status = "paused"
		if m.step.WaypointIndex == m.stepper.Steps()-1 {
			status = "arrived"
		}
	}

	header := titleStyle.Render(m.selected.Name) +
		mutedStyle.Render(fmt.Sprintf("  waypoint %d/%d · %s",
			m.step.WaypointIndex+1, m.step.TotalWaypoints, status))

	help := helpStyle.Render("  space: pause/resume · n: step · esc: routes · q: quit")

	return header + "\n" + panes + "\n" + help
}
