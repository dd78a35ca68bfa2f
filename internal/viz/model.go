package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ijustbsd/pogruzhatel/internal/config"
	"github.com/ijustbsd/pogruzhatel/internal/miniapp"
	"github.com/ijustbsd/pogruzhatel/internal/perf"
)

const (
	defaultWidth  = 100
	defaultHeight = 30

	settingsWidth = 30
	modelWidth    = 26
	// top bar, help line and borders
	chromeHeight = 6
)

type tickMsg time.Time

// Model is the Bubble Tea model of the whole screen.
type Model struct {
	cfg   *config.Config
	log   *zap.Logger
	apps  map[miniapp.Kind]*miniapp.App
	kind  miniapp.Kind
	keys  keyMap
	help  help.Model
	frame *perf.FrameHistory
	// settings on the left, model controls on the right; both follow SettingsOpen
	panel      slidePanel
	modelPanel slidePanel

	width, height int
	plot          string
	err           error
	ticking       bool
	start         time.Time
	now           func() time.Time
}

// New builds the front-end state from cfg. cfg is updated in place as the
// user changes view settings. A nil logger discards everything.
func New(cfg *config.Config, log *zap.Logger) (Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	kind, err := miniapp.ParseKind(cfg.App)
	if err != nil {
		return Model{}, err
	}

	apps := make(map[miniapp.Kind]*miniapp.App)
	for _, k := range miniapp.Kinds() {
		app := miniapp.New(k)
		app.Sampler().GridSize = cfg.GridSize
		app.Sampler().Omega = cfg.Omega
		app.SetCount(cfg.Harmonics)
		if err := app.Calculate(); err != nil {
			return Model{}, err
		}
		apps[k] = app
	}

	cfg.ZoomFactor = config.ClampZoom(cfg.ZoomFactor)
	m := Model{
		cfg:        cfg,
		log:        log,
		apps:       apps,
		kind:       kind,
		keys:       defaultKeyMap(),
		help:       help.New(),
		frame:      perf.NewFrameHistory(cfg.FrameHistory.MaxLen, cfg.FrameHistory.MaxAge),
		panel:      newSlidePanel(settingsWidth, cfg.SettingsOpen),
		modelPanel: newSlidePanel(modelWidth, cfg.SettingsOpen),
		width:      defaultWidth,
		height:     defaultHeight,
		now:        time.Now,
	}
	m.start = m.now()
	m.render()
	return m, nil
}

// Config is the view state as last changed by the user.
func (m Model) Config() *config.Config { return m.cfg }

// App is the active mini-app.
func (m Model) App() *miniapp.App { return m.apps[m.kind] }

func (m Model) Init() tea.Cmd {
	if m.cfg.ForceRepaint {
		return tick()
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/panelFPS, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.render()
	case tickMsg:
		m.ticking = false
		stepped := m.panelsMoving()
		if stepped {
			m.panel.Step()
			m.modelPanel.Step()
		}
		if m.cfg.ForceRepaint || stepped {
			m.render()
		}
		cmd := m.keepTicking()
		return m, cmd
	}
	return m, nil
}

// keepTicking schedules the next frame while something needs one.
// At most one tick is in flight.
func (m *Model) keepTicking() tea.Cmd {
	if m.ticking || !(m.cfg.ForceRepaint || m.panelsMoving()) {
		return nil
	}
	m.ticking = true
	return tick()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	app := m.App()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.NextApp):
		m.kind = m.kind.Next()
		m.cfg.App = m.kind.String()
		m.log.Debug("switched app", zap.String("app", m.cfg.App))
	case key.Matches(msg, m.keys.Settings):
		m.panel.Toggle()
		m.modelPanel.Toggle()
		m.cfg.SettingsOpen = m.panel.open
	case key.Matches(msg, m.keys.ZoomIn):
		m.cfg.ZoomFactor = config.ClampZoom(m.cfg.ZoomFactor + config.ZoomStep)
	case key.Matches(msg, m.keys.ZoomOut):
		m.cfg.ZoomFactor = config.ClampZoom(m.cfg.ZoomFactor - config.ZoomStep)
	case key.Matches(msg, m.keys.ForceRepaint):
		m.cfg.ForceRepaint = !m.cfg.ForceRepaint
		if !m.cfg.ForceRepaint {
			m.frame.Clear()
		}
	case key.Matches(msg, m.keys.More):
		app.SetCount(app.Count() + 1)
		m.syncHarmonics()
	case key.Matches(msg, m.keys.Fewer):
		app.SetCount(app.Count() - 1)
		m.syncHarmonics()
	case key.Matches(msg, m.keys.Draw):
		m.err = app.Calculate()
		if m.err != nil {
			m.log.Error("draw failed", zap.String("app", app.Kind.String()), zap.Error(m.err))
		} else {
			m.log.Info("draw", zap.String("app", app.Kind.String()), zap.Int("harmonics", app.Count()))
		}
	default:
		return m, nil
	}
	m.render()
	cmd := m.keepTicking()
	return m, cmd
}

func (m *Model) panelsMoving() bool {
	return m.panel.Moving() || m.modelPanel.Moving()
}

func (m *Model) syncHarmonics() {
	if app := m.App(); app.Adjustable {
		m.cfg.Harmonics = app.Count()
	}
}

// render rebuilds the cached plot and records its cost as one frame.
func (m *Model) render() {
	begin := m.now()
	free := m.width - m.panel.Width() - m.modelPanel.Width() - 4
	w, h := plotSize(free, m.height-chromeHeight, m.cfg.ZoomFactor)
	app := m.App()
	caption := fmt.Sprintf("%s: %s", app.YLabel, app.XLabel)
	m.plot = RenderPlot(app.Result(), w, h, caption)
	end := m.now()
	m.frame.Add(end.Sub(m.start).Seconds(), end.Sub(begin).Seconds())
}

func (m Model) View() string {
	top := m.topBar()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.settingsView(),
		lipgloss.NewStyle().Padding(0, 1).Render(m.plot),
		m.modelView(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, top, body, m.help.View(m.keys))
}

func (m Model) topBar() string {
	tabs := make([]string, 0, len(m.apps)+2)
	tabs = append(tabs, TitleStyle.Render("Погружатель"))
	for _, k := range miniapp.Kinds() {
		if k == m.kind {
			tabs = append(tabs, SelectedStyle.Render(k.Title()))
		} else {
			tabs = append(tabs, TabStyle.Render(k.Title()))
		}
	}
	settings := StatusOff.Render("settings off")
	if m.panel.open {
		settings = StatusOn.Render("settings on")
	}
	tabs = append(tabs, settings)
	return HeaderStyle.Width(m.width).Render(strings.Join(tabs, " "))
}

func (m Model) settingsView() string {
	w := m.panel.Width()
	if w < 4 {
		return ""
	}
	inner := w - 4
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Settings") + "\n")
	b.WriteString(MetricLabel.Render("zoom factor ") + MetricValue.Render(fmt.Sprintf("%.1f", m.cfg.ZoomFactor)) + "\n")
	repaint := StatusOff.Render("off")
	if m.cfg.ForceRepaint {
		repaint = StatusOn.Render("on")
	}
	b.WriteString(MetricLabel.Render("force repaint ") + repaint + "\n")
	b.WriteString(Separator(inner) + "\n")
	// frame rate is only meaningful while repainting continuously
	var fps float64
	if m.cfg.ForceRepaint {
		fps = m.frame.FPS()
	}
	avg, _ := m.frame.Average()
	b.WriteString(MetricLabel.Render("FPS ") + MetricValue.Render(fmt.Sprintf("%.1f", fps)) + "\n")
	b.WriteString(MetricLabel.Render("frame time ") + MetricValue.Render(fmt.Sprintf("%.1f ms", avg*1e3)) + "\n")
	b.WriteString(SparklineChart(m.frame.Values(), inner))
	return PanelStyle.Width(inner).MaxWidth(w).Render(b.String())
}

func (m Model) modelView() string {
	w := m.modelPanel.Width()
	if w < 4 {
		return ""
	}
	app := m.App()
	ref, sup := app.Legend()
	var b strings.Builder
	b.WriteString(TitleStyle.Render(app.Kind.Title()) + "\n")
	if app.Adjustable {
		b.WriteString(MetricLabel.Render("harmonics ") + MetricValue.Render(fmt.Sprintf("%d", app.Count())) +
			Subtle.Render(fmt.Sprintf(" (1..%d)", app.MaxCount())) + "\n")
	} else {
		b.WriteString(MetricLabel.Render("harmonics ") + MetricValue.Render(fmt.Sprintf("%d", app.Count())) + Subtle.Render(" fixed") + "\n")
	}
	b.WriteString(ButtonStyle.Render("Draw!") + "\n\n")
	b.WriteString(ReferenceStyle.Render("━ ") + ref + "\n")
	b.WriteString(SuperposedStyle.Render("━ ") + sup + "\n")
	if m.err != nil {
		b.WriteString("\n" + ErrorStyle.Render(m.err.Error()))
	}
	return PanelStyle.Width(w - 4).MaxWidth(w).Render(b.String())
}

// Run starts the alt-screen program and returns the final view state.
func Run(cfg *config.Config, log *zap.Logger) (*config.Config, error) {
	m, err := New(cfg, log)
	if err != nil {
		return nil, err
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}
	return final.(Model).Config(), nil
}
