package viz

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/entui/internal/entropy"
	"github.com/san-kum/entui/internal/nav"
)

// ErrTerminal is returned by Run when the terminal program fails.
var ErrTerminal = errors.New("viz: terminal failure")

const (
	defaultTick   = 250 * time.Millisecond
	gutterWidth   = 3
	overviewRows  = 3
	minChartWidth = 10
	minChartRows  = 4
)

// TickMsg triggers a periodic redraw.
type TickMsg time.Time

// Options configures a Model.
type Options struct {
	Title         string
	TickInterval  time.Duration
	HexOffsets    bool
	Theme         string
	HighThreshold float64
}

// Model is the interactive entropy chart.
type Model struct {
	data      *entropy.Dataset
	means     *entropy.RunningMean
	view      nav.Viewport
	keys      keyMap
	help      help.Model
	title     string
	tick      time.Duration
	threshold float64
	theme     Theme
	st        styles

	width, height int
	showOverview  bool
}

// NewModel builds a Model over ds with the viewport covering the whole file.
func NewModel(ds *entropy.Dataset, opts Options) Model {
	if opts.TickInterval <= 0 {
		opts.TickInterval = defaultTick
	}
	if opts.HighThreshold <= 0 {
		opts.HighThreshold = entropy.DefaultHighThreshold
	}
	theme := GetTheme(opts.Theme)
	v := nav.New(ds.TotalSize, ds.BlockSize)
	if opts.HexOffsets {
		v = v.Apply(nav.ToggleHex)
	}
	return Model{
		data:      ds,
		means:     entropy.NewRunningMean(ds.Samples),
		view:      v,
		keys:      defaultKeyMap(),
		help:      help.New(),
		title:     opts.Title,
		tick:      opts.TickInterval,
		threshold: opts.HighThreshold,
		theme:     theme,
		st:        newStyles(theme),
		width:     80,
		height:    24,
	}
}

// Viewport returns the current navigation state.
func (m Model) Viewport() nav.Viewport { return m.view }

// Theme returns the active color theme.
func (m Model) Theme() Theme { return m.theme }

func (m Model) Init() tea.Cmd { return m.nextTick() }

func (m Model) nextTick() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m, m.nextTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if cmd := m.keys.command(msg); cmd != nav.None {
		m.view = m.view.Apply(cmd)
		if m.view.QuitRequested() {
			return m, tea.Quit
		}
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Theme):
		m.theme = NextTheme(m.theme)
		m.st = newStyles(m.theme)
	case key.Matches(msg, m.keys.Overview):
		m.showOverview = !m.showOverview
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) chartSize() (int, int) {
	w := m.width - gutterWidth - 2
	if w < minChartWidth {
		w = minChartWidth
	}
	// title, frame, x labels, status, help
	reserved := 1 + 2 + 1 + 1 + 1
	if m.help.ShowAll {
		reserved += 3
	}
	if m.showOverview {
		reserved += overviewRows + 1
	}
	h := m.height - reserved
	if h < minChartRows {
		h = minChartRows
	}
	return w, h
}

func (m Model) View() string {
	if m.view.QuitRequested() {
		return ""
	}
	var s strings.Builder

	title := "entui"
	if m.title != "" {
		title += "  " + m.title
	}
	s.WriteString(m.st.title.Render(title) + m.st.label.Render("  ["+m.theme.Name+"]") + "\n")

	w, h := m.chartSize()
	ch := RenderChart(m.data.Samples, m.view, w, h)
	s.WriteString(m.st.frame.Render(m.plotBody(ch, h)) + "\n")

	l := m.view.Labels()
	s.WriteString(strings.Repeat(" ", gutterWidth+1) + m.st.axis.Render(spread(l[0], l[1], l[2], w)) + "\n")

	if m.showOverview {
		s.WriteString(m.overview(w) + "\n")
	}

	s.WriteString(m.status() + "\n")
	s.WriteString(m.help.View(m.keys))
	return s.String()
}

func (m Model) plotBody(ch Chart, rows int) string {
	lines := strings.Split(strings.TrimSuffix(ch.Canvas.String(), "\n"), "\n")
	var b strings.Builder
	for i, line := range lines {
		var tick string
		switch i {
		case 0:
			tick = "8"
		case rows / 2:
			tick = "4"
		case rows - 1:
			tick = "0"
		}
		b.WriteString(m.st.axis.Render(fmt.Sprintf("%*s ", gutterWidth-1, tick)))
		b.WriteString(m.colorRow([]rune(line), ch.ColumnMax))
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// colorRow renders runs of columns with the hot style where the plotted
// entropy reaches the threshold.
func (m Model) colorRow(row []rune, colMax []float64) string {
	hot := func(col int) bool {
		return col < len(colMax) && !math.IsNaN(colMax[col]) && colMax[col] >= m.threshold
	}
	var b strings.Builder
	for i := 0; i < len(row); {
		j := i
		for j < len(row) && hot(j) == hot(i) {
			j++
		}
		style := m.st.line
		if hot(i) {
			style = m.st.hot
		}
		b.WriteString(style.Render(string(row[i:j])))
		i = j
	}
	return b.String()
}

func (m Model) overview(w int) string {
	ent := m.data.Entropies()
	if len(ent) < 2 {
		return m.st.label.Render("overview unavailable")
	}
	graph := asciigraph.Plot(ent,
		asciigraph.Height(overviewRows),
		asciigraph.Width(w-10),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(entropy.MaxEntropy),
	)
	return m.st.label.Render(graph)
}

func (m Model) status() string {
	lo, hi := m.view.Start(), m.view.End()
	n, avg := m.means.Window(lo, hi)
	mean := "-"
	if n > 0 {
		mean = fmt.Sprintf("%.3f", avg)
	}
	parts := []string{
		m.st.label.Render("range ") + m.st.value.Render(m.view.FormatOffset(uint64(lo))+"-"+m.view.FormatOffset(uint64(hi))),
		m.st.label.Render("blocks ") + m.st.value.Render(fmt.Sprintf("%d/%d", n, len(m.data.Samples))),
		m.st.label.Render("mean ") + m.st.status.Render(mean),
		m.st.label.Render("mode ") + m.st.value.Render(m.view.Mode().String()),
	}
	return strings.Join(parts, "  ")
}

// Run starts the interactive chart on the alternate screen and blocks until
// the user quits.
func Run(ds *entropy.Dataset, opts Options) error {
	p := tea.NewProgram(NewModel(ds, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("%w: %w", ErrTerminal, err)
	}
	return nil
}
