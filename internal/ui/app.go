package ui

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pokex/internal/dex"
	"github.com/five82/pokex/internal/logtail"
	"github.com/five82/pokex/internal/prefs"
	"github.com/five82/pokex/internal/state"
)

// Loader produces the collection shown by the explorer.
type Loader func(ctx context.Context) (dex.Collection, error)

// Options configures the UI.
type Options struct {
	Context context.Context
	Load    Loader
	Theme   state.Theme

	// PrefsPath receives the theme whenever it is toggled. Empty disables saving.
	PrefsPath string
	// LogPath is the session log shown by the log overlay.
	LogPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	load      Loader
	prefsPath string
	logPath   string
	keys      keyMap

	// Application state; only dispatch writes it.
	st    state.State
	theme Theme

	// Presentation
	width  int
	height int
	ready  bool
	cursor int // index into st.Visible()

	search    textinput.Model
	searching bool
	spinner   spinner.Model

	detailViewport viewport.Model
	detailFor      int // record id the viewport content was built for

	// Overlays
	showHelp bool
	showLogs bool
	logLines []string
	logErr   error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "name or type"
	search.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	st := state.Reduce(state.State{}, state.SetTheme{Theme: opts.Theme})
	return Model{
		ctx:       ctx,
		load:      opts.Load,
		prefsPath: opts.PrefsPath,
		logPath:   opts.LogPath,
		keys:      DefaultKeyMap(),
		st:        st,
		theme:     GetTheme(st.Theme),
		search:    search,
		spinner:   sp,
	}
}

// State returns the current application state.
func (m Model) State() state.State {
	return m.st
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(0, 0)
		}
		m.ready = true
		m.clampCursor()
		m.syncDetail()
		return m, nil

	case recordsMsg:
		m.dispatch(state.Loaded{Records: msg.records, Err: msg.err, At: msg.at})
		return m, nil

	case spinner.TickMsg:
		if !m.st.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showLogs {
		return m.renderLogOverlay()
	}
	return m.renderMain()
}

// dispatch is the single write path into the application state.
func (m *Model) dispatch(a state.Action) {
	prevTheme := m.st.Theme
	m.st = state.Reduce(m.st, a)
	if m.st.Theme != prevTheme {
		m.theme = GetTheme(m.st.Theme)
	}
	m.clampCursor()
	m.syncDetail()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.showLogs {
		m.showLogs = false
		return m, nil
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		m.dispatch(state.ToggleTheme{})
		m.saveTheme()
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.logLines, m.logErr = logtail.Read(m.logPath, LogOverlayLines)
		m.showLogs = true
		return m, nil

	case key.Matches(msg, m.keys.Retry):
		if m.st.LoadErr == nil {
			return m, nil
		}
		m.dispatch(state.Retry{})
		return m, tea.Batch(m.spinner.Tick, m.loadCmd())
	}

	if m.st.Mode() == state.ModeDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleGridKey(msg)
}

// handleSearchKey edits the search term; each keystroke re-filters the grid.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.dispatch(state.SetSearch{Term: ""})
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.st.Search {
		m.dispatch(state.SetSearch{Term: m.search.Value()})
		m.cursor = 0
	}
	return m, cmd
}

// handleGridKey processes keyboard input for the grid view.
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Search) {
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	}
	if key.Matches(msg, m.keys.Cancel) && m.st.Search != "" {
		m.search.SetValue("")
		m.dispatch(state.SetSearch{Term: ""})
		return m, nil
	}

	visible := m.st.Visible()
	if len(visible) == 0 {
		return m, nil
	}
	cols := m.gridColumns()

	switch {
	case key.Matches(msg, m.keys.Left):
		m.cursor--
	case key.Matches(msg, m.keys.Right):
		m.cursor++
	case key.Matches(msg, m.keys.Up):
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor+cols < len(visible) {
			m.cursor += cols
		} else if m.cursor/cols < (len(visible)-1)/cols {
			// Partial last row: land on its last card
			m.cursor = len(visible) - 1
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(visible) - 1
	case key.Matches(msg, m.keys.Open):
		m.clampCursor()
		m.dispatch(state.Select{ID: visible[m.cursor].ID})
	case key.Matches(msg, m.keys.Favorite):
		m.clampCursor()
		m.dispatch(state.ToggleFavorite{ID: visible[m.cursor].ID})
	}
	m.clampCursor()
	return m, nil
}

// handleDetailKey processes keyboard input for the detail view.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.dispatch(state.Back{})
		return m, nil
	case key.Matches(msg, m.keys.Favorite):
		m.dispatch(state.ToggleFavorite{ID: m.st.SelectedID})
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.detailViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.detailViewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

// clampCursor keeps the cursor inside the visible subset.
func (m *Model) clampCursor() {
	n := len(m.st.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// saveTheme persists the theme; a failed write only costs the preference.
func (m Model) saveTheme() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.st.Theme.String()}); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// Messages

type recordsMsg struct {
	records dex.Collection
	err     error
	at      time.Time
}

// Commands

func (m Model) loadCmd() tea.Cmd {
	load, ctx := m.load, m.ctx
	if load == nil {
		return nil
	}
	return func() tea.Msg {
		records, err := load(ctx)
		return recordsMsg{records: records, err: err, at: time.Now()}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: logo + status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: search bar
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n")

	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderContent renders the main content area for the current mode.
func (m Model) renderContent() string {
	if m.st.Mode() == state.ModeDetail {
		return m.renderDetail()
	}
	return m.renderGrid()
}

// contentHeight is the number of rows between header and footer.
func (m Model) contentHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 3 {
		return 3
	}
	return h
}
