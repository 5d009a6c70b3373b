package ui

import (
	"context"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/kiosk/internal/catalog"
	"github.com/five82/kiosk/internal/lifecycle"
	"github.com/five82/kiosk/internal/nav"
	"github.com/five82/kiosk/internal/prefs"
	"github.com/five82/kiosk/internal/state"
)

// Navigator is the routing surface the UI drives. *nav.Router implements it.
type Navigator interface {
	nav.Bridge
	Current() nav.Route
	Go(path string) error
	Replace(path string) error
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Fetcher   catalog.Fetcher
	Navigator Navigator
	Store     *state.Store
	BaseURL   string
	ThemeName string
	PrefsPath string
	// LogPath is the file the request log overlay reads; empty disables it.
	LogPath string
}

// listKey is the list view's dependency. The collection endpoint is fixed, so
// the only thing that restarts the list lifecycle is a remount.
type listKey struct{}

type (
	listController   = lifecycle.Controller[listKey, []catalog.ListItem]
	detailController = lifecycle.Controller[int, catalog.DetailEntity]
	listResult       = lifecycle.Result[listKey, []catalog.ListItem]
	detailResult     = lifecycle.Result[int, catalog.DetailEntity]
)

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	navigator Navigator
	store     *state.Store
	baseURL   string
	prefsPath string
	logPath   string
	keys      keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	notice   string

	// Request log overlay
	showRequests bool
	requests     requestLog

	// Mounted view
	mounted    nav.Route
	hasMounted bool
	initCmd    tea.Cmd
	spinner    spinner.Model

	// List view
	list       listController
	listIDs    []int
	selected   int
	selectedID int

	// Detail view
	detail         detailController
	detailViewport viewport.Model

	// Counter view
	counter       state.Snapshot
	amountInput   textinput.Model
	editingAmount bool
}

// New creates a Bubble Tea model and mounts the navigator's current route.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	navigator := opts.Navigator
	if navigator == nil {
		navigator, _ = nav.NewRouter("/")
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	fetcher := opts.Fetcher
	theme := GetTheme(themeName)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	input := textinput.New()
	input.Placeholder = "Enter amount"
	input.CharLimit = 9
	input.Width = 16

	m := Model{
		ctx:         ctx,
		navigator:   navigator,
		store:       store,
		baseURL:     opts.BaseURL,
		prefsPath:   prefsPath,
		logPath:     opts.LogPath,
		keys:        DefaultKeyMap(),
		theme:       theme,
		spinner:     sp,
		amountInput: input,
		counter:     store.Snapshot(),
		list: lifecycle.New[listKey, []catalog.ListItem](func(ctx context.Context, _ listKey) ([]catalog.ListItem, error) {
			if fetcher == nil {
				return nil, errNoFetcher
			}
			return fetcher.FetchProducts(ctx)
		}),
		detail: lifecycle.New[int, catalog.DetailEntity](func(ctx context.Context, id int) (catalog.DetailEntity, error) {
			if fetcher == nil {
				return catalog.DetailEntity{}, errNoFetcher
			}
			return fetcher.FetchProduct(ctx, id)
		}),
	}
	m.applyThemeToWidgets()
	m.initCmd = m.syncRoute(false)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initCmd, m.spinner.Tick)
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
			m.initDetailViewport()
		}
		m.ready = true
		m.resizeDetailViewport()
		return m, nil

	case listResult:
		if !m.list.Apply(msg) {
			log.Printf("ui: dropped stale product list result (attempt %d)", msg.Attempt.Seq)
			return m, nil
		}
		m.handleListResolved()
		return m, nil

	case detailResult:
		if !m.detail.Apply(msg) {
			log.Printf("ui: dropped stale result for product %d (attempt %d)", msg.Attempt.Key, msg.Attempt.Seq)
			return m, nil
		}
		m.handleDetailResolved()
		return m, nil

	case requestLogMsg:
		m.requests = requestLog(msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.editingAmount {
		var cmd tea.Cmd
		m.amountInput, cmd = m.amountInput.Update(msg)
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
	if m.showRequests {
		return m.renderRequests()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.showRequests {
		m.showRequests = false
		return m, nil
	}
	if m.editingAmount {
		return m.handleAmountKey(msg)
	}

	switch {
	case msg.String() == "ctrl+c", key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Requests):
		if m.logPath == "" {
			m.notice = "request log disabled (no log file configured)"
			return m, nil
		}
		m.showRequests = true
		m.requests = requestLog{}
		return m, loadRequestLog(m.logPath)

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyThemeToWidgets()
		m.refreshDetailContent()
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				log.Printf("ui: save prefs: %v", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if !m.navigator.NavigateBack() {
			return m, nil
		}
		cmd := m.syncRoute(false)
		return m, cmd

	case key.Matches(msg, m.keys.Reload):
		cmd := m.syncRoute(true)
		return m, cmd

	case key.Matches(msg, m.keys.Products):
		return m.navigate("/")

	case key.Matches(msg, m.keys.Counter):
		return m.navigate("/counter")
	}

	switch m.mounted.View {
	case nav.ListView:
		return m.handleListKey(msg)
	case nav.DetailView:
		return m.handleDetailKey(msg)
	case nav.CounterView:
		return m.handleCounterKey(msg)
	}
	return m, nil
}

// navigate pushes path unless it is already the current route.
func (m Model) navigate(path string) (tea.Model, tea.Cmd) {
	route, err := nav.Parse(path)
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}
	if route == m.navigator.Current() {
		return m, nil
	}
	if err := m.navigator.Go(path); err != nil {
		m.notice = err.Error()
		return m, nil
	}
	cmd := m.syncRoute(false)
	return m, cmd
}

// syncRoute brings the mounted view in line with the navigator. Switching
// views unmounts the old one (its controller goes back to Idle, so anything
// still in flight for it is dropped) and mounts the new one. Staying on the
// detail view with a different id restarts the detail lifecycle. force
// remounts the current view even when nothing changed.
func (m *Model) syncRoute(force bool) tea.Cmd {
	route := m.navigator.Current()
	m.notice = ""

	if m.hasMounted && route.View == m.mounted.View && !force {
		m.mounted = route
		if route.View == nav.DetailView {
			return m.detail.StartIfChanged(m.ctx, route.ID)
		}
		return nil
	}

	if m.hasMounted {
		m.unmount(m.mounted.View)
	}
	m.mounted = route
	m.hasMounted = true
	log.Printf("ui: mount %s", route.Path())

	switch route.View {
	case nav.ListView:
		return m.list.Start(m.ctx, listKey{})
	case nav.DetailView:
		m.detailViewport.GotoTop()
		return m.detail.Start(m.ctx, route.ID)
	case nav.CounterView:
		m.counter = m.store.Snapshot()
	}
	return nil
}

func (m *Model) unmount(view nav.View) {
	switch view {
	case nav.ListView:
		m.list.Reset()
	case nav.DetailView:
		m.detail.Reset()
		m.detailViewport.SetContent("")
	case nav.CounterView:
		m.stopEditingAmount()
	}
}

func (m *Model) applyThemeToWidgets() {
	m.spinner.Style = m.theme.Styles().AccentText
	m.amountInput.PromptStyle = m.theme.Styles().AccentText
	m.amountInput.TextStyle = m.theme.Styles().Text
}

// renderMain renders header, command bar and the mounted view.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

func (m Model) renderContent() string {
	switch m.mounted.View {
	case nav.ListView:
		return m.renderList()
	case nav.DetailView:
		return m.renderDetail()
	case nav.CounterView:
		return m.renderCounter()
	default:
		return ""
	}
}

// contentHeight is the space left below header and command bar.
func (m Model) contentHeight() int {
	h := m.height - 2
	if h < 1 {
		return 1
	}
	return h
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	return err
}
