package ui

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jetsetgo/kiosk/internal/config"
	"github.com/jetsetgo/kiosk/internal/control"
	"github.com/jetsetgo/kiosk/internal/files"
	"github.com/jetsetgo/kiosk/internal/prefs"
	"github.com/jetsetgo/kiosk/internal/printer"
	"github.com/jetsetgo/kiosk/internal/session"
	"github.com/jetsetgo/kiosk/internal/state"
)

// pane identifies which selection pane has focus.
type pane int

const (
	paneFiles pane = iota
	paneSlots
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    printer.API
	Store     *state.Store
	Session   *session.Selection
	Config    *config.Config
	Files     []files.PrintFile
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

// noticeRelay buffers gateway notifications until the next Update. The
// gateway runs inside command goroutines, so delivery is synchronized.
type noticeRelay struct {
	mu   sync.Mutex
	msgs []string
}

// Notify implements control.Notifier.
func (r *noticeRelay) Notify(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *noticeRelay) drain() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.msgs
	r.msgs = nil
	return out
}

// modalApproved satisfies control.Confirmer for commands dispatched by
// the TUI: the confirm modal has already collected the operator's
// answer by the time a command is sent, and a declined modal never
// dispatches one.
type modalApproved struct{}

func (modalApproved) Confirm(string) bool { return true }

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    printer.API
	store     *state.Store
	sess      *session.Selection
	config    *config.Config
	prefsPath string
	pollTick  time.Duration

	gateway *control.Gateway
	notices *noticeRelay

	// UI state
	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Selection state
	queue      []files.PrintFile
	fileCursor int
	slotCursor int
	focused    pane

	// Command state
	light      printer.Light // displayed light state; unset shows as off
	active     *session.ActivePrint
	confirming bool

	notice   string
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = 3 * time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	notices := &noticeRelay{}

	return Model{
		ctx:       ctx,
		client:    opts.Client,
		store:     opts.Store,
		sess:      opts.Session,
		config:    opts.Config,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		gateway:   control.NewGateway(opts.Client, opts.Session, notices, modalApproved{}),
		notices:   notices,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		queue:     opts.Files,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(uiRefreshInterval),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// The UI re-reads the store faster than the device poll cadence so
// poll results never sit unrendered.
const uiRefreshInterval = time.Second

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(uiRefreshInterval))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		return m, nil

	case startResultMsg:
		m.drainNotices()
		if msg.err == nil {
			active := msg.active
			m.active = &active
			m.focused = paneFiles
			m.fileCursor = 0
			m.slotCursor = 0
		}
		return m, nil

	case cancelResultMsg:
		m.drainNotices()
		if msg.err == nil {
			m.active = nil
		}
		return m, nil

	case lightResultMsg:
		m.drainNotices()
		// The gateway returns the current state unchanged on failure,
		// so assigning unconditionally never flips on a rejection.
		m.light = msg.state
		return m, nil

	case filesMsg:
		m.queue = msg.files
		if m.fileCursor >= len(m.queue) {
			m.fileCursor = 0
		}
		if msg.err != nil {
			m.notice = "Error reading print files"
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Confirm modal swallows all input until answered.
	if m.confirming {
		switch {
		case key.Matches(msg, m.keys.Yes):
			m.confirming = false
			return m, m.cancelPrintCmd()
		case key.Matches(msg, m.keys.No):
			m.confirming = false
		}
		return m, nil
	}

	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleLight):
		return m, m.toggleLightCmd()

	case key.Matches(msg, m.keys.CancelPrint):
		m.confirming = true
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.config != nil {
			return m, refreshFilesCmd(m.config.PrintFilesDir)
		}
		return m, nil
	}

	// Selection keys only apply while no job view is shown.
	if m.active != nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.StartPrint):
		return m, m.startPrintCmd()

	case key.Matches(msg, m.keys.Clear):
		m.sess.Reset()
		m.focused = paneFiles
		return m, nil

	case key.Matches(msg, m.keys.Pane):
		if m.slotPaneVisible() {
			if m.focused == paneFiles {
				m.focused = paneSlots
			} else {
				m.focused = paneFiles
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Select):
		m.applySelection()
		return m, nil
	}

	return m, nil
}

// slotPaneVisible reports whether the slot picker has been revealed.
// Picking a file reveals it; a prior slot choice keeps it visible.
func (m Model) slotPaneVisible() bool {
	return m.sess.File() != "" || m.sess.Slot() != ""
}

func (m *Model) moveCursor(delta int) {
	switch m.focused {
	case paneFiles:
		m.fileCursor = clamp(m.fileCursor+delta, 0, len(m.queue)-1)
	case paneSlots:
		m.slotCursor = clamp(m.slotCursor+delta, 0, len(m.slots())-1)
	}
}

// applySelection records the highlighted entry in the session and
// advances focus the way the kiosk flow reads: file, then slot.
func (m *Model) applySelection() {
	switch m.focused {
	case paneFiles:
		if m.fileCursor < len(m.queue) {
			m.sess.SelectFile(m.queue[m.fileCursor].Name)
			m.focused = paneSlots
		}
	case paneSlots:
		slots := m.slots()
		if m.slotCursor < len(slots) {
			m.sess.SelectSlot(slots[m.slotCursor].ID)
		}
	}
}

func (m Model) slots() []config.Slot {
	if m.config == nil {
		return nil
	}
	return m.config.Slots
}

// drainNotices publishes buffered gateway notifications on the notice
// line.
func (m *Model) drainNotices() {
	if msgs := m.notices.drain(); len(msgs) > 0 {
		m.notice = strings.Join(msgs, " · ")
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.confirming {
		return m.renderConfirm()
	}
	return m.renderMain()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type startResultMsg struct {
	active session.ActivePrint
	err    error
}

type cancelResultMsg struct {
	err error
}

type lightResultMsg struct {
	state printer.Light
	err   error
}

type filesMsg struct {
	files []files.PrintFile
	err   error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func (m Model) startPrintCmd() tea.Cmd {
	gateway, ctx := m.gateway, m.ctx
	return func() tea.Msg {
		active, err := gateway.StartPrint(ctx)
		return startResultMsg{active: active, err: err}
	}
}

func (m Model) cancelPrintCmd() tea.Cmd {
	gateway, ctx := m.gateway, m.ctx
	return func() tea.Msg {
		return cancelResultMsg{err: gateway.CancelPrint(ctx)}
	}
}

func (m Model) toggleLightCmd() tea.Cmd {
	gateway, ctx, current := m.gateway, m.ctx, m.light
	return func() tea.Msg {
		next, err := gateway.ToggleLight(ctx, current)
		return lightResultMsg{state: next, err: err}
	}
}

func refreshFilesCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		list, err := files.List(dir)
		return filesMsg{files: list, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
