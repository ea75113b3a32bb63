package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/menubar/internal/backend"
	"github.com/atomicstack/menubar/internal/data/dispatcher"
	"github.com/atomicstack/menubar/internal/logging/events"
	"github.com/atomicstack/menubar/internal/menu"
	"github.com/atomicstack/menubar/internal/mnemonic"
	"github.com/atomicstack/menubar/internal/overlay"
	"github.com/atomicstack/menubar/internal/state"
	"github.com/atomicstack/menubar/internal/theme"
	"github.com/atomicstack/menubar/internal/ui/command"
	uistate "github.com/atomicstack/menubar/internal/ui/state"
)

type level = uistate.Level

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// App supplies the application half of the shell: the menu tree, the content
// drawn underneath the bar, and handling for activation messages.
type App interface {
	// Menu builds the tree for the next pass. recent carries the names from
	// the watched directory for dynamic entries; nil on the first build.
	Menu(recent []string) menu.Tree
	// Body renders the application content for the given area.
	Body(width, height int) string
	// Handle receives activation messages emitted by menu entries. The
	// returned status, when non-empty, shows in the status line.
	Handle(msg tea.Msg) (string, tea.Cmd)
}

// Model implements the Bubble Tea model for the menu bar shell.
type Model struct {
	app      App
	tree     menu.Tree
	rootKeys *mnemonic.Table

	// path and levels always have equal length; openLevel and closeToDepth
	// are the only mutators.
	path     []int
	levels   []*level
	barHover int
	pressed  bool
	altDown  bool
	cursor   overlay.Point

	barRects    []overlay.Rect
	layoutDirty bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	alwaysShowKeys bool
	showFooter     bool
	verbose        bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	backend        *backend.Watcher
	backendState   map[backend.Kind]error
	backendLastErr string
	files          state.FileStore
	dispatcher     *dispatcher.Dispatcher

	styleHook theme.Hook
	keys      keyMap
	help      help.Model
	bus       *command.Bus
	focus     a11yFocus

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the shell around the given application.
func NewModel(app App, width, height int, showFooter, verbose, showKeys bool, watcher *backend.Watcher) *Model {
	files := state.NewFileStore()
	m := &Model{
		app:            app,
		barHover:       -1,
		backend:        watcher,
		backendState:   map[backend.Kind]error{},
		alwaysShowKeys: showKeys,
		showFooter:     showFooter,
		verbose:        verbose,
		files:          files,
		dispatcher:     dispatcher.New(files),
		styleHook:      theme.DefaultHook,
		keys:           defaultKeyMap(),
		help:           help.New(),
		bus:            command.New(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	if app != nil {
		m.SetTree(app.Menu(nil))
	}
	m.focus.init(m)
	m.registerHandlers()
	return m
}

// SetStyleHook replaces the per-row style resolution.
func (m *Model) SetStyleHook(hook theme.Hook) {
	if hook == nil {
		hook = theme.DefaultHook
	}
	m.styleHook = hook
	m.layoutDirty = true
}

// SetTree installs a freshly built menu tree. Open state survives where the
// new shape still supports it: the open path is truncated at the first stale
// step, level snapshots are refreshed, and hovers are reconciled.
func (m *Model) SetTree(tree menu.Tree) {
	m.tree = tree
	m.rootKeys = menu.KeyTable(tree)
	depth := tree.ValidDepth(m.path)
	if depth < len(m.path) {
		events.Menu.Prune(len(m.path), depth)
		m.path = m.path[:depth]
		m.levels = m.levels[:depth]
	}
	for d, lvl := range m.levels {
		lvl.UpdateItems(tree.ItemsAt(m.path[:d+1]))
	}
	if m.barHover >= len(tree) {
		m.barHover = len(tree) - 1
	}
	m.focus.reset()
	m.layoutDirty = true
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	if cmd := m.dispatchAppMsg(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// dispatchAppMsg hands messages the shell does not understand to the
// application, typically activation messages on their way back in.
func (m *Model) dispatchAppMsg(msg tea.Msg) tea.Cmd {
	if m.app == nil || msg == nil {
		return nil
	}
	status, cmd := m.app.Handle(msg)
	if status != "" {
		m.setInfo(status)
	}
	return cmd
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// Depth reports how many menu levels are open.
func (m *Model) Depth() int {
	return len(m.levels)
}

// Path returns a copy of the active root path.
func (m *Model) Path() []int {
	if len(m.path) == 0 {
		return nil
	}
	dup := make([]int, len(m.path))
	copy(dup, m.path)
	return dup
}

// BarHover reports the hovered root index, -1 when the bar is not engaged.
func (m *Model) BarHover() int {
	return m.barHover
}

// RootCount reports the number of root entries.
func (m *Model) RootCount() int {
	return len(m.tree)
}

// RootLabel returns the display label of the root at index.
func (m *Model) RootLabel(index int) string {
	if index < 0 || index >= len(m.tree) {
		return ""
	}
	return m.tree[index].Title()
}

func (m *Model) currentLevel() *level {
	if len(m.levels) == 0 {
		return nil
	}
	return m.levels[len(m.levels)-1]
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
