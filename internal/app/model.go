// Package app is the root Bubble Tea model: it routes key and mouse
// events, executes commands against the tree, and renders the panel.
package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/treeline/internal/config"
	"github.com/marcus/treeline/internal/keymap"
	"github.com/marcus/treeline/internal/msg"
	"github.com/marcus/treeline/internal/prompt"
	"github.com/marcus/treeline/internal/tree"
	"github.com/marcus/treeline/internal/watcher"
)

// resyncInterval is the period of the polling tick. The watcher usually
// gets there first; the tick covers whatever it misses.
const resyncInterval = 250 * time.Millisecond

// tickMsg is the periodic resync trigger.
type tickMsg time.Time

// openDoneMsg reports that an external open command finished.
type openDoneMsg struct {
	err error
}

// shellDoneMsg reports that an interactive shell command finished.
type shellDoneMsg struct {
	err error
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg      *config.Config
	tree     *tree.FileTreeState
	userKeys *keymap.Map
	status   *prompt.StatusLine
	watch    *watcher.Watcher
	logger   *slog.Logger

	width, height int
	offset        int
	ready         bool
	quitting      bool

	// Render cache: the view is rebuilt only when one of these moved.
	// Shared by pointer so the value-receiver View can fill it.
	cache *renderCache
}

type renderCache struct {
	valid  bool
	sig    uint64
	cursor int
	offset int
	width  int
	height int
	view   string
}

// New assembles the model. The tree must already carry its first scan;
// watch may be nil when live watching is disabled.
func New(cfg *config.Config, t *tree.FileTreeState, keys *keymap.Map, watch *watcher.Watcher, logger *slog.Logger) Model {
	m := Model{
		cfg:      cfg,
		tree:     t,
		userKeys: keys,
		status:   prompt.NewStatusLine(),
		watch:    watch,
		logger:   logger,
		cache:    &renderCache{},
	}
	m.syncWatcher()
	return m
}

// Tree exposes the tree state, for session persistence at exit.
func (m Model) Tree() *tree.FileTreeState { return m.tree }

// Quitting reports whether a command has already asked to exit. Checked
// after startup scripts so a quit there skips the program loop.
func (m Model) Quitting() bool { return m.quitting }

// Init starts the periodic resync tick and the watcher listener.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick()}
	if m.watch != nil {
		cmds = append(cmds, listenForChanges(m.watch))
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(resyncInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// listenForChanges blocks on the watcher channel and converts each
// signal into a resync.
func listenForChanges(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		<-w.Changes()
		return msg.ResyncMsg{}
	}
}

// resync rescans the filesystem, rebuilds the projection and refreshes
// the watched directory set.
func (m *Model) resync() {
	m.tree.Update(m.cfg)
	m.syncWatcher()
}

// syncWatcher points the watcher at the currently expanded directories.
func (m *Model) syncWatcher() {
	if m.watch == nil {
		return
	}
	m.watch.SetDirs(m.tree.Expanded().List())
}
