package wm

import "sort"

// DefaultBaseZ is the initial Z watermark; the first window opens at 1001.
const DefaultBaseZ = 1000

// API is the surface window content uses to manage windows.
type API interface {
	Spawn(content Content, opts ...SpawnOption) int
	Close(id int)
	CloseAll()
	Focus(id int)
}

// Listener observes every dispatched action together with the state it
// produced.
type Listener func(action Action, next State)

// Option configures a Manager.
type Option func(*Manager)

// WithBaseZ sets the initial Z watermark.
func WithBaseZ(z int) Option {
	return func(m *Manager) {
		m.state.NextZ = z
	}
}

// WithListener registers an observer for dispatched actions.
func WithListener(l Listener) Option {
	return func(m *Manager) {
		m.listener = l
	}
}

type spawnConfig struct {
	singleton bool
}

// SpawnOption adjusts a single Spawn call.
type SpawnOption func(*spawnConfig)

// Singleton controls deduplication for a Spawn call. Spawn defaults to
// singleton behaviour.
func Singleton(enabled bool) SpawnOption {
	return func(c *spawnConfig) {
		c.singleton = enabled
	}
}

// Manager holds the window stack. It is not safe for concurrent use; calls
// are expected from a single event loop.
type Manager struct {
	state     State
	idCounter int
	listener  Listener
}

var _ API = (*Manager)(nil)

// NewManager creates an empty manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{state: State{NextZ: DefaultBaseZ}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Spawn opens a window for content and returns its id. With singleton
// matching enabled, an equivalent open window is raised and its id returned
// instead.
func (m *Manager) Spawn(content Content, opts ...SpawnOption) int {
	cfg := spawnConfig{singleton: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.singleton {
		if id, ok := m.findEquivalent(content); ok {
			m.dispatch(FocusAction{ID: id, Spawned: true})
			return id
		}
	}
	m.idCounter++
	id := m.idCounter
	m.dispatch(OpenAction{ID: id, Content: content})
	return id
}

// Close removes the window with id. Unknown ids are ignored.
func (m *Manager) Close(id int) {
	m.dispatch(CloseAction{ID: id})
}

// CloseAll removes every window.
func (m *Manager) CloseAll() {
	m.dispatch(CloseAllAction{})
}

// Focus raises the window with id to the front, even when it already is.
// Unknown ids are ignored.
func (m *Manager) Focus(id int) {
	m.dispatch(FocusAction{ID: id})
}

// State returns a copy of the current state.
func (m *Manager) State() State {
	return State{Windows: cloneRecords(m.state.Windows), NextZ: m.state.NextZ}
}

// Windows returns the open windows in insertion order.
func (m *Manager) Windows() []Record {
	return cloneRecords(m.state.Windows)
}

// Stacked returns the open windows ordered back to front.
func (m *Manager) Stacked() []Record {
	records := cloneRecords(m.state.Windows)
	sort.Slice(records, func(i, j int) bool { return records[i].Z < records[j].Z })
	return records
}

// Lookup returns the window with id.
func (m *Manager) Lookup(id int) (Record, bool) {
	if idx := m.state.indexOf(id); idx >= 0 {
		return m.state.Windows[idx], true
	}
	return Record{}, false
}

// Top returns the front-most window.
func (m *Manager) Top() (Record, bool) {
	return m.state.Top()
}

// Len reports the number of open windows.
func (m *Manager) Len() int {
	return len(m.state.Windows)
}

func (m *Manager) findEquivalent(content Content) (int, bool) {
	for _, w := range m.state.Windows {
		if Equivalent(w.Content, content) {
			return w.ID, true
		}
	}
	return 0, false
}

func (m *Manager) dispatch(action Action) {
	m.state = Reduce(m.state, action)
	if m.listener != nil {
		m.listener(action, m.State())
	}
}
