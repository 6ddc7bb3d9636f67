package wm

// Record is one open window. Content may hold maps, so Record is not
// comparable with ==; compare ID and Z instead.
type Record struct {
	ID      int
	Content Content
	Z       int
}

// State is the stacking manager's state. Windows keeps insertion order; Z
// decides visual stacking.
type State struct {
	Windows []Record
	NextZ   int
}

// Action is a state transition understood by Reduce.
type Action interface {
	action()
}

// OpenAction appends a new window on top of the stack.
type OpenAction struct {
	ID      int
	Content Content
}

// FocusAction raises an existing window. Spawned marks focuses produced by
// singleton deduplication.
type FocusAction struct {
	ID      int
	Spawned bool
}

// CloseAction removes one window.
type CloseAction struct {
	ID int
}

// CloseAllAction removes every window. NextZ is kept.
type CloseAllAction struct{}

func (OpenAction) action()     {}
func (FocusAction) action()    {}
func (CloseAction) action()    {}
func (CloseAllAction) action() {}

// Reduce returns the state that results from applying action to s. It never
// mutates s.Windows. Actions referencing unknown ids return s unchanged.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case OpenAction:
		top := s.NextZ + 1
		windows := make([]Record, len(s.Windows), len(s.Windows)+1)
		copy(windows, s.Windows)
		windows = append(windows, Record{ID: a.ID, Content: a.Content, Z: top})
		return State{Windows: windows, NextZ: top}
	case FocusAction:
		idx := s.indexOf(a.ID)
		if idx < 0 {
			return s
		}
		top := s.NextZ + 1
		windows := cloneRecords(s.Windows)
		windows[idx].Z = top
		return State{Windows: windows, NextZ: top}
	case CloseAction:
		idx := s.indexOf(a.ID)
		if idx < 0 {
			return s
		}
		windows := make([]Record, 0, len(s.Windows)-1)
		windows = append(windows, s.Windows[:idx]...)
		windows = append(windows, s.Windows[idx+1:]...)
		return State{Windows: windows, NextZ: s.NextZ}
	case CloseAllAction:
		return State{NextZ: s.NextZ}
	default:
		return s
	}
}

func (s State) indexOf(id int) int {
	for i, w := range s.Windows {
		if w.ID == id {
			return i
		}
	}
	return -1
}

// Top returns the window with the highest Z.
func (s State) Top() (Record, bool) {
	if len(s.Windows) == 0 {
		return Record{}, false
	}
	top := s.Windows[0]
	for _, w := range s.Windows[1:] {
		if w.Z > top.Z {
			top = w
		}
	}
	return top, true
}

func cloneRecords(records []Record) []Record {
	if len(records) == 0 {
		return nil
	}
	dup := make([]Record, len(records))
	copy(dup, records)
	return dup
}
