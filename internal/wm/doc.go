/*
Package wm tracks the floating windows that are open inside an application
and the order they are stacked in.

The package is split into a pure reducer and a thin stateful wrapper:
  - Reduce applies one of the four actions (OpenAction, FocusAction,
    CloseAction, CloseAllAction) to a State and returns the next State
    without touching its input.
  - Manager owns the current State plus the id counter, and implements the
    API that window content uses to spawn, focus and close windows.

Every open or focus issues a Z value strictly greater than any previously
issued one, so the most recently interacted window is always on top and no
two live windows share a Z. Ids are never reused, even after CloseAll.

Spawn deduplicates singleton windows: when content of the same Kind with
shallow-equal Props (ignoring the "children" prop) is already open, that
window is raised instead of opening a second one.

Example usage:

	manager := wm.NewManager()
	id := manager.Spawn(wm.Element{Type: "help"})
	manager.Spawn(wm.Element{Type: "help"}) // returns id again, raised to front
	manager.Close(id)
*/
package wm
