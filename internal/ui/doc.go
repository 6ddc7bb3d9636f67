// Package ui contains the Bubble Tea program that hosts the floating windows.
//
// Message flow:
//   - Bubble Tea invokes Model.Update, which routes each tea.Msg through a
//     typed handler registry (keys, mouse, resize, focus loss).
//   - Key presses go to the topmost window first when its content implements
//     Updater; unhandled keys fall through to the global bindings.
//   - Mouse messages become drag.PointerEvent values. A pointer captured by a
//     window's drag handle is routed to that window until release; otherwise
//     a press hit-tests the windows from the top of the stack, focuses the
//     one it lands on, and either closes it (close button) or hands the
//     event to its drag.Engine.
//
// State ownership:
//   - The window list and z-order live in a wm.Manager. The model only reads
//     it back after each update.
//   - Each record gets a frame holding its drag.Engine and the rendered
//     chrome. finishUpdate mounts frames for new records, unmounts frames for
//     closed ones and performs the initial placement once the viewport size is
//     known.
//
// Rendering composes the placed frames in z order over a backdrop; windows
// that are dragged partly off screen are clipped.
package ui
