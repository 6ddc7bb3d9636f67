package drag

// Element is the host-side view of a rendered window or one of its
// sub-regions.
type Element interface {
	// Bounds returns the element's current rendered box in viewport
	// coordinates.
	Bounds() Rect
	// Query locates a descendant matching selector.
	Query(selector string) (Element, bool)
	SetPointerCapture(pointerID int)
	ReleasePointerCapture(pointerID int)
	HasPointerCapture(pointerID int) bool
}

// Viewport reports the size of the surface windows are placed on.
type Viewport interface {
	Size() Size
}

// ViewportFunc adapts a function to Viewport.
type ViewportFunc func() Size

// Size implements Viewport.
func (f ViewportFunc) Size() Size { return f() }

// PointerKind distinguishes the phases of a pointer interaction.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Button follows DOM numbering: 0 primary, 1 auxiliary, 2 secondary.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonAuxiliary
	ButtonSecondary
)

// PointerEvent is one low-level pointer notification.
type PointerEvent struct {
	Kind      PointerKind
	PointerID int
	Button    Button
	X         float64
	Y         float64
}
