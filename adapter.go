package press

// AdapterKind names the event protocol a Tracker listens with.
type AdapterKind uint8

const (
	AdapterNone    AdapterKind = iota // not attached
	AdapterPointer                    // unified pointer events
	AdapterLegacy                     // separate mouse and touch events
)

// String returns "pointer", "legacy" or "none".
func (k AdapterKind) String() string {
	switch k {
	case AdapterPointer:
		return "pointer"
	case AdapterLegacy:
		return "legacy"
	}
	return "none"
}

type localListener struct {
	eventType string
	fn        Listener
}

// inputAdapter is the set of element listeners for one event protocol.
// Mixing protocols makes a single tap fire twice, so exactly one is wired
// per attach.
type inputAdapter interface {
	kind() AdapterKind
	listeners(t *Tracker) []localListener
}

type pointerAdapter struct{}

func (pointerAdapter) kind() AdapterKind { return AdapterPointer }

func (pointerAdapter) listeners(t *Tracker) []localListener {
	return append(t.sharedListeners(),
		localListener{PointerDown, t.onPointerDown},
		localListener{MouseDown, t.onMouseDownPointer},
		localListener{PointerUp, t.onPointerUp},
		localListener{DragStart, t.onDragStart},
	)
}

type legacyAdapter struct{}

func (legacyAdapter) kind() AdapterKind { return AdapterLegacy }

func (legacyAdapter) listeners(t *Tracker) []localListener {
	return append(t.sharedListeners(),
		localListener{MouseDown, t.onMouseDownLegacy},
		localListener{MouseEnter, t.onMouseEnter},
		localListener{MouseLeave, t.onMouseLeave},
		localListener{MouseUp, t.onMouseUp},
		localListener{TouchStart, t.onTouchStart},
		localListener{TouchMove, t.onTouchMove},
		localListener{TouchEnd, t.onTouchEnd},
		localListener{TouchCancel, t.onTouchCancel},
		localListener{DragStart, t.onDragStart},
	)
}

// selectAdapter picks the protocol the document supports.
func selectAdapter(doc Document) inputAdapter {
	if doc.SupportsPointerEvents() {
		return pointerAdapter{}
	}
	return legacyAdapter{}
}

func (t *Tracker) sharedListeners() []localListener {
	return []localListener{
		{KeyDown, t.onKeyDown},
		{KeyUp, t.onKeyUp},
		{Click, t.onClick},
	}
}
