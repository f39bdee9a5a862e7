package favorite

// TouchEvent is a touch phase reported by the host toolkit.
type TouchEvent uint8

const (
	TouchDown TouchEvent = iota + 1
	TouchDragEnter
	TouchDragExit
	TouchUpInside
	TouchCancel
)

func (e TouchEvent) String() string {
	switch e {
	case TouchDown:
		return "down"
	case TouchDragEnter:
		return "drag-enter"
	case TouchDragExit:
		return "drag-exit"
	case TouchUpInside:
		return "up-inside"
	case TouchCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// pressed reports whether the event leaves a finger over the button.
func (e TouchEvent) pressed() bool {
	return e == TouchDown || e == TouchDragEnter
}

// Alpha returns the whole-widget alpha set by touch feedback.
func (b *Button) Alpha() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.alpha
}

// Touch applies touch feedback: the widget dims while pressed and returns to
// full alpha on release, drag-exit or cancel. It does not affect any running
// selection animation. TouchUpInside toggles the selection when tap toggling
// is enabled.
func (b *Button) Touch(e TouchEvent) *Button {
	b.mu.Lock()
	alpha := 1.0
	if e.pressed() {
		alpha = b.dimAlpha
	}
	if b.alpha != alpha {
		b.alpha = alpha
		b.markDirty(DirtyAlpha)
	}
	toggle := e == TouchUpInside && b.toggleOnTap
	callbacks := append([]func(TouchEvent){}, b.onTouch...)
	b.mu.Unlock()

	for _, fn := range callbacks {
		fn(e)
	}
	if toggle {
		b.Toggle()
	}
	return b
}

// OnTouch registers an observer for touch events.
func (b *Button) OnTouch(fn func(e TouchEvent)) *Button {
	b.mu.Lock()
	b.onTouch = append(b.onTouch, fn)
	b.mu.Unlock()
	return b
}
