package theme

// PointerSource delivers global pointer-down events. AddPointerDown
// registers a handler and returns the func that removes it.
type PointerSource interface {
	AddPointerDown(fn func(x, y int)) (remove func())
}

// Bounds is the picker's on-screen rectangle, used to decide whether a
// pointer-down landed outside it.
type Bounds struct {
	X, Y, W, H int
}

func (b Bounds) contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Picker holds the hue slider state for choosing a theme. While open it
// holds exactly one pointer-down registration; a click outside its bounds
// dismisses it and releases the registration.
type Picker struct {
	hue    int
	open   bool
	bounds Bounds

	source  PointerSource
	remove  func()
	onTheme func(Theme)
}

// NewPicker creates a picker that notifies onTheme on every hue change.
func NewPicker(source PointerSource, onTheme func(Theme)) *Picker {
	return &Picker{
		source:  source,
		onTheme: onTheme,
	}
}

// Open shows the picker, seeding the slider from the current theme's
// anchor hue. Opening an already-open picker does nothing.
func (p *Picker) Open(current Theme, bounds Bounds) {
	if p.open {
		return
	}
	p.open = true
	p.hue = int(AnchorHue(current))
	p.bounds = bounds
	if p.source != nil {
		p.remove = p.source.AddPointerDown(p.pointerDown)
	}
}

// Close hides the picker and releases the pointer registration. Safe to
// call on every exit path, including when already closed.
func (p *Picker) Close() {
	if !p.open {
		return
	}
	p.open = false
	if p.remove != nil {
		p.remove()
		p.remove = nil
	}
}

// SetHue updates the held hue and notifies the owner with the resolved
// theme. Notification happens on every change; debouncing is up to the
// owner.
func (p *Picker) SetHue(hue int) {
	p.hue = hue
	if p.onTheme != nil {
		p.onTheme(Resolve(float64(hue)))
	}
}

// Hue returns the currently held hue.
func (p *Picker) Hue() int {
	return p.hue
}

// IsOpen reports whether the picker is showing.
func (p *Picker) IsOpen() bool {
	return p.open
}

// SetBounds updates the on-screen rectangle after a relayout.
func (p *Picker) SetBounds(b Bounds) {
	p.bounds = b
}

func (p *Picker) pointerDown(x, y int) {
	if !p.bounds.contains(x, y) {
		p.Close()
	}
}
