package tui

// PointerDispatcher fans global pointer-down events out to registered
// handlers. It implements theme.PointerSource for the picker: handlers
// register while the picker is open and remove themselves on close.
type PointerDispatcher struct {
	nextID    int
	listeners map[int]func(x, y int)
}

// NewPointerDispatcher creates an empty dispatcher.
func NewPointerDispatcher() *PointerDispatcher {
	return &PointerDispatcher{
		listeners: make(map[int]func(x, y int)),
	}
}

// AddPointerDown registers fn and returns the func that removes it.
// Calling remove more than once is harmless.
func (d *PointerDispatcher) AddPointerDown(fn func(x, y int)) (remove func()) {
	d.nextID++
	id := d.nextID
	d.listeners[id] = fn
	return func() {
		delete(d.listeners, id)
	}
}

// Dispatch delivers one pointer-down to every registered handler.
func (d *PointerDispatcher) Dispatch(x, y int) {
	for _, fn := range d.listeners {
		fn(x, y)
	}
}

// Count returns the number of registered handlers.
func (d *PointerDispatcher) Count() int {
	return len(d.listeners)
}
