package theme

import "testing"

// fakePointerSource records registrations so tests can check the
// acquire/release pairing and fire synthetic pointer-downs.
type fakePointerSource struct {
	nextID   int
	handlers map[int]func(x, y int)
	adds     int
	removes  int
}

func newFakePointerSource() *fakePointerSource {
	return &fakePointerSource{handlers: make(map[int]func(x, y int))}
}

func (f *fakePointerSource) AddPointerDown(fn func(x, y int)) (remove func()) {
	f.nextID++
	id := f.nextID
	f.handlers[id] = fn
	f.adds++
	return func() {
		if _, ok := f.handlers[id]; ok {
			f.removes++
			delete(f.handlers, id)
		}
	}
}

func (f *fakePointerSource) fire(x, y int) {
	for _, fn := range f.handlers {
		fn(x, y)
	}
}

func TestPickerOpenSeedsFromAnchor(t *testing.T) {
	t.Parallel()

	src := newFakePointerSource()
	p := NewPicker(src, nil)
	p.Open(Green, Bounds{X: 0, Y: 0, W: 10, H: 3})

	if !p.IsOpen() {
		t.Fatal("picker should be open")
	}
	if p.Hue() != 140 {
		t.Fatalf("hue = %d, want 140 (green anchor)", p.Hue())
	}
}

func TestPickerNotifiesOnEveryChange(t *testing.T) {
	t.Parallel()

	var notified []Theme
	src := newFakePointerSource()
	p := NewPicker(src, func(th Theme) { notified = append(notified, th) })
	p.Open(Purple, Bounds{W: 10, H: 3})

	p.SetHue(0)
	p.SetHue(1)
	p.SetHue(220)

	want := []Theme{Red, Red, Blue}
	if len(notified) != len(want) {
		t.Fatalf("got %d notifications, want %d", len(notified), len(want))
	}
	for i := range want {
		if notified[i] != want[i] {
			t.Fatalf("notification %d = %s, want %s", i, notified[i], want[i])
		}
	}
}

func TestPickerOutsideClickDismisses(t *testing.T) {
	t.Parallel()

	src := newFakePointerSource()
	p := NewPicker(src, nil)
	p.Open(Red, Bounds{X: 5, Y: 5, W: 10, H: 3})

	src.fire(6, 6) // inside
	if !p.IsOpen() {
		t.Fatal("inside click must not dismiss")
	}

	src.fire(0, 0) // outside
	if p.IsOpen() {
		t.Fatal("outside click must dismiss")
	}
	if len(src.handlers) != 0 {
		t.Fatalf("dismiss left %d handlers registered", len(src.handlers))
	}
}

func TestPickerListenerLifecycle(t *testing.T) {
	t.Parallel()

	src := newFakePointerSource()
	p := NewPicker(src, nil)

	for i := 0; i < 5; i++ {
		p.Open(Cyan, Bounds{W: 10, H: 3})
		if len(src.handlers) != 1 {
			t.Fatalf("cycle %d: %d handlers while open, want 1", i, len(src.handlers))
		}
		p.Close()
		if len(src.handlers) != 0 {
			t.Fatalf("cycle %d: %d handlers after close, want 0", i, len(src.handlers))
		}
	}

	if src.adds != 5 || src.removes != 5 {
		t.Fatalf("adds=%d removes=%d, want 5/5", src.adds, src.removes)
	}
}

func TestPickerRedundantOpenClose(t *testing.T) {
	t.Parallel()

	src := newFakePointerSource()
	p := NewPicker(src, nil)

	p.Open(Blue, Bounds{W: 10, H: 3})
	p.Open(Blue, Bounds{W: 10, H: 3}) // already open
	if src.adds != 1 {
		t.Fatalf("double open registered %d handlers, want 1", src.adds)
	}

	p.Close()
	p.Close() // already closed
	if src.removes != 1 {
		t.Fatalf("double close removed %d times, want 1", src.removes)
	}
}

func TestPickerNilSource(t *testing.T) {
	t.Parallel()

	p := NewPicker(nil, nil)
	p.Open(Red, Bounds{W: 10, H: 3})
	p.SetHue(30)
	p.Close()
}
