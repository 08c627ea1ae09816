package tui

import (
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"drumgrid/config"
	"drumgrid/instrument"
	"drumgrid/store"
	"drumgrid/theme"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel() Model {
	cfg := config.DefaultConfig()
	st := store.New()
	for _, t := range cfg.Tracks {
		st.AddTrack(t.Name, t.Engine)
	}

	ctrl := instrument.NewController(
		st.Apply,
		st.TrackInfo,
		instrument.NewStockRandomizer(rand.New(rand.NewSource(1))),
		func(trackIndex int) {},
	)

	themes := NewThemeState(cfg.Theme)
	pointer := NewPointerDispatcher()
	picker := theme.NewPicker(pointer, themes.Apply)

	return NewModel(st, ctrl, picker, pointer, themes, cfg)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	nm, _ := m.Update(msg)
	out, ok := nm.(Model)
	if !ok {
		t.Fatalf("Update returned %T", nm)
	}
	return out
}

func TestPickerOpenAndOutsideClickDismiss(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	m = update(t, m, key("c"))

	if !m.Picker.IsOpen() {
		t.Fatal("c should open the theme picker")
	}
	if m.Pointer.Count() != 1 {
		t.Fatalf("open picker holds %d pointer handlers, want 1", m.Pointer.Count())
	}
	if m.Picker.Hue() != int(theme.AnchorHue(m.Themes.Current)) {
		t.Fatalf("picker hue = %d, want anchor of %s", m.Picker.Hue(), m.Themes.Current)
	}

	// Press well outside the overlay.
	m = update(t, m, tea.MouseMsg{X: 70, Y: 30, Action: tea.MouseActionPress})
	if m.Picker.IsOpen() {
		t.Fatal("outside press should dismiss the picker")
	}
	if m.Pointer.Count() != 0 {
		t.Fatalf("dismissed picker left %d pointer handlers", m.Pointer.Count())
	}
}

func TestPickerHueKeysSwitchTheme(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	m = update(t, m, key("c"))

	// Purple anchors at 280; blue's basin is below 250, so big steps
	// down eventually switch the active theme.
	for i := 0; i < 4; i++ {
		m = update(t, m, key("H"))
	}
	if m.Themes.Current != theme.Blue {
		t.Fatalf("theme = %s after sliding down, want blue", m.Themes.Current)
	}

	m = update(t, m, key("esc"))
	if m.Picker.IsOpen() {
		t.Fatal("esc should close the picker")
	}
}

func TestRandomizeAndResetKeys(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	preset := instrument.Defaults["kick"]

	m = update(t, m, key("r"))
	track, _ := m.Store.Track(0)
	if track.Params == preset {
		t.Fatal("randomize left the kick preset untouched")
	}

	m = update(t, m, key("d"))
	track, _ = m.Store.Track(0)
	if track.Params != preset {
		t.Fatalf("reset gave %+v, want exact kick preset", track.Params)
	}
}

func TestAdjustClampsAtRangeEdge(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	// First param of the first track is tune, range [-1,1].
	for i := 0; i < 50; i++ {
		m = update(t, m, key("+"))
	}
	track, _ := m.Store.Track(0)
	if track.Params.Tune != 1 {
		t.Fatalf("tune = %v after holding +, want clamped 1", track.Params.Tune)
	}
}
