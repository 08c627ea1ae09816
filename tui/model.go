package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"drumgrid/config"
	"drumgrid/instrument"
	"drumgrid/store"
	"drumgrid/theme"
)

// adjustStep is how far one keypress moves a parameter slider.
const adjustStep = 0.05

// picker geometry: a fixed-size overlay below the header.
const (
	pickerTop    = 2
	pickerWidth  = 44
	pickerHeight = 3
)

// ThemeState is the picker's owner: it receives OnThemeChange on every
// hue change and keeps the derived styles current.
type ThemeState struct {
	Current theme.Theme
	Styles  theme.Styles
}

// NewThemeState seeds the state from the configured theme.
func NewThemeState(t theme.Theme) *ThemeState {
	return &ThemeState{Current: t, Styles: theme.NewStyles(t)}
}

// Apply switches the active theme. Redundant notifications are cheap and
// expected - the picker notifies on every slider change.
func (s *ThemeState) Apply(t theme.Theme) {
	if t == s.Current {
		return
	}
	s.Current = t
	s.Styles = theme.NewStyles(t)
}

type Model struct {
	Store      *store.Store
	Controller *instrument.Controller
	Picker     *theme.Picker
	Pointer    *PointerDispatcher
	Themes     *ThemeState
	Cfg        *config.Config

	selTrack int
	selParam int
	quitting bool
}

type UpdateMsg struct{}

func NewModel(st *store.Store, ctrl *instrument.Controller, picker *theme.Picker, pointer *PointerDispatcher, themes *ThemeState, cfg *config.Config) Model {
	return Model{
		Store:      st,
		Controller: ctrl,
		Picker:     picker,
		Pointer:    pointer,
		Themes:     themes,
		Cfg:        cfg,
	}
}

func ListenForUpdates(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		<-st.UpdateChan
		return UpdateMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return ListenForUpdates(m.Store)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Picker.IsOpen() {
			return m.updatePicker(msg), nil
		}
		return m.updateTracks(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			m.Pointer.Dispatch(msg.X, msg.Y)
		}

	case UpdateMsg:
		return m, ListenForUpdates(m.Store)
	}

	return m, nil
}

// updatePicker handles keys while the theme picker overlay is open.
func (m Model) updatePicker(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "h", "left":
		m.Picker.SetHue(m.Picker.Hue() - 1)
	case "l", "right":
		m.Picker.SetHue(m.Picker.Hue() + 1)
	case "H":
		m.Picker.SetHue(m.Picker.Hue() - 10)
	case "L":
		m.Picker.SetHue(m.Picker.Hue() + 10)
	case "esc", "enter", "c":
		m.Picker.Close()
	}
	return m
}

// updateTracks handles keys on the main track view.
func (m Model) updateTracks(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.Picker.Close()
		m.Cfg.Theme = m.Themes.Current
		m.Cfg.Save()
		return m, tea.Quit

	case "j", "down":
		if m.selTrack < m.Store.Len()-1 {
			m.selTrack++
		}
	case "k", "up":
		if m.selTrack > 0 {
			m.selTrack--
		}
	case "h", "left":
		if m.selParam > 0 {
			m.selParam--
		}
	case "l", "right":
		if m.selParam < len(instrument.ParamNames)-1 {
			m.selParam++
		}

	case "+", "=":
		m.adjustSelected(adjustStep)
	case "-", "_":
		m.adjustSelected(-adjustStep)

	case "r":
		m.Controller.Randomize(m.selTrack)
	case "d":
		m.Controller.ResetToDefault(m.selTrack)
	case "t", " ":
		m.Controller.Trigger(m.selTrack)

	case "c":
		m.Picker.Open(m.Themes.Current, theme.Bounds{
			X: 0, Y: pickerTop, W: pickerWidth, H: pickerHeight,
		})
	}
	return m, nil
}

func (m Model) adjustSelected(delta float64) {
	name := instrument.ParamNames[m.selParam]
	track, ok := m.Store.Track(m.selTrack)
	if !ok {
		return
	}
	m.Controller.SetParameter(m.selTrack, name, track.Params.Get(name)+delta)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.Themes.Styles
	headerStyle := lipgloss.NewStyle().Foreground(st.Accent)
	dimStyle := lipgloss.NewStyle().Foreground(st.Muted)
	cursorStyle := lipgloss.NewStyle().Foreground(st.Cursor)
	fgStyle := lipgloss.NewStyle().Foreground(st.FG)

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(headerStyle.Render(fmt.Sprintf("drumgrid  theme:%s", m.Themes.Current)))
	out.WriteString("\n\n")

	if m.Picker.IsOpen() {
		out.WriteString(m.pickerView())
		out.WriteString("\n\n")
	}

	selName := instrument.ParamNames[m.selParam]
	for i := 0; i < m.Store.Len(); i++ {
		track, _ := m.Store.Track(i)
		icon := ' '
		if eng, ok := instrument.LookupEngine(track.Engine); ok && eng.Icon != 0 && m.Controller.CanTrigger(i) {
			icon = eng.Icon
		}

		line := fmt.Sprintf("%c %-6s", icon, track.Name)
		for _, pv := range track.Params.Params() {
			cell := paramBar(pv.Name, pv.Value)
			if i == m.selTrack && pv.Name == selName {
				cell = cursorStyle.Render(cell)
			} else if i == m.selTrack {
				cell = fgStyle.Render(cell)
			} else {
				cell = dimStyle.Render(cell)
			}
			line += " " + cell
		}

		if i == m.selTrack {
			out.WriteString(cursorStyle.Render("> "))
		} else {
			out.WriteString("  ")
		}
		out.WriteString(line)
		out.WriteString("\n")
	}

	if m.Store.Len() > 0 {
		track, _ := m.Store.Track(m.selTrack)
		out.WriteString("\n")
		out.WriteString(fgStyle.Render(fmt.Sprintf("%s: %.2f", selName, track.Params.Get(selName))))
		out.WriteString("\n")
	}

	out.WriteString("\n")
	out.WriteString(dimStyle.Render("jk:track  hl:param  +/-:adjust  r:randomize  d:default  t:trigger  c:theme  q:quit"))
	return out.String()
}

// pickerView renders the hue slider overlay with a live swatch.
func (m Model) pickerView() string {
	hue := m.Picker.Hue()
	resolved := theme.Resolve(float64(hue))
	swatch := lipgloss.NewStyle().
		Background(theme.Swatch(float64(hue))).
		Render("        ")
	slider := hueSlider(hue, 24)
	return fmt.Sprintf("THEME  %s  %3d° %s\n%s\nh/l:hue  H/L:±10  esc:close  (click elsewhere to dismiss)",
		swatch, hue, resolved, slider)
}

// hueSlider draws the 0-360 track with a marker at hue.
func hueSlider(hue, width int) string {
	h := ((hue % 360) + 360) % 360
	pos := h * (width - 1) / 359
	var b strings.Builder
	for i := 0; i < width; i++ {
		if i == pos {
			b.WriteRune('◆')
		} else {
			b.WriteRune('·')
		}
	}
	return b.String()
}

// paramBar draws one value as a 4-cell bar, normalized over the
// parameter's declared range so bipolar params render sensibly.
func paramBar(name instrument.ParamName, v float64) string {
	r := instrument.Ranges[name]
	norm := (v - r.Min) / (r.Max - r.Min)
	filled := int(norm*4 + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > 4 {
		filled = 4
	}
	return strings.Repeat("▰", filled) + strings.Repeat("▱", 4-filled)
}
