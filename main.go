package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"drumgrid/config"
	"drumgrid/debug"
	"drumgrid/instrument"
	"drumgrid/midi"
	"drumgrid/store"
	"drumgrid/theme"
	"drumgrid/tui"
)

func main() {
	if os.Getenv("DRUMGRID_DEBUG") != "" {
		debug.Enable()
		defer debug.Disable()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Build the track store from the saved layout
	st := store.New()
	for _, t := range cfg.Tracks {
		st.AddTrack(t.Name, t.Engine)
	}

	// MIDI trigger output (no-op if no port matches)
	trigOut := midi.NewTriggerOut(os.Getenv("DRUMGRID_MIDI_PORT"), 10)
	defer trigOut.Close()

	trigger := func(trackIndex int) {
		info, ok := st.TrackInfo(trackIndex)
		if !ok {
			return
		}
		if eng, ok := instrument.LookupEngine(info.Engine); ok {
			trigOut.Hit(eng.Note, 100)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	ctrl := instrument.NewController(
		st.Apply,
		st.TrackInfo,
		instrument.NewStockRandomizer(rng),
		trigger,
	)

	// Theme picker wired to the shared pointer dispatcher
	themes := tui.NewThemeState(cfg.Theme)
	pointer := tui.NewPointerDispatcher()
	picker := theme.NewPicker(pointer, themes.Apply)

	m := tui.NewModel(st, ctrl, picker, pointer, themes, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
