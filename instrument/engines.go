package instrument

// Engine describes one sound engine a track can run.
type Engine struct {
	Name string // display name
	Note uint8  // MIDI note sent on trigger
	Icon rune   // 0 = no trigger affordance in the UI
}

// Engines maps sound-engine tags to their descriptors. Notes follow the
// General MIDI drum map like the gm kit.
var Engines = map[string]Engine{
	"kick":      {Name: "Kick", Note: 36, Icon: '●'},
	"snare":     {Name: "Snare", Note: 38, Icon: '◆'},
	"hatClosed": {Name: "Closed HH", Note: 42, Icon: '×'},
	"hatOpen":   {Name: "Open HH", Note: 46, Icon: '○'},
	"tomLow":    {Name: "Low Tom", Note: 41, Icon: '▼'},
	"tomHigh":   {Name: "High Tom", Note: 45, Icon: '▲'},
	"clap":      {Name: "Clap", Note: 39, Icon: '✳'},
	"cowbell":   {Name: "Cowbell", Note: 56, Icon: '◇'},
	// Raw sample playback has no dedicated icon, so tracks running it
	// don't expose the one-shot trigger in the UI.
	"sampler": {Name: "Sampler", Note: 60},
}

// EngineTags returns the tags in display order.
func EngineTags() []string {
	return []string{
		"kick", "snare", "hatClosed", "hatOpen",
		"tomLow", "tomHigh", "clap", "cowbell", "sampler",
	}
}

// LookupEngine returns the engine for a tag.
func LookupEngine(tag string) (Engine, bool) {
	e, ok := Engines[tag]
	return e, ok
}

// DefaultEngine is the engine assigned to newly added tracks.
const DefaultEngine = "kick"
