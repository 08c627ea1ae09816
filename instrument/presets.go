package instrument

// Defaults maps sound-engine tags to their factory preset. Not every
// engine ships one; ResetToDefault does nothing for those.
var Defaults = map[string]ParamSet{
	"kick": {
		Tune: -0.15, Decay: 0.65, Attack: 0.05, Tone: 0.40, Snap: 0.30,
		Volume: 0.85, FilterCutoff: 0.90, FilterResonance: 0.10, Drive: 0.25, Pan: 0,
	},
	"snare": {
		Tune: 0.10, Decay: 0.35, Attack: 0.02, Tone: 0.60, Snap: 0.70,
		Volume: 0.75, FilterCutoff: 0.85, FilterResonance: 0.20, Drive: 0.15, Pan: -0.05,
	},
	"hatClosed": {
		Tune: 0.25, Decay: 0.12, Attack: 0, Tone: 0.80, Snap: 0.50,
		Volume: 0.60, FilterCutoff: 0.95, FilterResonance: 0.05, Drive: 0, Pan: 0.20,
	},
	"hatOpen": {
		Tune: 0.25, Decay: 0.55, Attack: 0, Tone: 0.80, Snap: 0.40,
		Volume: 0.55, FilterCutoff: 0.95, FilterResonance: 0.05, Drive: 0, Pan: 0.20,
	},
	"tomLow": {
		Tune: -0.30, Decay: 0.50, Attack: 0.04, Tone: 0.45, Snap: 0.25,
		Volume: 0.70, FilterCutoff: 0.80, FilterResonance: 0.15, Drive: 0.10, Pan: -0.30,
	},
	"tomHigh": {
		Tune: 0.30, Decay: 0.40, Attack: 0.04, Tone: 0.50, Snap: 0.25,
		Volume: 0.70, FilterCutoff: 0.85, FilterResonance: 0.15, Drive: 0.10, Pan: 0.30,
	},
	"clap": {
		Tune: 0, Decay: 0.30, Attack: 0.08, Tone: 0.55, Snap: 0.65,
		Volume: 0.70, FilterCutoff: 0.90, FilterResonance: 0.10, Drive: 0.20, Pan: 0.10,
	},
	// cowbell and sampler have no factory preset
}

// DefaultFor returns the factory preset for a tag.
func DefaultFor(tag string) (ParamSet, bool) {
	p, ok := Defaults[tag]
	return p, ok
}
