package instrument

// ParamName identifies one synthesis control on a track.
type ParamName string

const (
	Tune            ParamName = "tune"
	Decay           ParamName = "decay"
	Attack          ParamName = "attack"
	Tone            ParamName = "tone"
	Snap            ParamName = "snap"
	Volume          ParamName = "volume"
	FilterCutoff    ParamName = "filterCutoff"
	FilterResonance ParamName = "filterResonance"
	Drive           ParamName = "drive"
	Pan             ParamName = "pan"
)

// ParamNames lists every parameter in canonical order. Presets and the
// stock randomizer apply values in this order.
var ParamNames = []ParamName{
	Tune, Decay, Attack, Tone, Snap,
	Volume, FilterCutoff, FilterResonance, Drive, Pan,
}

// Range is the valid interval for a parameter value.
type Range struct {
	Min, Max float64
}

// Ranges declares each parameter's valid interval. Tune and pan are
// bipolar; everything else is normalized 0-1.
var Ranges = map[ParamName]Range{
	Tune:            {-1, 1},
	Decay:           {0, 1},
	Attack:          {0, 1},
	Tone:            {0, 1},
	Snap:            {0, 1},
	Volume:          {0, 1},
	FilterCutoff:    {0, 1},
	FilterResonance: {0, 1},
	Drive:           {0, 1},
	Pan:             {-1, 1},
}

// Clamp folds v into the declared range for name.
func Clamp(name ParamName, v float64) float64 {
	r, ok := Ranges[name]
	if !ok {
		r = Range{0, 1}
	}
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// ParamValue is one (parameter, value) pair.
type ParamValue struct {
	Name  ParamName
	Value float64
}

// ParamSet holds one value for every parameter.
type ParamSet struct {
	Tune            float64 `json:"tune"`
	Decay           float64 `json:"decay"`
	Attack          float64 `json:"attack"`
	Tone            float64 `json:"tone"`
	Snap            float64 `json:"snap"`
	Volume          float64 `json:"volume"`
	FilterCutoff    float64 `json:"filterCutoff"`
	FilterResonance float64 `json:"filterResonance"`
	Drive           float64 `json:"drive"`
	Pan             float64 `json:"pan"`
}

// Params returns the set as pairs in canonical parameter order.
func (s ParamSet) Params() []ParamValue {
	return []ParamValue{
		{Tune, s.Tune},
		{Decay, s.Decay},
		{Attack, s.Attack},
		{Tone, s.Tone},
		{Snap, s.Snap},
		{Volume, s.Volume},
		{FilterCutoff, s.FilterCutoff},
		{FilterResonance, s.FilterResonance},
		{Drive, s.Drive},
		{Pan, s.Pan},
	}
}

// Get returns the value for name.
func (s ParamSet) Get(name ParamName) float64 {
	switch name {
	case Tune:
		return s.Tune
	case Decay:
		return s.Decay
	case Attack:
		return s.Attack
	case Tone:
		return s.Tone
	case Snap:
		return s.Snap
	case Volume:
		return s.Volume
	case FilterCutoff:
		return s.FilterCutoff
	case FilterResonance:
		return s.FilterResonance
	case Drive:
		return s.Drive
	case Pan:
		return s.Pan
	}
	return 0
}

// Set assigns the value for name.
func (s *ParamSet) Set(name ParamName, v float64) {
	switch name {
	case Tune:
		s.Tune = v
	case Decay:
		s.Decay = v
	case Attack:
		s.Attack = v
	case Tone:
		s.Tone = v
	case Snap:
		s.Snap = v
	case Volume:
		s.Volume = v
	case FilterCutoff:
		s.FilterCutoff = v
	case FilterResonance:
		s.FilterResonance = v
	case Drive:
		s.Drive = v
	case Pan:
		s.Pan = v
	}
}
