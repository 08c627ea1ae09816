package instrument

import "math/rand"

// Randomizer produces a complete parameter set for a sound engine. Pairs
// are returned in a deterministic order so seeded runs reproduce exactly.
type Randomizer interface {
	Randomize(engineTag string) []ParamValue
}

// policy narrows the randomized interval for selected parameters. Params
// not listed randomize across their full declared range.
type policy map[ParamName]Range

// policies tunes randomization per engine so "randomize" stays usable:
// kicks keep some volume and stay near center, hats keep short decays.
var policies = map[string]policy{
	"kick": {
		Volume: {0.55, 1},
		Attack: {0, 0.3},
		Pan:    {-0.2, 0.2},
	},
	"snare": {
		Snap:   {0.3, 1},
		Volume: {0.4, 1},
		Pan:    {-0.4, 0.4},
	},
	"hatClosed": {
		Decay:  {0, 0.35},
		Volume: {0.3, 0.9},
	},
	"hatOpen": {
		Decay: {0.3, 0.9},
	},
	"clap": {
		Snap: {0.4, 1},
	},
}

// StockRandomizer is the default randomization policy, driven by an
// injected source so seeded runs are reproducible.
type StockRandomizer struct {
	rng *rand.Rand
}

// NewStockRandomizer creates a randomizer over rng.
func NewStockRandomizer(rng *rand.Rand) *StockRandomizer {
	return &StockRandomizer{rng: rng}
}

// Randomize returns one value per parameter, in canonical parameter
// order, each within the narrower of the policy and declared ranges.
func (r *StockRandomizer) Randomize(engineTag string) []ParamValue {
	pol := policies[engineTag]
	out := make([]ParamValue, 0, len(ParamNames))
	for _, name := range ParamNames {
		span := Ranges[name]
		if p, ok := pol[name]; ok {
			span = p
		}
		v := span.Min + r.rng.Float64()*(span.Max-span.Min)
		out = append(out, ParamValue{Name: name, Value: v})
	}
	return out
}
