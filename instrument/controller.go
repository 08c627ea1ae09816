package instrument

// TrackInfo is the identity the controller needs for a track.
type TrackInfo struct {
	Name   string
	Index  int
	Engine string // sound-engine tag
}

// TrackLookup resolves a track index to its identity.
type TrackLookup func(trackIndex int) (TrackInfo, bool)

// ParamNotifier receives every applied (track, parameter, value) change.
// Values arrive already clamped.
type ParamNotifier func(trackIndex int, name ParamName, value float64)

// TriggerFunc asynchronously plays the sound for a track. The controller
// neither waits for nor interprets the result.
type TriggerFunc func(trackIndex int)

// Controller dispatches parameter mutations for tracks. It owns no state;
// every effect goes through the injected notifier.
type Controller struct {
	notify  ParamNotifier
	lookup  TrackLookup
	rand    Randomizer
	trigger TriggerFunc // nil = capability absent
}

// NewController wires a controller to its collaborators. trigger may be
// nil when no playback path exists.
func NewController(notify ParamNotifier, lookup TrackLookup, rand Randomizer, trigger TriggerFunc) *Controller {
	return &Controller{
		notify:  notify,
		lookup:  lookup,
		rand:    rand,
		trigger: trigger,
	}
}

// SetParameter clamps value to the parameter's declared range and
// notifies the store. Out-of-range input is never an error.
func (c *Controller) SetParameter(trackIndex int, name ParamName, value float64) {
	c.notify(trackIndex, name, Clamp(name, value))
}

// Randomize generates a full parameter set for the track's engine and
// applies every pair through the same notification path as SetParameter,
// in the generator's order, before returning.
func (c *Controller) Randomize(trackIndex int) {
	if c.rand == nil {
		return
	}
	info, ok := c.lookup(trackIndex)
	if !ok {
		return
	}
	for _, pv := range c.rand.Randomize(info.Engine) {
		c.SetParameter(trackIndex, pv.Name, pv.Value)
	}
}

// ResetToDefault applies the engine's factory preset, one notification
// per parameter in the preset's order. Engines without a registered
// preset reset nothing.
func (c *Controller) ResetToDefault(trackIndex int) {
	info, ok := c.lookup(trackIndex)
	if !ok {
		return
	}
	preset, ok := DefaultFor(info.Engine)
	if !ok {
		return
	}
	for _, pv := range preset.Params() {
		c.SetParameter(trackIndex, pv.Name, pv.Value)
	}
}

// CanTrigger reports whether the one-shot trigger is offered for a track.
// It requires both a trigger collaborator and an engine icon.
func (c *Controller) CanTrigger(trackIndex int) bool {
	if c.trigger == nil {
		return false
	}
	info, ok := c.lookup(trackIndex)
	if !ok {
		return false
	}
	eng, ok := LookupEngine(info.Engine)
	return ok && eng.Icon != 0
}

// Trigger forwards to the trigger collaborator when the capability is
// offered; otherwise it does nothing.
func (c *Controller) Trigger(trackIndex int) {
	if !c.CanTrigger(trackIndex) {
		return
	}
	c.trigger(trackIndex)
}
