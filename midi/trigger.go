package midi

import (
	"strings"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"

	"drumgrid/debug"
)

// TriggerOut plays one-shot drum hits on a MIDI output port. It is the
// audio side of the track trigger: callers fire and forget, the result is
// never interpreted.
type TriggerOut struct {
	mu      sync.Mutex
	send    func(gomidi.Message) error
	channel uint8
}

// NewTriggerOut opens the first output port whose name contains portName
// (case-insensitive). No matching port is not an error - Hit just becomes
// a no-op.
func NewTriggerOut(portName string, channel uint8) *TriggerOut {
	t := &TriggerOut{channel: channel}
	if portName == "" {
		return t
	}

	want := strings.ToLower(portName)
	for _, port := range gomidi.GetOutPorts() {
		if !strings.Contains(strings.ToLower(port.String()), want) {
			continue
		}
		send, err := gomidi.SendTo(port)
		if err != nil {
			debug.Log("midi", "open %s failed: %v", port.String(), err)
			continue
		}
		debug.Log("midi", "trigger output on %s", port.String())
		t.send = send
		break
	}
	return t
}

// Hit sends a NoteOn for note and schedules the NoteOff, without blocking
// the caller.
func (t *TriggerOut) Hit(note, velocity uint8) {
	t.mu.Lock()
	send := t.send
	ch := t.channel
	t.mu.Unlock()

	if send == nil {
		return
	}

	go func() {
		if err := send(gomidi.NoteOn(ch, note, velocity)); err != nil {
			debug.Log("midi", "note on failed: %v", err)
			return
		}
		time.Sleep(100 * time.Millisecond)
		send(gomidi.NoteOff(ch, note))
	}()
}

// Close drops the port; later Hits are no-ops.
func (t *TriggerOut) Close() {
	t.mu.Lock()
	t.send = nil
	t.mu.Unlock()
	gomidi.CloseDriver()
}
