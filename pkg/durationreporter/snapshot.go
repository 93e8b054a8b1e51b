package durationreporter

import "golang.org/x/exp/slices"

// Snapshot is a read-only copy of everything a Reporter recorded.
type Snapshot struct {
	Events []Event
	// Unit is the display unit configured on the Reporter when the snapshot was taken.
	Unit TimeUnit
}

// DisplayUnit returns Unit, or Millisecond when Unit is not one of the predefined units.
func (s Snapshot) DisplayUnit() TimeUnit {
	if !s.Unit.Known() {
		return Millisecond
	}
	return s.Unit
}

func (s Snapshot) Len() int {
	return len(s.Events)
}

func (s Snapshot) Event(name string) (Event, bool) {
	i := slices.IndexFunc(s.Events, func(e Event) bool { return e.Name == name })
	if i < 0 {
		return Event{}, false
	}
	return s.Events[i], true
}

// Actions returns the actions recorded for the event, nil if there are none.
func (s Snapshot) Actions(event string) []Action {
	e, _ := s.Event(event)
	return e.Actions
}
