package durationreporter

import (
	"fmt"
	"time"
)

type State int

const (
	Pending State = iota
	Running
	Complete
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Action is a single tracked occurrence of a named action within an event.
//
// Actions obtained from a Reporter are copies: changing them does not affect recorded data.
type Action struct {
	// Name is the action name passed by the caller.
	Name string
	// Title is the display name. Repeated occurrences of Name get a numeric suffix: "Load",
	// "Load2", "Load3".
	Title string

	BeginPayload any
	EndPayload   any

	state   State
	beganAt time.Time
	endedAt time.Time
}

func newAction(name, title string) *Action {
	return &Action{Name: name, Title: title}
}

func (a *Action) begin(now time.Time) error {
	if a.state != Pending {
		return fmt.Errorf("beginning %q: %w", a.Title, ErrAlreadyBegun)
	}
	a.beganAt = now
	a.state = Running
	return nil
}

func (a *Action) end(now time.Time) error {
	switch a.state {
	case Pending:
		return fmt.Errorf("ending %q: %w", a.Title, ErrNotBegun)
	case Complete:
		return fmt.Errorf("ending %q: %w", a.Title, ErrAlreadyEnded)
	}
	a.endedAt = now
	a.state = Complete
	return nil
}

// State is tracked separately from the instants, since a clock may legitimately report the zero
// time.
func (a Action) State() State {
	return a.state
}

// BeganAt returns the begin instant. Only meaningful once State is not Pending.
func (a Action) BeganAt() time.Time {
	return a.beganAt
}

// EndedAt returns the end instant. Only meaningful once State is Complete.
func (a Action) EndedAt() time.Time {
	return a.endedAt
}

// Duration is computed on every call. The second result is false until the action is complete.
func (a Action) Duration() (time.Duration, bool) {
	if a.State() != Complete {
		return 0, false
	}
	return Elapsed(a.beganAt, a.endedAt), true
}

func (a Action) IsComplete() bool {
	_, ok := a.Duration()
	return ok
}
