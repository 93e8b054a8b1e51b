package durationreporter

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/samber/lo"
)

// Event groups the actions recorded under one event name in the order they were begun.
type Event struct {
	Name    string
	Actions []Action
}

// Total sums the durations of complete actions. Running actions contribute nothing. The sum
// saturates at the largest time.Duration.
func (e Event) Total() time.Duration {
	var total time.Duration
	for _, a := range e.Actions {
		d, _ := a.Duration()
		if d > math.MaxInt64-total {
			return math.MaxInt64
		}
		total += d
	}
	return total
}

// Ledger keeps actions per event. It is not safe for concurrent use; Reporter serializes access.
type Ledger struct {
	events map[string][]*Action
	order  []string
}

func NewLedger() *Ledger {
	return &Ledger{events: map[string][]*Action{}}
}

// Begin records a new running action. Only one running action per name may exist in an event;
// completed ones can repeat and get a numeric suffix in their title.
func (l *Ledger) Begin(event, name string, payload any, now time.Time) (*Action, error) {
	matching := l.matching(event, name)
	if lo.ContainsBy(matching, func(a *Action) bool { return a.State() == Running }) {
		return nil, fmt.Errorf("beginning %q in %q: %w", name, event, ErrActionInProgress)
	}

	title := name
	if n := len(matching); n > 0 {
		title += strconv.Itoa(n + 1)
	}

	action := newAction(name, title)
	action.BeginPayload = payload
	if err := action.begin(now); err != nil {
		return nil, err
	}

	if _, ok := l.events[event]; !ok {
		l.order = append(l.order, event)
	}
	l.events[event] = append(l.events[event], action)
	return action, nil
}

// End completes the most recently begun running action with the given name.
func (l *Ledger) End(event, name string, payload any, now time.Time) (*Action, error) {
	action, _, ok := lo.FindLastIndexOf(l.matching(event, name), func(a *Action) bool {
		return a.State() == Running
	})
	if !ok {
		return nil, fmt.Errorf("ending %q in %q: %w", name, event, ErrActionNotFound)
	}

	if err := action.end(now); err != nil {
		return nil, err
	}
	action.EndPayload = payload
	return action, nil
}

func (l *Ledger) matching(event, name string) []*Action {
	return lo.Filter(l.events[event], func(a *Action, _ int) bool {
		return a.Name == name
	})
}

func (l *Ledger) Clear() {
	l.events = map[string][]*Action{}
	l.order = nil
}

// Len returns the number of events.
func (l *Ledger) Len() int {
	return len(l.order)
}

// Snapshot copies every event in first-begin order.
func (l *Ledger) Snapshot() []Event {
	return lo.Map(l.order, func(name string, _ int) Event {
		return Event{
			Name: name,
			Actions: lo.Map(l.events[name], func(a *Action, _ int) Action {
				return *a
			}),
		}
	})
}
