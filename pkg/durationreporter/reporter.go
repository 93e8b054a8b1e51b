package durationreporter

import (
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

// Observer is notified after an action begins or ends. Observers run synchronously on the
// goroutine calling Begin or End, so they should be cheap.
type Observer func(event string, action Action)

// Reporter tracks action durations grouped by event and renders reports about them.
// A Reporter is safe for concurrent use.
//
// Misordered calls never fail: beginning an action that is already running, or ending one that
// is not, only logs a warning.
type Reporter struct {
	log   logrus.FieldLogger
	clock Clock

	mu        sync.Mutex
	ledger    *Ledger
	unit      TimeUnit
	generator Generator
	onBegin   Observer
	onEnd     Observer
	onDiscard Observer
}

func New(log logrus.FieldLogger) *Reporter {
	return NewWithClock(log, clock.RealClock{})
}

func NewWithClock(log logrus.FieldLogger, clk Clock) *Reporter {
	return &Reporter{
		log:       log,
		clock:     clk,
		ledger:    NewLedger(),
		unit:      Millisecond,
		generator: TextGenerator{},
	}
}

// Begin starts tracking action within event. A second Begin for an action that is still running
// is rejected; once it ended, the next occurrence is tracked as "<action>2", "<action>3" and so on.
func (r *Reporter) Begin(event, action string) {
	r.BeginWithPayload(event, action, nil)
}

func (r *Reporter) BeginWithPayload(event, action string, payload any) {
	r.mu.Lock()
	a, err := r.ledger.Begin(event, action, payload, r.clock.Now())
	var observer Observer
	var snapshot Action
	if err == nil {
		observer, snapshot = r.onBegin, *a
	}
	r.mu.Unlock()

	if err != nil {
		r.warn(event, action, err, "can't begin action")
		return
	}
	if observer != nil {
		observer(event, snapshot)
	}
}

// End stops tracking the most recently begun running action named action within event.
func (r *Reporter) End(event, action string) {
	r.EndWithPayload(event, action, nil)
}

func (r *Reporter) EndWithPayload(event, action string, payload any) {
	r.mu.Lock()
	a, err := r.ledger.End(event, action, payload, r.clock.Now())
	var observer Observer
	var snapshot Action
	if err == nil {
		observer, snapshot = r.onEnd, *a
	}
	r.mu.Unlock()

	if err != nil {
		r.warn(event, action, err, "can't end action")
		return
	}
	if observer != nil {
		observer(event, snapshot)
	}
}

func (r *Reporter) warn(event, action string, err error, msg string) {
	r.log.WithFields(logrus.Fields{
		"event":  event,
		"action": action,
	}).WithError(err).Warn(msg)
}

// OnBegin replaces the begin observer. nil removes it.
func (r *Reporter) OnBegin(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onBegin = o
}

// OnEnd replaces the end observer. nil removes it.
func (r *Reporter) OnEnd(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onEnd = o
}

// OnDiscard replaces the observer notified once for every running action dropped by Clear.
// nil removes it.
func (r *Reporter) OnDiscard(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onDiscard = o
}

// SetTimeUnit changes the unit reports are rendered in. Units other than Nanosecond, Microsecond,
// Millisecond and Second are replaced with Millisecond.
func (r *Reporter) SetTimeUnit(u TimeUnit) {
	if !u.Known() {
		r.log.WithField("unit", time.Duration(u).String()).Warn("unsupported time unit, using ms")
		u = Millisecond
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unit = u
}

func (r *Reporter) TimeUnit() TimeUnit {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unit
}

// SetGenerator replaces the report generator. nil restores TextGenerator.
func (r *Reporter) SetGenerator(g Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if g == nil {
		g = TextGenerator{}
	}
	r.generator = g
}

// GenerateReport renders everything recorded so far with the configured generator.
func (r *Reporter) GenerateReport() string {
	r.mu.Lock()
	g := r.generator
	snapshot := r.snapshot()
	r.mu.Unlock()

	return g.Generate(snapshot)
}

// ReportData returns a copy of the recorded data for custom processing.
func (r *Reporter) ReportData() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

func (r *Reporter) snapshot() Snapshot {
	return Snapshot{
		Events: r.ledger.Snapshot(),
		Unit:   r.unit,
	}
}

// Clear drops all recorded data. Unit, observers and generator are kept. Actions still running
// are passed to the discard observer.
func (r *Reporter) Clear() {
	r.mu.Lock()
	observer := r.onDiscard
	var running []Event
	if observer != nil {
		running = lo.FilterMap(r.ledger.Snapshot(), func(e Event, _ int) (Event, bool) {
			e.Actions = lo.Filter(e.Actions, func(a Action, _ int) bool { return a.State() == Running })
			return e, len(e.Actions) > 0
		})
	}
	r.ledger.Clear()
	r.mu.Unlock()

	for _, e := range running {
		for _, a := range e.Actions {
			observer(e.Name, a)
		}
	}
}
