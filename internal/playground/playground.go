package playground

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ktustanowski/durationreporter/pkg/durationreporter"
)

type Step struct {
	Action       string
	Sleep        time.Duration
	BeginPayload any
	EndPayload   any
	// LeaveOpen skips ending the action.
	LeaveOpen bool
}

// Scenario is a list of steps measured one after another under one event.
type Scenario struct {
	Event string
	Steps []Step
}

func Default() []Scenario {
	return []Scenario{
		{
			Event: "Application Start",
			Steps: []Step{
				{Action: "Loading", Sleep: time.Second, BeginPayload: "🚀", EndPayload: "💥"},
				{Action: "Loading Home", Sleep: 2 * time.Second},
				{Action: "Preparing Home", Sleep: 200 * time.Millisecond},
			},
		},
		{
			Event: "Problematic Code",
			Steps: []Step{
				{Action: "Executing 💥", LeaveOpen: true},
			},
		},
	}
}

// Run executes every scenario in its own goroutine against r. Sleeps are multiplied by scale.
// An action interrupted by ctx is left open.
func Run(ctx context.Context, log logrus.FieldLogger, r *durationreporter.Reporter, scenarios []Scenario, scale float64) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range scenarios {
		g.Go(func() error {
			log := log.WithField("event", s.Event)
			for _, step := range s.Steps {
				r.BeginWithPayload(s.Event, step.Action, step.BeginPayload)
				if err := sleep(ctx, scaled(step.Sleep, scale)); err != nil {
					return fmt.Errorf("running %q in %q: %w", step.Action, s.Event, err)
				}
				if step.LeaveOpen {
					log.Debugf("leaving %q open", step.Action)
					continue
				}
				r.EndWithPayload(s.Event, step.Action, step.EndPayload)
			}
			return nil
		})
	}
	return g.Wait()
}

func scaled(d time.Duration, scale float64) time.Duration {
	return time.Duration(float64(d) * scale)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Listing renders every action on its own line together with raw durations and payloads.
func Listing(s durationreporter.Snapshot) string {
	var out strings.Builder
	for _, event := range s.Events {
		for i, a := range event.Actions {
			d, ok := a.Duration()
			if !ok {
				fmt.Fprintf(&out, "%s → %d. 🔴 %s - ?\n", event.Name, i, a.Title)
				continue
			}
			fmt.Fprintf(&out, "%s → %d. %s %dns %s %s\n", event.Name, i, a.Title, d.Nanoseconds(),
				payloadString(a.BeginPayload), payloadString(a.EndPayload))
		}
	}
	return out.String()
}

func payloadString(p any) string {
	s, _ := p.(string)
	return s
}

// ArrowGenerator is a compact replacement for the default report.
var ArrowGenerator = durationreporter.GeneratorFunc(func(s durationreporter.Snapshot) string {
	var out strings.Builder
	unit := s.DisplayUnit()
	for _, event := range s.Events {
		for i, a := range event.Actions {
			if d, ok := a.Duration(); ok {
				fmt.Fprintf(&out, "%s → %d. %s %d%s\n", event.Name, i, a.Title, unit.Round(d), unit.Symbol())
			} else {
				fmt.Fprintf(&out, "%s → %d. 🔴 %s - ?\n", event.Name, i, a.Title)
			}
		}
	}
	return out.String()
})
