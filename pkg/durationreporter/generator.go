package durationreporter

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const incompleteMarker = "🔴"

// Generator renders a snapshot into a report. Implementations must cope with actions that never
// ended.
type Generator interface {
	Generate(Snapshot) string
}

type GeneratorFunc func(Snapshot) string

func (f GeneratorFunc) Generate(s Snapshot) string {
	return f(s)
}

// share returns the rounded percentage of d in total, 0 for an empty total.
func share(part, total float64) int64 {
	if total <= 0 {
		return 0
	}
	return int64(math.Round(part / total * 100))
}

// TextGenerator is the default generator. It renders a header per event followed by aligned
// action rows:
//
//	🚀 Application Start - 3200ms
//	1. Loading        1000ms 31%
//	2. Loading Home   2000ms 63%
//	3. Preparing Home 200ms  6%
type TextGenerator struct{}

func (TextGenerator) Generate(s Snapshot) string {
	var out strings.Builder
	unit := s.DisplayUnit()

	for _, event := range s.Events {
		total := event.Total()
		fmt.Fprintf(&out, "\n🚀 %s - %d%s\n", event.Name, unit.Round(total), unit.Symbol())

		titleWidth := 0
		durationWidth := 0
		for _, a := range event.Actions {
			titleWidth = max(titleWidth, len([]rune(a.Title)))
			if d, ok := a.Duration(); ok {
				durationWidth = max(durationWidth, len(strconv.FormatInt(unit.Round(d), 10)))
			}
		}
		counterWidth := len(strconv.Itoa(len(event.Actions)))

		for i, a := range event.Actions {
			counter := strconv.Itoa(i + 1)
			d, ok := a.Duration()
			if !ok {
				fmt.Fprintf(&out, "%s. %s %s - ?\n", counter, incompleteMarker, a.Title)
				continue
			}
			rounded := strconv.FormatInt(unit.Round(d), 10)
			fmt.Fprintf(&out, "%s.%s %s%s %s%s%s %d%%\n",
				counter, pad(counterWidth-len(counter)),
				a.Title, pad(titleWidth-len([]rune(a.Title))),
				rounded, unit.Symbol(), pad(durationWidth-len(rounded)),
				share(float64(d), float64(total)),
			)
		}
	}

	return out.String()
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// TableGenerator renders one table per event. Options are passed to every table.
type TableGenerator struct {
	Options []tablewriter.Option
}

func (g TableGenerator) Generate(s Snapshot) string {
	var out strings.Builder
	unit := s.DisplayUnit()

	for _, event := range s.Events {
		total := event.Total()
		fmt.Fprintf(&out, "\n🚀 %s - %d%s\n", event.Name, unit.Round(total), unit.Symbol())

		var table strings.Builder
		if err := g.renderTable(&table, event, unit, total); err != nil {
			fmt.Fprintf(&out, "rendering table: %v\n", err)
			continue
		}
		out.WriteString(table.String())
	}

	return out.String()
}

func (g TableGenerator) renderTable(w io.Writer, event Event, unit TimeUnit, total time.Duration) error {
	table := tablewriter.NewTable(w, g.Options...)
	table.Header("#", "Action", "Duration", "Share")
	for i, a := range event.Actions {
		row := []any{strconv.Itoa(i + 1), incompleteMarker + " " + a.Title, "?", "-"}
		if d, ok := a.Duration(); ok {
			row = []any{
				strconv.Itoa(i + 1),
				a.Title,
				fmt.Sprintf("%d%s", unit.Round(d), unit.Symbol()),
				fmt.Sprintf("%d%%", share(float64(d), float64(total))),
			}
		}
		if err := table.Append(row...); err != nil {
			return fmt.Errorf("appending %q: %w", a.Title, err)
		}
	}
	return table.Render()
}

type jsonAction struct {
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Complete     bool    `json:"complete"`
	Duration     *int64  `json:"duration,omitempty"`
	Share        *int64  `json:"share,omitempty"`
	BeginPayload *string `json:"begin_payload,omitempty"`
	EndPayload   *string `json:"end_payload,omitempty"`
}

type jsonEvent struct {
	Name    string       `json:"name"`
	Total   int64        `json:"total"`
	Unit    string       `json:"unit"`
	Actions []jsonAction `json:"actions"`
}

// JSONGenerator renders the snapshot as an indented JSON array of events. Durations are in the
// snapshot unit; payloads are formatted with %v.
type JSONGenerator struct{}

func (JSONGenerator) Generate(s Snapshot) string {
	unit := s.DisplayUnit()

	events := lo.Map(s.Events, func(event Event, _ int) jsonEvent {
		total := event.Total()
		return jsonEvent{
			Name:  event.Name,
			Total: unit.Round(total),
			Unit:  unit.Symbol(),
			Actions: lo.Map(event.Actions, func(a Action, _ int) jsonAction {
				ja := jsonAction{
					Title:        a.Title,
					Name:         a.Name,
					BeginPayload: formatPayload(a.BeginPayload),
					EndPayload:   formatPayload(a.EndPayload),
				}
				if d, ok := a.Duration(); ok {
					ja.Complete = true
					ja.Duration = lo.ToPtr(unit.Round(d))
					ja.Share = lo.ToPtr(share(float64(d), float64(total)))
				}
				return ja
			}),
		}
	})

	b, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Sprintf("marshaling report: %v", err)
	}
	return string(b)
}

func formatPayload(p any) *string {
	if p == nil {
		return nil
	}
	return lo.ToPtr(fmt.Sprintf("%v", p))
}

// GeneratorFor maps a format name to a generator: "text", "table" or "json".
func GeneratorFor(format string) (Generator, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return TextGenerator{}, nil
	case "table":
		return TableGenerator{}, nil
	case "json":
		return JSONGenerator{}, nil
	}
	return nil, fmt.Errorf("unknown report format %q", format)
}
