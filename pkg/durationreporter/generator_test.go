package durationreporter

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/stretchr/testify/require"
)

type step struct {
	event, action string
	took          time.Duration
	open          bool
}

func buildSnapshot(t *testing.T, unit TimeUnit, steps ...step) Snapshot {
	t.Helper()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewLedger()
	for _, s := range steps {
		_, err := l.Begin(s.event, s.action, "begin-"+s.action, now)
		require.NoError(t, err)
		if !s.open {
			_, err = l.End(s.event, s.action, nil, now.Add(s.took))
			require.NoError(t, err)
		}
	}
	return Snapshot{Events: l.Snapshot(), Unit: unit}
}

func applicationStart(t *testing.T, unit TimeUnit) Snapshot {
	return buildSnapshot(t, unit,
		step{event: "Application Start", action: "Loading", took: time.Second},
		step{event: "Application Start", action: "Loading Home", took: 2 * time.Second},
		step{event: "Application Start", action: "Preparing Home", took: 200 * time.Millisecond},
		step{event: "Problematic Code", action: "Executing 💥", open: true},
	)
}

func TestTextGenerator(t *testing.T) {
	got := TextGenerator{}.Generate(applicationStart(t, Millisecond))

	expected := "\n🚀 Application Start - 3200ms\n" +
		"1. Loading        1000ms 31%\n" +
		"2. Loading Home   2000ms 63%\n" +
		"3. Preparing Home 200ms  6%\n" +
		"\n🚀 Problematic Code - 0ms\n" +
		"1. 🔴 Executing 💥 - ?\n"
	require.Equal(t, expected, got)
}

func TestTextGenerator_Units(t *testing.T) {
	got := TextGenerator{}.Generate(applicationStart(t, Second))
	require.Contains(t, got, "🚀 Application Start - 3s\n")
	require.Contains(t, got, "2. Loading Home   2s 63%\n")

	got = TextGenerator{}.Generate(applicationStart(t, Microsecond))
	require.Contains(t, got, "🚀 Application Start - 3200000μs\n")
}

func TestTextGenerator_ZeroTotal(t *testing.T) {
	s := buildSnapshot(t, Millisecond, step{event: "E", action: "A"})

	require.Equal(t, "\n🚀 E - 0ms\n1. A 0ms 0%\n", TextGenerator{}.Generate(s))
}

func TestTextGenerator_CounterAlignment(t *testing.T) {
	steps := make([]step, 0, 10)
	for i := 0; i < 10; i++ {
		steps = append(steps, step{event: "E", action: "A", took: time.Millisecond})
	}
	got := TextGenerator{}.Generate(buildSnapshot(t, Millisecond, steps...))

	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 11)
	require.Equal(t, "1.  A   1ms 10%", lines[1])
	require.Equal(t, "10. A10 1ms 10%", lines[10])
}

func TestTextGenerator_Empty(t *testing.T) {
	require.Empty(t, TextGenerator{}.Generate(Snapshot{}))
}

func TestTableGenerator(t *testing.T) {
	got := TableGenerator{}.Generate(applicationStart(t, Millisecond))

	require.Contains(t, got, "🚀 Application Start - 3200ms")
	require.Contains(t, got, "Preparing Home")
	require.Contains(t, got, "2000ms")
	require.Contains(t, got, "63%")
	require.Contains(t, got, "🔴 Executing 💥")
	require.Less(t, strings.Index(got, "Application Start"), strings.Index(got, "Problematic Code"))
}

func TestTableGenerator_RenderError(t *testing.T) {
	g := TableGenerator{Options: []tablewriter.Option{
		tablewriter.WithStreaming(tw.StreamConfig{Enable: true}),
	}}

	got := g.Generate(applicationStart(t, Millisecond))

	require.Contains(t, got, "🚀 Application Start - 3200ms")
	require.Contains(t, got, "rendering table: ")
	require.NotContains(t, got, "Preparing Home")
}

func TestGenerators_UnknownUnitFallsBackToMilliseconds(t *testing.T) {
	for _, unit := range []TimeUnit{0, -1, TimeUnit(3 * time.Millisecond)} {
		s := applicationStart(t, unit)
		require.Equal(t, Millisecond, s.DisplayUnit())
		require.Contains(t, TextGenerator{}.Generate(s), "🚀 Application Start - 3200ms")
		require.Contains(t, TableGenerator{}.Generate(s), "2000ms")
		require.Contains(t, JSONGenerator{}.Generate(s), `"unit": "ms"`)
	}
}

func TestJSONGenerator(t *testing.T) {
	got := JSONGenerator{}.Generate(applicationStart(t, Millisecond))

	var events []jsonEvent
	require.NoError(t, json.Unmarshal([]byte(got), &events))
	require.Len(t, events, 2)

	start := events[0]
	require.Equal(t, "Application Start", start.Name)
	require.Equal(t, int64(3200), start.Total)
	require.Equal(t, "ms", start.Unit)
	require.Len(t, start.Actions, 3)
	require.True(t, start.Actions[0].Complete)
	require.Equal(t, int64(1000), *start.Actions[0].Duration)
	require.Equal(t, int64(31), *start.Actions[0].Share)
	require.Equal(t, "begin-Loading", *start.Actions[0].BeginPayload)
	require.Nil(t, start.Actions[0].EndPayload)

	open := events[1].Actions[0]
	require.False(t, open.Complete)
	require.Nil(t, open.Duration)
}

func TestGeneratorFor(t *testing.T) {
	for format, expected := range map[string]Generator{
		"":      TextGenerator{},
		"text":  TextGenerator{},
		"TABLE": TableGenerator{},
		"json":  JSONGenerator{},
	} {
		g, err := GeneratorFor(format)
		require.NoError(t, err)
		require.IsType(t, expected, g)
	}

	_, err := GeneratorFor("xml")
	require.Error(t, err)
}
