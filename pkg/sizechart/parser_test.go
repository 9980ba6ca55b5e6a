package sizechart

import (
	"strings"
	"testing"
)

const ukChartSource = `
-- UK men's chart
chart UK
  below 240 -> 5
  below 250 -> 6
  below 260 -> 7
  below 270 -> 8
  below 280 -> 9
  else -> 10
end
`

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser()
	if err != nil {
		t.Fatalf("parser init failed: %v", err)
	}
	return p
}

func TestParseChart(t *testing.T) {
	p := newTestParser(t)
	chart, err := p.ParseString(ukChartSource)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if chart.Name != "UK" {
		t.Errorf("name = %q, want UK", chart.Name)
	}
	if len(chart.Buckets) != 5 {
		t.Fatalf("got %d buckets, want 5", len(chart.Buckets))
	}
	if chart.Buckets[0].UpperMm != 240 || chart.Buckets[0].Label != "5" {
		t.Errorf("first bucket = %+v", chart.Buckets[0])
	}
	if chart.Final != "10" {
		t.Errorf("final label = %q, want 10", chart.Final)
	}

	// The compiled chart behaves like the built-in one.
	builtin := DefaultUK()
	for mm := 200.0; mm <= 300.0; mm += 1.0 {
		if got, want := chart.Classify(mm), builtin.Classify(mm); got != want {
			t.Fatalf("Classify(%v) = %q, builtin gives %q", mm, got, want)
		}
	}
}

func TestParseChartReader(t *testing.T) {
	p := newTestParser(t)
	chart, err := p.Parse(strings.NewReader(ukChartSource))
	if err != nil {
		t.Fatalf("parse from reader failed: %v", err)
	}
	if got := chart.Classify(210); got != "5" {
		t.Errorf("Classify(210) = %q, want 5", got)
	}
}

func TestParseChartFractionalThresholds(t *testing.T) {
	p := newTestParser(t)
	chart, err := p.ParseString(`
chart EU
  below 242.5 -> 38
  below 251.5 -> 39
  else -> 40
end
`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := chart.Classify(242.5); got != "39" {
		t.Errorf("Classify at threshold = %q, want 39 (strict <)", got)
	}
}

func TestParseChartErrors(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name  string
		input string
	}{
		{"missing else", "chart X\n below 240 -> 5\nend"},
		{"duplicate else", "chart X\n below 240 -> 5\n else -> 9\n else -> 10\nend"},
		{"rule after else", "chart X\n else -> 9\n below 240 -> 5\nend"},
		{"non-increasing", "chart X\n below 250 -> 5\n below 240 -> 6\n else -> 10\nend"},
		{"missing end", "chart X\n below 240 -> 5\n else -> 10"},
		{"garbage", "not a chart at all"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.ParseString(tt.input); err == nil {
				t.Errorf("ParseString(%q) should fail", tt.input)
			}
		})
	}
}
