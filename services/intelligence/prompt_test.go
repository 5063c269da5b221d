package intelligence

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseSlotRangesStripsMarkdownFences(t *testing.T) {
	raw := "```json\n[{\"start\": \"2025-12-10T09:00:00Z\", \"end\": \"2025-12-10T10:00:00Z\"}]\n```"
	ranges, err := ParseSlotRanges(raw)
	if err != nil {
		t.Fatalf("ParseSlotRanges failed: %v", err)
	}
	if len(ranges) != 1 {
		t.Fatalf("expected 1 range, got %d", len(ranges))
	}
	want := time.Date(2025, 12, 10, 9, 0, 0, 0, time.UTC)
	if !ranges[0].Start.Equal(want) {
		t.Fatalf("start mismatch: got %v, want %v", ranges[0].Start, want)
	}
}

func TestParseSlotRangesNormalizesToUTC(t *testing.T) {
	// Offsets in model output are still honored as instants, then held in UTC.
	raw := `[{"start": "2025-12-10T09:00:00-03:00", "end": "2025-12-10T10:00:00-03:00"}]`
	ranges, err := ParseSlotRanges(raw)
	if err != nil {
		t.Fatalf("ParseSlotRanges failed: %v", err)
	}
	if ranges[0].Start.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %v", ranges[0].Start.Location())
	}
	if ranges[0].Start.Hour() != 12 {
		t.Fatalf("expected 12h UTC, got %d", ranges[0].Start.Hour())
	}
}

func TestParseSlotRangesRejectsBadOutput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"prose", "Sure! Here are your slots."},
		{"object not array", `{"start": "2025-12-10T09:00:00Z", "end": "2025-12-10T10:00:00Z"}`},
		{"invalid start", `[{"start": "tomorrow 9am", "end": "2025-12-10T10:00:00Z"}]`},
		{"end before start", `[{"start": "2025-12-10T10:00:00Z", "end": "2025-12-10T09:00:00Z"}]`},
		{"zero length", `[{"start": "2025-12-10T09:00:00Z", "end": "2025-12-10T09:00:00Z"}]`},
	}
	for _, tc := range cases {
		if _, err := ParseSlotRanges(tc.raw); !errors.Is(err, ErrInterpretation) {
			t.Fatalf("%s: expected ErrInterpretation, got %v", tc.name, err)
		}
	}
}

func TestParseSlotRangesEmptyArray(t *testing.T) {
	ranges, err := ParseSlotRanges("[]")
	if err != nil {
		t.Fatalf("ParseSlotRanges failed: %v", err)
	}
	if len(ranges) != 0 {
		t.Fatalf("expected no ranges, got %d", len(ranges))
	}
}

func TestBuildSchedulePromptCarriesContext(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}
	now := time.Date(2025, 11, 28, 18, 0, 0, 0, time.UTC)

	prompt := buildSchedulePrompt("Disponível toda segunda de manhã", now, loc)
	if !strings.Contains(prompt, "America/Sao_Paulo") {
		t.Fatal("prompt missing tenant timezone")
	}
	if !strings.Contains(prompt, "Disponível toda segunda de manhã") {
		t.Fatal("prompt missing user instruction")
	}
	if !strings.Contains(prompt, "2025") {
		t.Fatal("prompt missing current year")
	}
}
