// File: services/intelligence/prompt.go
package intelligence

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"davi/models"
)

// buildSchedulePrompt renders the strict instruction-to-slots contract. The
// temporal context is expressed in the tenant's civil calendar so relative
// dates resolve correctly, and the wall-clock rule tells the model to emit the
// spoken hour unchanged as a UTC instant.
func buildSchedulePrompt(instructions string, now time.Time, loc *time.Location) string {
	local := now.In(loc)
	return fmt.Sprintf(`You are a precise scheduling assistant.

TEMPORAL CONTEXT:
- Current local date and time (%s): %s
- Current year: %d

USER INSTRUCTION: %q

TASK:
Interpret the instruction and produce a list of availability slots.

STRICT TIMEZONE RULES (CRITICAL):
1. Wall clock time: if the user says "14:00", you MUST output "14:00:00Z" (UTC).
2. Do NOT convert timezones. Ignore the GMT offset; keep the hour numeral exactly as the user said it.
3. Format every instant as ISO 8601 with a trailing 'Z'.

LOGIC RULES:
4. Intervals: if the user gives a range (e.g. "13h to 15h"), break it into 1-hour slots (13:00-14:00 and 14:00-15:00).
5. Specific dates: if the user names an exact date, generate ONLY for that date.
6. Recurrence: ONLY if the user says "every"/"todo"/"toda"/"sempre", generate for the next 30 days.

EXAMPLE:
User: "Day 30 at 14h"
Output: [{"start": "%d-11-30T14:00:00Z", "end": "%d-11-30T15:00:00Z"}]

EXPECTED OUTPUT (pure JSON, no markdown):
[
  { "start": "...", "end": "..." }
]`,
		loc.String(), local.Format("Monday, 2006-01-02 15:04"), local.Year(),
		instructions,
		local.Year(), local.Year())
}

type rawRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ParseSlotRanges validates model output against the interpreter contract: a
// JSON array of {start, end} pairs, RFC3339 instants, start strictly before
// end. Anything else is ErrInterpretation.
func ParseSlotRanges(raw string) ([]models.SlotRange, error) {
	// Models wrap JSON in markdown fences no matter how firmly told not to.
	clean := strings.TrimSpace(raw)
	clean = strings.ReplaceAll(clean, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	var rawRanges []rawRange
	if err := json.Unmarshal([]byte(clean), &rawRanges); err != nil {
		return nil, fmt.Errorf("%w: output is not a JSON array of ranges: %v", ErrInterpretation, err)
	}

	ranges := make([]models.SlotRange, 0, len(rawRanges))
	for i, rr := range rawRanges {
		start, err := parseInstant(rr.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: range %d has invalid start %q", ErrInterpretation, i, rr.Start)
		}
		end, err := parseInstant(rr.End)
		if err != nil {
			return nil, fmt.Errorf("%w: range %d has invalid end %q", ErrInterpretation, i, rr.End)
		}
		if !start.Before(end) {
			return nil, fmt.Errorf("%w: range %d start %s is not before end %s", ErrInterpretation, i, rr.Start, rr.End)
		}
		ranges = append(ranges, models.SlotRange{Start: start, End: end})
	}
	return ranges, nil
}

func parseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
