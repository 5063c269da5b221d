// File: services/intelligence/interface.go
package intelligence

import (
	"context"
	"errors"
	"time"

	"davi/models"
)

// ErrInterpretation means the model returned output that failed structural
// validation. The caller must make no slot mutations on this error.
var ErrInterpretation = errors.New("schedule instruction could not be interpreted")

// ScheduleInterpreter turns a free-text scheduling instruction into concrete
// time ranges. now anchors relative expressions ("next Tuesday") and is
// rendered to the model in the tenant's civil calendar.
//
// Timezone policy: a wall-clock hour in the instruction ("14h") is preserved
// as the same numeral in the returned UTC instant. No offset is applied
// between what the tenant said and what gets persisted.
type ScheduleInterpreter interface {
	InterpretSchedule(ctx context.Context, instructions string, now time.Time) ([]models.SlotRange, error)
}
