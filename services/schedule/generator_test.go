package schedule

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	slotRepo "davi/database/repository/slot"
	"davi/models"
	"davi/services/intelligence"
)

// fakeSlotRepo is an in-memory SlotRepository for service tests.
type fakeSlotRepo struct {
	mu    sync.Mutex
	slots []models.AvailabilitySlot
	seq   int
}

func (f *fakeSlotRepo) nextID() string {
	f.seq++
	return "slot-" + strconv.Itoa(f.seq)
}

func (f *fakeSlotRepo) Create(ctx context.Context, slot *models.AvailabilitySlot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !slot.StartTime.Before(slot.EndTime) {
		return slotRepo.ErrInvalidRange
	}
	if slot.ID == "" {
		slot.ID = f.nextID()
	}
	slot.IsBooked = false
	f.slots = append(f.slots, *slot)
	return nil
}

func (f *fakeSlotRepo) CreateMany(ctx context.Context, slots []models.AvailabilitySlot) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range slots {
		if slots[i].ID == "" {
			slots[i].ID = f.nextID()
		}
		f.slots = append(f.slots, slots[i])
	}
	return len(slots), nil
}

func (f *fakeSlotRepo) DeleteByID(ctx context.Context, tenantID, slotID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, s := range f.slots {
		if s.TenantID == tenantID && s.ID == slotID && !s.IsBooked {
			f.slots = append(f.slots[:i], f.slots[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeSlotRepo) DeleteRange(ctx context.Context, tenantID string, start, end time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []models.AvailabilitySlot
	removed := 0
	for _, s := range f.slots {
		inRange := s.TenantID == tenantID && !s.IsBooked &&
			!s.StartTime.Before(start) && !s.EndTime.After(end)
		if inRange {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	f.slots = kept
	return removed, nil
}

func (f *fakeSlotRepo) ListFreeUpcoming(ctx context.Context, tenantID string, now time.Time, limit int) ([]models.AvailabilitySlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AvailabilitySlot
	for _, s := range f.slots {
		if s.TenantID == tenantID && !s.IsBooked && !s.StartTime.Before(now) {
			out = append(out, s)
		}
	}
	sortSlots(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeSlotRepo) ListUpcoming(ctx context.Context, tenantID string, now time.Time) ([]models.AvailabilitySlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AvailabilitySlot
	for _, s := range f.slots {
		if s.TenantID == tenantID && !s.StartTime.Before(now) {
			out = append(out, s)
		}
	}
	sortSlots(out)
	return out, nil
}

func (f *fakeSlotRepo) FindExactFree(ctx context.Context, tenantID string, start time.Time) (*models.AvailabilitySlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.slots {
		if s.TenantID == tenantID && !s.IsBooked && s.StartTime.Equal(start) {
			found := s
			return &found, nil
		}
	}
	return nil, slotRepo.ErrNotFound
}

func (f *fakeSlotRepo) ListStartsBetween(ctx context.Context, tenantID string, start, end time.Time) ([]time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []time.Time
	for _, s := range f.slots {
		if s.TenantID == tenantID && !s.StartTime.Before(start) && !s.StartTime.After(end) {
			out = append(out, s.StartTime)
		}
	}
	return out, nil
}

func (f *fakeSlotRepo) MarkBooked(ctx context.Context, tenantID, slotID, leadID string) (*models.AvailabilitySlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, s := range f.slots {
		if s.TenantID != tenantID || s.ID != slotID {
			continue
		}
		if s.IsBooked {
			return nil, slotRepo.ErrAlreadyBooked
		}
		f.slots[i].IsBooked = true
		f.slots[i].LeadID = leadID
		booked := f.slots[i]
		return &booked, nil
	}
	return nil, slotRepo.ErrNotFound
}

func sortSlots(slots []models.AvailabilitySlot) {
	for i := 1; i < len(slots); i++ {
		for j := i; j > 0 && slots[j].StartTime.Before(slots[j-1].StartTime); j-- {
			slots[j], slots[j-1] = slots[j-1], slots[j]
		}
	}
}

// fakeInterpreter returns canned ranges or an error.
type fakeInterpreter struct {
	ranges []models.SlotRange
	err    error
}

func (f *fakeInterpreter) InterpretSchedule(ctx context.Context, instructions string, now time.Time) ([]models.SlotRange, error) {
	return f.ranges, f.err
}

func utcRange(t *testing.T, startISO, endISO string) models.SlotRange {
	t.Helper()
	start, err := time.Parse(time.RFC3339, startISO)
	if err != nil {
		t.Fatalf("bad start %q: %v", startISO, err)
	}
	end, err := time.Parse(time.RFC3339, endISO)
	if err != nil {
		t.Fatalf("bad end %q: %v", endISO, err)
	}
	return models.SlotRange{Start: start.UTC(), End: end.UTC()}
}

func newTestService(repo *fakeSlotRepo, interp intelligence.ScheduleInterpreter) *DefaultScheduleService {
	return &DefaultScheduleService{
		Slots:       repo,
		Interpreter: interp,
		Location:    time.UTC,
	}
}

func TestGenerateAddSplitsIntoHourUnits(t *testing.T) {
	repo := &fakeSlotRepo{}
	interp := &fakeInterpreter{ranges: []models.SlotRange{
		utcRange(t, "2025-12-10T09:00:00Z", "2025-12-10T11:00:00Z"),
	}}
	svc := newTestService(repo, interp)

	n, err := svc.Generate(context.Background(), "t1", "Disponível dia 10 das 09h às 11h", ModeAdd)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 slots created, got %d", n)
	}

	if len(repo.slots) != 2 {
		t.Fatalf("expected 2 stored slots, got %d", len(repo.slots))
	}
	first, second := repo.slots[0], repo.slots[1]
	if first.StartTime.Hour() != 9 || second.StartTime.Hour() != 10 {
		t.Fatalf("unexpected unit starts: %v, %v", first.StartTime, second.StartTime)
	}
	if first.EndTime.Sub(first.StartTime) != time.Hour {
		t.Fatalf("expected 1h units, got %v", first.EndTime.Sub(first.StartTime))
	}
	if first.IsBooked || second.IsBooked {
		t.Fatal("new slots must not be booked")
	}
}

func TestGenerateAddSkipsExistingStarts(t *testing.T) {
	repo := &fakeSlotRepo{}
	existing := utcRange(t, "2025-12-10T09:00:00Z", "2025-12-10T10:00:00Z")
	repo.slots = append(repo.slots, models.AvailabilitySlot{
		ID: "pre", TenantID: "t1", StartTime: existing.Start, EndTime: existing.End, IsBooked: true,
	})

	interp := &fakeInterpreter{ranges: []models.SlotRange{
		utcRange(t, "2025-12-10T09:00:00Z", "2025-12-10T12:00:00Z"),
	}}
	svc := newTestService(repo, interp)

	n, err := svc.Generate(context.Background(), "t1", "manhã do dia 10", ModeAdd)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	// 09-10 collides with the booked slot; only 10-11 and 11-12 land.
	if n != 2 {
		t.Fatalf("expected 2 new slots, got %d", n)
	}
	for _, s := range repo.slots {
		if s.ID != "pre" && s.StartTime.Equal(existing.Start) {
			t.Fatal("duplicate start was inserted over a booked slot")
		}
	}
}

func TestGenerateAddIsScopedToTenant(t *testing.T) {
	repo := &fakeSlotRepo{}
	r := utcRange(t, "2025-12-10T09:00:00Z", "2025-12-10T10:00:00Z")
	// Same start under another tenant must not count as a collision.
	repo.slots = append(repo.slots, models.AvailabilitySlot{
		ID: "other", TenantID: "t2", StartTime: r.Start, EndTime: r.End,
	})

	svc := newTestService(repo, &fakeInterpreter{ranges: []models.SlotRange{r}})
	n, err := svc.Generate(context.Background(), "t1", "dia 10 às 09h", ModeAdd)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 slot for t1, got %d", n)
	}
}

func TestGenerateRemoveDeletesFreeSlotsOnly(t *testing.T) {
	repo := &fakeSlotRepo{}
	r := utcRange(t, "2025-12-10T09:00:00Z", "2025-12-10T12:00:00Z")
	for _, u := range DecomposeRanges([]models.SlotRange{r}, SlotGranularity) {
		repo.slots = append(repo.slots, models.AvailabilitySlot{
			ID: "s" + u.Start.Format("15"), TenantID: "t1", StartTime: u.Start, EndTime: u.End,
		})
	}
	repo.slots[1].IsBooked = true

	svc := newTestService(repo, &fakeInterpreter{ranges: []models.SlotRange{r}})
	n, err := svc.Generate(context.Background(), "t1", "cancelar a manhã do dia 10", ModeRemove)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 removed, got %d", n)
	}
	if len(repo.slots) != 1 || !repo.slots[0].IsBooked {
		t.Fatalf("booked slot should survive removal, slots: %+v", repo.slots)
	}
}

func TestGenerateFailsClosedOnInterpreterError(t *testing.T) {
	repo := &fakeSlotRepo{}
	svc := newTestService(repo, &fakeInterpreter{err: intelligence.ErrInterpretation})

	_, err := svc.Generate(context.Background(), "t1", "algo ambíguo", ModeAdd)
	if !errors.Is(err, intelligence.ErrInterpretation) {
		t.Fatalf("expected interpretation error, got %v", err)
	}
	if len(repo.slots) != 0 {
		t.Fatal("no slot mutation may happen when interpretation fails")
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	svc := newTestService(&fakeSlotRepo{}, &fakeInterpreter{})

	if _, err := svc.Generate(context.Background(), "t1", "   ", ModeAdd); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank instructions, got %v", err)
	}
	if _, err := svc.Generate(context.Background(), "t1", "segunda de manhã", "merge"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown mode, got %v", err)
	}
}

func TestDecomposeRangesKeepsShortRemainder(t *testing.T) {
	units := DecomposeRanges([]models.SlotRange{
		utcRange(t, "2025-12-10T09:00:00Z", "2025-12-10T10:30:00Z"),
	}, time.Hour)
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(units))
	}
	if units[1].End.Sub(units[1].Start) != 30*time.Minute {
		t.Fatalf("remainder unit should be 30m, got %v", units[1].End.Sub(units[1].Start))
	}
}
