package schedule

import (
	"context"
	"testing"
	"time"

	"davi/models"
)

func seedFreeSlot(repo *fakeSlotRepo, tenantID, id string, start time.Time) {
	repo.slots = append(repo.slots, freeSlot(tenantID, id, start))
}

func freeSlot(tenantID, id string, start time.Time) models.AvailabilitySlot {
	return models.AvailabilitySlot{
		ID:        id,
		TenantID:  tenantID,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}
}

func TestNextFreeReturnsSoonestFirst(t *testing.T) {
	repo := &fakeSlotRepo{}
	base := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)
	seedFreeSlot(repo, "t1", "b", base.Add(2*time.Hour))
	seedFreeSlot(repo, "t1", "a", base)
	seedFreeSlot(repo, "t1", "c", base.Add(4*time.Hour))
	seedFreeSlot(repo, "t1", "d", base.Add(6*time.Hour))

	svc := newTestService(repo, &fakeInterpreter{})
	got, err := svc.NextFree(context.Background(), "t1", 0)
	if err != nil {
		t.Fatalf("NextFree failed: %v", err)
	}
	if len(got) != DefaultNextFreeLimit {
		t.Fatalf("expected default limit of %d suggestions, got %d", DefaultNextFreeLimit, len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Fatalf("suggestions out of order: %+v", got)
	}
	if got[0].ISO != base.Format(time.RFC3339) {
		t.Fatalf("ISO mismatch: %s vs %s", got[0].ISO, base.Format(time.RFC3339))
	}
	if got[0].Readable == "" {
		t.Fatal("expected a human-readable rendering")
	}
}

func TestNextFreeExcludesPastAndBooked(t *testing.T) {
	repo := &fakeSlotRepo{}
	future := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)
	seedFreeSlot(repo, "t1", "past", time.Now().UTC().Add(-2*time.Hour))
	seedFreeSlot(repo, "t1", "ok", future)
	taken := freeSlot("t1", "taken", future.Add(time.Hour))
	taken.IsBooked = true
	repo.slots = append(repo.slots, taken)

	svc := newTestService(repo, &fakeInterpreter{})
	got, err := svc.NextFree(context.Background(), "t1", 5)
	if err != nil {
		t.Fatalf("NextFree failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "ok" {
		t.Fatalf("expected only the free future slot, got %+v", got)
	}
}

func TestCheckExactAvailable(t *testing.T) {
	repo := &fakeSlotRepo{}
	target := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)
	seedFreeSlot(repo, "t1", "hit", target)

	svc := newTestService(repo, &fakeInterpreter{})
	check, err := svc.CheckExact(context.Background(), "t1", target)
	if err != nil {
		t.Fatalf("CheckExact failed: %v", err)
	}
	if !check.Available || check.Slot == nil || check.Slot.ID != "hit" {
		t.Fatalf("expected available with slot details, got %+v", check)
	}
}

func TestCheckExactFallsBackToSuggestions(t *testing.T) {
	repo := &fakeSlotRepo{}
	other := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)
	seedFreeSlot(repo, "t1", "alt", other)

	svc := newTestService(repo, &fakeInterpreter{})
	check, err := svc.CheckExact(context.Background(), "t1", other.Add(time.Hour))
	if err != nil {
		t.Fatalf("CheckExact failed: %v", err)
	}
	if check.Available {
		t.Fatal("expected unavailable")
	}
	if len(check.Suggestions) != 1 || check.Suggestions[0].ID != "alt" {
		t.Fatalf("expected the alternative as suggestion, got %+v", check.Suggestions)
	}
}
