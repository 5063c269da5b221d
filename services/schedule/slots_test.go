package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"davi/models"
)

func TestCreateManualSlotPreservesWallClock(t *testing.T) {
	repo := &fakeSlotRepo{}
	svc := newTestService(repo, &fakeInterpreter{})

	slot, err := svc.CreateManualSlot(context.Background(), "t1", models.ManualSlotRequest{
		Date:      "2025-11-28",
		StartTime: "14:00",
		EndTime:   "15:00",
	})
	if err != nil {
		t.Fatalf("CreateManualSlot failed: %v", err)
	}

	want := time.Date(2025, 11, 28, 14, 0, 0, 0, time.UTC)
	if !slot.StartTime.Equal(want) {
		t.Fatalf("start mismatch: got %v, want %v", slot.StartTime, want)
	}
	if slot.StartTime.Location() != time.UTC {
		t.Fatalf("stored instant must carry UTC, got %v", slot.StartTime.Location())
	}
	if slot.IsBooked {
		t.Fatal("manual slot must start free")
	}
}

func TestCreateManualSlotRejectsGarbageClock(t *testing.T) {
	svc := newTestService(&fakeSlotRepo{}, &fakeInterpreter{})
	_, err := svc.CreateManualSlot(context.Background(), "t1", models.ManualSlotRequest{
		Date:      "2025-11-28",
		StartTime: "duas da tarde",
		EndTime:   "15:00",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDeleteSlotRequiresID(t *testing.T) {
	svc := newTestService(&fakeSlotRepo{}, &fakeInterpreter{})
	if err := svc.DeleteSlot(context.Background(), "t1", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFormatReadable(t *testing.T) {
	instant := time.Date(2025, 12, 10, 9, 0, 0, 0, time.UTC)
	got := FormatReadable(instant)
	want := "quarta-feira, 10 de dezembro de 2025 às 09:00"
	if got != want {
		t.Fatalf("FormatReadable = %q, want %q", got, want)
	}
}
