package models

import "time"

// AvailabilitySlot is one bookable window in a specialist's agenda.
// StartTime/EndTime form a half-open interval [StartTime, EndTime) in UTC.
type AvailabilitySlot struct {
	ID        string    `bson:"id" json:"id"`
	TenantID  string    `bson:"tenantId" json:"tenantId"`
	StartTime time.Time `bson:"startTime" json:"startTime"`
	EndTime   time.Time `bson:"endTime" json:"endTime"`
	IsBooked  bool      `bson:"isBooked" json:"isBooked"`
	LeadID    string    `bson:"leadId,omitempty" json:"leadId,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// SlotRange is a single interpreted time range. The interpreter returns these
// already decomposed into bookable units; the generator re-normalizes anyway.
type SlotRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SlotSuggestion is a free slot rendered for the automation prompt: the ISO
// instant for machine use plus a localized human-readable string.
type SlotSuggestion struct {
	ID       string `json:"id"`
	ISO      string `json:"iso"`
	Readable string `json:"readable"`
}

// AvailabilityCheck is the result of an exact-time availability lookup.
// When no exact match exists, Suggestions carries the next free options.
type AvailabilityCheck struct {
	Available   bool              `json:"available"`
	Slot        *AvailabilitySlot `json:"slotDetails,omitempty"`
	Suggestions []SlotSuggestion  `json:"suggestions,omitempty"`
}

// GenerateScheduleRequest is the dashboard payload for natural-language
// agenda generation.
type GenerateScheduleRequest struct {
	Instructions string `json:"instructions" binding:"required"`
	Mode         string `json:"mode" binding:"required"` // "add" or "remove"
}

// ManualSlotRequest creates a single slot from separate date and wall-clock
// time fields, e.g. date="2025-11-28", startTime="14:00".
type ManualSlotRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}
