package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventCategory is the raw category string stored on a performance event.
type EventCategory string

const (
	CategoryOpen            EventCategory = "open"
	CategoryPrivate         EventCategory = "private"
	CategoryGMTest          EventCategory = "gm_test"
	CategoryTestPlay        EventCategory = "test_play"
	CategoryOffsite         EventCategory = "offsite"
	CategoryVenueRental     EventCategory = "venue_rental"
	CategoryVenueRentalFree EventCategory = "venue_rental_free"
	CategoryPackage         EventCategory = "package"
	CategoryMeeting         EventCategory = "meeting"
	CategoryMemo            EventCategory = "memo"
)

// EventKind is the normalized bookability classification, computed once at
// ingestion so call sites never repeat the category/isPrivateBooking OR-chain.
type EventKind string

const (
	KindOpen     EventKind = "open"
	KindBlocking EventKind = "blocking"
	KindNeutral  EventKind = "neutral"
)

// KindOf classifies an event's bookability from its raw fields.
// Confirmed private bookings and GM/test runs occupy their slot without
// being publicly bookable; everything else that is not open is neutral
// (venue rentals, meetings, memos) and neither bookable nor slot-occupying.
func KindOf(category EventCategory, isPrivateBooking bool) EventKind {
	if isPrivateBooking {
		return KindBlocking
	}
	switch category {
	case CategoryPrivate, CategoryGMTest, CategoryTestPlay:
		return KindBlocking
	case CategoryOpen:
		return KindOpen
	default:
		return KindNeutral
	}
}

// TimeBand buckets performances within a day.
type TimeBand string

const (
	BandMorning   TimeBand = "morning"
	BandAfternoon TimeBand = "afternoon"
	BandEvening   TimeBand = "evening"
)

// GMRole is a roster role on a performance.
type GMRole string

const (
	RoleMain      GMRole = "main"
	RoleSub       GMRole = "sub"
	RoleReception GMRole = "reception"
	RoleStaff     GMRole = "staff"
	RoleObserver  GMRole = "observer"
)

// GMAssignment is one roster entry on a performance event.
type GMAssignment struct {
	StaffName string `json:"staff_name"`
	Role      GMRole `json:"role"`
}

// PerformanceEvent is one scheduled occurrence.
//
// VenueRef is whatever the row historically stored: a venue id, a short
// name, or a full name. Venue-scoped lookups must treat all three as
// equivalent keys; writes canonicalize the reference and reads resolve
// every known form.
type PerformanceEvent struct {
	ID                  uuid.UUID      `json:"id"`
	Date                string         `json:"date"` // YYYY-MM-DD, business-local day
	VenueRef            string         `json:"venue"`
	ScenarioID          uuid.UUID      `json:"scenario_id"`
	ScenarioTitle       string         `json:"scenario_title"`
	Category            EventCategory  `json:"category"`
	Kind                EventKind      `json:"kind"`
	TimeBand            TimeBand       `json:"time_band,omitempty"` // authoritative label, may be empty
	StartTime           string         `json:"start_time"`          // HH:MM
	EndTime             string         `json:"end_time"`            // HH:MM
	MaxParticipants     int            `json:"max_participants"`
	CurrentParticipants int            `json:"current_participants"`
	IsCancelled         bool           `json:"is_cancelled"`
	IsPrivateBooking    bool           `json:"is_private_booking"`
	GMRoster            []GMAssignment `json:"gm_roster,omitempty"`
	Notes               string         `json:"notes,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// Scenario is a reusable content template.
type Scenario struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	DurationMinutes int       `json:"duration_minutes"`
	PlayerCountMax  int       `json:"player_count_max"`
	// ExtraPrepMinutes is added to the fixed base preparation time when
	// computing the minimum gap before this scenario can start.
	ExtraPrepMinutes int `json:"extra_preparation_minutes"`
}

// Venue is a performance location. Temporary venues are shown only on dates
// where they actually host an open event.
type Venue struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ShortName   string    `json:"short_name"`
	IsTemporary bool      `json:"is_temporary"`
}

// ReservationStatus is the lifecycle state of a reservation participant.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// ReservationParticipant is the subset of a reservation row relevant to
// roster reconciliation.
type ReservationParticipant struct {
	ID                   uuid.UUID         `json:"id"`
	ScheduleEventID      uuid.UUID         `json:"schedule_event_id"`
	ParticipantName      string            `json:"participant_name"`
	IsStaffParticipation bool              `json:"is_staff_participation"`
	Status               ReservationStatus `json:"status"`
}

// StaffMember is one entry of the staff directory.
type StaffMember struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`
}

// AvailabilityStatus is the coarse remaining-capacity state of an open event.
type AvailabilityStatus string

const (
	StatusAvailable  AvailabilityStatus = "available"
	StatusNearlyFull AvailabilityStatus = "nearly_full"
	StatusFull       AvailabilityStatus = "full"
)

// Availability pairs the status with the numeric remaining-seats value.
type Availability struct {
	Status    AvailabilityStatus `json:"status"`
	Remaining int                `json:"remaining"`
}

// BandWindow is a default start/end pair used to pre-fill new-event forms.
type BandWindow struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
