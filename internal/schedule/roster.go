package schedule

import (
	"strings"

	"github.com/ayase-lab/mmadmin/internal/domain"
)

// RosterSource says where a staff-participation entry came from.
type RosterSource string

const (
	// SourceRoster is a roster declaration with no reservation behind it.
	SourceRoster RosterSource = "roster"
	// SourceReservation is a reservation with no matching roster entry;
	// editable only through the reservation, not the roster.
	SourceReservation RosterSource = "reservation"
	// SourceBoth is a roster declaration backed by a confirmed reservation.
	SourceBoth RosterSource = "both"
)

// RosterEntry is one row of the reconciled display roster.
type RosterEntry struct {
	StaffName string        `json:"staff_name"`
	Role      domain.GMRole `json:"role"`
	// Backed is set for staff-role entries whose name matches a confirmed
	// reservation participant. An unbacked staff entry is a roster-only
	// declaration and is surfaced as a data-integrity caveat, not hidden.
	Backed bool         `json:"backed"`
	Source RosterSource `json:"source"`
}

// ReconcileRoster merges the event's GM roster with the staff
// participants derived from its reservation records.
//
// Roles other than staff pass through untouched. Staff-role entries are
// checked against confirmed reservations and flagged backed/unbacked;
// reservation-only staff participants are appended read-only. A name
// appears at most once within the staff category; the same person on
// the roster and in a reservation is one person, never two. Two
// different people sharing a display name cannot be told apart here;
// that ambiguity is deliberately left visible rather than resolved.
func ReconcileRoster(
	gmRoster []domain.GMAssignment,
	participants []domain.ReservationParticipant,
) []RosterEntry {
	confirmed := make(map[string]bool)
	staffParticipants := make([]domain.ReservationParticipant, 0, len(participants))
	for _, p := range participants {
		if p.Status != domain.ReservationConfirmed {
			continue
		}
		confirmed[nameKey(p.ParticipantName)] = true
		if p.IsStaffParticipation {
			staffParticipants = append(staffParticipants, p)
		}
	}

	out := make([]RosterEntry, 0, len(gmRoster)+len(staffParticipants))
	rosterStaff := make(map[string]bool)

	for _, a := range gmRoster {
		if a.Role != domain.RoleStaff {
			out = append(out, RosterEntry{
				StaffName: a.StaffName,
				Role:      a.Role,
				Source:    SourceRoster,
			})
			continue
		}

		key := nameKey(a.StaffName)
		if rosterStaff[key] {
			continue // duplicate roster declaration
		}
		rosterStaff[key] = true

		entry := RosterEntry{
			StaffName: a.StaffName,
			Role:      domain.RoleStaff,
			Source:    SourceRoster,
		}
		if confirmed[key] {
			entry.Backed = true
			entry.Source = SourceBoth
		}
		out = append(out, entry)
	}

	for _, p := range staffParticipants {
		key := nameKey(p.ParticipantName)
		if rosterStaff[key] {
			continue // already counted via the roster
		}
		rosterStaff[key] = true
		out = append(out, RosterEntry{
			StaffName: p.ParticipantName,
			Role:      domain.RoleStaff,
			Backed:    true,
			Source:    SourceReservation,
		})
	}

	return out
}

// ParticipatingStaffCount counts the staff entries that are backed by an
// actual reservation, i.e. the ones included in headcount.
func ParticipatingStaffCount(entries []RosterEntry) int {
	n := 0
	for _, e := range entries {
		if e.Role == domain.RoleStaff && e.Backed {
			n++
		}
	}
	return n
}

func nameKey(name string) string {
	return strings.TrimSpace(name)
}
