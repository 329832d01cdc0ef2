package schedule

import (
	"testing"

	"github.com/ayase-lab/mmadmin/internal/domain"
)

func TestReconcileRoster(t *testing.T) {
	t.Parallel()

	confirmedStaff := func(name string) domain.ReservationParticipant {
		return domain.ReservationParticipant{
			ParticipantName:      name,
			IsStaffParticipation: true,
			Status:               domain.ReservationConfirmed,
		}
	}

	t.Run("staff on roster and reservation appears once, backed", func(t *testing.T) {
		t.Parallel()

		roster := []domain.GMAssignment{
			{StaffName: "Alice", Role: domain.RoleStaff},
		}
		parts := []domain.ReservationParticipant{confirmedStaff("Alice")}

		entries := ReconcileRoster(roster, parts)

		var aliceCount int
		for _, e := range entries {
			if e.Role == domain.RoleStaff && e.StaffName == "Alice" {
				aliceCount++
				if !e.Backed {
					t.Fatalf("Alice not flagged backed: %+v", e)
				}
				if e.Source != SourceBoth {
					t.Fatalf("Alice source = %s, want both", e.Source)
				}
			}
		}
		if aliceCount != 1 {
			t.Fatalf("Alice appears %d times in the staff category, want 1", aliceCount)
		}
	})

	t.Run("roster-only staff entry is surfaced unbacked", func(t *testing.T) {
		t.Parallel()

		roster := []domain.GMAssignment{
			{StaffName: "Bob", Role: domain.RoleStaff},
		}
		entries := ReconcileRoster(roster, nil)
		if len(entries) != 1 {
			t.Fatalf("got %d entries, want 1", len(entries))
		}
		if entries[0].Backed || entries[0].Source != SourceRoster {
			t.Fatalf("planned participation misflagged: %+v", entries[0])
		}
	})

	t.Run("reservation-only staff participant is appended read-only", func(t *testing.T) {
		t.Parallel()

		entries := ReconcileRoster(nil, []domain.ReservationParticipant{confirmedStaff("Carol")})
		if len(entries) != 1 {
			t.Fatalf("got %d entries, want 1", len(entries))
		}
		e := entries[0]
		if e.Role != domain.RoleStaff || !e.Backed || e.Source != SourceReservation {
			t.Fatalf("reservation-only entry misflagged: %+v", e)
		}
	})

	t.Run("non-staff roles pass through independent of reservations", func(t *testing.T) {
		t.Parallel()

		roster := []domain.GMAssignment{
			{StaffName: "Dave", Role: domain.RoleMain},
			{StaffName: "Erin", Role: domain.RoleSub},
			{StaffName: "Faye", Role: domain.RoleReception},
			{StaffName: "Gil", Role: domain.RoleObserver},
		}
		entries := ReconcileRoster(roster, nil)
		if len(entries) != 4 {
			t.Fatalf("got %d entries, want 4", len(entries))
		}
		for i, e := range entries {
			if e.StaffName != roster[i].StaffName || e.Role != roster[i].Role {
				t.Fatalf("entry %d reordered or rewritten: %+v", i, e)
			}
		}
	})

	t.Run("pending and cancelled reservations do not back a roster entry", func(t *testing.T) {
		t.Parallel()

		roster := []domain.GMAssignment{{StaffName: "Alice", Role: domain.RoleStaff}}
		parts := []domain.ReservationParticipant{
			{ParticipantName: "Alice", IsStaffParticipation: true, Status: domain.ReservationPending},
			{ParticipantName: "Alice", IsStaffParticipation: true, Status: domain.ReservationCancelled},
		}
		entries := ReconcileRoster(roster, parts)
		if len(entries) != 1 || entries[0].Backed {
			t.Fatalf("non-confirmed reservation backed a roster entry: %+v", entries)
		}
	})

	t.Run("participating staff count only includes backed entries", func(t *testing.T) {
		t.Parallel()

		roster := []domain.GMAssignment{
			{StaffName: "Alice", Role: domain.RoleStaff},
			{StaffName: "Bob", Role: domain.RoleStaff},
			{StaffName: "Dave", Role: domain.RoleMain},
		}
		parts := []domain.ReservationParticipant{confirmedStaff("Alice")}

		if got := ParticipatingStaffCount(ReconcileRoster(roster, parts)); got != 1 {
			t.Fatalf("ParticipatingStaffCount = %d, want 1", got)
		}
	})
}
