package httpgin

import (
	"github.com/ayase-lab/mmadmin/internal/domain"
	"github.com/google/uuid"
)

type SaveEventRequest struct {
	Date             string              `json:"date" binding:"required"`
	Venue            string              `json:"venue" binding:"required"`
	ScenarioID       string              `json:"scenario_id"`
	ScenarioTitle    string              `json:"scenario_title"`
	Category         string              `json:"category"`
	TimeBand         string              `json:"time_band"`
	StartTime        string              `json:"start_time" binding:"required"`
	EndTime          string              `json:"end_time"`
	MaxParticipants  int                 `json:"max_participants"`
	IsPrivateBooking bool                `json:"is_private_booking"`
	GMRoster         []GMAssignmentInput `json:"gm_roster"`
	Notes            string              `json:"notes"`
}

type GMAssignmentInput struct {
	StaffName string `json:"staff_name" binding:"required"`
	Role      string `json:"role" binding:"required"`
}

func (r SaveEventRequest) toDomain(id uuid.UUID) (domain.PerformanceEvent, error) {
	e := domain.PerformanceEvent{
		ID:               id,
		Date:             r.Date,
		VenueRef:         r.Venue,
		ScenarioTitle:    r.ScenarioTitle,
		Category:         domain.EventCategory(r.Category),
		TimeBand:         domain.TimeBand(r.TimeBand),
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		MaxParticipants:  r.MaxParticipants,
		IsPrivateBooking: r.IsPrivateBooking,
		Notes:            r.Notes,
	}

	if r.ScenarioID != "" {
		sid, err := uuid.Parse(r.ScenarioID)
		if err != nil {
			return e, err
		}
		e.ScenarioID = sid
	}

	for _, gm := range r.GMRoster {
		e.GMRoster = append(e.GMRoster, domain.GMAssignment{
			StaffName: gm.StaffName,
			Role:      domain.GMRole(gm.Role),
		})
	}

	return e, nil
}

type SaveEventResponse struct {
	Event         domain.PerformanceEvent `json:"event"`
	AdjustedStart bool                    `json:"adjusted_start"`
}

type UpdateParticipantsRequest struct {
	Count *int `json:"count" binding:"required"`
}

type PrivateBookingRequest struct {
	Date         string `json:"date" binding:"required"`
	Venue        string `json:"venue" binding:"required"`
	TimeBand     string `json:"time_band" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required"`
	Contact      string `json:"contact" binding:"required"`
	Notes        string `json:"notes"`
}

type PrivateBookingResponse struct {
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
