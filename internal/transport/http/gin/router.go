package httpgin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ayase-lab/mmadmin/internal/domain"
	redisrepo "github.com/ayase-lab/mmadmin/internal/repository/redis"
	"github.com/ayase-lab/mmadmin/internal/service"
	"github.com/ayase-lab/mmadmin/internal/service/booking"
	"github.com/ayase-lab/mmadmin/internal/service/calendar"
	"github.com/ayase-lab/mmadmin/internal/service/events"
	"github.com/ayase-lab/mmadmin/internal/service/roster"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
	limiter *redisrepo.SlidingWindowLimiter,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public API
	r.GET("/calendar/:year/:month", handleMonthView(svcs))
	r.GET("/calendar/:year/:month/stats", handleMonthStats(svcs))
	r.GET("/events/:id", handleGetEvent(svcs))
	r.GET("/events/:id/roster", handleGetRoster(svcs))

	r.POST("/bookings/private-requests", handleSubmitBookingRequest(svcs, idem, limiter))

	// Admin-API
	// TODO: add admin middleware
	adm := r.Group("/admin")
	{
		adm.POST("/events", handleSaveEvent(svcs, false))
		adm.PUT("/events/:id", handleSaveEvent(svcs, true))
		adm.POST("/events/:id/cancel", handleCancelEvent(svcs))
		adm.PUT("/events/:id/participants", handleUpdateParticipants(svcs))
		adm.POST("/events/:id/participants/sync", handleSyncParticipants(svcs))

		adm.GET("/venues", handleListVenues(svcs))
		adm.GET("/scenarios", handleListScenarios(svcs))
		adm.GET("/staff", handleListStaff(svcs))
		adm.GET("/band-defaults", handleBandDefaults(svcs))
		adm.GET("/booking-requests", handleListBookingRequests(svcs))
	}

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  Month calendar grid
// @Param    year   path  int  true  "Year"
// @Param    month  path  int  true  "Month (1-12)"
// @Success  200  {object}  calendar.MonthView
// @Failure  400  {object}  ErrorResponse
// @Router   /calendar/{year}/{month} [get]
func handleMonthView(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		year, month, ok := parseYearMonth(c)
		if !ok {
			return
		}
		view, err := svcs.Calendar.MonthView(c.Request.Context(), year, month)
		if err != nil {
			respondErr(c, err)
			return
		}
		// ETag + Cache-Control 30s
		writeJSONWithCache(c, http.StatusOK, view, "public, max-age=30", true)
	}
}

// @Summary  Month category statistics
// @Param    year   path  int  true  "Year"
// @Param    month  path  int  true  "Month (1-12)"
// @Success  200  {object}  schedule.CategoryCounts
// @Router   /calendar/{year}/{month}/stats [get]
func handleMonthStats(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		year, month, ok := parseYearMonth(c)
		if !ok {
			return
		}
		stats, err := svcs.Calendar.MonthStats(c.Request.Context(), year, month)
		if err != nil {
			respondErr(c, err)
			return
		}
		// ETag + Cache-Control 60s
		writeJSONWithCache(c, http.StatusOK, stats, "public, max-age=60", true)
	}
}

// @Summary  Get event with availability
// @Param    id  path  string  true  "Event ID (uuid)"
// @Success  200  {object}  map[string]any
// @Failure  404  {object}  ErrorResponse
// @Router   /events/{id} [get]
func handleGetEvent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		event, availability, err := svcs.Events.GetEvent(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, gin.H{
			"event":        event,
			"availability": availability,
		}, "public, max-age=15", true)
	}
}

// @Summary  Reconciled event roster
// @Param    id  path  string  true  "Event ID (uuid)"
// @Success  200  {object}  roster.DisplayRoster
// @Failure  404  {object}  ErrorResponse
// @Router   /events/{id}/roster [get]
func handleGetRoster(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		out, err := svcs.Roster.EventRoster(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=15", true)
	}
}

// @Summary  Submit private-booking request (idempotent)
// @Param    req body  PrivateBookingRequest true "payload"
// @Header   201 {string} Idempotency-Key "echo"
// @Success  201 {object} PrivateBookingResponse
// @Failure  400 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse "slot occupied / deadline passed / idem in progress"
// @Failure  429 {object} ErrorResponse "rate limited"
// @Router   /bookings/private-requests [post]
func handleSubmitBookingRequest(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
	limiter *redisrepo.SlidingWindowLimiter,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PrivateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		if limiter != nil {
			allowed, _, retryAfter, err := limiter.Allow(c.Request.Context(), "ip:"+c.ClientIP())
			if err == nil && !allowed {
				c.Header("Retry-After", strconv.Itoa(int(retryAfter/time.Second)+1))
				c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "rate limited"})
				return
			}
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemBookingRequest(req.Date, req.Venue, idemKey)

			if payload, ok, _ := idem.GetResult(c.Request.Context(), idemStorageKey); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(http.StatusCreated, "application/json; charset=utf-8", []byte(payload))
				return
			}

			locked, err := idem.AcquireLock(c.Request.Context(), idemStorageKey, 60*time.Second)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				if payload, ok, _ := idem.GetResult(c.Request.Context(), idemStorageKey); ok {
					c.Header("Idempotency-Key", idemKey)
					c.Data(http.StatusCreated, "application/json; charset=utf-8", []byte(payload))
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(http.StatusConflict, ErrorResponse{Error: "idempotency key in progress"})
				return
			}
		}

		id, err := svcs.Booking.SubmitRequest(c.Request.Context(), booking.Request{
			Date:         req.Date,
			VenueRef:     req.Venue,
			TimeBand:     domain.TimeBand(req.TimeBand),
			CustomerName: req.CustomerName,
			Contact:      req.Contact,
			Notes:        req.Notes,
		})
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			respondErr(c, err)
			return
		}

		resp := PrivateBookingResponse{RequestID: id.String()}

		if idemStorageKey != "" && idem != nil {
			b, _ := json.Marshal(resp)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(b))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, resp)
	}
}

// @Summary  Create event
// @Param    req body  SaveEventRequest true "payload"
// @Success  201 {object} SaveEventResponse
// @Failure  409 {object} ErrorResponse "schedule conflict"
// @Router   /admin/events [post]
func handleSaveEvent(svcs *service.Services, isUpdate bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.Nil
		if isUpdate {
			var ok bool
			id, ok = parseUUIDParam(c, "id")
			if !ok {
				return
			}
		}

		var req SaveEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		draft, err := req.toDomain(id)
		if err != nil {
			badRequest(c, "invalid scenario_id")
			return
		}

		result, err := svcs.Events.SaveEvent(c.Request.Context(), draft)
		if err != nil {
			respondErr(c, err)
			return
		}

		status := http.StatusCreated
		if isUpdate {
			status = http.StatusOK
		}
		c.JSON(status, SaveEventResponse{
			Event:         result.Event,
			AdjustedStart: result.AdjustedStart,
		})
	}
}

// @Summary  Cancel event
// @Param    id  path  string  true  "Event ID (uuid)"
// @Success  204
// @Failure  404 {object} ErrorResponse
// @Router   /admin/events/{id}/cancel [post]
func handleCancelEvent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		if err := svcs.Events.CancelEvent(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Update optimistic participant count
// @Param    id  path  string  true  "Event ID (uuid)"
// @Param    req body  UpdateParticipantsRequest true "payload"
// @Success  204
// @Router   /admin/events/{id}/participants [put]
func handleUpdateParticipants(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		var req UpdateParticipantsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		if err := svcs.Events.UpdateParticipantCount(c.Request.Context(), id, *req.Count); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Recompute participant count from confirmed reservations
// @Param    id  path  string  true  "Event ID (uuid)"
// @Success  200 {object} map[string]int
// @Router   /admin/events/{id}/participants/sync [post]
func handleSyncParticipants(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		count, err := svcs.Events.SyncParticipantCount(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}

// @Summary  List venues
// @Success  200 {array} domain.Venue
// @Router   /admin/venues [get]
func handleListVenues(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svcs.Directory.Venues(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  List scenarios
// @Success  200 {array} domain.Scenario
// @Router   /admin/scenarios [get]
func handleListScenarios(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svcs.Directory.Scenarios(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  List staff
// @Success  200 {array} domain.StaffMember
// @Router   /admin/staff [get]
func handleListStaff(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svcs.Directory.Staff(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Per-band default time windows
// @Success  200 {object} map[string]domain.BandWindow
// @Router   /admin/band-defaults [get]
func handleBandDefaults(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svcs.Events.BandDefaults())
	}
}

// @Summary  List private-booking requests for a date
// @Param    date  query  string  true  "YYYY-MM-DD"
// @Success  200 {array} postgres.BookingRequest
// @Router   /admin/booking-requests [get]
func handleListBookingRequests(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if date == "" {
			badRequest(c, "missing date")
			return
		}
		out, err := svcs.Booking.RequestsForDate(c.Request.Context(), date)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// --- Helpers ---

func parseYearMonth(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		badRequest(c, "invalid year")
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		badRequest(c, "invalid month")
		return 0, 0, false
	}
	return year, month, true
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	switch {
	// calendar service
	case errors.Is(err, calendar.ErrInvalidMonth):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid year/month"})
		return
	// events service
	case errors.Is(err, events.ErrEventNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "event not found"})
		return
	case errors.Is(err, events.ErrScenarioNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "scenario not found"})
		return
	case errors.Is(err, events.ErrScheduleConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "schedule conflict"})
		return
	case errors.Is(err, events.ErrInvalidDraft):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid event draft"})
		return
	// roster service
	case errors.Is(err, roster.ErrEventNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "event not found"})
		return
	// booking service
	case errors.Is(err, booking.ErrDeadlinePassed):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "booking deadline passed"})
		return
	case errors.Is(err, booking.ErrSlotOccupied):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "slot already occupied"})
		return
	case errors.Is(err, booking.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid booking request"})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
