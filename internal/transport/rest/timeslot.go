package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"psybook/internal/domain"
)

// timeSlotFilterFromQuery builds the slot filter shared by the listing
// endpoints. It reports false after writing a 400 for malformed parameters.
func (h *Handler) timeSlotFilterFromQuery(c *gin.Context) (domain.TimeSlotFilter, bool) {
	var filter domain.TimeSlotFilter

	if v, ok := parseOptionalIDQuery(c, "psychologist_id"); ok {
		filter.PsychologistID = v
	} else {
		return filter, false
	}

	if v, ok := parseOptionalIDQuery(c, "specialization_id"); ok {
		filter.SpecializationID = v
	} else {
		return filter, false
	}

	if v, ok := parseOptionalIDQuery(c, "appointment_type_id"); ok {
		filter.AppointmentTypeID = v
	} else {
		return filter, false
	}

	if isAvailableStr := c.Query("is_available"); isAvailableStr != "" {
		isAvailable := isAvailableStr == "true"
		filter.IsAvailable = &isAvailable
	}

	filter.FutureOnly = c.Query("future_only") == "true"

	if dateFrom := c.Query("start_date"); dateFrom != "" {
		parsed, err := time.Parse("2006-01-02", dateFrom)
		if err != nil {
			badRequestResponse(c, "invalid start_date format, expected YYYY-MM-DD")
			return filter, false
		}
		filter.StartDate = &parsed
	}

	if dateTo := c.Query("end_date"); dateTo != "" {
		parsed, err := time.Parse("2006-01-02", dateTo)
		if err != nil {
			badRequestResponse(c, "invalid end_date format, expected YYYY-MM-DD")
			return filter, false
		}
		parsed = parsed.Add(24*time.Hour - time.Second)
		filter.EndDate = &parsed
	}

	return filter, true
}

// @Summary List time slots
// @Description Returns time slots ordered by start time; available-only unless is_available is given
// @Tags Time slots
// @Accept json
// @Produce json
// @Param psychologist_id query int false "Filter by owning psychologist"
// @Param specialization_id query int false "Filter via the owning psychologist's specializations"
// @Param appointment_type_id query int false "Filter by appointment type"
// @Param is_available query boolean false "Filter by availability; omitted means available-only"
// @Param future_only query boolean false "Only slots starting after now"
// @Param start_date query string false "Earliest start date (YYYY-MM-DD)"
// @Param end_date query string false "Latest start date (YYYY-MM-DD)"
// @Success 200 {object} successResponseBody "List of time slots"
// @Failure 400 {object} errorResponseBody "Malformed filter parameter"
// @Router /time-slots [get]
func (h *Handler) getTimeSlots(c *gin.Context) {
	filter, ok := h.timeSlotFilterFromQuery(c)
	if !ok {
		return
	}

	slots, err := h.services.TimeSlot.FindWithFilters(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("listing time slots", zap.Error(err))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, slots)
}

// @Summary List bookable time slots
// @Description Returns available future slots for client-facing booking flows
// @Tags Time slots
// @Accept json
// @Produce json
// @Param psychologist_id query int false "Filter by owning psychologist"
// @Param specialization_id query int false "Filter via the owning psychologist's specializations"
// @Param appointment_type_id query int false "Filter by appointment type"
// @Param start_date query string false "Earliest start date (YYYY-MM-DD)"
// @Param end_date query string false "Latest start date (YYYY-MM-DD)"
// @Success 200 {object} successResponseBody "List of bookable time slots"
// @Failure 400 {object} errorResponseBody "Malformed filter parameter"
// @Router /time-slots/bookable [get]
func (h *Handler) getBookableTimeSlots(c *gin.Context) {
	filter, ok := h.timeSlotFilterFromQuery(c)
	if !ok {
		return
	}

	slots, err := h.services.TimeSlot.FindBookable(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("listing bookable time slots", zap.Error(err))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, slots)
}

// @Summary Get time slot by ID
// @Description Returns a single time slot
// @Tags Time slots
// @Accept json
// @Produce json
// @Param id path int true "Time slot ID"
// @Success 200 {object} domain.TimeSlot "Time slot data"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Failure 404 {object} errorResponseBody "Time slot not found"
// @Router /time-slots/{id} [get]
func (h *Handler) getTimeSlotByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	slot, err := h.services.TimeSlot.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("getting time slot", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, slot)
}

// @Summary Create time slot
// @Description Creates an available time slot; required fields depend on the appointment type
// @Tags Time slots
// @Accept json
// @Produce json
// @Param input body domain.CreateTimeSlotDTO true "Time slot data"
// @Success 201 {object} domain.TimeSlot "Created time slot"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 404 {object} errorResponseBody "Appointment type not found"
// @Router /time-slots [post]
func (h *Handler) createTimeSlot(c *gin.Context) {
	var req domain.CreateTimeSlotDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	slot, err := h.services.TimeSlot.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("creating time slot", zap.Error(err))
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, slot)
}

// @Summary Update time slot
// @Description Updates slot fields; field completeness is re-checked when the type or location fields change
// @Tags Time slots
// @Accept json
// @Produce json
// @Param id path int true "Time slot ID"
// @Param input body domain.UpdateTimeSlotDTO true "New time slot data"
// @Success 200 {object} domain.TimeSlot "Updated time slot"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 404 {object} errorResponseBody "Time slot not found"
// @Router /time-slots/{id} [put]
func (h *Handler) updateTimeSlot(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateTimeSlotDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	slot, err := h.services.TimeSlot.Update(c.Request.Context(), id, req)
	if err != nil {
		h.logger.Error("updating time slot", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, slot)
}

// @Summary Delete time slot
// @Description Deletes a slot unless an active booking still references it
// @Tags Time slots
// @Accept json
// @Produce json
// @Param id path int true "Time slot ID"
// @Success 204 {object} nil "Time slot deleted"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Failure 404 {object} errorResponseBody "Time slot not found"
// @Failure 409 {object} errorResponseBody "Time slot has an active booking"
// @Router /time-slots/{id} [delete]
func (h *Handler) deleteTimeSlot(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.TimeSlot.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("deleting time slot", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}

// @Summary Mark time slot available
// @Description Administrative flag toggle with no side effects on bookings
// @Tags Time slots
// @Accept json
// @Produce json
// @Param id path int true "Time slot ID"
// @Success 200 {object} domain.TimeSlot "Updated time slot"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Failure 404 {object} errorResponseBody "Time slot not found"
// @Router /time-slots/{id}/available [put]
func (h *Handler) markTimeSlotAvailable(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	slot, err := h.services.TimeSlot.MarkAvailable(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("marking time slot available", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, slot)
}

// @Summary Mark time slot unavailable
// @Description Administrative flag toggle with no side effects on bookings
// @Tags Time slots
// @Accept json
// @Produce json
// @Param id path int true "Time slot ID"
// @Success 200 {object} domain.TimeSlot "Updated time slot"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Failure 404 {object} errorResponseBody "Time slot not found"
// @Router /time-slots/{id}/unavailable [put]
func (h *Handler) markTimeSlotUnavailable(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	slot, err := h.services.TimeSlot.MarkUnavailable(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("marking time slot unavailable", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, slot)
}
