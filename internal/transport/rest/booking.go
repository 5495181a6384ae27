package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"psybook/internal/domain"
)

// @Summary List bookings
// @Description Returns all bookings, most recent first
// @Tags Bookings
// @Accept json
// @Produce json
// @Success 200 {object} successResponseBody "List of bookings"
// @Router /bookings [get]
func (h *Handler) getBookings(c *gin.Context) {
	bookings, err := h.services.Booking.List(c.Request.Context())
	if err != nil {
		h.logger.Error("listing bookings", zap.Error(err))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, bookings)
}

// @Summary List bookings by client email
// @Description Returns the bookings made under a client email, most recent first
// @Tags Bookings
// @Accept json
// @Produce json
// @Param email path string true "Client email"
// @Success 200 {object} successResponseBody "List of bookings"
// @Router /bookings/client/{email} [get]
func (h *Handler) getBookingsByClientEmail(c *gin.Context) {
	clientEmail := c.Param("email")

	bookings, err := h.services.Booking.FindByClientEmail(c.Request.Context(), clientEmail)
	if err != nil {
		h.logger.Error("listing bookings by client email", zap.Error(err))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, bookings)
}

// @Summary List bookings by status
// @Description Returns the bookings in a given status, most recent first
// @Tags Bookings
// @Accept json
// @Produce json
// @Param status path string true "Booking status (pending, confirmed, cancelled, completed)"
// @Success 200 {object} successResponseBody "List of bookings"
// @Failure 400 {object} errorResponseBody "Unknown status"
// @Router /bookings/status/{status} [get]
func (h *Handler) getBookingsByStatus(c *gin.Context) {
	status := domain.BookingStatus(c.Param("status"))
	switch status {
	case domain.BookingStatusPending, domain.BookingStatusConfirmed, domain.BookingStatusCancelled, domain.BookingStatusCompleted:
	default:
		badRequestResponse(c, "invalid booking status")
		return
	}

	bookings, err := h.services.Booking.FindByStatus(c.Request.Context(), status)
	if err != nil {
		h.logger.Error("listing bookings by status", zap.Error(err))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, bookings)
}

// @Summary Get booking by time slot
// @Description Returns the latest booking referencing a time slot
// @Tags Bookings
// @Accept json
// @Produce json
// @Param timeSlotId path int true "Time slot ID"
// @Success 200 {object} domain.Booking "Booking data"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Failure 404 {object} errorResponseBody "No booking for this slot"
// @Router /bookings/time-slot/{timeSlotId} [get]
func (h *Handler) getBookingByTimeSlot(c *gin.Context) {
	timeSlotID, ok := parseIDParam(c, "timeSlotId")
	if !ok {
		return
	}

	booking, err := h.services.Booking.FindByTimeSlot(c.Request.Context(), timeSlotID)
	if err != nil {
		h.logger.Warn("getting booking by time slot", zap.Error(err), zap.Int64("timeSlotID", timeSlotID))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, booking)
}

// @Summary Get booking by ID
// @Description Returns a single booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} domain.Booking "Booking data"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Failure 404 {object} errorResponseBody "Booking not found"
// @Router /bookings/{id} [get]
func (h *Handler) getBookingByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := h.services.Booking.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("getting booking", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, booking)
}

// @Summary Create booking
// @Description Books a time slot for a client; the slot becomes unavailable atomically
// @Tags Bookings
// @Accept json
// @Produce json
// @Param input body domain.CreateBookingDTO true "Booking data"
// @Success 201 {object} domain.Booking "Created booking"
// @Failure 400 {object} errorResponseBody "Validation error or slot unavailable"
// @Failure 404 {object} errorResponseBody "Time slot not found"
// @Failure 409 {object} errorResponseBody "Concurrent booking won the slot"
// @Router /bookings [post]
func (h *Handler) createBooking(c *gin.Context) {
	var req domain.CreateBookingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	booking, err := h.services.Booking.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("creating booking", zap.Error(err))
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, booking)
}

// @Summary Update booking
// @Description Updates booking fields; the type-match rule is re-checked when the slot or type changes
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param input body domain.UpdateBookingDTO true "New booking data"
// @Success 200 {object} domain.Booking "Updated booking"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 404 {object} errorResponseBody "Booking not found"
// @Router /bookings/{id} [put]
func (h *Handler) updateBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateBookingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	booking, err := h.services.Booking.Update(c.Request.Context(), id, req)
	if err != nil {
		h.logger.Error("updating booking", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, booking)
}

// @Summary Update booking status
// @Description Sets the status directly without touching slot availability; use cancel to release the slot
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param input body domain.UpdateBookingStatusDTO true "New status"
// @Success 200 {object} domain.Booking "Updated booking"
// @Failure 400 {object} errorResponseBody "Invalid status"
// @Failure 404 {object} errorResponseBody "Booking not found"
// @Router /bookings/{id}/status [put]
func (h *Handler) updateBookingStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateBookingStatusDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	booking, err := h.services.Booking.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.logger.Error("updating booking status", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, booking)
}

// @Summary Cancel booking
// @Description Marks the booking cancelled and releases its time slot
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} domain.Booking "Cancelled booking"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Failure 404 {object} errorResponseBody "Booking not found"
// @Router /bookings/{id}/cancel [put]
func (h *Handler) cancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := h.services.Booking.Cancel(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("cancelling booking", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, booking)
}

// @Summary Remove booking
// @Description Deletes the booking row and releases its slot; missing bookings are a silent no-op
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Success 204 {object} nil "Booking removed"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Router /bookings/{id} [delete]
func (h *Handler) removeBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Booking.Remove(c.Request.Context(), id); err != nil {
		h.logger.Error("removing booking", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}
