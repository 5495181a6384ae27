package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"psybook/internal/domain"
)

// @Summary List appointment types
// @Description Returns appointment types; inactive ones only on request
// @Tags Appointment types
// @Accept json
// @Produce json
// @Param include_inactive query boolean false "Include deactivated types"
// @Success 200 {object} successResponseBody "List of appointment types"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /appointment-types [get]
func (h *Handler) getAppointmentTypes(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	appointmentTypes, err := h.services.AppointmentType.List(c.Request.Context(), includeInactive)
	if err != nil {
		h.logger.Error("listing appointment types", zap.Error(err))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, appointmentTypes)
}

// @Summary Get appointment type by ID
// @Description Returns a single appointment type, active or not
// @Tags Appointment types
// @Accept json
// @Produce json
// @Param id path int true "Appointment type ID"
// @Success 200 {object} domain.AppointmentType "Appointment type data"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Failure 404 {object} errorResponseBody "Appointment type not found"
// @Router /appointment-types/{id} [get]
func (h *Handler) getAppointmentTypeByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	appointmentType, err := h.services.AppointmentType.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("getting appointment type", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, appointmentType)
}

// @Summary Get field requirements of an appointment type
// @Description Returns which location fields slots and bookings of this type must carry
// @Tags Appointment types
// @Accept json
// @Produce json
// @Param id path int true "Appointment type ID"
// @Success 200 {object} domain.FieldRequirement "Field-requirement policy"
// @Failure 400 {object} errorResponseBody "Unsupported appointment type code"
// @Failure 404 {object} errorResponseBody "Appointment type not found"
// @Router /appointment-types/{id}/requirements [get]
func (h *Handler) getAppointmentTypeRequirements(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	requirements, err := h.services.AppointmentType.RequirementsFor(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("getting appointment type requirements", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, requirements)
}

// @Summary List psychologists offering an appointment type
// @Description Returns active psychologists that support the given type
// @Tags Appointment types
// @Accept json
// @Produce json
// @Param id path int true "Appointment type ID"
// @Success 200 {object} successResponseBody "List of psychologists"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Failure 404 {object} errorResponseBody "Appointment type not found"
// @Router /appointment-types/{id}/psychologists [get]
func (h *Handler) getPsychologistsByAppointmentType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	psychologists, err := h.services.AppointmentType.PsychologistsByType(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("listing psychologists by appointment type", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, psychologists)
}

// @Summary Create appointment type
// @Description Creates a new appointment type with a known code
// @Tags Appointment types
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentTypeDTO true "Appointment type data"
// @Success 201 {object} map[string]interface{} "ID of the created appointment type"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Router /appointment-types [post]
func (h *Handler) createAppointmentType(c *gin.Context) {
	var req domain.CreateAppointmentTypeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	id, err := h.services.AppointmentType.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("creating appointment type", zap.Error(err))
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Update appointment type
// @Description Updates name, description or active flag; the code is immutable
// @Tags Appointment types
// @Accept json
// @Produce json
// @Param id path int true "Appointment type ID"
// @Param input body domain.UpdateAppointmentTypeDTO true "New appointment type data"
// @Success 200 {object} messageResponseType "Update confirmation"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 404 {object} errorResponseBody "Appointment type not found"
// @Router /appointment-types/{id} [put]
func (h *Handler) updateAppointmentType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateAppointmentTypeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.AppointmentType.Update(c.Request.Context(), id, req); err != nil {
		h.logger.Error("updating appointment type", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "appointment type updated")
}

// @Summary Deactivate appointment type
// @Description Withdraws the type from new slots and bookings; existing rows keep it
// @Tags Appointment types
// @Accept json
// @Produce json
// @Param id path int true "Appointment type ID"
// @Success 204 {object} nil "Appointment type deactivated"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Failure 404 {object} errorResponseBody "Appointment type not found"
// @Router /appointment-types/{id} [delete]
func (h *Handler) deactivateAppointmentType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.AppointmentType.Deactivate(c.Request.Context(), id); err != nil {
		h.logger.Error("deactivating appointment type", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}
