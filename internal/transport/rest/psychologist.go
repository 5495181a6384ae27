package rest

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"psybook/internal/domain"
)

const maxPhotoSize = 5 << 20 // 5 MB

// @Summary List psychologists
// @Description Returns psychologists filtered by capability; absent filters are ignored
// @Tags Psychologists
// @Accept json
// @Produce json
// @Param appointment_type_id query int false "Filter by supported appointment type"
// @Param specialization_id query int false "Filter by held specialization"
// @Param is_active query boolean false "Filter by active flag"
// @Success 200 {object} successResponseBody "List of psychologists"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /psychologists [get]
func (h *Handler) getPsychologists(c *gin.Context) {
	var filter domain.PsychologistFilter

	if v, ok := parseOptionalIDQuery(c, "appointment_type_id"); ok {
		filter.AppointmentTypeID = v
	} else {
		return
	}

	if v, ok := parseOptionalIDQuery(c, "specialization_id"); ok {
		filter.SpecializationID = v
	} else {
		return
	}

	if isActiveStr := c.Query("is_active"); isActiveStr != "" {
		isActive := isActiveStr == "true"
		filter.IsActive = &isActive
	}

	psychologists, err := h.services.Psychologist.ListByCapability(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("listing psychologists", zap.Error(err))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, psychologists)
}

// @Summary Get psychologist by ID
// @Description Returns a psychologist with their specializations and appointment types
// @Tags Psychologists
// @Accept json
// @Produce json
// @Param id path int true "Psychologist ID"
// @Success 200 {object} domain.Psychologist "Psychologist data"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Failure 404 {object} errorResponseBody "Psychologist not found"
// @Router /psychologists/{id} [get]
func (h *Handler) getPsychologistByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	psychologist, err := h.services.Psychologist.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("getting psychologist", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, psychologist)
}

// @Summary Create psychologist
// @Description Creates a new psychologist profile
// @Tags Psychologists
// @Accept json
// @Produce json
// @Param input body domain.CreatePsychologistDTO true "Psychologist data"
// @Success 201 {object} map[string]interface{} "ID of the created psychologist"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 409 {object} errorResponseBody "Psychologist with this email already exists"
// @Router /psychologists [post]
func (h *Handler) createPsychologist(c *gin.Context) {
	var req domain.CreatePsychologistDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	id, err := h.services.Psychologist.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("creating psychologist", zap.Error(err))
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Update psychologist
// @Description Updates psychologist profile fields
// @Tags Psychologists
// @Accept json
// @Produce json
// @Param id path int true "Psychologist ID"
// @Param input body domain.UpdatePsychologistDTO true "New psychologist data"
// @Success 200 {object} messageResponseType "Update confirmation"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 404 {object} errorResponseBody "Psychologist not found"
// @Router /psychologists/{id} [put]
func (h *Handler) updatePsychologist(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req domain.UpdatePsychologistDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.Psychologist.Update(c.Request.Context(), id, req); err != nil {
		h.logger.Error("updating psychologist", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "psychologist updated")
}

// @Summary Delete psychologist
// @Description Deletes a psychologist profile and its photo
// @Tags Psychologists
// @Accept json
// @Produce json
// @Param id path int true "Psychologist ID"
// @Success 204 {object} nil "Psychologist deleted"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Failure 404 {object} errorResponseBody "Psychologist not found"
// @Router /psychologists/{id} [delete]
func (h *Handler) deletePsychologist(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Psychologist.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("deleting psychologist", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}

// @Summary Add specialization to psychologist
// @Description Adds a specialization to the psychologist's capability set
// @Tags Psychologists
// @Accept json
// @Produce json
// @Param id path int true "Psychologist ID"
// @Param specId path int true "Specialization ID"
// @Success 200 {object} messageResponseType "Confirmation"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Failure 404 {object} errorResponseBody "Psychologist or specialization not found"
// @Router /psychologists/{id}/specializations/{specId} [post]
func (h *Handler) addPsychologistSpecialization(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	specID, ok := parseIDParam(c, "specId")
	if !ok {
		return
	}

	if err := h.services.Psychologist.AddSpecialization(c.Request.Context(), id, specID); err != nil {
		h.logger.Error("adding specialization", zap.Error(err), zap.Int64("psychologistID", id), zap.Int64("specializationID", specID))
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "specialization added")
}

// @Summary Remove specialization from psychologist
// @Description Removes a specialization from the psychologist's capability set
// @Tags Psychologists
// @Accept json
// @Produce json
// @Param id path int true "Psychologist ID"
// @Param specId path int true "Specialization ID"
// @Success 204 {object} nil "Specialization removed"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Failure 404 {object} errorResponseBody "Psychologist not found"
// @Router /psychologists/{id}/specializations/{specId} [delete]
func (h *Handler) removePsychologistSpecialization(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	specID, ok := parseIDParam(c, "specId")
	if !ok {
		return
	}

	if err := h.services.Psychologist.RemoveSpecialization(c.Request.Context(), id, specID); err != nil {
		h.logger.Error("removing specialization", zap.Error(err), zap.Int64("psychologistID", id), zap.Int64("specializationID", specID))
		domainErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}

// @Summary Add appointment type to psychologist
// @Description Adds an appointment type to the psychologist's capability set
// @Tags Psychologists
// @Accept json
// @Produce json
// @Param id path int true "Psychologist ID"
// @Param typeId path int true "Appointment type ID"
// @Success 200 {object} messageResponseType "Confirmation"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Failure 404 {object} errorResponseBody "Psychologist or appointment type not found"
// @Router /psychologists/{id}/appointment-types/{typeId} [post]
func (h *Handler) addPsychologistAppointmentType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	typeID, ok := parseIDParam(c, "typeId")
	if !ok {
		return
	}

	if err := h.services.Psychologist.AddAppointmentType(c.Request.Context(), id, typeID); err != nil {
		h.logger.Error("adding appointment type", zap.Error(err), zap.Int64("psychologistID", id), zap.Int64("appointmentTypeID", typeID))
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "appointment type added")
}

// @Summary Remove appointment type from psychologist
// @Description Removes an appointment type from the psychologist's capability set
// @Tags Psychologists
// @Accept json
// @Produce json
// @Param id path int true "Psychologist ID"
// @Param typeId path int true "Appointment type ID"
// @Success 204 {object} nil "Appointment type removed"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Failure 404 {object} errorResponseBody "Psychologist not found"
// @Router /psychologists/{id}/appointment-types/{typeId} [delete]
func (h *Handler) removePsychologistAppointmentType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	typeID, ok := parseIDParam(c, "typeId")
	if !ok {
		return
	}

	if err := h.services.Psychologist.RemoveAppointmentType(c.Request.Context(), id, typeID); err != nil {
		h.logger.Error("removing appointment type", zap.Error(err), zap.Int64("psychologistID", id), zap.Int64("appointmentTypeID", typeID))
		domainErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}

// @Summary Upload psychologist photo
// @Description Uploads a profile photo, replacing the previous one
// @Tags Psychologists
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Psychologist ID"
// @Param photo formData file true "Photo file (image, up to 5 MB)"
// @Success 200 {object} map[string]interface{} "URL of the uploaded photo"
// @Failure 400 {object} errorResponseBody "Invalid file"
// @Failure 404 {object} errorResponseBody "Psychologist not found"
// @Router /psychologists/{id}/photo [post]
func (h *Handler) uploadPsychologistPhoto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		badRequestResponse(c, "photo file is required")
		return
	}

	if fileHeader.Size > maxPhotoSize {
		badRequestResponse(c, "photo file is too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("opening uploaded photo", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("reading uploaded photo", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	url, err := h.services.Psychologist.UploadPhoto(c.Request.Context(), id, data, fileHeader.Filename)
	if err != nil {
		h.logger.Error("uploading psychologist photo", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, gin.H{"photo_url": url})
}

// @Summary Delete psychologist photo
// @Description Removes the profile photo
// @Tags Psychologists
// @Accept json
// @Produce json
// @Param id path int true "Psychologist ID"
// @Success 204 {object} nil "Photo deleted"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Failure 404 {object} errorResponseBody "Psychologist not found"
// @Router /psychologists/{id}/photo [delete]
func (h *Handler) deletePsychologistPhoto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Psychologist.DeletePhoto(c.Request.Context(), id); err != nil {
		h.logger.Error("deleting psychologist photo", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}
