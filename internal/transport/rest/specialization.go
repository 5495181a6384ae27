package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"psybook/internal/domain"
)

// @Summary List specializations
// @Description Returns all specializations ordered by name
// @Tags Specializations
// @Accept json
// @Produce json
// @Success 200 {object} successResponseBody "List of specializations"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /specializations [get]
func (h *Handler) getSpecializations(c *gin.Context) {
	specializations, err := h.services.Specialization.List(c.Request.Context())
	if err != nil {
		h.logger.Error("listing specializations", zap.Error(err))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, specializations)
}

// @Summary Get specialization by ID
// @Description Returns a single specialization
// @Tags Specializations
// @Accept json
// @Produce json
// @Param id path int true "Specialization ID"
// @Success 200 {object} domain.Specialization "Specialization data"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Failure 404 {object} errorResponseBody "Specialization not found"
// @Router /specializations/{id} [get]
func (h *Handler) getSpecializationByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	specialization, err := h.services.Specialization.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("getting specialization", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, specialization)
}

// @Summary Create specialization
// @Description Creates a new specialization
// @Tags Specializations
// @Accept json
// @Produce json
// @Param input body domain.CreateSpecializationDTO true "Specialization data"
// @Success 201 {object} map[string]interface{} "ID of the created specialization"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 409 {object} errorResponseBody "Specialization with this name already exists"
// @Router /specializations [post]
func (h *Handler) createSpecialization(c *gin.Context) {
	var req domain.CreateSpecializationDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	id, err := h.services.Specialization.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("creating specialization", zap.Error(err))
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Update specialization
// @Description Updates specialization fields
// @Tags Specializations
// @Accept json
// @Produce json
// @Param id path int true "Specialization ID"
// @Param input body domain.UpdateSpecializationDTO true "New specialization data"
// @Success 200 {object} messageResponseType "Update confirmation"
// @Failure 400 {object} errorResponseBody "Validation error"
// @Failure 404 {object} errorResponseBody "Specialization not found"
// @Router /specializations/{id} [put]
func (h *Handler) updateSpecialization(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateSpecializationDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.Specialization.Update(c.Request.Context(), id, req); err != nil {
		h.logger.Error("updating specialization", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "specialization updated")
}

// @Summary Delete specialization
// @Description Deletes a specialization
// @Tags Specializations
// @Accept json
// @Produce json
// @Param id path int true "Specialization ID"
// @Success 204 {object} nil "Specialization deleted"
// @Failure 400 {object} errorResponseBody "Invalid id format"
// @Failure 404 {object} errorResponseBody "Specialization not found"
// @Router /specializations/{id} [delete]
func (h *Handler) deleteSpecialization(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Specialization.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("deleting specialization", zap.Error(err), zap.Int64("id", id))
		domainErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}
