package rest

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"psybook/config"
	"psybook/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		specializations := api.Group("/specializations")
		{
			specializations.GET("/", h.getSpecializations)
			specializations.GET("/:id", h.getSpecializationByID)
			specializations.POST("/", h.createSpecialization)
			specializations.PUT("/:id", h.updateSpecialization)
			specializations.DELETE("/:id", h.deleteSpecialization)
		}

		appointmentTypes := api.Group("/appointment-types")
		{
			appointmentTypes.GET("/", h.getAppointmentTypes)
			appointmentTypes.GET("/:id", h.getAppointmentTypeByID)
			appointmentTypes.GET("/:id/requirements", h.getAppointmentTypeRequirements)
			appointmentTypes.GET("/:id/psychologists", h.getPsychologistsByAppointmentType)
			appointmentTypes.POST("/", h.createAppointmentType)
			appointmentTypes.PUT("/:id", h.updateAppointmentType)
			appointmentTypes.DELETE("/:id", h.deactivateAppointmentType)
		}

		psychologists := api.Group("/psychologists")
		{
			psychologists.GET("/", h.getPsychologists)
			psychologists.GET("/:id", h.getPsychologistByID)
			psychologists.POST("/", h.createPsychologist)
			psychologists.PUT("/:id", h.updatePsychologist)
			psychologists.DELETE("/:id", h.deletePsychologist)

			psychologists.POST("/:id/specializations/:specId", h.addPsychologistSpecialization)
			psychologists.DELETE("/:id/specializations/:specId", h.removePsychologistSpecialization)
			psychologists.POST("/:id/appointment-types/:typeId", h.addPsychologistAppointmentType)
			psychologists.DELETE("/:id/appointment-types/:typeId", h.removePsychologistAppointmentType)

			psychologists.POST("/:id/photo", h.uploadPsychologistPhoto)
			psychologists.DELETE("/:id/photo", h.deletePsychologistPhoto)
		}

		timeSlots := api.Group("/time-slots")
		{
			timeSlots.GET("/", h.getTimeSlots)
			timeSlots.GET("/bookable", h.getBookableTimeSlots)
			timeSlots.GET("/:id", h.getTimeSlotByID)
			timeSlots.POST("/", h.createTimeSlot)
			timeSlots.PUT("/:id", h.updateTimeSlot)
			timeSlots.DELETE("/:id", h.deleteTimeSlot)
			timeSlots.PUT("/:id/available", h.markTimeSlotAvailable)
			timeSlots.PUT("/:id/unavailable", h.markTimeSlotUnavailable)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("/", h.getBookings)
			bookings.GET("/:id", h.getBookingByID)
			bookings.GET("/client/:email", h.getBookingsByClientEmail)
			bookings.GET("/status/:status", h.getBookingsByStatus)
			bookings.GET("/time-slot/:timeSlotId", h.getBookingByTimeSlot)
			bookings.POST("/", h.createBooking)
			bookings.PUT("/:id", h.updateBooking)
			bookings.PUT("/:id/status", h.updateBookingStatus)
			bookings.PUT("/:id/cancel", h.cancelBooking)
			bookings.DELETE("/:id", h.removeBooking)
		}
	}
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid id format")
		return 0, false
	}
	return id, true
}

// parseOptionalIDQuery reads an optional numeric query parameter. A missing
// parameter yields (nil, true); a malformed one writes the 400 itself.
func parseOptionalIDQuery(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid "+name+" format")
		return nil, false
	}
	return &id, true
}
