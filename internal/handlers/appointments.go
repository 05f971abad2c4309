package handlers

import (
	"errors"
	"hospital-app-server/internal/cache"
	"hospital-app-server/internal/middleware"
	"hospital-app-server/internal/scheduling"
	"hospital-app-server/internal/utils"
	"log"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Service    *scheduling.Service
	StatsCache *cache.StatsCache // nil when Redis is not configured
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(service *scheduling.Service, statsCache *cache.StatsCache) *AppointmentHandler {
	return &AppointmentHandler{Service: service, StatsCache: statsCache}
}

// PostAppointment handles a patient's booking request.
func (h *AppointmentHandler) PostAppointment(c *gin.Context) {
	var req scheduling.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Patient ID not found in token")
		return
	}

	appt, err := h.Service.BookAppointment(c.Request.Context(), patientID, req)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	utils.OK(c, "Appointment Send!", gin.H{"appointment": appt})
}

// GetAllAppointments returns every appointment (admin).
func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	appointments, err := h.Service.ListAppointments(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}
	utils.OK(c, "", gin.H{"appointments": appointments})
}

// GetPatientAppointments returns the logged-in patient's appointments,
// newest first.
func (h *AppointmentHandler) GetPatientAppointments(c *gin.Context) {
	patientID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Patient ID not found in token")
		return
	}

	appointments, err := h.Service.ListPatientAppointments(c.Request.Context(), patientID)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}
	utils.OK(c, "", gin.H{"appointments": appointments})
}

// UpdateAppointment applies a partial status/time update (admin).
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id := c.Param("id")

	var req scheduling.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	appt, err := h.Service.UpdateAppointment(c.Request.Context(), id, req)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	utils.OK(c, "Appointment Updated!", gin.H{"appointment": appt})
}

// DeleteAppointment removes an appointment (admin).
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.DeleteAppointment(c.Request.Context(), id); err != nil {
		respondSchedulingError(c, err)
		return
	}

	utils.OK(c, "Appointment Deleted!", nil)
}

// GetDashboardStats returns the admin dashboard statistics, served from the
// short-TTL cache when one is configured.
func (h *AppointmentHandler) GetDashboardStats(c *gin.Context) {
	ctx := c.Request.Context()

	if h.StatsCache != nil {
		var cached scheduling.DashboardStats
		hit, err := h.StatsCache.Get(ctx, &cached)
		if err != nil {
			log.Printf("stats cache read failed: %v", err)
		} else if hit {
			utils.OK(c, "", gin.H{"stats": cached})
			return
		}
	}

	stats, err := h.Service.ComputeStats(ctx)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch dashboard statistics")
		return
	}

	if h.StatsCache != nil {
		if err := h.StatsCache.Set(ctx, stats); err != nil {
			log.Printf("stats cache write failed: %v", err)
		}
	}

	utils.OK(c, "", gin.H{"stats": stats})
}

// respondSchedulingError maps engine error kinds onto HTTP statuses; anything
// unclassified is an infrastructure failure.
func respondSchedulingError(c *gin.Context, err error) {
	var schedErr *scheduling.Error
	if errors.As(err, &schedErr) {
		switch schedErr.Kind {
		case scheduling.KindNotFound:
			utils.NotFound(c, schedErr.Message)
		default:
			utils.BadRequest(c, schedErr.Message)
		}
		return
	}
	utils.InternalServerError(c, "Internal server error: "+err.Error())
}
