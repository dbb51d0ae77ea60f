// controllers/appointment.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barberpro-backend/services"
	"barberpro-backend/utils"
)

// BookingInput mirrors the persisted appointment layout; required-field
// validation happens in the booking service so the error taxonomy applies.
type BookingInput struct {
	ClientName     string `json:"clientName"`
	ClientPhone    string `json:"clientPhone"`
	ServiceID      string `json:"service"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	ProfessionalID string `json:"professional"`
}

type AppointmentController struct {
	Bookings *services.BookingService
}

// CreateAppointment books a slot
func (ctl *AppointmentController) CreateAppointment(c *gin.Context) {
	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appointment, err := ctl.Bookings.Book(services.BookingInput{
		ClientName:     input.ClientName,
		ClientPhone:    input.ClientPhone,
		ServiceID:      input.ServiceID,
		Date:           input.Date,
		Time:           input.Time,
		ProfessionalID: input.ProfessionalID,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments lists all appointments, cancelled ones included
func (ctl *AppointmentController) GetAppointments(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Bookings.List())
}

// ConfirmAppointment confirms a pending appointment and sends the WhatsApp
// confirmation
func (ctl *AppointmentController) ConfirmAppointment(c *gin.Context) {
	if err := ctl.Bookings.Confirm(c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment confirmed"})
}

// CancelAppointment cancels an appointment, freeing its slot
func (ctl *AppointmentController) CancelAppointment(c *gin.Context) {
	if err := ctl.Bookings.Cancel(c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

// GetAvailability lists the free hours for a professional on a date
func (ctl *AppointmentController) GetAvailability(c *gin.Context) {
	professionalID := c.Query("professionalId")
	date := c.Query("date")
	if date == "" {
		date = utils.Today()
	}
	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"hours": ctl.Bookings.AvailableHours(professionalID, date),
	})
}
