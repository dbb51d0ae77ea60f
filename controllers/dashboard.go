// controllers/dashboard.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barberpro-backend/models"
	"barberpro-backend/services"
	"barberpro-backend/utils"
)

type DashboardController struct {
	Bookings *services.BookingService
}

// GetDashboardOverview returns appointment counts for the owner panel.
func (ctl *DashboardController) GetDashboardOverview(c *gin.Context) {
	today := utils.Today()

	var pending, confirmed, cancelled, todayCount int
	appointments := ctl.Bookings.List()
	for _, apt := range appointments {
		switch apt.Status {
		case models.AppointmentPending:
			pending++
		case models.AppointmentConfirmed:
			confirmed++
		case models.AppointmentCancelled:
			cancelled++
		}
		if apt.Date == today && apt.Status != models.AppointmentCancelled {
			todayCount++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total":     len(appointments),
		"pending":   pending,
		"confirmed": confirmed,
		"cancelled": cancelled,
		"today":     todayCount,
	})
}
