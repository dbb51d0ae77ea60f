// controllers/professional.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barberpro-backend/models"
	"barberpro-backend/services"
	"barberpro-backend/utils"
)

type CreateProfessionalInput struct {
	Name string                  `json:"name"`
	Type models.ProfessionalType `json:"type"`
}

// ProfessionalSettingsInput is the full replacement payload for a
// professional's working hours and service links.
type ProfessionalSettingsInput struct {
	AvailableHours []string             `json:"availableHours"`
	Services       []models.ServiceLink `json:"services"`
}

type ProfessionalController struct {
	Professionals *services.ProfessionalService
}

func (ctl *ProfessionalController) CreateProfessional(c *gin.Context) {
	var input CreateProfessionalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	professional, err := ctl.Professionals.Add(input.Name, input.Type)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, professional)
}

func (ctl *ProfessionalController) GetProfessionals(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Professionals.List())
}

func (ctl *ProfessionalController) DeleteProfessional(c *gin.Context) {
	if err := ctl.Professionals.Delete(c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Professional removed"})
}

// BeginEdit opens an edit session and returns the staged hours and service
// links for the client to modify.
func (ctl *ProfessionalController) BeginEdit(c *gin.Context) {
	hours, links, err := ctl.Professionals.BeginEdit(c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"availableHours": hours,
		"services":       links,
		"allHours":       models.AllHours,
	})
}

// SaveSettings atomically replaces the professional's hours and service
// links, ending any edit session.
func (ctl *ProfessionalController) SaveSettings(c *gin.Context) {
	var input ProfessionalSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := ctl.Professionals.SaveEdit(c.Param("id"), input.AvailableHours, input.Services); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully"})
}

// CancelEdit discards the edit session without changes.
func (ctl *ProfessionalController) CancelEdit(c *gin.Context) {
	ctl.Professionals.CancelEdit()
	c.JSON(http.StatusOK, gin.H{"message": "Edit session discarded"})
}

// GetOfferedServices lists the services a professional can offer, filtered
// by the professional's type and linked services.
func (ctl *ProfessionalController) GetOfferedServices(c *gin.Context) {
	offered, err := ctl.Professionals.OfferedServices(c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, offered)
}
