// controllers/service.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barberpro-backend/services"
	"barberpro-backend/utils"
)

// ServiceInput defines the expected JSON structure for creating or updating
// a catalog service. Updates replace every editable field.
type ServiceInput struct {
	Name        string `json:"name"`
	Duration    int    `json:"duration"` // in minutes
	Price       string `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (in ServiceInput) toService() services.ServiceInput {
	return services.ServiceInput{
		Name:        in.Name,
		Duration:    in.Duration,
		Price:       in.Price,
		Description: in.Description,
		Category:    in.Category,
	}
}

type ServiceController struct {
	Catalog *services.CatalogService
}

// CreateService adds a new service to the catalog
func (ctl *ServiceController) CreateService(c *gin.Context) {
	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := ctl.Catalog.Add(input.toService())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves the whole catalog
func (ctl *ServiceController) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Catalog.List())
}

// UpdateService replaces the fields of an existing service
func (ctl *ServiceController) UpdateService(c *gin.Context) {
	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := ctl.Catalog.Edit(c.Param("id"), input.toService())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service and strips it from every professional
func (ctl *ServiceController) DeleteService(c *gin.Context) {
	if err := ctl.Catalog.Delete(c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
