package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"barberpro-backend/models"
	"barberpro-backend/utils"
)

// respondDomainError maps the domain error taxonomy onto HTTP status codes.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrSubscriptionRequired):
		utils.RespondWithError(c, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, models.ErrCapability):
		utils.RespondWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrSlotTaken), errors.Is(err, models.ErrInvariant):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal error")
	}
}
