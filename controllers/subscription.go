// controllers/subscription.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barberpro-backend/models"
	"barberpro-backend/services"
	"barberpro-backend/utils"
)

type SelectPlanInput struct {
	PlanID string `json:"planId"`
}

type SubscriptionController struct {
	Subscriptions *services.SubscriptionService
}

// GetPlans lists the purchasable plans
func (ctl *SubscriptionController) GetPlans(c *gin.Context) {
	c.JSON(http.StatusOK, models.Plans)
}

// SelectPlan activates a plan, replacing any current subscription
func (ctl *SubscriptionController) SelectPlan(c *gin.Context) {
	var input SelectPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	subscription, err := ctl.Subscriptions.SelectPlan(input.PlanID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subscription)
}

// GetSubscription returns the active subscription, if any
func (ctl *SubscriptionController) GetSubscription(c *gin.Context) {
	subscription := ctl.Subscriptions.Current()
	c.JSON(http.StatusOK, gin.H{
		"active":       subscription != nil,
		"subscription": subscription,
	})
}
