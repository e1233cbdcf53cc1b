package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

// GeneratePlan godoc
// @Summary Generate a travel plan
// @Description Generate a validated, cost-annotated itinerary for the given destination and date range
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.GeneratePlanRequest true "Destination, dates, currency and optional budget"
// @Success 200 {object} response_models.TripPlan
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans [post]
func (p *PlannerController) GeneratePlan(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination, start_date and end_date are required")
		return
	}

	plan, err := p.plannerService.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan generated successfully")
}
