package request_models

import "tripwise/internal/models/response_models"

type SaveTripRequest struct {
	Plan response_models.TripPlan `json:"plan" binding:"required"`
}

type UpdateBudgetRequest struct {
	BudgetAmount float64 `json:"budget_amount" binding:"required,gt=0"`
}

type AddExpenseRequest struct {
	Category string  `json:"category" binding:"required"`
	Note     string  `json:"note"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
}
