package request_models

// GeneratePlanRequest is the trip-planning form input. Dates are calendar
// dates in YYYY-MM-DD; budget_amount is a plain number as typed by the user
// and is validated strictly before any completion call.
type GeneratePlanRequest struct {
	Destination  string `json:"destination" binding:"required"`
	Source       string `json:"source"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	Currency     string `json:"currency"`
	BudgetAmount string `json:"budget_amount"`
}
