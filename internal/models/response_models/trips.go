package response_models

type TripResponse struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	Source      string `json:"source"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Currency    string `json:"currency"`
	TotalBudget string `json:"total_budget"`
	CreatedAt   int64  `json:"created_at"`
}

type ExpenseResponse struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Note     string  `json:"note"`
	Amount   float64 `json:"amount"`
}

// BudgetSummary aggregates a trip's recorded expenses against its planned
// budget.
type BudgetSummary struct {
	TripID         string             `json:"trip_id"`
	Currency       string             `json:"currency"`
	CurrencySymbol string             `json:"currency_symbol"`
	BudgetAmount   float64            `json:"budget_amount"`
	TotalSpent     float64            `json:"total_spent"`
	Remaining      float64            `json:"remaining"`
	PercentUsed    float64            `json:"percent_used"`
	ByCategory     map[string]float64 `json:"by_category"`
	Expenses       []ExpenseResponse  `json:"expenses"`
}
