package services

import (
	"fmt"
	"strings"
	"time"

	"tripwise/internal/models/response_models"
)

// TripRequest is the validated internal form of a plan request. BudgetAmount
// of zero means the user gave no budget ceiling.
type TripRequest struct {
	Destination    string
	Source         string
	StartDate      time.Time
	EndDate        time.Time
	NumDays        int
	Currency       string
	CurrencySymbol string
	BudgetAmount   float64
}

type PromptServiceInterface interface {
	BuildPlanPrompt(req TripRequest) string
	BuildCostPrompt(day response_models.DayPlan, destination string, currency string, symbol string) string
}

type PromptService struct{}

func NewPromptService() PromptServiceInterface {
	return &PromptService{}
}

// BuildPlanPrompt renders the trip request into the plan instruction. The
// inlined schema tells the model exactly which keys to emit; budgetAmount is
// rendered as 0 when absent so the example never implies a fictitious
// constraint.
func (p *PromptService) BuildPlanPrompt(req TripRequest) string {
	start := req.StartDate.Format("2006-01-02")
	end := req.EndDate.Format("2006-01-02")

	var b strings.Builder

	fmt.Fprintf(&b, "Create a %d-day travel plan for %q", req.NumDays, req.Destination)
	if req.Source != "" {
		fmt.Fprintf(&b, " from %s", req.Source)
	}
	b.WriteString(".\n\n")

	fmt.Fprintf(&b, "Dates: %s to %s. Currency: %s (%s).", start, end, req.Currency, req.CurrencySymbol)
	if req.BudgetAmount > 0 {
		fmt.Fprintf(&b, " Budget: %s%g.", req.CurrencySymbol, req.BudgetAmount)
	}
	b.WriteString("\n\n")

	b.WriteString("Return ONLY valid JSON:\n")
	fmt.Fprintf(&b, `{
  "destination": %q,
  "source": %q,
  "summary": "Brief trip overview",
  "currency": %q,
  "currencySymbol": %q,
  "budgetAmount": %g,
  "travelInfo": {
    "from": %q,
    "to": %q,
    "recommendedMode": "Flight/Train/Bus/Car",
    "estimatedTicketCost": "%sXXX",
    "travelDuration": "X hours",
    "tips": "Travel tip"
  },
  "days": [
    {
      "day": 1,
      "date": %q,
      "title": "Day title",
      "summary": "Day summary",
      "morning": {"activity": "Activity", "description": "Description", "location": "Place", "duration": "2h"},
      "afternoon": {"activity": "Activity", "description": "Description", "location": "Place", "duration": "3h"},
      "evening": {"activity": "Activity", "description": "Description", "location": "Place", "duration": "2h"},
      "meals": {"breakfast": "Food", "lunch": "Food", "dinner": "Food"},
      "tips": ["Tip"],
      "estimatedCost": "%sXX"
    }
  ],
  "packingList": ["Item1", "Item2"],
  "totalBudget": "%sXXX"
}`,
		req.Destination, req.Source, req.Currency, req.CurrencySymbol, req.BudgetAmount,
		req.Source, req.Destination, req.CurrencySymbol,
		start, req.CurrencySymbol, req.CurrencySymbol)

	fmt.Fprintf(&b, "\n\nGenerate exactly %d entries in \"days\" with real %s locations. Keep descriptions brief.", req.NumDays, req.Destination)

	return b.String()
}

// BuildCostPrompt renders one day's three activities into a request for a
// realistic mid-range cost breakdown in the trip currency.
func (p *PromptService) BuildCostPrompt(day response_models.DayPlan, destination string, currency string, symbol string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Estimate realistic mid-range costs in %s (%s) for day %d of a trip to %s.\n\n", currency, symbol, day.Day, destination)

	fmt.Fprintf(&b, "Morning: %s at %s\n", day.Morning.Activity, day.Morning.Location)
	fmt.Fprintf(&b, "Afternoon: %s at %s\n", day.Afternoon.Activity, day.Afternoon.Location)
	fmt.Fprintf(&b, "Evening: %s at %s\n\n", day.Evening.Activity, day.Evening.Location)

	b.WriteString("Return ONLY valid JSON:\n")
	fmt.Fprintf(&b, `{"morningCost": "%sXX", "afternoonCost": "%sXX", "eveningCost": "%sXX", "totalDayCost": "%sXXX"}`,
		symbol, symbol, symbol, symbol)

	return b.String()
}
