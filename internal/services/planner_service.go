package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/jsonrepair"
	"tripwise/pkg/llm"
	"tripwise/pkg/utils"
)

const (
	planMaxTokens = 8000
	costMaxTokens = 500
)

type PlannerServiceInterface interface {
	GeneratePlan(ctx context.Context, req request_models.GeneratePlanRequest) (*response_models.TripPlan, error)
}

type PlannerService struct {
	client  llm.Client
	prompts PromptServiceInterface
	model   string
}

func NewPlannerService(client llm.Client, prompts PromptServiceInterface, cfg llm.Config) PlannerServiceInterface {
	return &PlannerService{
		client:  client,
		prompts: prompts,
		model:   cfg.Model,
	}
}

// GeneratePlan runs the full pipeline: validate the request, ask the model
// for an itinerary, recover the JSON document, enrich each day with a cost
// breakdown, and cross-check every extracted figure against the budget.
func (s *PlannerService) GeneratePlan(ctx context.Context, req request_models.GeneratePlanRequest) (*response_models.TripPlan, error) {
	tr, err := buildTripRequest(req, time.Now())
	if err != nil {
		return nil, err
	}

	prompt := s.prompts.BuildPlanPrompt(tr)
	raw, err := s.client.Complete(ctx, s.model, prompt, planMaxTokens)
	if err != nil {
		return nil, err
	}

	doc, err := jsonrepair.Extract(raw)
	if err != nil {
		return nil, err
	}

	var plan response_models.TripPlan
	if err := json.Unmarshal(doc, &plan); err != nil {
		return nil, &utils.ExtractionError{Raw: raw}
	}

	if len(plan.Days) != tr.NumDays {
		return nil, &utils.IncompletePlanError{Expected: tr.NumDays, Got: len(plan.Days)}
	}

	if err := s.enrichDayCosts(ctx, &plan, tr); err != nil {
		return nil, err
	}

	if err := checkBudget(&plan, tr); err != nil {
		return nil, err
	}

	plan.StartDate = tr.StartDate.Format("2006-01-02")
	plan.EndDate = tr.EndDate.Format("2006-01-02")
	plan.Source = tr.Source
	plan.Currency = tr.Currency
	plan.CurrencySymbol = tr.CurrencySymbol

	return &plan, nil
}

// buildTripRequest validates the raw form input before any completion call
// is made. now is passed in so date checks are testable.
func buildTripRequest(req request_models.GeneratePlanRequest, now time.Time) (TripRequest, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return TripRequest{}, fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
	}

	budget, err := utils.ParseBudget(req.BudgetAmount)
	if err != nil {
		return TripRequest{}, err
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return TripRequest{}, fmt.Errorf("%w: start_date must be YYYY-MM-DD", utils.ErrInvalidDates)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return TripRequest{}, fmt.Errorf("%w: end_date must be YYYY-MM-DD", utils.ErrInvalidDates)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(today) {
		return TripRequest{}, fmt.Errorf("%w: start date is in the past", utils.ErrInvalidDates)
	}
	if end.Before(start) {
		return TripRequest{}, fmt.Errorf("%w: end date is before start date", utils.ErrInvalidDates)
	}

	numDays := int(end.Sub(start).Hours()/24) + 1
	if numDays < 1 || numDays > 30 {
		return TripRequest{}, fmt.Errorf("%w: trip length must be between 1 and 30 days", utils.ErrInvalidDates)
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = utils.CurrencyFromLocation(req.Destination)
	}
	if !utils.IsSupportedCurrency(currency) {
		return TripRequest{}, fmt.Errorf("%w: unsupported currency %q", utils.ErrInvalidInput, req.Currency)
	}

	return TripRequest{
		Destination:    strings.TrimSpace(req.Destination),
		Source:         strings.TrimSpace(req.Source),
		StartDate:      start,
		EndDate:        end,
		NumDays:        numDays,
		Currency:       currency,
		CurrencySymbol: utils.CurrencySymbol(currency),
		BudgetAmount:   budget,
	}, nil
}

// enrichDayCosts issues one cost-breakdown call per day, sequentially to
// avoid bursting the provider. A failed sub-call never aborts the plan; the
// affected day gets deterministic fallback figures instead. Cancellation is
// the exception: once the request context is done the loop stops and the
// error propagates rather than filling the remaining days with fabricated
// figures.
func (s *PlannerService) enrichDayCosts(ctx context.Context, plan *response_models.TripPlan, tr TripRequest) error {
	for i := range plan.Days {
		day := &plan.Days[i]

		breakdown, err := s.fetchDayCost(ctx, *day, tr)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			log.Printf("cost estimate for day %d failed, using fallback: %v", day.Day, err)
			breakdown = fallbackDayCost(plan, tr)
		}

		day.Morning.EstimatedCost = breakdown.MorningCost
		day.Afternoon.EstimatedCost = breakdown.AfternoonCost
		day.Evening.EstimatedCost = breakdown.EveningCost
		day.EstimatedCost = breakdown.TotalDayCost
	}
	return nil
}

func (s *PlannerService) fetchDayCost(ctx context.Context, day response_models.DayPlan, tr TripRequest) (response_models.DayCostBreakdown, error) {
	prompt := s.prompts.BuildCostPrompt(day, tr.Destination, tr.Currency, tr.CurrencySymbol)

	raw, err := s.client.Complete(ctx, s.model, prompt, costMaxTokens)
	if err != nil {
		return response_models.DayCostBreakdown{}, err
	}

	doc, err := jsonrepair.Extract(raw)
	if err != nil {
		return response_models.DayCostBreakdown{}, err
	}

	var breakdown response_models.DayCostBreakdown
	if err := json.Unmarshal(doc, &breakdown); err != nil {
		return response_models.DayCostBreakdown{}, err
	}
	if breakdown.TotalDayCost == "" {
		return response_models.DayCostBreakdown{}, fmt.Errorf("cost breakdown missing totalDayCost")
	}

	return breakdown, nil
}

// fallbackDayCost derives a per-day estimate from the plan's own total
// budget, split 30/40/30 across the day. When the total is unusable it falls
// back to fixed figures.
func fallbackDayCost(plan *response_models.TripPlan, tr TripRequest) response_models.DayCostBreakdown {
	perDay := 75.0
	if total, ok := utils.ParseAmount(plan.TotalBudget); ok && total > 0 {
		perDay = total / float64(tr.NumDays)
	}

	symbol := tr.CurrencySymbol
	return response_models.DayCostBreakdown{
		MorningCost:   fmt.Sprintf("%s%.0f", symbol, perDay*0.3),
		AfternoonCost: fmt.Sprintf("%s%.0f", symbol, perDay*0.4),
		EveningCost:   fmt.Sprintf("%s%.0f", symbol, perDay*0.3),
		TotalDayCost:  fmt.Sprintf("%s%.0f", symbol, perDay),
	}
}

// checkBudget compares the ticket cost, the sum of the per-day estimates and
// the plan's own total against the user's ceiling. The reported figure is
// the highest of the three, i.e. the minimum the user would need to budget.
func checkBudget(plan *response_models.TripPlan, tr TripRequest) error {
	if tr.BudgetAmount <= 0 {
		return nil
	}

	var required float64
	if v, ok := utils.ParseAmount(plan.TravelInfo.EstimatedTicketCost); ok && v > required {
		required = v
	}

	var daySum float64
	for _, day := range plan.Days {
		if v, ok := utils.ParseAmount(day.EstimatedCost); ok {
			daySum += v
		}
	}
	if daySum > required {
		required = daySum
	}

	if v, ok := utils.ParseAmount(plan.TotalBudget); ok && v > required {
		required = v
	}

	if required > tr.BudgetAmount {
		return &utils.BudgetExceededError{
			Symbol:   tr.CurrencySymbol,
			Budget:   tr.BudgetAmount,
			Required: required,
		}
	}

	return nil
}
