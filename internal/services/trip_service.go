package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, userId string, req request_models.SaveTripRequest) (string, error)
	ListTrips(ctx context.Context, userId string, page int, pagesize int) ([]response_models.TripResponse, error)
	GetTrip(ctx context.Context, userId string, tripId string) (*response_models.TripPlan, error)
	DeleteTrip(ctx context.Context, userId string, tripId string) error
	UpdateBudget(ctx context.Context, userId string, tripId string, req request_models.UpdateBudgetRequest) error
	AddExpense(ctx context.Context, userId string, tripId string, req request_models.AddExpenseRequest) error
	GetBudgetSummary(ctx context.Context, userId string, tripId string) (*response_models.BudgetSummary, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func (s *TripService) SaveTrip(ctx context.Context, userId string, req request_models.SaveTripRequest) (string, error) {
	plan := req.Plan
	if strings.TrimSpace(plan.Destination) == "" || len(plan.Days) == 0 {
		return "", fmt.Errorf("%w: plan must have a destination and at least one day", utils.ErrInvalidInput)
	}

	planJSON, err := json.Marshal(plan)
	if err != nil {
		return "", utils.ErrInvalidInput
	}

	budgetAmount, _ := utils.ParseAmount(plan.TotalBudget)

	trip := db_models.Trip{
		UserID:         userId,
		Destination:    plan.Destination,
		Source:         plan.Source,
		StartDate:      plan.StartDate,
		EndDate:        plan.EndDate,
		Currency:       plan.Currency,
		CurrencySymbol: plan.CurrencySymbol,
		TotalBudget:    plan.TotalBudget,
		BudgetAmount:   budgetAmount,
		PackingList:    plan.PackingList,
		Plan:           string(planJSON),
	}

	id, err := s.tripRepo.SaveTrip(ctx, &trip)
	if err != nil {
		log.Printf("failed to save trip for user %s: %v", userId, err)
		return "", utils.ErrDatabaseError
	}

	return id.String(), nil
}

func (s *TripService) ListTrips(ctx context.Context, userId string, page int, pagesize int) ([]response_models.TripResponse, error) {
	if page < 1 {
		page = 1
	}
	if pagesize < 1 || pagesize > 100 {
		pagesize = 20
	}

	trips, err := s.tripRepo.GetListOfTripsByUserId(ctx, page, pagesize, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, response_models.TripResponse{
			ID:          t.ID.String(),
			Destination: t.Destination,
			Source:      t.Source,
			StartDate:   t.StartDate,
			EndDate:     t.EndDate,
			Currency:    t.Currency,
			TotalBudget: t.TotalBudget,
			CreatedAt:   t.CreatedAt,
		})
	}

	return out, nil
}

func (s *TripService) GetTrip(ctx context.Context, userId string, tripId string) (*response_models.TripPlan, error) {
	trip, err := s.tripRepo.GetTripById(ctx, tripId, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	var plan response_models.TripPlan
	if err := json.Unmarshal([]byte(trip.Plan), &plan); err != nil {
		log.Printf("stored plan for trip %s is unreadable: %v", tripId, err)
		return nil, utils.ErrDatabaseError
	}

	return &plan, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, userId string, tripId string) error {
	if err := s.tripRepo.DeleteTrip(ctx, tripId, userId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrTripNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) UpdateBudget(ctx context.Context, userId string, tripId string, req request_models.UpdateBudgetRequest) error {
	if req.BudgetAmount <= 0 {
		return fmt.Errorf("%w: budget amount must be positive", utils.ErrInvalidInput)
	}

	if err := s.tripRepo.UpdateTripBudget(ctx, tripId, userId, req.BudgetAmount); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrTripNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) AddExpense(ctx context.Context, userId string, tripId string, req request_models.AddExpenseRequest) error {
	if req.Amount <= 0 {
		return fmt.Errorf("%w: expense amount must be positive", utils.ErrInvalidInput)
	}

	expense := db_models.Expense{
		Category: strings.TrimSpace(req.Category),
		Note:     strings.TrimSpace(req.Note),
		Amount:   req.Amount,
	}

	if err := s.tripRepo.AddExpense(ctx, tripId, userId, &expense); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrTripNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) GetBudgetSummary(ctx context.Context, userId string, tripId string) (*response_models.BudgetSummary, error) {
	trip, err := s.tripRepo.GetTripById(ctx, tripId, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	summary := response_models.BudgetSummary{
		TripID:         trip.ID.String(),
		Currency:       trip.Currency,
		CurrencySymbol: trip.CurrencySymbol,
		BudgetAmount:   trip.BudgetAmount,
		ByCategory:     make(map[string]float64),
		Expenses:       []response_models.ExpenseResponse{},
	}

	for _, e := range trip.Expenses {
		summary.TotalSpent += e.Amount
		summary.ByCategory[e.Category] += e.Amount
		summary.Expenses = append(summary.Expenses, response_models.ExpenseResponse{
			ID:       e.ID.String(),
			Category: e.Category,
			Note:     e.Note,
			Amount:   e.Amount,
		})
	}
	summary.Remaining = summary.BudgetAmount - summary.TotalSpent
	if summary.BudgetAmount > 0 {
		summary.PercentUsed = summary.TotalSpent / summary.BudgetAmount * 100
	}

	return &summary, nil
}
