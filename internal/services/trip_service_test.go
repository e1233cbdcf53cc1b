package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

type fakeTripRepo struct {
	saveFn       func(ctx context.Context, trip *db_models.Trip) (uuid.UUID, error)
	listFn       func(ctx context.Context, page, pagesize int, userId string) ([]db_models.Trip, error)
	getFn        func(ctx context.Context, tripId, userId string) (*db_models.Trip, error)
	deleteFn     func(ctx context.Context, tripId, userId string) error
	budgetFn     func(ctx context.Context, tripId, userId string, amount float64) error
	addExpenseFn func(ctx context.Context, tripId, userId string, expense *db_models.Expense) error
	expensesFn   func(ctx context.Context, tripId string) ([]db_models.Expense, error)
}

func (f *fakeTripRepo) SaveTrip(ctx context.Context, trip *db_models.Trip) (uuid.UUID, error) {
	return f.saveFn(ctx, trip)
}

func (f *fakeTripRepo) GetListOfTripsByUserId(ctx context.Context, page, pagesize int, userId string) ([]db_models.Trip, error) {
	return f.listFn(ctx, page, pagesize, userId)
}

func (f *fakeTripRepo) GetTripById(ctx context.Context, tripId, userId string) (*db_models.Trip, error) {
	return f.getFn(ctx, tripId, userId)
}

func (f *fakeTripRepo) DeleteTrip(ctx context.Context, tripId, userId string) error {
	return f.deleteFn(ctx, tripId, userId)
}

func (f *fakeTripRepo) UpdateTripBudget(ctx context.Context, tripId, userId string, amount float64) error {
	return f.budgetFn(ctx, tripId, userId, amount)
}

func (f *fakeTripRepo) AddExpense(ctx context.Context, tripId, userId string, expense *db_models.Expense) error {
	return f.addExpenseFn(ctx, tripId, userId, expense)
}

func (f *fakeTripRepo) GetExpensesByTripId(ctx context.Context, tripId string) ([]db_models.Expense, error) {
	return f.expensesFn(ctx, tripId)
}

func samplePlan() response_models.TripPlan {
	return response_models.TripPlan{
		Destination:    "Goa",
		Source:         "Mumbai",
		StartDate:      "2026-04-01",
		EndDate:        "2026-04-03",
		Currency:       "INR",
		CurrencySymbol: "₹",
		TotalBudget:    "₹6,000",
		PackingList:    []string{"sunscreen"},
		Days:           []response_models.DayPlan{{Day: 1, Title: "Arrival"}},
	}
}

func TestSaveTripFlattensPlan(t *testing.T) {
	var saved *db_models.Trip
	id := uuid.New()

	repo := &fakeTripRepo{saveFn: func(ctx context.Context, trip *db_models.Trip) (uuid.UUID, error) {
		saved = trip
		return id, nil
	}}

	got, err := NewTripService(repo).SaveTrip(context.Background(), "user-1", request_models.SaveTripRequest{Plan: samplePlan()})
	require.NoError(t, err)
	assert.Equal(t, id.String(), got)

	require.NotNil(t, saved)
	assert.Equal(t, "user-1", saved.UserID)
	assert.Equal(t, "Goa", saved.Destination)
	assert.Equal(t, "₹6,000", saved.TotalBudget)
	assert.InDelta(t, 6000, saved.BudgetAmount, 0.001)
	assert.Contains(t, saved.Plan, `"destination":"Goa"`)
}

func TestSaveTripRejectsEmptyPlan(t *testing.T) {
	repo := &fakeTripRepo{}
	svc := NewTripService(repo)

	plan := samplePlan()
	plan.Days = nil

	_, err := svc.SaveTrip(context.Background(), "user-1", request_models.SaveTripRequest{Plan: plan})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGetTripNotFound(t *testing.T) {
	repo := &fakeTripRepo{getFn: func(ctx context.Context, tripId, userId string) (*db_models.Trip, error) {
		return nil, nil
	}}

	_, err := NewTripService(repo).GetTrip(context.Background(), "user-1", uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestGetTripUnreadableDocument(t *testing.T) {
	repo := &fakeTripRepo{getFn: func(ctx context.Context, tripId, userId string) (*db_models.Trip, error) {
		return &db_models.Trip{Plan: "{not json"}, nil
	}}

	_, err := NewTripService(repo).GetTrip(context.Background(), "user-1", uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestDeleteTripMapsNotFound(t *testing.T) {
	repo := &fakeTripRepo{deleteFn: func(ctx context.Context, tripId, userId string) error {
		return gorm.ErrRecordNotFound
	}}

	err := NewTripService(repo).DeleteTrip(context.Background(), "user-1", uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestAddExpenseRejectsNonPositiveAmount(t *testing.T) {
	repo := &fakeTripRepo{}

	err := NewTripService(repo).AddExpense(context.Background(), "user-1", uuid.NewString(), request_models.AddExpenseRequest{
		Category: "food",
		Amount:   0,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestUpdateBudget(t *testing.T) {
	t.Run("persists a positive amount", func(t *testing.T) {
		var gotAmount float64
		repo := &fakeTripRepo{budgetFn: func(ctx context.Context, tripId, userId string, amount float64) error {
			gotAmount = amount
			return nil
		}}

		err := NewTripService(repo).UpdateBudget(context.Background(), "user-1", uuid.NewString(), request_models.UpdateBudgetRequest{
			BudgetAmount: 7500,
		})
		require.NoError(t, err)
		assert.InDelta(t, 7500, gotAmount, 0.001)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		repo := &fakeTripRepo{}
		err := NewTripService(repo).UpdateBudget(context.Background(), "user-1", uuid.NewString(), request_models.UpdateBudgetRequest{})
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	t.Run("maps missing trip", func(t *testing.T) {
		repo := &fakeTripRepo{budgetFn: func(ctx context.Context, tripId, userId string, amount float64) error {
			return gorm.ErrRecordNotFound
		}}
		err := NewTripService(repo).UpdateBudget(context.Background(), "user-1", uuid.NewString(), request_models.UpdateBudgetRequest{
			BudgetAmount: 100,
		})
		assert.ErrorIs(t, err, utils.ErrTripNotFound)
	})
}

func TestGetBudgetSummaryAggregates(t *testing.T) {
	tripId := uuid.New()
	repo := &fakeTripRepo{getFn: func(ctx context.Context, id, userId string) (*db_models.Trip, error) {
		return &db_models.Trip{
			BaseModel:      db_models.BaseModel{ID: tripId},
			Currency:       "INR",
			CurrencySymbol: "₹",
			BudgetAmount:   5000,
			Expenses: []db_models.Expense{
				{Category: "food", Amount: 1200},
				{Category: "food", Amount: 300},
				{Category: "transport", Amount: 500},
			},
		}, nil
	}}

	summary, err := NewTripService(repo).GetBudgetSummary(context.Background(), "user-1", tripId.String())
	require.NoError(t, err)

	assert.Equal(t, tripId.String(), summary.TripID)
	assert.InDelta(t, 2000, summary.TotalSpent, 0.001)
	assert.InDelta(t, 3000, summary.Remaining, 0.001)
	assert.InDelta(t, 40, summary.PercentUsed, 0.001)
	assert.InDelta(t, 1500, summary.ByCategory["food"], 0.001)
	assert.InDelta(t, 500, summary.ByCategory["transport"], 0.001)
	assert.Len(t, summary.Expenses, 3)
}
