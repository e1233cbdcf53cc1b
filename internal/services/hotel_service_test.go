package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/internal/models/request_models"
	"tripwise/pkg/llm"
	mem "tripwise/pkg/memcache"
	"tripwise/pkg/utils"
)

func newHotelWithFake(fake *fakeClient) HotelServiceInterface {
	return NewHotelService(fake, mem.NewSearchCache(), llm.Config{Model: "test-model"})
}

func hotelRequest() request_models.HotelSearchRequest {
	return request_models.HotelSearchRequest{
		Location: "Goa, India",
		CheckIn:  "2026-04-01",
		CheckOut: "2026-04-03",
		Budget:   "1000",
		Currency: "INR",
	}
}

func TestSearchHotelsRanksByBudgetFit(t *testing.T) {
	fake := &fakeClient{respond: func(prompt string) (string, error) {
		return `{
			"hotels": [
				{"name": "Taj Holiday Village", "price": "₹2000/night", "rating": "4.8/5", "amenities": ["pool"]},
				{"name": "Ginger Panaji", "price": "₹400/night", "rating": "4.0/5", "amenities": ["wifi"]},
				{"name": "Lemon Tree Amarante", "price": "₹900/night", "rating": "4.2/5", "amenities": ["pool", "wifi"]}
			]
		}`, nil
	}}

	result, err := newHotelWithFake(fake).SearchHotels(context.Background(), hotelRequest())
	require.NoError(t, err)
	require.Len(t, result.Hotels, 3)

	// 900/1000 is the best fit, 400 is well under, 2000 is double
	assert.Equal(t, "Lemon Tree Amarante", result.Hotels[0].Name)
	assert.Equal(t, "Ginger Panaji", result.Hotels[1].Name)
	assert.Equal(t, "Taj Holiday Village", result.Hotels[2].Name)

	assert.Equal(t, "high", result.Hotels[0].BudgetRelevance)
	assert.Equal(t, "low", result.Hotels[1].BudgetRelevance)
	assert.Equal(t, "low", result.Hotels[2].BudgetRelevance)

	for _, h := range result.Hotels {
		assert.Contains(t, h.BookingLink, "https://www.google.com/maps/search/?api=1&query=")
	}
}

func TestSearchHotelsBreaksTiesByRating(t *testing.T) {
	fake := &fakeClient{respond: func(prompt string) (string, error) {
		return `{
			"hotels": [
				{"name": "Hotel Mandovi", "price": "₹900/night", "rating": "3.9/5"},
				{"name": "Vivanta Panaji", "price": "₹950/night", "rating": "4.5/5"}
			]
		}`, nil
	}}

	result, err := newHotelWithFake(fake).SearchHotels(context.Background(), hotelRequest())
	require.NoError(t, err)
	require.Len(t, result.Hotels, 2)
	assert.Equal(t, "Vivanta Panaji", result.Hotels[0].Name)
}

func TestSearchHotelsDeduplicatesNames(t *testing.T) {
	fake := &fakeClient{respond: func(prompt string) (string, error) {
		return `{
			"hotels": [
				{"name": "Lemon Tree Amarante", "price": "₹900/night", "rating": "4.2/5"},
				{"name": "LEMON TREE AMARANTE", "price": "₹850/night", "rating": "4.1/5"}
			]
		}`, nil
	}}

	result, err := newHotelWithFake(fake).SearchHotels(context.Background(), hotelRequest())
	require.NoError(t, err)
	assert.Len(t, result.Hotels, 1)
}

func TestSearchHotelsFiltersPlaceholders(t *testing.T) {
	fake := &fakeClient{respond: func(prompt string) (string, error) {
		return `{
			"hotels": [
				{"name": "Test Hotel", "price": "₹800/night", "rating": "4.9/5"},
				{"name": "Hotel ABC", "price": "₹900/night", "rating": "4.8/5"},
				{"name": "Budget Inn Deluxe", "price": "₹700/night", "rating": "4.7/5"},
				{"name": "", "price": "₹600/night", "rating": "4.0/5"},
				{"name": "Ginger Panaji", "price": "₹900/night", "rating": "4.0/5"}
			]
		}`, nil
	}}

	result, err := newHotelWithFake(fake).SearchHotels(context.Background(), hotelRequest())
	require.NoError(t, err)
	require.Len(t, result.Hotels, 1)
	assert.Equal(t, "Ginger Panaji", result.Hotels[0].Name)
}

func TestSearchHotelsCachesResults(t *testing.T) {
	calls := 0
	fake := &fakeClient{respond: func(prompt string) (string, error) {
		calls++
		return `{"hotels": [{"name": "Ginger Panaji", "price": "₹900/night", "rating": "4.0/5"}]}`, nil
	}}

	svc := newHotelWithFake(fake)
	first, err := svc.SearchHotels(context.Background(), hotelRequest())
	require.NoError(t, err)

	second, err := svc.SearchHotels(context.Background(), hotelRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first.Hotels, second.Hotels)
}

func TestSearchHotelsIncludesStayDates(t *testing.T) {
	fake := &fakeClient{respond: func(prompt string) (string, error) {
		return `{"hotels": [{"name": "Ginger Panaji", "price": "₹900/night", "rating": "4.0/5"}]}`, nil
	}}

	svc := newHotelWithFake(fake)
	_, err := svc.SearchHotels(context.Background(), hotelRequest())
	require.NoError(t, err)

	require.Len(t, fake.prompts, 1)
	assert.Contains(t, fake.prompts[0], "check-in 2026-04-01")
	assert.Contains(t, fake.prompts[0], "check-out 2026-04-03")

	// same location and budget on different dates is a different search
	changed := hotelRequest()
	changed.CheckIn = "2026-05-01"
	changed.CheckOut = "2026-05-03"
	_, err = svc.SearchHotels(context.Background(), changed)
	require.NoError(t, err)
	assert.Len(t, fake.prompts, 2)
}

func TestSearchHotelsEmptyResultMessage(t *testing.T) {
	fake := &fakeClient{respond: func(prompt string) (string, error) {
		return `{"hotels": []}`, nil
	}}

	result, err := newHotelWithFake(fake).SearchHotels(context.Background(), hotelRequest())
	require.NoError(t, err)
	assert.Empty(t, result.Hotels)
	assert.Equal(t, "No hotels found within your budget. Please increase your budget amount.", result.Message)
}

func TestSearchHotelsValidation(t *testing.T) {
	fake := &fakeClient{respond: func(prompt string) (string, error) {
		return "", errors.New("no completion call expected")
	}}
	svc := newHotelWithFake(fake)

	t.Run("missing location", func(t *testing.T) {
		req := hotelRequest()
		req.Location = " "
		_, err := svc.SearchHotels(context.Background(), req)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	t.Run("free-text budget", func(t *testing.T) {
		req := hotelRequest()
		req.Budget = "cheap"
		_, err := svc.SearchHotels(context.Background(), req)
		assert.ErrorIs(t, err, utils.ErrInvalidBudget)
	})

	t.Run("budget below nightly floor", func(t *testing.T) {
		req := hotelRequest()
		req.Budget = "400"
		_, err := svc.SearchHotels(context.Background(), req)
		require.ErrorIs(t, err, utils.ErrBudgetTooLow)
		assert.Contains(t, err.Error(), "₹500")
	})

	t.Run("unsupported currency", func(t *testing.T) {
		req := hotelRequest()
		req.Currency = "XYZ"
		_, err := svc.SearchHotels(context.Background(), req)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})
}
