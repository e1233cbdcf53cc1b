package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tripwise/internal/models/response_models"
)

func TestBuildPlanPrompt(t *testing.T) {
	prompts := NewPromptService()

	req := TripRequest{
		Destination:    "Goa, India",
		Source:         "Mumbai",
		StartDate:      time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
		NumDays:        3,
		Currency:       "INR",
		CurrencySymbol: "₹",
		BudgetAmount:   5000,
	}

	prompt := prompts.BuildPlanPrompt(req)

	assert.Contains(t, prompt, `Create a 3-day travel plan for "Goa, India" from Mumbai`)
	assert.Contains(t, prompt, "Dates: 2026-04-01 to 2026-04-03")
	assert.Contains(t, prompt, "Currency: INR (₹)")
	assert.Contains(t, prompt, "Budget: ₹5000")
	assert.Contains(t, prompt, `"budgetAmount": 5000`)
	assert.Contains(t, prompt, "Return ONLY valid JSON")
	assert.Contains(t, prompt, `Generate exactly 3 entries in "days"`)
}

func TestBuildPlanPromptWithoutBudgetOrSource(t *testing.T) {
	prompts := NewPromptService()

	req := TripRequest{
		Destination:    "Tokyo, Japan",
		StartDate:      time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		NumDays:        1,
		Currency:       "JPY",
		CurrencySymbol: "¥",
	}

	prompt := prompts.BuildPlanPrompt(req)

	assert.Contains(t, prompt, `Create a 1-day travel plan for "Tokyo, Japan".`)
	assert.NotContains(t, prompt, "Budget:")
	assert.Contains(t, prompt, `"budgetAmount": 0`)
}

func TestBuildCostPrompt(t *testing.T) {
	prompts := NewPromptService()

	day := response_models.DayPlan{
		Day: 2,
		Morning: response_models.Activity{
			Activity: "Beach walk",
			Location: "Baga Beach",
		},
		Afternoon: response_models.Activity{
			Activity: "Fort visit",
			Location: "Fort Aguada",
		},
		Evening: response_models.Activity{
			Activity: "Night market",
			Location: "Arpora",
		},
	}

	prompt := prompts.BuildCostPrompt(day, "Goa", "INR", "₹")

	assert.Contains(t, prompt, "day 2 of a trip to Goa")
	assert.Contains(t, prompt, "INR (₹)")
	assert.Contains(t, prompt, "Morning: Beach walk at Baga Beach")
	assert.Contains(t, prompt, "Afternoon: Fort visit at Fort Aguada")
	assert.Contains(t, prompt, "Evening: Night market at Arpora")
	assert.Contains(t, prompt, `"totalDayCost": "₹XXX"`)
}
