package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/jsonrepair"
	"tripwise/pkg/llm"
	mem "tripwise/pkg/memcache"
	"tripwise/pkg/utils"
)

const (
	hotelMaxTokens = 4000
	hotelCacheTTL  = 15 * time.Minute
)

// Floors below which no real accommodation exists; requests under them are
// rejected up front instead of wasting a completion call.
var minNightlyBudget = map[string]float64{
	"INR": 500,
	"USD": 20,
	"EUR": 15,
}

// Generated hotel lists occasionally contain placeholder names; these are
// filtered out before ranking.
var suspiciousHotelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(test|fake|demo|sample)\b`),
	regexp.MustCompile(`(?i)\b(hotel\s+abc|hotel\s+xyz|hotel\s+123)\b`),
	regexp.MustCompile(`(?i)\b(cheap\s+hotel|budget\s+inn)\b`),
}

type HotelServiceInterface interface {
	SearchHotels(ctx context.Context, req request_models.HotelSearchRequest) (*response_models.HotelSearchResult, error)
}

type HotelService struct {
	client llm.Client
	cache  mem.HotelSearchCache
	model  string
}

func NewHotelService(client llm.Client, cache mem.HotelSearchCache, cfg llm.Config) HotelServiceInterface {
	return &HotelService{
		client: client,
		cache:  cache,
		model:  cfg.Model,
	}
}

func (s *HotelService) SearchHotels(ctx context.Context, req request_models.HotelSearchRequest) (*response_models.HotelSearchResult, error) {
	location := strings.TrimSpace(req.Location)
	if location == "" {
		return nil, fmt.Errorf("%w: location is required", utils.ErrInvalidInput)
	}

	budget, err := utils.ParseBudget(req.Budget)
	if err != nil || budget <= 0 {
		return nil, fmt.Errorf("%w: budget must be a positive number", utils.ErrInvalidBudget)
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = utils.CurrencyFromLocation(location)
	}
	if !utils.IsSupportedCurrency(currency) {
		return nil, fmt.Errorf("%w: unsupported currency %q", utils.ErrInvalidInput, req.Currency)
	}
	symbol := utils.CurrencySymbol(currency)

	if floor, ok := minNightlyBudget[currency]; ok && budget < floor {
		return nil, fmt.Errorf("%w: minimum recommended budget is %s%.0f per night", utils.ErrBudgetTooLow, symbol, floor)
	}

	checkIn := strings.TrimSpace(req.CheckIn)
	checkOut := strings.TrimSpace(req.CheckOut)

	cacheKey := strings.Join([]string{
		strings.ToLower(location), checkIn, checkOut,
		strconv.FormatFloat(budget, 'f', -1, 64), currency,
	}, "|")
	if cached, ok := s.cache.Get(cacheKey); ok {
		log.Printf("hotel search cache hit for %s", location)
		return cached, nil
	}

	prompt := buildHotelPrompt(location, checkIn, checkOut, budget, symbol)
	raw, err := s.client.Complete(ctx, s.model, prompt, hotelMaxTokens)
	if err != nil {
		return nil, err
	}

	doc, err := jsonrepair.Extract(raw)
	if err != nil {
		return nil, err
	}

	var result response_models.HotelSearchResult
	if err := json.Unmarshal(doc, &result); err != nil {
		return nil, &utils.ExtractionError{Raw: raw}
	}

	if len(result.Hotels) == 0 {
		if result.Message == "" {
			result.Message = "No hotels found within your budget. Please increase your budget amount."
		}
		return &result, nil
	}

	result.Hotels = rankHotels(filterSuspicious(result.Hotels), budget, location)
	s.cache.Set(cacheKey, &result, hotelCacheTTL)

	return &result, nil
}

func buildHotelPrompt(location string, checkIn string, checkOut string, budget float64, symbol string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Find REAL, VERIFIABLE hotels that actually exist in %s across different price ranges.\n", location)
	if checkIn != "" && checkOut != "" {
		fmt.Fprintf(&b, "Stay: check-in %s, check-out %s.\n", checkIn, checkOut)
	}
	b.WriteString("\nREQUIREMENTS:\n")
	fmt.Fprintf(&b, "1. Find hotels within %s%.0f per night maximum budget\n", symbol, budget)
	b.WriteString("2. Include hotels from ALL price ranges: BUDGET, MID-RANGE, and LUXURY\n")
	b.WriteString("3. Each hotel must physically exist and be verifiable on Google Maps\n")
	b.WriteString("4. Provide 8-12 hotel options total, distributed across price ranges\n\n")
	b.WriteString("For each hotel, provide the exact real name, a realistic price within budget, a rating out of 5, key amenities, and the price range it belongs to.\n")
	b.WriteString("If no hotels are found within budget, suggest increasing the budget in \"message\".\n\n")
	b.WriteString("Return ONLY valid JSON:\n")
	fmt.Fprintf(&b, `{
  "hotels": [
    {
      "name": "EXACT REAL HOTEL NAME",
      "price": "%sXXX/night",
      "rating": "X.X/5",
      "amenities": ["wifi", "pool", "gym", "restaurant"],
      "budgetRelevance": "budget/mid-range/luxury"
    }
  ],
  "message": "Optional message about availability"
}`, symbol)

	return b.String()
}

func filterSuspicious(hotels []response_models.Hotel) []response_models.Hotel {
	var kept []response_models.Hotel
	for _, h := range hotels {
		name := strings.TrimSpace(h.Name)
		if name == "" {
			continue
		}
		suspicious := false
		for _, pattern := range suspiciousHotelPatterns {
			if pattern.MatchString(name) {
				suspicious = true
				break
			}
		}
		if !suspicious {
			kept = append(kept, h)
		}
	}
	return kept
}

// rankHotels sorts by budget fit first and rating second, removes duplicate
// names, relabels budgetRelevance from the actual fit, and attaches a maps
// link per hotel.
func rankHotels(hotels []response_models.Hotel, budget float64, location string) []response_models.Hotel {
	sort.SliceStable(hotels, func(i, j int) bool {
		si, sj := budgetRelevanceScore(hotels[i].Price, budget), budgetRelevanceScore(hotels[j].Price, budget)
		if si != sj {
			return si > sj
		}
		return ratingValue(hotels[i].Rating) > ratingValue(hotels[j].Rating)
	})

	seen := make(map[string]bool)
	var out []response_models.Hotel
	for _, h := range hotels {
		key := strings.ToLower(h.Name)
		if seen[key] {
			continue
		}
		seen[key] = true

		switch score := budgetRelevanceScore(h.Price, budget); {
		case score == 5:
			h.BudgetRelevance = "high"
		case score >= 3:
			h.BudgetRelevance = "medium"
		default:
			h.BudgetRelevance = "low"
		}

		h.BookingLink = "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(h.Name+" "+location)
		out = append(out, h)
	}
	return out
}

// budgetRelevanceScore grades how well a nightly price fits the budget: 5 is
// a perfect fit, 0 is far over.
func budgetRelevanceScore(price string, budget float64) int {
	amount, ok := utils.ParseAmount(price)
	if !ok || budget <= 0 {
		return 0
	}

	ratio := amount / budget
	switch {
	case ratio <= 0.5:
		return 2
	case ratio <= 0.8:
		return 4
	case ratio <= 1.0:
		return 5
	case ratio <= 1.3:
		return 3
	case ratio <= 2.0:
		return 1
	default:
		return 0
	}
}

func ratingValue(rating string) float64 {
	head, _, _ := strings.Cut(rating, "/")
	v, err := strconv.ParseFloat(strings.TrimSpace(head), 64)
	if err != nil {
		return 0
	}
	return v
}
