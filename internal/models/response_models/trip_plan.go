package response_models

// TripPlan is the validated, cost-annotated itinerary returned by the
// planner. JSON tags mirror the schema the completion model is instructed to
// emit, so the extracted document unmarshals straight into this type.
type TripPlan struct {
	Destination    string     `json:"destination"`
	Source         string     `json:"source"`
	StartDate      string     `json:"startDate"`
	EndDate        string     `json:"endDate"`
	Currency       string     `json:"currency"`
	CurrencySymbol string     `json:"currencySymbol"`
	Summary        string     `json:"summary"`
	TravelInfo     TravelInfo `json:"travelInfo"`
	Days           []DayPlan  `json:"days"`
	PackingList    []string   `json:"packingList"`
	TotalBudget    string     `json:"totalBudget"`
}

type TravelInfo struct {
	From                string `json:"from"`
	To                  string `json:"to"`
	RecommendedMode     string `json:"recommendedMode"`
	EstimatedTicketCost string `json:"estimatedTicketCost"`
	TravelDuration      string `json:"travelDuration"`
	Tips                string `json:"tips"`
}

type DayPlan struct {
	Day           int      `json:"day"`
	Date          string   `json:"date"`
	Title         string   `json:"title"`
	Summary       string   `json:"summary"`
	Morning       Activity `json:"morning"`
	Afternoon     Activity `json:"afternoon"`
	Evening       Activity `json:"evening"`
	Meals         Meals    `json:"meals"`
	Tips          []string `json:"tips"`
	EstimatedCost string   `json:"estimatedCost,omitempty"`
}

type Activity struct {
	Activity      string `json:"activity"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	Duration      string `json:"duration"`
	EstimatedCost string `json:"estimatedCost,omitempty"`
}

type Meals struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

// DayCostBreakdown is the fixed shape requested by the per-day cost prompt.
type DayCostBreakdown struct {
	MorningCost   string `json:"morningCost"`
	AfternoonCost string `json:"afternoonCost"`
	EveningCost   string `json:"eveningCost"`
	TotalDayCost  string `json:"totalDayCost"`
}
