package response_models

// HotelSearchResult is the document shape requested from the completion
// model by the hotel search prompt.
type HotelSearchResult struct {
	Hotels  []Hotel `json:"hotels"`
	Message string  `json:"message,omitempty"`
}

type Hotel struct {
	Name            string   `json:"name"`
	Price           string   `json:"price"`
	Rating          string   `json:"rating"`
	Amenities       []string `json:"amenities"`
	BudgetRelevance string   `json:"budgetRelevance"`
	BookingLink     string   `json:"bookingLink,omitempty"`
}
