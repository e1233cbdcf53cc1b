package request_models

type HotelSearchRequest struct {
	Location string `json:"location" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	Budget   string `json:"budget" binding:"required"`
	Currency string `json:"currency"`
}
