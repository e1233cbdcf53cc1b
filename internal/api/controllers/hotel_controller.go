package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type HotelController struct {
	hotelService services.HotelServiceInterface
}

func NewHotelController(hotelService services.HotelServiceInterface) *HotelController {
	return &HotelController{
		hotelService: hotelService,
	}
}

// SearchHotels godoc
// @Summary Search hotels by location and nightly budget
// @Description Find real hotels in a location ranked by budget fit and rating
// @Tags Hotels
// @Accept json
// @Produce json
// @Param request body request_models.HotelSearchRequest true "Location, dates, nightly budget and currency"
// @Success 200 {object} response_models.HotelSearchResult
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /hotels/search [post]
func (h *HotelController) SearchHotels(c *gin.Context) {
	var req request_models.HotelSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Location, check_in, check_out and budget are required")
		return
	}

	result, err := h.hotelService.SearchHotels(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Hotels fetched successfully")
}
