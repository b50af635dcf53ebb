package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"cafeapi/internal/models/request_models"
	"cafeapi/internal/services"
	"cafeapi/pkg/utils"
)

type CafeController struct {
	cafeService services.CafeServiceInterface
}

func NewCafeController(cafeService services.CafeServiceInterface) *CafeController {
	return &CafeController{
		cafeService: cafeService,
	}
}

// Home godoc
// @Summary Landing page
// @Produce html
// @Router / [get]
func (cc *CafeController) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// GetRandomCafe godoc
// @Summary Get a random cafe
// @Tags Cafes
// @Produce json
// @Success 200 {object} response_models.CafeResponse
// @Failure 404 {object} map[string]interface{}
// @Router /random [get]
func (cc *CafeController) GetRandomCafe(c *gin.Context) {
	cafe, err := cc.cafeService.GetRandom(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, "cafe", cafe)
}

// GetAllCafes godoc
// @Summary List every cafe
// @Tags Cafes
// @Produce json
// @Success 200 {array} response_models.CafeResponse
// @Router /all [get]
func (cc *CafeController) GetAllCafes(c *gin.Context) {
	cafes, err := cc.cafeService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, "cafes", cafes)
}

// SearchCafe godoc
// @Summary Find a cafe by exact location
// @Tags Cafes
// @Param location query string true "Location"
// @Produce json
// @Success 200 {object} response_models.CafeResponse
// @Failure 404 {object} map[string]interface{}
// @Router /search [get]
func (cc *CafeController) SearchCafe(c *gin.Context) {
	location := c.Query("location")

	cafe, err := cc.cafeService.SearchByLocation(c.Request.Context(), location)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondData(c, "cafe", cafe)
}

// AddCafe godoc
// @Summary Add a cafe
// @Tags Cafes
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /add [post]
func (cc *CafeController) AddCafe(c *gin.Context) {
	// binding.Form reads both the query string and a form-encoded body.
	var req request_models.AddCafeRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidCafe)
		return
	}

	if err := cc.cafeService.AddCafe(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, "Successfully added the new cafe.")
}

// UpdatePrice godoc
// @Summary Update the coffee price of a cafe
// @Tags Cafes
// @Param id path int true "Cafe ID"
// @Param new_price query string false "New price"
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /update-price/{id} [patch]
func (cc *CafeController) UpdatePrice(c *gin.Context) {
	id, ok := cafeID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrCafeNotFound)
		return
	}

	var newPrice *string
	if price, ok := c.GetQuery("new_price"); ok {
		newPrice = &price
	}

	if err := cc.cafeService.UpdatePrice(c.Request.Context(), id, newPrice); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, "Successfully updated the price")
}

// ReportClosed godoc
// @Summary Delete a cafe that has closed
// @Tags Cafes
// @Param id path int true "Cafe ID"
// @Param api-key query string true "Shared secret"
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /report-closed/{id} [delete]
func (cc *CafeController) ReportClosed(c *gin.Context) {
	id, ok := cafeID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrCafeNotFound)
		return
	}

	if err := cc.cafeService.DeleteCafe(c.Request.Context(), id, c.Query("api-key")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, "Successfully deleted the cafe from the database")
}

// Health reports whether the database is reachable.
func (cc *CafeController) Health(c *gin.Context) {
	if err := cc.cafeService.Healthy(c.Request.Context()); err != nil {
		c.String(http.StatusServiceUnavailable, "unavailable")
		return
	}
	c.String(http.StatusOK, "ok")
}

func cafeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
