package handlers

import (
	"net/http"

	"restaurant-directory/services"

	"github.com/gin-gonic/gin"
)

type CityRequest struct {
	Name string `json:"name" binding:"required"`
}

type CityHandler struct {
	cities *services.CityService
}

func NewCityHandler(cities *services.CityService) *CityHandler {
	return &CityHandler{cities: cities}
}

// CreateCity adds a city
func (h *CityHandler) CreateCity(c *gin.Context) {
	var req CityRequest
	if !bindJSON(c, &req) {
		return
	}
	city, err := h.cities.Create(c.Request.Context(), req.Name)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, city)
}

// UpdateCity renames a city
func (h *CityHandler) UpdateCity(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req CityRequest
	if !bindJSON(c, &req) {
		return
	}
	city, err := h.cities.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

// DeleteCity removes a city no restaurant references
func (h *CityHandler) DeleteCity(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.cities.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
