package handlers

import (
	"net/http"
	"strconv"

	"restaurant-directory/repository"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns all restaurants with their city (public).
// Optional filters: ?search= matches the name, ?cityId= the city.
func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	filter := repository.RestaurantFilter{Search: c.Query("search")}
	if raw := c.Query("cityId"); raw != "" {
		cityID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid cityId"})
			return
		}
		filter.CityID = uint(cityID)
	}

	restaurants, err := h.restaurants.List(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// GetRestaurant returns a single restaurant with its city and menu
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	restaurant, err := h.restaurants.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// GetMenu returns the menu ordered by category, then name (public)
func (h *RestaurantHandler) GetMenu(c *gin.Context) {
	restaurantID, ok := paramID(c, "id")
	if !ok {
		return
	}
	items, err := h.menus.FindByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListCities returns every city
func (h *CityHandler) ListCities(c *gin.Context) {
	cities, err := h.cities.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// GetCity returns a single city
func (h *CityHandler) GetCity(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	city, err := h.cities.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}
