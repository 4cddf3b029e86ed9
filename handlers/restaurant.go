package handlers

import (
	"net/http"

	"restaurant-directory/models"
	"restaurant-directory/services"

	"github.com/gin-gonic/gin"
)

type AddressRequest struct {
	Street   string           `json:"street"`
	Number   string           `json:"number"`
	CityName string           `json:"cityName"`
	Location *models.Location `json:"location"`
}

// RestaurantRequest is shared by create and update. On update, omitted
// fields keep their stored value.
type RestaurantRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	ImageURL    *string         `json:"imageUrl"`
	Address     *AddressRequest `json:"address"`
}

func (r RestaurantRequest) input() services.RestaurantInput {
	in := services.RestaurantInput{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
	if r.Address != nil {
		in.Address = &services.AddressInput{
			Street:   r.Address.Street,
			Number:   r.Address.Number,
			CityName: r.Address.CityName,
			Location: r.Address.Location,
		}
	}
	return in
}

type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Category    string  `json:"category"`
}

type RestaurantHandler struct {
	restaurants *services.RestaurantService
	menus       *services.MenuService
}

func NewRestaurantHandler(restaurants *services.RestaurantService, menus *services.MenuService) *RestaurantHandler {
	return &RestaurantHandler{restaurants: restaurants, menus: menus}
}

// CreateRestaurant registers a restaurant, creating its city on first use
func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	var req RestaurantRequest
	if !bindJSON(c, &req) {
		return
	}

	restaurant, err := h.restaurants.Create(c.Request.Context(), req.input())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

// UpdateRestaurant applies the fields present in the body
func (h *RestaurantHandler) UpdateRestaurant(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req RestaurantRequest
	if !bindJSON(c, &req) {
		return
	}

	restaurant, err := h.restaurants.Update(c.Request.Context(), id, req.input())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// DeleteRestaurant removes a restaurant and its menu
func (h *RestaurantHandler) DeleteRestaurant(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.restaurants.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SaveMenu replaces the whole menu with the items in the body
func (h *RestaurantHandler) SaveMenu(c *gin.Context) {
	restaurantID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req []MenuItemRequest
	if !bindJSON(c, &req) {
		return
	}

	items := make([]services.MenuItemInput, 0, len(req))
	for _, it := range req {
		items = append(items, services.MenuItemInput{
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Category:    it.Category,
		})
	}

	saved, err := h.menus.BulkSave(c.Request.Context(), restaurantID, items)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}
