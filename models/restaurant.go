package models

import "time"

// DefaultMenuCategory is stored when a menu item arrives without a category.
const DefaultMenuCategory = "General"

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Address struct {
	Street   string   `json:"street"`
	Number   string   `json:"number"`
	Location Location `json:"location" gorm:"embedded;embeddedPrefix:location_"`
}

type City struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"uniqueIndex;not null"`
	Restaurants []Restaurant `json:"restaurants,omitempty" gorm:"foreignKey:CityID"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type Restaurant struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description" gorm:"type:text"`
	ImageURL    string     `json:"imageUrl"`
	Address     Address    `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	CityID      *uint      `json:"cityId"`
	City        *City      `json:"city,omitempty" gorm:"foreignKey:CityID"`
	MenuItems   []MenuItem `json:"menuItems,omitempty" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// MenuItem names are unique per restaurant.
type MenuItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurantId" gorm:"not null;uniqueIndex:idx_menu_restaurant_name"`
	Name         string    `json:"name" gorm:"not null;uniqueIndex:idx_menu_restaurant_name"`
	Description  *string   `json:"description" gorm:"type:text"`
	Price        float64   `json:"price" gorm:"not null"`
	Category     string    `json:"category" gorm:"not null;default:'General'"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
