package models

// Restaurant as returned by GET /restaurants.
type Restaurant struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Cuisine     string  `json:"cuisine,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Image       string  `json:"image,omitempty"`
	IsOpen      bool    `json:"isOpen"`
	Description string  `json:"description,omitempty"`
}
