package domain

import "time"

// Address is a delivery location owned by a single user.
type Address struct {
	ID           string    `json:"id"`
	Street       string    `json:"street"`
	BuildingName string    `json:"building_name"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	Pincode      string    `json:"pincode"`
	Owner        string    `json:"owner"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
