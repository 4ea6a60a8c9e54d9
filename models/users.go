package models

// Role is the single client-side role a signed-in user acts as.
// The auth backend may attach several role strings to an account;
// the client collapses them to exactly one of these.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
	RoleDelivery   Role = "delivery"
	RoleAdmin      Role = "admin"
)

// User is the authenticated identity held by the session store.
// Created on login/register, replaced wholesale on update,
// destroyed on logout.
type User struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    Role   `json:"role"`
	Phone   string `json:"phone,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
	Address string `json:"address,omitempty"`
}
