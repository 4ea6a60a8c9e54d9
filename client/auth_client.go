package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/hitesh009911/grub-stack-00-sub001/models"
)

// AuthError is the single error kind surfaced to callers of the auth
// client. Its message is user-readable and never carries the raw
// backend payload.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// AuthClient wraps the identity backend.
type AuthClient struct {
	*Client
}

func NewAuthClient(baseURL string) *AuthClient {
	return &AuthClient{Client: New(baseURL)}
}

type authResponse struct {
	ID       uint     `json:"id"`
	Email    string   `json:"email"`
	FullName string   `json:"fullName"`
	Roles    []string `json:"roles"`
}

// RegisterRequest is the client-side registration form.
type RegisterRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	FullName string      `json:"fullName"`
	Role     models.Role `json:"role"`
	Address  string      `json:"address"`
}

// Login authenticates against the identity backend and returns the
// normalized user. Failure mapping: 401 invalid credentials, 500
// server error, a response-carried message if present, otherwise a
// generic connectivity failure.
func (ac *AuthClient) Login(email, password string) (*models.User, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	body, err := ac.doJSON(http.MethodPost, "/auth/login", payload)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			switch apiErr.StatusCode {
			case http.StatusUnauthorized:
				return nil, &AuthError{Message: "Invalid email or password"}
			case http.StatusInternalServerError:
				return nil, &AuthError{Message: "Server error, please try again later"}
			}
			if msg := apiErr.message(); msg != "" {
				return nil, &AuthError{Message: msg}
			}
		}
		return nil, &AuthError{Message: "Unable to reach the server"}
	}

	return decodeUser(body)
}

// Register creates an account. The client role is translated to the
// backend role string before sending.
func (ac *AuthClient) Register(req RegisterRequest) (*models.User, error) {
	payload := map[string]interface{}{
		"email":    req.Email,
		"password": req.Password,
		"fullName": req.FullName,
		"roles":    []string{BackendRole(req.Role)},
		"address":  req.Address,
	}

	body, err := ac.doJSON(http.MethodPost, "/auth/register", payload)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			switch apiErr.StatusCode {
			case http.StatusConflict:
				return nil, &AuthError{Message: "An account with this email already exists"}
			case http.StatusBadRequest:
				return nil, &AuthError{Message: "Invalid registration data"}
			}
			if msg := apiErr.message(); msg != "" {
				return nil, &AuthError{Message: msg}
			}
		}
		return nil, &AuthError{Message: "Unable to reach the server"}
	}

	return decodeUser(body)
}

func decodeUser(body []byte) (*models.User, error) {
	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &AuthError{Message: "Unable to reach the server"}
	}

	return &models.User{
		ID:    resp.ID,
		Email: resp.Email,
		Name:  resp.FullName,
		Role:  MapRoles(resp.Roles),
	}, nil
}

// MapRoles collapses the backend's role strings to exactly one client
// role by checking substrings in priority order: owner, then delivery,
// then admin, default customer.
func MapRoles(roles []string) models.Role {
	contains := func(sub string) bool {
		for _, r := range roles {
			if strings.Contains(strings.ToLower(r), sub) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("owner"):
		return models.RoleRestaurant
	case contains("delivery"):
		return models.RoleDelivery
	case contains("admin"):
		return models.RoleAdmin
	default:
		return models.RoleCustomer
	}
}

// BackendRole is the reverse mapping used at registration time.
func BackendRole(role models.Role) string {
	switch role {
	case models.RoleRestaurant:
		return "OWNER"
	case models.RoleDelivery:
		return "DELIVERY"
	default:
		return "CUSTOMER"
	}
}
