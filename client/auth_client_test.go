package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hitesh009911/grub-stack-00-sub001/models"
)

func TestMapRoles(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  models.Role
	}{
		{"owner", []string{"OWNER"}, models.RoleRestaurant},
		{"delivery agent", []string{"DELIVERY_AGENT"}, models.RoleDelivery},
		{"admin", []string{"ADMIN"}, models.RoleAdmin},
		{"customer", []string{"CUSTOMER"}, models.RoleCustomer},
		{"empty", []string{}, models.RoleCustomer},
		{"nil", nil, models.RoleCustomer},
		{"unmatched", []string{"SUPPORT"}, models.RoleCustomer},
		{"owner wins over admin", []string{"ADMIN", "RESTAURANT_OWNER"}, models.RoleRestaurant},
		{"delivery wins over admin", []string{"ADMIN", "DELIVERY"}, models.RoleDelivery},
		{"lowercase", []string{"owner"}, models.RoleRestaurant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapRoles(tt.roles); got != tt.want {
				t.Errorf("MapRoles(%v) = %s, want %s", tt.roles, got, tt.want)
			}
		})
	}
}

func TestBackendRole(t *testing.T) {
	tests := []struct {
		role models.Role
		want string
	}{
		{models.RoleRestaurant, "OWNER"},
		{models.RoleDelivery, "DELIVERY"},
		{models.RoleCustomer, "CUSTOMER"},
		{models.RoleAdmin, "CUSTOMER"},
	}

	for _, tt := range tests {
		if got := BackendRole(tt.role); got != tt.want {
			t.Errorf("BackendRole(%s) = %s, want %s", tt.role, got, tt.want)
		}
	}
}

func TestAuthClient_LoginErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantMsg    string
	}{
		{"unauthorized", http.StatusUnauthorized, `{}`, "Invalid email or password"},
		{"server error", http.StatusInternalServerError, `{}`, "Server error, please try again later"},
		{"carried message", http.StatusForbidden, `{"message":"Account locked"}`, "Account locked"},
		{"opaque failure", http.StatusBadGateway, `<html>gateway</html>`, "Unable to reach the server"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer backend.Close()

			ac := NewAuthClient(backend.URL)
			_, err := ac.Login("user@example.com", "pw")
			if err == nil {
				t.Fatal("expected error")
			}
			authErr, ok := err.(*AuthError)
			if !ok {
				t.Fatalf("expected *AuthError, got %T", err)
			}
			if authErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", authErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestAuthClient_LoginNetworkFailure(t *testing.T) {
	// Closed server: connection refused.
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	ac := NewAuthClient(backend.URL)
	_, err := ac.Login("user@example.com", "pw")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Unable to reach the server" {
		t.Errorf("message = %q, want generic connectivity failure", err.Error())
	}
}

func TestAuthClient_LoginSuccess(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"id":42,"email":"owner@resto.com","fullName":"Resto Owner","roles":["RESTAURANT_OWNER"]}`))
	}))
	defer backend.Close()

	ac := NewAuthClient(backend.URL)
	user, err := ac.Login("owner@resto.com", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 42 || user.Name != "Resto Owner" || user.Role != models.RoleRestaurant {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestAuthClient_RegisterErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantMsg    string
	}{
		{"conflict", http.StatusConflict, "An account with this email already exists"},
		{"bad request", http.StatusBadRequest, "Invalid registration data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(`{}`))
			}))
			defer backend.Close()

			ac := NewAuthClient(backend.URL)
			_, err := ac.Register(RegisterRequest{Email: "a@b.c", Password: "pw", FullName: "A"})
			if err == nil || err.Error() != tt.wantMsg {
				t.Errorf("error = %v, want %q", err, tt.wantMsg)
			}
		})
	}
}
