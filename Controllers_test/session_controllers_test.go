package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/hitesh009911/grub-stack-00-sub001/client"
	"github.com/hitesh009911/grub-stack-00-sub001/controllers"
	"github.com/hitesh009911/grub-stack-00-sub001/middlewares"
	"github.com/hitesh009911/grub-stack-00-sub001/models"
	"github.com/hitesh009911/grub-stack-00-sub001/stores"
	"github.com/hitesh009911/grub-stack-00-sub001/utils"
)

func setupAuthBackend(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			var body struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			if body.Password != "correct-horse" {
				http.Error(w, `{}`, http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`{"id":3,"email":"jo@example.com","fullName":"Jo","roles":["CUSTOMER"]}`))
		case "/auth/register":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":8,"email":"owner@resto.com","fullName":"Resto Owner","roles":["OWNER"]}`))
		default:
			http.NotFound(w, r)
		}
	}))
}

func setupSessionRouter(t *testing.T, backendURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	sessions := stores.NewSessionStore(setupTestDBForCart(t), client.NewAuthClient(backendURL))
	sessionCtrl := controllers.NewSessionController(sessions)

	router.POST("/auth/login", sessionCtrl.Login)
	router.POST("/auth/register", sessionCtrl.Register)
	authed := router.Group("/", middlewares.AuthMiddleware())
	authed.POST("/auth/logout", sessionCtrl.Logout)
	authed.GET("/auth/profile", sessionCtrl.GetProfile)
	authed.PATCH("/auth/profile", sessionCtrl.UpdateProfile)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, url string, payload interface{}) *httptest.ResponseRecorder {
	data, err := json.Marshal(payload)
	assert.NoError(t, err)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(data))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSessionLoginSuccess(t *testing.T) {
	backend := setupAuthBackend(t)
	defer backend.Close()
	router := setupSessionRouter(t, backend.URL)

	w := postJSON(t, router, "/auth/login", map[string]string{
		"email":    "jo@example.com",
		"password": "correct-horse",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string      `json:"token"`
			User  models.User `json:"user"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Token)
	assert.Equal(t, models.RoleCustomer, resp.Data.User.Role)

	// The issued token is accepted by the local auth middleware.
	claims, err := utils.ParseToken(resp.Data.Token)
	assert.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
	assert.Equal(t, "customer", claims.Role)
}

func TestSessionLoginInvalidCredentials(t *testing.T) {
	backend := setupAuthBackend(t)
	defer backend.Close()
	router := setupSessionRouter(t, backend.URL)

	w := postJSON(t, router, "/auth/login", map[string]string{
		"email":    "jo@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp utils.JSONResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid email or password", resp.Message)
}

func TestSessionRegisterMapsOwnerRole(t *testing.T) {
	backend := setupAuthBackend(t)
	defer backend.Close()
	router := setupSessionRouter(t, backend.URL)

	w := postJSON(t, router, "/auth/register", map[string]string{
		"email":     "owner@resto.com",
		"password":  "pw",
		"full_name": "Resto Owner",
		"role":      "restaurant",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			User models.User `json:"user"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.RoleRestaurant, resp.Data.User.Role)
}

func TestSessionProfileRoundTrip(t *testing.T) {
	backend := setupAuthBackend(t)
	defer backend.Close()
	router := setupSessionRouter(t, backend.URL)

	w := postJSON(t, router, "/auth/login", map[string]string{
		"email":    "jo@example.com",
		"password": "correct-horse",
	})
	var login struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	patch, _ := json.Marshal(map[string]string{"phone": "555-0101"})
	req, _ := http.NewRequest("PATCH", "/auth/profile", bytes.NewBuffer(patch))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+login.Data.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+login.Data.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		Data models.User `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "555-0101", profile.Data.Phone)
}
