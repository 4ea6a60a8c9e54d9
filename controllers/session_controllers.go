package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hitesh009911/grub-stack-00-sub001/client"
	"github.com/hitesh009911/grub-stack-00-sub001/models"
	"github.com/hitesh009911/grub-stack-00-sub001/stores"
	"github.com/hitesh009911/grub-stack-00-sub001/utils"
)

type SessionController struct {
	Sessions *stores.SessionStore
}

func NewSessionController(sessions *stores.SessionStore) *SessionController {
	return &SessionController{Sessions: sessions}
}

// Login -> authenticate against the identity backend, persist the
// session and hand the UI a local token.
func (sc *SessionController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := sc.Sessions.Login(input.Email, input.Password)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Register -> create an account and sign in as it.
func (sc *SessionController) Register(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		FullName string `json:"full_name" binding:"required"`
		Role     string `json:"role"`
		Address  string `json:"address"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := sc.Sessions.Register(client.RegisterRequest{
		Email:    input.Email,
		Password: input.Password,
		FullName: input.FullName,
		Role:     models.Role(input.Role),
		Address:  input.Address,
	})
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Email, user.Role)

	utils.RespondJSON(c, http.StatusCreated, "User registered", gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout -> clear the session and its persisted copy.
func (sc *SessionController) Logout(c *gin.Context) {
	sc.Sessions.Logout()
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

func (sc *SessionController) GetProfile(c *gin.Context) {
	user := sc.Sessions.Current()
	if user == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("no active session"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Profile", user)
}

// UpdateProfile -> wholesale replace of the mutable profile fields.
func (sc *SessionController) UpdateProfile(c *gin.Context) {
	current := sc.Sessions.Current()
	if current == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("no active session"))
		return
	}

	var input struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Avatar  string `json:"avatar"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updated := *current
	if input.Name != "" {
		updated.Name = input.Name
	}
	updated.Phone = input.Phone
	updated.Avatar = input.Avatar
	updated.Address = input.Address

	sc.Sessions.UpdateUser(updated)
	utils.RespondJSON(c, http.StatusOK, "Profile updated", updated)
}
