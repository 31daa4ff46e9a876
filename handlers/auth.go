package handlers

import (
	"islamicdashboard/models"
	"islamicdashboard/services/auth"
	"islamicdashboard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves /api/auth.
type AuthHandler struct {
	Service auth.AuthService
}

func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := bindBody(c, &req); err != nil {
		utils.JSONError(c, err)
		return
	}
	res, err := h.Service.Login(req.Username, req.Password)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONOK(c, res, utils.WithMessage("Login successful"))
}

// RegisterDeviceHandler handles POST /api/auth/register-device.
func (h *AuthHandler) RegisterDeviceHandler(c *gin.Context) {
	var req models.DeviceRegistration
	if err := bindBody(c, &req); err != nil {
		utils.JSONError(c, err)
		return
	}
	res, err := h.Service.RegisterDevice(req)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONOK(c, res, utils.WithMessage("Device registered successfully"))
}

// GetProfileHandler handles GET /api/auth/profile/:userId.
func (h *AuthHandler) GetProfileHandler(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	user, err := h.Service.GetProfile(userID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONOK(c, user)
}

// UpdateProfileHandler handles PUT /api/auth/profile/:userId.
func (h *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	var req models.ProfileUpdate
	if err := bindBody(c, &req); err != nil {
		utils.JSONError(c, err)
		return
	}
	view, err := h.Service.UpdateProfile(userID, req)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	getLogger(c).Info("Profile updated", zap.Int("userId", userID))
	utils.JSONOK(c, view, utils.WithMessage("Profile updated successfully"))
}

// ListUsersHandler handles GET /api/auth/users?search=&limit=&offset=.
func (h *AuthHandler) ListUsersHandler(c *gin.Context) {
	page := pageFrom(c, auth.DefaultListLimit)
	writeList(c, h.Service.ListUsers(c.Query("search"), page), page)
}

// UserStatsHandler handles GET /api/auth/users/stats.
func (h *AuthHandler) UserStatsHandler(c *gin.Context) {
	utils.JSONOK(c, h.Service.UserStats())
}

// LogoutHandler handles POST /api/auth/logout.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if err := h.Service.Logout(); err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONOK(c, nil, utils.WithMessage("Logout successful"))
}
