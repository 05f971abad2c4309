package handlers

import (
	"hospital-app-server/internal/config"
	"hospital-app-server/internal/middleware"
	"hospital-app-server/internal/models"
	"hospital-app-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

// PatientRegisterRequest represents the request body for patient registration.
type PatientRegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	NIC       string `json:"nic" binding:"required"`
	DOB       string `json:"dob" binding:"required"`
	Gender    string `json:"gender" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
}

// PatientRegister handles registration of a new patient account.
func (h *AuthHandler) PatientRegister(c *gin.Context) {
	var req PatientRegisterRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	// Check if user already exists
	var existingUser models.User
	if err := h.DB.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		utils.BadRequest(c, "User already Registered!")
		return
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		NIC:       req.NIC,
		DOB:       req.DOB,
		Gender:    req.Gender,
		Role:      models.RolePatient,
	}
	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}

	if err := h.DB.Create(&user).Error; err != nil {
		utils.InternalServerError(c, "Failed to create user: "+err.Error())
		return
	}

	h.issueSession(c, &user, "User Registered!")
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Role            string `json:"role" binding:"required,oneof=Admin Patient"`
}

// Login authenticates an admin or a patient against the portal they are
// logging into.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if req.Password != req.ConfirmPassword {
		utils.BadRequest(c, "Password & Confirm Password Do Not Match!")
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Unauthorized(c, "Invalid Email Or Password!")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Invalid Email Or Password!")
		return
	}

	if string(user.Role) != req.Role {
		utils.NotFound(c, "User Not Found With This Role!")
		return
	}

	h.issueSession(c, &user, "Login Successfully!")
}

// issueSession generates a token and sets it both in the response body and
// as the role-specific HTTP-only cookie.
func (h *AuthHandler) issueSession(c *gin.Context, user *models.User, message string) {
	token, err := utils.GenerateToken(user, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token: "+err.Error())
		return
	}

	cookieName := middleware.PatientTokenCookie
	if user.Role == models.RoleAdmin {
		cookieName = middleware.AdminTokenCookie
	}
	c.SetCookie(
		cookieName,
		token,
		h.Cfg.CookieExpireDays*24*60*60,
		"/",
		"",
		h.Cfg.Environment != "development",
		true,
	)

	utils.OK(c, message, gin.H{
		"user":  user.Sanitize(),
		"token": token,
	})
}

// GetProfile returns the logged-in user's own record.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User is not authenticated!")
		return
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	utils.OK(c, "", gin.H{"user": user.Sanitize()})
}

// AdminLogout clears the admin session cookie.
func (h *AuthHandler) AdminLogout(c *gin.Context) {
	h.clearSession(c, middleware.AdminTokenCookie, "Admin Logged Out Successfully!")
}

// PatientLogout clears the patient session cookie.
func (h *AuthHandler) PatientLogout(c *gin.Context) {
	h.clearSession(c, middleware.PatientTokenCookie, "Patient Logged Out Successfully!")
}

func (h *AuthHandler) clearSession(c *gin.Context, cookieName, message string) {
	c.SetCookie(cookieName, "", -1, "/", "", h.Cfg.Environment != "development", true)
	utils.OK(c, message, nil)
}
