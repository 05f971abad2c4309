package handlers

import (
	"hospital-app-server/internal/models"
	"hospital-app-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserHandler handles user management requests (admin operations plus the
// public doctor listing).
type UserHandler struct {
	DB *gorm.DB
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

// AddAdminRequest represents the request body for creating an admin.
type AddAdminRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	NIC       string `json:"nic" binding:"required"`
	DOB       string `json:"dob" binding:"required"`
	Gender    string `json:"gender" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
}

// AddNewAdmin creates another administrator account (admin).
func (h *UserHandler) AddNewAdmin(c *gin.Context) {
	var req AddAdminRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if h.emailTaken(c, req.Email) {
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
		Role:      models.RoleAdmin,
	}
	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}

	if err := h.DB.Create(&user).Error; err != nil {
		utils.InternalServerError(c, "Failed to create admin: "+err.Error())
		return
	}

	utils.OK(c, "New Admin Registered!", gin.H{"admin": user.Sanitize()})
}

// AddDoctorRequest represents the request body for registering a doctor.
type AddDoctorRequest struct {
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required"`
	NIC              string `json:"nic" binding:"required"`
	DOB              string `json:"dob" binding:"required"`
	Gender           string `json:"gender" binding:"required"`
	Password         string `json:"password" binding:"required,min=8"`
	DoctorDepartment string `json:"doctorDepartment" binding:"required"`
}

// AddNewDoctor registers a doctor in a clinical department (admin).
func (h *UserHandler) AddNewDoctor(c *gin.Context) {
	var req AddDoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if h.emailTaken(c, req.Email) {
		return
	}

	user := models.User{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		NIC:              req.NIC,
		DOB:              req.DOB,
		Gender:           req.Gender,
		Role:             models.RoleDoctor,
		DoctorDepartment: req.DoctorDepartment,
	}
	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}

	if err := h.DB.Create(&user).Error; err != nil {
		utils.InternalServerError(c, "Failed to create doctor: "+err.Error())
		return
	}

	utils.OK(c, "New Doctor Registered!", gin.H{"doctor": user.Sanitize()})
}

// GetAllDoctors returns every registered doctor.
func (h *UserHandler) GetAllDoctors(c *gin.Context) {
	var doctors []models.User
	if err := h.DB.Where("role = ?", models.RoleDoctor).Find(&doctors).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch doctors: "+err.Error())
		return
	}

	sanitized := make([]models.UserSanitized, len(doctors))
	for i, d := range doctors {
		sanitized[i] = d.Sanitize()
	}
	utils.OK(c, "", gin.H{"doctors": sanitized})
}

func (h *UserHandler) emailTaken(c *gin.Context, email string) bool {
	var existing models.User
	if err := h.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.BadRequest(c, string(existing.Role)+" With This Email Already Exists!")
		return true
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return true
	}
	return false
}
