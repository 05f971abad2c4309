package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleDoctor  Role = "Doctor"
	RolePatient Role = "Patient"
)

// User represents an identity in the system: an administrator, a doctor
// belonging to one clinical department, or a registered patient.
type User struct {
	BaseModel
	FirstName        string `gorm:"size:100;not null" json:"firstName"`
	LastName         string `gorm:"size:100;not null" json:"lastName"`
	Email            string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone            string `gorm:"size:20" json:"phone"`
	NIC              string `gorm:"size:20" json:"nic"`
	DOB              string `gorm:"size:20" json:"dob"`
	Gender           string `gorm:"size:10" json:"gender"`
	Password         string `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	Role             Role   `gorm:"size:20;index" json:"role"`
	DoctorDepartment string `gorm:"size:100;index" json:"doctorDepartment,omitempty"`

	// Relations (not always preloaded)
	DoctorAppointments  []Appointment `gorm:"foreignKey:DoctorID" json:"-"`
	PatientAppointments []Appointment `gorm:"foreignKey:PatientID" json:"-"`
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID               string `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	NIC              string `json:"nic"`
	DOB              string `json:"dob"`
	Gender           string `json:"gender"`
	Role             Role   `json:"role"`
	DoctorDepartment string `json:"doctorDepartment,omitempty"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:               u.ID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		Phone:            u.Phone,
		NIC:              u.NIC,
		DOB:              u.DOB,
		Gender:           u.Gender,
		Role:             u.Role,
		DoctorDepartment: u.DoctorDepartment,
	}
}
