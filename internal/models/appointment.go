package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending  AppointmentStatus = "Pending"
	StatusAccepted AppointmentStatus = "Accepted"
	StatusRejected AppointmentStatus = "Rejected"
)

// UnscheduledTime is the appointment_time value of an appointment that has
// not been given a concrete time yet.
const UnscheduledTime = "Not scheduled yet"

// DoctorSnapshot is the doctor name captured at booking time. It is never
// re-synchronized with the staff record it was copied from.
type DoctorSnapshot struct {
	FirstName string `gorm:"size:100" json:"firstName"`
	LastName  string `gorm:"size:100" json:"lastName"`
}

// Appointment represents one scheduling request and its resolution.
type Appointment struct {
	BaseModel
	FirstName       string            `gorm:"size:100" json:"firstName"`
	LastName        string            `gorm:"size:100" json:"lastName"`
	Email           string            `gorm:"size:255" json:"email"`
	Phone           string            `gorm:"size:20" json:"phone"`
	NIC             string            `gorm:"size:20" json:"nic"`
	DOB             string            `gorm:"size:20" json:"dob"`
	Gender          string            `gorm:"size:10" json:"gender"`
	AppointmentDate string            `gorm:"size:20" json:"appointment_date"`
	AppointmentTime string            `gorm:"size:50;default:'Not scheduled yet'" json:"appointment_time"`
	Department      string            `gorm:"size:100" json:"department"`
	Doctor          DoctorSnapshot    `gorm:"embedded;embeddedPrefix:doctor_" json:"doctor"`
	HasVisited      bool              `gorm:"default:false" json:"hasVisited"`
	Address         string            `gorm:"size:255" json:"address"`
	Status          AppointmentStatus `gorm:"size:20;default:'Pending';index" json:"status"`
	DoctorID        string            `gorm:"size:36;index" json:"doctorId"`
	PatientID       string            `gorm:"size:36;index" json:"patientId"`
}

// ValidStatus reports whether s is one of the three persisted status values.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}
