package scheduling

import (
	"context"
	"errors"
	"time"

	"hospital-app-server/internal/models"
)

// ErrRecordNotFound is returned by store implementations when the requested
// record does not exist.
var ErrRecordNotFound = errors.New("record not found")

// AppointmentFilter narrows a counting query. Zero-value fields are ignored.
type AppointmentFilter struct {
	Status        models.AppointmentStatus
	CreatedFrom   *time.Time // inclusive
	CreatedBefore *time.Time // exclusive
}

// AppointmentUpdate is a partial update; nil fields are left untouched.
type AppointmentUpdate struct {
	Status          *models.AppointmentStatus
	AppointmentTime *string
}

// AppointmentStore is the durable record of appointments.
type AppointmentStore interface {
	Create(ctx context.Context, appt *models.Appointment) error
	FindByID(ctx context.Context, id string) (*models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	// FindByPatient returns the patient's appointments newest first.
	FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	// Update applies a partial update as a single atomic find-and-update and
	// returns the post-update record.
	Update(ctx context.Context, id string, update AppointmentUpdate) (*models.Appointment, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter AppointmentFilter) (int64, error)
	// FindMostRecent returns the most recently created appointment, or
	// ErrRecordNotFound when the store is empty.
	FindMostRecent(ctx context.Context) (*models.Appointment, error)
}

// StaffDirectory is the read-only view of the staff/user store.
type StaffDirectory interface {
	// FindDoctors matches doctors by name (case-insensitive, surrounding
	// whitespace ignored) and exact department.
	FindDoctors(ctx context.Context, firstName, lastName, department string) ([]models.User, error)
	CountByRole(ctx context.Context, role models.Role) (int64, error)
}
