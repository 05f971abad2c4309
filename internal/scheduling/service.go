package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-app-server/internal/models"
)

// Service is the appointment lifecycle and scheduling engine. It holds no
// mutable state of its own; durability and atomicity are delegated to the
// store collaborators.
type Service struct {
	appointments AppointmentStore
	directory    StaffDirectory

	now func() time.Time
}

func NewService(appointments AppointmentStore, directory StaffDirectory) *Service {
	return &Service{
		appointments: appointments,
		directory:    directory,
		now:          time.Now,
	}
}

// BookingRequest carries a patient's appointment request as submitted.
type BookingRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	NIC             string `json:"nic"`
	DOB             string `json:"dob"`
	Gender          string `json:"gender"`
	AppointmentDate string `json:"appointment_date"`
	Department      string `json:"department"`
	DoctorFirstName string `json:"doctor_firstName"`
	DoctorLastName  string `json:"doctor_lastName"`
	HasVisited      bool   `json:"hasVisited"`
	Address         string `json:"address"`
}

// BookAppointment validates the request, resolves the requested doctor to a
// single staff identity, and creates the appointment in Pending state.
//
// Resolution and creation are two independent store calls, not a
// transaction: a same-named doctor registered in between is not detected and
// the appointment keeps the identity resolved at read time.
func (s *Service) BookAppointment(ctx context.Context, patientID string, req BookingRequest) (*models.Appointment, error) {
	if err := validateIntake(req); err != nil {
		return nil, err
	}

	doctor, err := s.resolveDoctor(ctx, req.DoctorFirstName, req.DoctorLastName, req.Department)
	if err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		NIC:             req.NIC,
		DOB:             req.DOB,
		Gender:          req.Gender,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: models.UnscheduledTime,
		Department:      req.Department,
		Doctor: models.DoctorSnapshot{
			FirstName: req.DoctorFirstName,
			LastName:  req.DoctorLastName,
		},
		HasVisited: req.HasVisited,
		Address:    req.Address,
		Status:     models.StatusPending,
		DoctorID:   doctor.ID,
		PatientID:  patientID,
	}

	if err := s.appointments.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	return appt, nil
}

// UpdateRequest is a partial status/time mutation. Nil fields are untouched.
type UpdateRequest struct {
	Status          *models.AppointmentStatus `json:"status"`
	AppointmentTime *string                   `json:"appointment_time"`
}

// UpdateAppointment applies whichever of status/appointment_time is present
// and returns the post-update record. Time and status are independent
// attributes: no cross-field validation is performed.
func (s *Service) UpdateAppointment(ctx context.Context, id string, req UpdateRequest) (*models.Appointment, error) {
	if req.Status != nil && !models.ValidStatus(*req.Status) {
		return nil, newValidationError(fmt.Sprintf("Invalid appointment status %q!", *req.Status))
	}

	appt, err := s.appointments.Update(ctx, id, AppointmentUpdate{
		Status:          req.Status,
		AppointmentTime: req.AppointmentTime,
	})
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, newNotFoundError("Appointment Not Found!")
		}
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return appt, nil
}

// DeleteAppointment removes the appointment permanently.
func (s *Service) DeleteAppointment(ctx context.Context, id string) error {
	if err := s.appointments.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return newNotFoundError("Appointment Not Found!")
		}
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}

// ListAppointments returns every appointment in the store.
func (s *Service) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return s.appointments.FindAll(ctx)
}

// ListPatientAppointments returns the patient's appointments, newest first.
func (s *Service) ListPatientAppointments(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return s.appointments.FindByPatient(ctx, patientID)
}
