package scheduling

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"hospital-app-server/internal/models"
)

// fakeAppointmentStore is an in-memory AppointmentStore.
type fakeAppointmentStore struct {
	appts []*models.Appointment
}

func (f *fakeAppointmentStore) Create(_ context.Context, appt *models.Appointment) error {
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = time.Now()
	}
	stored := *appt
	f.appts = append(f.appts, &stored)
	return nil
}

func (f *fakeAppointmentStore) FindByID(_ context.Context, id string) (*models.Appointment, error) {
	for _, a := range f.appts {
		if a.ID == id {
			found := *a
			return &found, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (f *fakeAppointmentStore) FindAll(_ context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, len(f.appts))
	for i, a := range f.appts {
		out[i] = *a
	}
	return out, nil
}

func (f *fakeAppointmentStore) FindByPatient(_ context.Context, patientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeAppointmentStore) Update(_ context.Context, id string, update AppointmentUpdate) (*models.Appointment, error) {
	for _, a := range f.appts {
		if a.ID == id {
			if update.Status != nil {
				a.Status = *update.Status
			}
			if update.AppointmentTime != nil {
				a.AppointmentTime = *update.AppointmentTime
			}
			updated := *a
			return &updated, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (f *fakeAppointmentStore) Delete(_ context.Context, id string) error {
	for i, a := range f.appts {
		if a.ID == id {
			f.appts = append(f.appts[:i], f.appts[i+1:]...)
			return nil
		}
	}
	return ErrRecordNotFound
}

func (f *fakeAppointmentStore) Count(_ context.Context, filter AppointmentFilter) (int64, error) {
	var count int64
	for _, a := range f.appts {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.CreatedFrom != nil && a.CreatedAt.Before(*filter.CreatedFrom) {
			continue
		}
		if filter.CreatedBefore != nil && !a.CreatedAt.Before(*filter.CreatedBefore) {
			continue
		}
		count++
	}
	return count, nil
}

func (f *fakeAppointmentStore) FindMostRecent(_ context.Context) (*models.Appointment, error) {
	if len(f.appts) == 0 {
		return nil, ErrRecordNotFound
	}
	recent := f.appts[0]
	for _, a := range f.appts[1:] {
		if a.CreatedAt.After(recent.CreatedAt) {
			recent = a
		}
	}
	found := *recent
	return &found, nil
}

// fakeStaffDirectory is an in-memory StaffDirectory.
type fakeStaffDirectory struct {
	users []models.User
}

func (f *fakeStaffDirectory) FindDoctors(_ context.Context, firstName, lastName, department string) ([]models.User, error) {
	first := strings.ToLower(strings.TrimSpace(firstName))
	last := strings.ToLower(strings.TrimSpace(lastName))

	var out []models.User
	for _, u := range f.users {
		if u.Role != models.RoleDoctor {
			continue
		}
		if strings.ToLower(u.FirstName) != first || strings.ToLower(u.LastName) != last {
			continue
		}
		if u.DoctorDepartment != department {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeStaffDirectory) CountByRole(_ context.Context, role models.Role) (int64, error) {
	var count int64
	for _, u := range f.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func doctor(id, first, last, department string) models.User {
	u := models.User{
		FirstName:        first,
		LastName:         last,
		Role:             models.RoleDoctor,
		DoctorDepartment: department,
	}
	u.ID = id
	return u
}

func patient(id string) models.User {
	u := models.User{Role: models.RolePatient}
	u.ID = id
	return u
}

func newTestService(store *fakeAppointmentStore, dir *fakeStaffDirectory) *Service {
	return NewService(store, dir)
}
