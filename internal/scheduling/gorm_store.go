package scheduling

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"hospital-app-server/internal/models"
)

// GormAppointmentStore implements AppointmentStore on the application database.
type GormAppointmentStore struct {
	db *gorm.DB
}

func NewGormAppointmentStore(db *gorm.DB) *GormAppointmentStore {
	return &GormAppointmentStore{db: db}
}

func (s *GormAppointmentStore) Create(ctx context.Context, appt *models.Appointment) error {
	return s.db.WithContext(ctx).Create(appt).Error
}

func (s *GormAppointmentStore) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	if err := s.db.WithContext(ctx).First(&appt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &appt, nil
}

func (s *GormAppointmentStore) FindAll(ctx context.Context) ([]models.Appointment, error) {
	var appts []models.Appointment
	if err := s.db.WithContext(ctx).Find(&appts).Error; err != nil {
		return nil, err
	}
	return appts, nil
}

func (s *GormAppointmentStore) FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := s.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at desc").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (s *GormAppointmentStore) Update(ctx context.Context, id string, update AppointmentUpdate) (*models.Appointment, error) {
	changes := map[string]interface{}{}
	if update.Status != nil {
		changes["status"] = *update.Status
	}
	if update.AppointmentTime != nil {
		changes["appointment_time"] = *update.AppointmentTime
	}

	var appt models.Appointment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&appt, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecordNotFound
			}
			return err
		}
		if len(changes) == 0 {
			return nil
		}
		return tx.Model(&appt).Updates(changes).Error
	})
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (s *GormAppointmentStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *GormAppointmentStore) Count(ctx context.Context, filter AppointmentFilter) (int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Appointment{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormAppointmentStore) FindMostRecent(ctx context.Context) (*models.Appointment, error) {
	var appt models.Appointment
	err := s.db.WithContext(ctx).Order("created_at desc").First(&appt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &appt, nil
}

// GormStaffDirectory implements StaffDirectory on the users table.
type GormStaffDirectory struct {
	db *gorm.DB
}

func NewGormStaffDirectory(db *gorm.DB) *GormStaffDirectory {
	return &GormStaffDirectory{db: db}
}

func (d *GormStaffDirectory) FindDoctors(ctx context.Context, firstName, lastName, department string) ([]models.User, error) {
	var doctors []models.User
	err := d.db.WithContext(ctx).
		Where("LOWER(first_name) = ? AND LOWER(last_name) = ? AND role = ? AND doctor_department = ?",
			strings.ToLower(strings.TrimSpace(firstName)),
			strings.ToLower(strings.TrimSpace(lastName)),
			models.RoleDoctor,
			department).
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (d *GormStaffDirectory) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
