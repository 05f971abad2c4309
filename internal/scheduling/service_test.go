package scheduling

import (
	"context"
	"errors"
	"testing"

	"hospital-app-server/internal/models"
)

func validBooking() BookingRequest {
	return BookingRequest{
		FirstName:       "Alice",
		LastName:        "Smith",
		Email:           "alice@example.com",
		Phone:           "5550001111",
		NIC:             "9876543",
		DOB:             "1992-04-10",
		Gender:          "Female",
		AppointmentDate: "2026-09-15",
		Department:      "Cardiology",
		DoctorFirstName: "Jane",
		DoctorLastName:  "Doe",
		Address:         "12 Main Street",
	}
}

func assertKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	var schedErr *Error
	if !errors.As(err, &schedErr) {
		t.Fatalf("expected a scheduling error, got %v", err)
	}
	if schedErr.Kind != kind {
		t.Fatalf("expected error kind %d, got %d (%s)", kind, schedErr.Kind, schedErr.Message)
	}
}

func TestBookAppointment_BindsResolvedDoctor(t *testing.T) {
	store := &fakeAppointmentStore{}
	dir := &fakeStaffDirectory{users: []models.User{
		doctor("doc-1", "Jane", "Doe", "Cardiology"),
		doctor("doc-2", "John", "Roe", "Cardiology"),
	}}
	svc := newTestService(store, dir)

	appt, err := svc.BookAppointment(context.Background(), "pat-1", validBooking())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if appt.DoctorID != "doc-1" {
		t.Errorf("expected doctorId doc-1, got %s", appt.DoctorID)
	}
	if appt.PatientID != "pat-1" {
		t.Errorf("expected patientId pat-1, got %s", appt.PatientID)
	}
	if appt.Status != models.StatusPending {
		t.Errorf("expected status Pending, got %s", appt.Status)
	}
	if appt.AppointmentTime != models.UnscheduledTime {
		t.Errorf("expected unscheduled time sentinel, got %q", appt.AppointmentTime)
	}
	if appt.Doctor.FirstName != "Jane" || appt.Doctor.LastName != "Doe" {
		t.Errorf("doctor snapshot not captured: %+v", appt.Doctor)
	}
	if len(store.appts) != 1 {
		t.Fatalf("expected 1 stored appointment, got %d", len(store.appts))
	}
}

func TestBookAppointment_CaseAndWhitespaceInsensitiveMatch(t *testing.T) {
	store := &fakeAppointmentStore{}
	dir := &fakeStaffDirectory{users: []models.User{
		doctor("doc-1", "Jane", "Doe", "Cardiology"),
		doctor("doc-2", "John", "Roe", "Cardiology"),
	}}
	svc := newTestService(store, dir)

	req := validBooking()
	req.DoctorFirstName = " jane "
	req.DoctorLastName = "DOE"

	appt, err := svc.BookAppointment(context.Background(), "pat-1", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.DoctorID != "doc-1" {
		t.Errorf("expected resolution to doc-1, got %s", appt.DoctorID)
	}
}

func TestBookAppointment_DoctorNotFound(t *testing.T) {
	store := &fakeAppointmentStore{}
	dir := &fakeStaffDirectory{}
	svc := newTestService(store, dir)

	_, err := svc.BookAppointment(context.Background(), "pat-1", validBooking())
	assertKind(t, err, KindNotFound)
	if len(store.appts) != 0 {
		t.Errorf("no appointment should be created on resolver failure")
	}
}

func TestBookAppointment_AmbiguousDoctor(t *testing.T) {
	store := &fakeAppointmentStore{}
	dir := &fakeStaffDirectory{users: []models.User{
		doctor("doc-1", "Jane", "Doe", "Cardiology"),
		doctor("doc-2", "Jane", "Doe", "Cardiology"),
	}}
	svc := newTestService(store, dir)

	_, err := svc.BookAppointment(context.Background(), "pat-1", validBooking())
	assertKind(t, err, KindConflict)
	if len(store.appts) != 0 {
		t.Errorf("no appointment should be created on an ambiguous match")
	}
}

func TestBookAppointment_DepartmentMatchIsExact(t *testing.T) {
	store := &fakeAppointmentStore{}
	dir := &fakeStaffDirectory{users: []models.User{
		doctor("doc-1", "Jane", "Doe", "Cardiology"),
	}}
	svc := newTestService(store, dir)

	req := validBooking()
	req.Department = "cardiology"

	_, err := svc.BookAppointment(context.Background(), "pat-1", req)
	assertKind(t, err, KindNotFound)
}

func TestBookAppointment_MissingRequiredField(t *testing.T) {
	store := &fakeAppointmentStore{}
	dir := &fakeStaffDirectory{users: []models.User{
		doctor("doc-1", "Jane", "Doe", "Cardiology"),
	}}
	svc := newTestService(store, dir)

	req := validBooking()
	req.Phone = ""

	_, err := svc.BookAppointment(context.Background(), "pat-1", req)
	assertKind(t, err, KindValidation)
	if err.Error() != "Please Fill Full Form!" {
		t.Errorf("expected the single coarse intake error, got %q", err.Error())
	}
	if len(store.appts) != 0 {
		t.Errorf("no appointment should be created on validation failure")
	}
}

func TestBookAppointment_MissingDoctorNameSkipsIntakeValidation(t *testing.T) {
	// The doctor name is deliberately not an intake requirement; leaving it
	// empty must surface as the resolver's not-found, not a validation error.
	store := &fakeAppointmentStore{}
	dir := &fakeStaffDirectory{users: []models.User{
		doctor("doc-1", "Jane", "Doe", "Cardiology"),
	}}
	svc := newTestService(store, dir)

	req := validBooking()
	req.DoctorFirstName = ""
	req.DoctorLastName = ""

	_, err := svc.BookAppointment(context.Background(), "pat-1", req)
	assertKind(t, err, KindNotFound)
}

func bookOne(t *testing.T, svc *Service) *models.Appointment {
	t.Helper()
	appt, err := svc.BookAppointment(context.Background(), "pat-1", validBooking())
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	return appt
}

func TestUpdateAppointment_TimeOnlyLeavesStatus(t *testing.T) {
	store := &fakeAppointmentStore{}
	dir := &fakeStaffDirectory{users: []models.User{doctor("doc-1", "Jane", "Doe", "Cardiology")}}
	svc := newTestService(store, dir)
	appt := bookOne(t, svc)

	newTime := "10:30 AM"
	updated, err := svc.UpdateAppointment(context.Background(), appt.ID, UpdateRequest{AppointmentTime: &newTime})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.AppointmentTime != newTime {
		t.Errorf("expected appointment_time %q, got %q", newTime, updated.AppointmentTime)
	}
	if updated.Status != models.StatusPending {
		t.Errorf("status must be untouched by a time-only update, got %s", updated.Status)
	}
}

func TestUpdateAppointment_StatusOnlyLeavesTime(t *testing.T) {
	store := &fakeAppointmentStore{}
	dir := &fakeStaffDirectory{users: []models.User{doctor("doc-1", "Jane", "Doe", "Cardiology")}}
	svc := newTestService(store, dir)
	appt := bookOne(t, svc)

	accepted := models.StatusAccepted
	updated, err := svc.UpdateAppointment(context.Background(), appt.ID, UpdateRequest{Status: &accepted})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.StatusAccepted {
		t.Errorf("expected status Accepted, got %s", updated.Status)
	}
	if updated.AppointmentTime != models.UnscheduledTime {
		t.Errorf("appointment_time must be untouched by a status-only update, got %q", updated.AppointmentTime)
	}
}

func TestUpdateAppointment_Idempotent(t *testing.T) {
	store := &fakeAppointmentStore{}
	dir := &fakeStaffDirectory{users: []models.User{doctor("doc-1", "Jane", "Doe", "Cardiology")}}
	svc := newTestService(store, dir)
	appt := bookOne(t, svc)

	accepted := models.StatusAccepted
	first, err := svc.UpdateAppointment(context.Background(), appt.ID, UpdateRequest{Status: &accepted})
	if err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	second, err := svc.UpdateAppointment(context.Background(), appt.ID, UpdateRequest{Status: &accepted})
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if first.Status != second.Status || first.AppointmentTime != second.AppointmentTime {
		t.Errorf("applying the same update twice changed the record: %+v vs %+v", first, second)
	}
}

func TestUpdateAppointment_RejectsUnknownStatus(t *testing.T) {
	store := &fakeAppointmentStore{}
	dir := &fakeStaffDirectory{users: []models.User{doctor("doc-1", "Jane", "Doe", "Cardiology")}}
	svc := newTestService(store, dir)
	appt := bookOne(t, svc)

	bogus := models.AppointmentStatus("Maybe")
	_, err := svc.UpdateAppointment(context.Background(), appt.ID, UpdateRequest{Status: &bogus})
	assertKind(t, err, KindValidation)

	got, err := store.FindByID(context.Background(), appt.ID)
	if err != nil {
		t.Fatalf("appointment vanished: %v", err)
	}
	if got.Status != models.StatusPending {
		t.Errorf("rejected status must not be persisted, got %s", got.Status)
	}
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	svc := newTestService(&fakeAppointmentStore{}, &fakeStaffDirectory{})

	accepted := models.StatusAccepted
	_, err := svc.UpdateAppointment(context.Background(), "missing", UpdateRequest{Status: &accepted})
	assertKind(t, err, KindNotFound)
}

func TestDeleteAppointment(t *testing.T) {
	store := &fakeAppointmentStore{}
	dir := &fakeStaffDirectory{users: []models.User{doctor("doc-1", "Jane", "Doe", "Cardiology")}}
	svc := newTestService(store, dir)
	appt := bookOne(t, svc)

	if err := svc.DeleteAppointment(context.Background(), appt.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.FindByID(context.Background(), appt.ID); err != ErrRecordNotFound {
		t.Errorf("expected the record to be gone, got %v", err)
	}

	err := svc.DeleteAppointment(context.Background(), appt.ID)
	assertKind(t, err, KindNotFound)
}

func TestDeleteAppointment_Missing(t *testing.T) {
	svc := newTestService(&fakeAppointmentStore{}, &fakeStaffDirectory{})
	err := svc.DeleteAppointment(context.Background(), "missing")
	assertKind(t, err, KindNotFound)
}
