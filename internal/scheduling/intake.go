package scheduling

import "strings"

// validateIntake checks a booking request for required fields before any
// doctor resolution happens. It fails on the first missing field with one
// coarse error rather than a per-field report.
//
// The doctor name fields are deliberately not checked here: a missing doctor
// name surfaces later as the resolver's not-found error.
func validateIntake(req BookingRequest) error {
	required := []string{
		req.FirstName,
		req.LastName,
		req.Email,
		req.Phone,
		req.NIC,
		req.DOB,
		req.Gender,
		req.AppointmentDate,
		req.Department,
		req.Address,
	}
	for _, value := range required {
		if strings.TrimSpace(value) == "" {
			return newValidationError("Please Fill Full Form!")
		}
	}
	return nil
}
