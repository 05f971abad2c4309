package scheduling

import (
	"context"
	"fmt"
	"strings"

	"hospital-app-server/internal/models"
)

// resolveDoctor turns a free-text doctor name plus department into exactly
// one staff identity. The request carries no secondary disambiguator, so two
// same-named doctors in the same department are an unresolvable tie and the
// booking is rejected.
func (s *Service) resolveDoctor(ctx context.Context, firstName, lastName, department string) (*models.User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	matches, err := s.directory.FindDoctors(ctx, firstName, lastName, department)
	if err != nil {
		return nil, fmt.Errorf("find doctors: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, newNotFoundError(fmt.Sprintf("Doctor %q not found in %s department",
			firstName+" "+lastName, department))
	case 1:
		return &matches[0], nil
	default:
		return nil, newConflictError("Doctors Conflict! Please Contact Through Email Or Phone!")
	}
}
