package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-app-server/internal/models"
)

// DashboardStats is the point-in-time statistics record shown to admins.
type DashboardStats struct {
	TotalAppointments    int64  `json:"totalAppointments"`
	TotalDoctors         int64  `json:"totalDoctors"`
	TotalPatients        int64  `json:"totalPatients"`
	PendingAppointments  int64  `json:"pendingAppointments"`
	AcceptedAppointments int64  `json:"acceptedAppointments"`
	RejectedAppointments int64  `json:"rejectedAppointments"`
	TodayAppointments    int64  `json:"todayAppointments"`
	RecentActivity       string `json:"recentActivity"`
}

// ComputeStats folds independent counting queries and one most-recent lookup
// into a statistics record.
//
// The reads are not a consistent snapshot: writes arriving between queries
// can make the per-status counts momentarily disagree with the total.
func (s *Service) ComputeStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{RecentActivity: "No recent activity"}

	var err error
	if stats.TotalAppointments, err = s.appointments.Count(ctx, AppointmentFilter{}); err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}
	if stats.TotalDoctors, err = s.directory.CountByRole(ctx, models.RoleDoctor); err != nil {
		return nil, fmt.Errorf("count doctors: %w", err)
	}
	if stats.TotalPatients, err = s.directory.CountByRole(ctx, models.RolePatient); err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}
	if stats.PendingAppointments, err = s.countByStatus(ctx, models.StatusPending); err != nil {
		return nil, err
	}
	if stats.AcceptedAppointments, err = s.countByStatus(ctx, models.StatusAccepted); err != nil {
		return nil, err
	}
	if stats.RejectedAppointments, err = s.countByStatus(ctx, models.StatusRejected); err != nil {
		return nil, err
	}

	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)
	stats.TodayAppointments, err = s.appointments.Count(ctx, AppointmentFilter{
		CreatedFrom:   &startOfDay,
		CreatedBefore: &endOfDay,
	})
	if err != nil {
		return nil, fmt.Errorf("count today's appointments: %w", err)
	}

	recent, err := s.appointments.FindMostRecent(ctx)
	if err != nil && !errors.Is(err, ErrRecordNotFound) {
		return nil, fmt.Errorf("find most recent appointment: %w", err)
	}
	if recent != nil {
		stats.RecentActivity = recentActivity(now.Sub(recent.CreatedAt))
	}

	return stats, nil
}

func (s *Service) countByStatus(ctx context.Context, status models.AppointmentStatus) (int64, error) {
	count, err := s.appointments.Count(ctx, AppointmentFilter{Status: status})
	if err != nil {
		return 0, fmt.Errorf("count %s appointments: %w", status, err)
	}
	return count, nil
}

// recentActivity renders the elapsed time since the newest appointment was
// created, using floor division for the unit count.
func recentActivity(elapsed time.Duration) string {
	hours := int(elapsed / time.Hour)
	minutes := int(elapsed / time.Minute)

	switch {
	case hours > 0:
		return fmt.Sprintf("New appointment %d hour%s ago", hours, plural(hours))
	case minutes > 0:
		return fmt.Sprintf("New appointment %d minute%s ago", minutes, plural(minutes))
	default:
		return "New appointment just now"
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
