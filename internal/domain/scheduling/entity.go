package scheduling

import (
	"time"

	"github.com/dockwise/dock-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// CheckIn moves a scheduled booking to in-progress. A truck arriving after
// start plus the type's grace period is flagged late; downstream reporting
// consumes the flag, the engine itself never blocks a late arrival.
func CheckIn(b *models.Booking, now time.Time, gracePeriodMinutes int) error {
	if err := CanCheckIn(Status(b.Status)); err != nil {
		return err
	}

	deadline := b.StartTime.Add(time.Duration(gracePeriodMinutes) * time.Minute)
	b.ArrivedLate = now.After(deadline)

	b.Status = string(StatusInProgress)
	b.CheckedInAt = &now
	return nil
}

func CheckOut(b *models.Booking, now time.Time) error {
	if err := CanCheckOut(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}
