package therapist

import (
	"context"
	"fmt"
	"sort"
	"time"

	"hivewellness/models"
	"hivewellness/utils"

	"go.uber.org/zap"
)

const minutesPerDay = 24 * 60

// SetWeeklyAvailability validates and stores a therapist's weekly template.
// Blocks within the same day must not overlap; the availability calculator
// relies on that invariant when it discretises slots.
func (s *DefaultTherapistService) SetWeeklyAvailability(ctx context.Context, therapistID string, days []models.DayAvailability) error {
	t, err := s.Repo.GetByID(ctx, therapistID)
	if err != nil {
		return err
	}
	if t == nil {
		return NewValidationError("unknown therapist")
	}

	if err := validateDays(days); err != nil {
		return err
	}

	// A disabled day clears its blocks rather than keeping them dormant.
	for i := range days {
		if !days[i].Enabled {
			days[i].Blocks = nil
		}
	}

	weekly := models.WeeklyAvailability{
		TherapistID: therapistID,
		Days:        days,
	}
	if err := s.Avail.Upsert(ctx, weekly); err != nil {
		return err
	}

	utils.GetLogger().Info("weekly availability updated", zap.String("therapistID", therapistID))
	return nil
}

func (s *DefaultTherapistService) GetWeeklyAvailability(ctx context.Context, therapistID string) (*models.WeeklyAvailability, error) {
	return s.Avail.Get(ctx, therapistID)
}

func validateDays(days []models.DayAvailability) error {
	seen := map[time.Weekday]bool{}
	for _, day := range days {
		if day.Weekday < time.Sunday || day.Weekday > time.Saturday {
			return NewValidationError(fmt.Sprintf("invalid weekday %d", day.Weekday))
		}
		if seen[day.Weekday] {
			return NewValidationError(fmt.Sprintf("duplicate entry for %s", day.Weekday))
		}
		seen[day.Weekday] = true

		if !day.Enabled {
			continue
		}

		blocks := append([]models.TimeBlock(nil), day.Blocks...)
		sort.Slice(blocks, func(i, j int) bool { return blocks[i].Start < blocks[j].Start })

		for i, b := range blocks {
			if b.Start < 0 || b.End > minutesPerDay || b.Start >= b.End {
				return NewValidationError(fmt.Sprintf("%s: block %d:%d is not a valid window", day.Weekday, b.Start, b.End))
			}
			if i > 0 && blocks[i-1].End > b.Start {
				return NewValidationError(fmt.Sprintf("%s: time blocks overlap", day.Weekday))
			}
		}
	}
	return nil
}
