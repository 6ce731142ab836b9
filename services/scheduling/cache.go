package scheduling

import (
	"context"
	"encoding/json"
	"fmt"

	"hivewellness/models"
	"hivewellness/utils"

	"go.uber.org/zap"
)

// Slot lists are cached per (therapist, date, duration) and invalidated on any
// successful reservation or cancellation for that therapist-day, so a booking
// is never shadowed by stale availability. The TTL is a backstop only.

func slotCacheKey(therapistID, date string, duration int) string {
	return fmt.Sprintf("avail:%s:%s:%d", therapistID, date, duration)
}

func (se *DefaultSchedulingEngine) cachedSlots(ctx context.Context, therapistID, date string, duration int) ([]models.Slot, bool) {
	if se.Cache == nil {
		return nil, false
	}
	raw, err := se.Cache.Get(ctx, slotCacheKey(therapistID, date, duration)).Result()
	if err != nil {
		return nil, false
	}
	var slots []models.Slot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (se *DefaultSchedulingEngine) storeSlots(ctx context.Context, therapistID, date string, duration int, slots []models.Slot) {
	if se.Cache == nil {
		return
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := se.Cache.Set(ctx, slotCacheKey(therapistID, date, duration), raw, se.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache slots", zap.Error(err))
	}
}

// invalidateSlots drops every cached duration variant for the therapist-day.
func (se *DefaultSchedulingEngine) invalidateSlots(ctx context.Context, therapistID, date string) {
	if se.Cache == nil {
		return
	}
	pattern := fmt.Sprintf("avail:%s:%s:*", therapistID, date)
	keys, err := se.Cache.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := se.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate slot cache",
			zap.String("therapistID", therapistID), zap.String("date", date), zap.Error(err))
	}
}
