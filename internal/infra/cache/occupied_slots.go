package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"beautyspace/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// Short TTL keeps the availability view fresh enough for a booking form while
// absorbing bursts of polling. Staleness is harmless: the booking command
// re-checks conflicts under lock.
const occupiedSlotsTTL = 30 * time.Second

type OccupiedSlotsCache struct {
	client *redis.Client
}

func NewOccupiedSlotsCache(client *redis.Client) *OccupiedSlotsCache {
	return &OccupiedSlotsCache{client: client}
}

func occupiedSlotsKey(workspaceID int64, date string) string {
	return fmt.Sprintf("slots:%d:%s", workspaceID, date)
}

func (c *OccupiedSlotsCache) Get(ctx context.Context, workspaceID int64, date string) ([]queries.OccupiedSlot, bool) {
	raw, err := c.client.Get(ctx, occupiedSlotsKey(workspaceID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("occupied slots cache read failed", "error", err.Error())
		}
		return nil, false
	}

	var slots []queries.OccupiedSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *OccupiedSlotsCache) Set(ctx context.Context, workspaceID int64, date string, slots []queries.OccupiedSlot) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, occupiedSlotsKey(workspaceID, date), raw, occupiedSlotsTTL).Err(); err != nil {
		slog.Warn("occupied slots cache write failed", "error", err.Error())
	}
}

// Invalidate drops the cached day so the next read reflects a just-created,
// cancelled or moved booking.
func (c *OccupiedSlotsCache) Invalidate(ctx context.Context, workspaceID int64, days ...time.Time) {
	keys := make([]string, 0, len(days))
	for _, day := range days {
		keys = append(keys, occupiedSlotsKey(workspaceID, day.Format("2006-01-02")))
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("occupied slots cache invalidation failed", "error", err.Error())
	}
}
