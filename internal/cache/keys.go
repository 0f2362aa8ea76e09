package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	userKeyPrefix  = "user:%s"
	skillKeyPrefix = "skill:%d"
	swapStatsKey   = "stats:swaps"
)

const (
	UserTTL  = 5 * time.Minute
	SkillTTL = 30 * time.Minute
	// SwapStatsTTL is short; admin dashboards poll the stats endpoint and
	// slightly stale counts are acceptable.
	SwapStatsTTL = 30 * time.Second
)

func UserKey(userID uuid.UUID) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func SkillKey(skillID uint) string {
	return fmt.Sprintf(skillKeyPrefix, skillID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uuid.UUID) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateSkill(ctx context.Context, skillID uint) {
	Invalidate(ctx, SkillKey(skillID))
}

func SwapStatsKey() string {
	return swapStatsKey
}

func InvalidateSwapStats(ctx context.Context) {
	Invalidate(ctx, swapStatsKey)
}
