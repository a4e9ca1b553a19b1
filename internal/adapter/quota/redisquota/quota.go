// Package redisquota enforces the daily AI-call ceilings on Redis. Both
// the per-user and the global counter are incremented and checked in one
// Lua script, so concurrent requests cannot slip past a ceiling between
// the check and the increment.
package redisquota

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avenira/orient-api/internal/domain"
)

// anonymousUser keys quota for requests without a user id, so unsigned
// traffic shares one per-user bucket instead of escaping the ceiling.
const anonymousUser = "anonymous"

// luaDailyQuota increments both counters, stamps their expiry on first use
// and rolls both back when either ceiling is exceeded, so a denied call
// never consumes quota. A ceiling of zero is unlimited.
const luaDailyQuota = `
local user_key = KEYS[1]
local global_key = KEYS[2]
local user_cap = tonumber(ARGV[1])
local global_cap = tonumber(ARGV[2])
local ttl = tonumber(ARGV[3])

local u = redis.call("INCR", user_key)
if u == 1 then
  redis.call("EXPIRE", user_key, ttl)
end
local g = redis.call("INCR", global_key)
if g == 1 then
  redis.call("EXPIRE", global_key, ttl)
end

if (user_cap > 0 and u > user_cap) or (global_cap > 0 and g > global_cap) then
  redis.call("DECR", user_key)
  redis.call("DECR", global_key)
  return 0
end
return 1
`

// Store implements domain.QuotaStore on Redis.
type Store struct {
	rdb         *redis.Client
	script      *redis.Script
	userDaily   int64
	globalDaily int64
	now         func() time.Time
}

// New constructs a Store. Ceilings of zero disable the corresponding check.
func New(rdb *redis.Client, userDaily, globalDaily int64) *Store {
	return &Store{
		rdb:         rdb,
		script:      redis.NewScript(luaDailyQuota),
		userDaily:   userDaily,
		globalDaily: globalDaily,
		now:         time.Now,
	}
}

var _ domain.QuotaStore = (*Store)(nil)

// Allow reserves one AI-call unit for the user today. The day boundary is
// UTC; counters expire shortly after midnight.
func (s *Store) Allow(ctx domain.Context, userID string) (bool, error) {
	if s.userDaily <= 0 && s.globalDaily <= 0 {
		return true, nil
	}
	if userID == "" {
		userID = anonymousUser
	}
	now := s.now().UTC()
	day := now.Format("2006-01-02")
	ttl := int64(midnightAfter(now).Sub(now)/time.Second) + 60

	keys := []string{
		fmt.Sprintf("quota:user:%s:%s", userID, day),
		fmt.Sprintf("quota:global:%s", day),
	}
	res, err := s.script.Run(ctx, s.rdb, keys, s.userDaily, s.globalDaily, ttl).Int64()
	if err != nil {
		return false, fmt.Errorf("op=redisquota.Allow: %w", err)
	}
	return res == 1, nil
}

func midnightAfter(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
}
