package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSlotHeld is returned when another booking attempt currently holds the slot.
var ErrSlotHeld = errors.New("slot is being booked by someone else")

// releaseHoldScript deletes a hold only if the caller still owns it, so an
// expired hold re-acquired by another booking attempt is never released by
// the first one. Redis Go client automatically uses EVALSHA after the first
// call instead of sending the script text every time.
var releaseHoldScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

const (
	// Redis key prefix for slot holds
	RedisSlotHoldKeyPrefix = "slot:hold:"

	// How long a hold survives if the booking attempt dies before releasing it.
	// Must comfortably cover the DB transaction of the booking path.
	slotHoldTTL = 15 * time.Second
)

// SlotHoldService serializes concurrent booking attempts for the same slot
// through Redis before they reach Postgres. The hold is an optimization, not
// the source of truth: the appointments exclusion constraint is the final
// arbiter, so a Redis outage degrades to constraint errors rather than
// double bookings.
type SlotHoldService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewSlotHoldService(redisClient *redis.Client, log *logrus.Logger) *SlotHoldService {
	return &SlotHoldService{
		redisClient: redisClient,
		log:         log,
	}
}

// Acquire takes a short-lived exclusive hold on the slot identified by the
// admin and its start instant. Returns an opaque token to pass to Release.
func (s *SlotHoldService) Acquire(ctx context.Context, adminID uuid.UUID, slotStart time.Time) (string, error) {
	key := slotHoldKey(adminID, slotStart)
	token := uuid.New().String()

	ok, err := s.redisClient.SetNX(ctx, key, token, slotHoldTTL).Result()
	if err != nil {
		return "", fmt.Errorf("failed to acquire slot hold: %w", err)
	}
	if !ok {
		return "", ErrSlotHeld
	}
	return token, nil
}

// Release gives up a hold acquired earlier. Safe to call after the TTL
// elapsed; a hold owned by someone else is left alone.
func (s *SlotHoldService) Release(ctx context.Context, adminID uuid.UUID, slotStart time.Time, token string) {
	key := slotHoldKey(adminID, slotStart)
	if err := releaseHoldScript.Run(ctx, s.redisClient, []string{key}, token).Err(); err != nil {
		// The TTL cleans up after us, so a failed release is not fatal.
		s.log.Warnf("Failed to release slot hold %s: %+v", key, err)
	}
}

func slotHoldKey(adminID uuid.UUID, slotStart time.Time) string {
	return fmt.Sprintf("%s%s:%d", RedisSlotHoldKeyPrefix, adminID, slotStart.UTC().Unix())
}
