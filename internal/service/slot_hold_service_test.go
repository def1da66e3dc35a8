package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSlotHoldService(t *testing.T) (*SlotHoldService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := logrus.New()
	return NewSlotHoldService(client, log), mr
}

func TestSlotHoldAcquireAndRelease(t *testing.T) {
	svc, _ := newTestSlotHoldService(t)
	ctx := context.Background()
	adminID := uuid.New()
	slotStart := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)

	token, err := svc.Acquire(ctx, adminID, slotStart)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// A second attempt for the same slot is rejected while the hold lives.
	_, err = svc.Acquire(ctx, adminID, slotStart)
	assert.ErrorIs(t, err, ErrSlotHeld)

	// A different slot of the same admin is unaffected.
	_, err = svc.Acquire(ctx, adminID, slotStart.Add(30*time.Minute))
	require.NoError(t, err)

	svc.Release(ctx, adminID, slotStart, token)

	_, err = svc.Acquire(ctx, adminID, slotStart)
	assert.NoError(t, err)
}

func TestSlotHoldReleaseWithWrongTokenKeepsHold(t *testing.T) {
	svc, _ := newTestSlotHoldService(t)
	ctx := context.Background()
	adminID := uuid.New()
	slotStart := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)

	_, err := svc.Acquire(ctx, adminID, slotStart)
	require.NoError(t, err)

	// Releasing with a stale token must not free someone else's hold.
	svc.Release(ctx, adminID, slotStart, "not-the-owner")

	_, err = svc.Acquire(ctx, adminID, slotStart)
	assert.ErrorIs(t, err, ErrSlotHeld)
}

func TestSlotHoldExpires(t *testing.T) {
	svc, mr := newTestSlotHoldService(t)
	ctx := context.Background()
	adminID := uuid.New()
	slotStart := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)

	_, err := svc.Acquire(ctx, adminID, slotStart)
	require.NoError(t, err)

	mr.FastForward(slotHoldTTL + time.Second)

	_, err = svc.Acquire(ctx, adminID, slotStart)
	assert.NoError(t, err)
}
