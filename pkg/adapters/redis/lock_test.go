package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avelarq/remesa/pkg/adapters/redis"
)

func TestRedisLocker_LockUnlock(t *testing.T) {
	mr, client := newTestClient(t)

	locker := redis.NewLocker(client, "test:")
	ctx := context.Background()
	key := "session-1"

	unlock, err := locker.Lock(ctx, key, 5*time.Second)
	assert.NoError(t, err)
	assert.NotNil(t, unlock)

	assert.True(t, mr.Exists("test:lock:session-1"), "Lock key should be set in Redis")

	err = unlock(ctx)
	assert.NoError(t, err)

	assert.False(t, mr.Exists("test:lock:session-1"), "Lock key should be removed after unlock")
}

func TestRedisLocker_Contention(t *testing.T) {
	_, client := newTestClient(t)

	locker1 := redis.NewLocker(client, "test:")
	locker2 := redis.NewLocker(client, "test:") // Same prefix -> contention
	ctx := context.Background()
	key := "shared-session"

	// Holder 1 acquires the lock.
	unlock1, err := locker1.Lock(ctx, key, 5*time.Second)
	assert.NoError(t, err)
	assert.NotNil(t, unlock1)

	// Holder 2 polls until its context deadline.
	ctxTimeout, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = locker2.Lock(ctxTimeout, key, 5*time.Second)
	assert.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.WithinDuration(t, start.Add(500*time.Millisecond), time.Now(), 200*time.Millisecond, "Should block until timeout")

	// Released lock is immediately acquirable.
	err = unlock1(ctx)
	assert.NoError(t, err)

	unlock2, err := locker2.Lock(ctx, key, 5*time.Second)
	assert.NoError(t, err)
	assert.NoError(t, unlock2(ctx))
}

func TestRedisLocker_StaleUnlockIsNoop(t *testing.T) {
	mr, client := newTestClient(t)

	locker := redis.NewLocker(client, "test:")
	ctx := context.Background()
	key := "expiring-session"

	unlock, err := locker.Lock(ctx, key, 1*time.Second)
	assert.NoError(t, err)

	// Simulate TTL expiry followed by another holder taking the lock.
	mr.FastForward(2 * time.Second)
	unlock2, err := locker.Lock(ctx, key, 5*time.Second)
	assert.NoError(t, err)

	// The stale unlock must not delete the new holder's lock.
	assert.NoError(t, unlock(ctx))
	assert.True(t, mr.Exists("test:lock:expiring-session"), "stale unlock must not release the new lock")

	assert.NoError(t, unlock2(ctx))
	assert.False(t, mr.Exists("test:lock:expiring-session"))
}
