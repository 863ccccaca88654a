package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	maxLoginFailures = 5
	failureWindow    = 15 * time.Minute
)

// LoginThrottle counts failed login attempts per username. Tokens themselves
// are stateless and never revoked, so the throttle is the only server-side
// auth state, and it is advisory: redis being down must not lock users out.
type LoginThrottle interface {
	Allow(ctx context.Context, username string) bool
	RecordFailure(ctx context.Context, username string)
	Reset(ctx context.Context, username string)
}

type redisLoginThrottle struct {
	log         *logrus.Logger
	redisClient *redis.Client
}

func NewLoginThrottle(log *logrus.Logger, redisClient *redis.Client) LoginThrottle {
	return &redisLoginThrottle{
		log:         log,
		redisClient: redisClient,
	}
}

func throttleKey(username string) string {
	return fmt.Sprintf("login_failures:%s", username)
}

func (t *redisLoginThrottle) Allow(ctx context.Context, username string) bool {
	count, err := t.redisClient.Get(ctx, throttleKey(username)).Int()
	if err == redis.Nil {
		return true
	}
	if err != nil {
		t.log.Warnf("Failed to read login throttle counter: %+v", err)
		return true
	}
	return count < maxLoginFailures
}

func (t *redisLoginThrottle) RecordFailure(ctx context.Context, username string) {
	key := throttleKey(username)
	count, err := t.redisClient.Incr(ctx, key).Result()
	if err != nil {
		t.log.Warnf("Failed to increment login throttle counter: %+v", err)
		return
	}
	if count == 1 {
		if err := t.redisClient.Expire(ctx, key, failureWindow).Err(); err != nil {
			t.log.Warnf("Failed to set login throttle expiry: %+v", err)
		}
	}
}

func (t *redisLoginThrottle) Reset(ctx context.Context, username string) {
	if err := t.redisClient.Del(ctx, throttleKey(username)).Err(); err != nil {
		t.log.Warnf("Failed to reset login throttle counter: %+v", err)
	}
}
