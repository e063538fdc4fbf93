package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures = 5
	defaultWindow      = 15 * time.Minute
)

// LoginThrottle tracks consecutive login failures per email in Redis.
// Key format: login_failures:<email>
type LoginThrottle struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
// Non-positive maxFailures or window fall back to the defaults.
func NewLoginThrottle(client *redis.Client, maxFailures int, window time.Duration) *LoginThrottle {
	t := &LoginThrottle{
		client:      client,
		maxFailures: int64(maxFailures),
		window:      window,
	}
	if t.maxFailures <= 0 {
		t.maxFailures = defaultMaxFailures
	}
	if t.window <= 0 {
		t.window = defaultWindow
	}
	return t
}

// TooManyFailures reports whether the email has exhausted its failure budget
// within the current window.
func (t *LoginThrottle) TooManyFailures(ctx context.Context, email string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(email)).Int64()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= t.maxFailures, nil
}

// RecordFailure increments the failure counter. The expiry is set on the
// first failure so the window runs from the first miss, not the last.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	n, err := t.client.Incr(ctx, t.key(email)).Result()
	if err != nil {
		return fmt.Errorf("throttle record: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, t.key(email), t.window).Err(); err != nil {
			return fmt.Errorf("throttle expire: %w", err)
		}
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	if err := t.client.Del(ctx, t.key(email)).Err(); err != nil {
		return fmt.Errorf("throttle reset: %w", err)
	}
	return nil
}

func (t *LoginThrottle) key(email string) string {
	return "login_failures:" + email
}
