package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carebridge/enrollment-api/internal/core/service"
)

const (
	throttleKeyPrefix = "login_attempts:"
	// attemptWindow bounds how long failures count against an account.
	attemptWindow = 15 * time.Minute
	maxAttempts   = 5
)

// LoginThrottle counts failed login attempts per email in Redis. The counter
// expires after the attempt window, so a lockout clears itself.
type LoginThrottle struct {
	client *redis.Client
}

var _ service.LoginThrottle = (*LoginThrottle)(nil)

func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{client: client}
}

func key(email string) string {
	return throttleKeyPrefix + email
}

// TooManyAttempts reports whether the account has exhausted its attempts.
func (t *LoginThrottle) TooManyAttempts(ctx context.Context, email string) (bool, error) {
	count, err := t.client.Get(ctx, key(email)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle get: %w", err)
	}
	return count >= maxAttempts, nil
}

// RecordFailure increments the counter and (re)arms the expiry window.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key(email))
	pipe.Expire(ctx, key(email), attemptWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	if err := t.client.Del(ctx, key(email)).Err(); err != nil {
		return fmt.Errorf("throttle reset: %w", err)
	}
	return nil
}
