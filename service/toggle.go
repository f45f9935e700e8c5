package service

import (
	"context"
	"errors"

	"Spotlight/dao/cache"
	"Spotlight/pkg/log"
	"Spotlight/pkg/response"

	"go.uber.org/zap"
)

// errAlreadyApplied rolls back a toggle transaction that lost the insert race to a
// concurrent request; the row exists so the toggle resolves to "on".
var errAlreadyApplied = errors.New("toggle already applied")

// withToggleLock serializes toggles of the same (action, user, target) across replicas.
func withToggleLock(ctx context.Context, locks *cache.LockStorage, action string, userID, targetID uint64, fn func() error) error {
	key := cache.ToggleKey(action, userID, targetID)

	token, ok, err := locks.TryLock(ctx, key)
	if err != nil {
		return response.Downstream(err)
	}
	if !ok {
		return ErrTooFrequent
	}
	defer func() {
		released, err := locks.Unlock(ctx, key, token)
		if err != nil {
			log.L.Warn("release toggle lock", zap.String("key", key), zap.Error(err))
			return
		}
		if !released {
			log.L.Warn("toggle lock expired before release", zap.String("key", key))
		}
	}()

	return fn()
}
