package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// 切换类操作的锁过期时间
const toggleLockTTL = 5 * time.Second

// 只删除自己持有的锁
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type LockStorage struct {
	redis *redis.Client
}

func NewLockStorage(rds *redis.Client) *LockStorage {
	return &LockStorage{rds}
}

// TryLock 非阻塞加锁，返回持有者 token；已被占用返回 false
func (l *LockStorage) TryLock(ctx context.Context, key string) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.redis.SetNX(ctx, key, token, toggleLockTTL).Result()
	if err != nil || !ok {
		return "", false, err
	}
	return token, true, nil
}

// Unlock 锁已过期并被他人获取时不做任何事，返回是否真正释放
func (l *LockStorage) Unlock(ctx context.Context, key, token string) (bool, error) {
	n, err := unlockScript.Run(ctx, l.redis, []string{key}, token).Int64()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// ToggleKey lock:<action>:<uid>:<target>
func ToggleKey(action string, userID, targetID uint64) string {
	return fmt.Sprintf("lock:%s:%d:%d", action, userID, targetID)
}
