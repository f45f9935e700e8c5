package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 未读通知数过期时间 - 14天
const unreadExpireAt = 14 * 24 * time.Hour

type UnreadStorage struct {
	redis *redis.Client
}

func NewUnreadStorage(rds *redis.Client) *UnreadStorage {
	return &UnreadStorage{rds}
}

// Incr 未读通知数自增
func (u *UnreadStorage) Incr(ctx context.Context, uid uint64) error {
	pipe := u.redis.Pipeline()
	u.PipeIncr(ctx, pipe, uid)
	_, err := pipe.Exec(ctx)
	return err
}

func (u *UnreadStorage) PipeIncr(ctx context.Context, pipe redis.Pipeliner, uid uint64) {
	name := u.name(uid)
	pipe.Incr(ctx, name)
	pipe.Expire(ctx, name, unreadExpireAt)
}

// Get 获取未读通知数，key 不存在时为 0
func (u *UnreadStorage) Get(ctx context.Context, uid uint64) (int64, error) {
	i, err := u.redis.Get(ctx, u.name(uid)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return i, err
}

// Reset 未读通知数清零
func (u *UnreadStorage) Reset(ctx context.Context, uid uint64) error {
	return u.redis.Del(ctx, u.name(uid)).Err()
}

// notice:unread:uid
func (u *UnreadStorage) name(uid uint64) string {
	return fmt.Sprintf("notice:unread:%d", uid)
}
