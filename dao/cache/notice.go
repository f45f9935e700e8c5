package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

const noticeChannelPrefix = "notice:user:"

// NoticeStorage 通知实时推送的 redis pub/sub 通道
type NoticeStorage struct {
	redis *redis.Client
}

func NewNoticeStorage(rds *redis.Client) *NoticeStorage {
	return &NoticeStorage{rds}
}

func (n *NoticeStorage) Publish(ctx context.Context, uid uint64, payload []byte) error {
	return n.redis.Publish(ctx, NoticeChannel(uid), payload).Err()
}

// Subscribe 订阅所有用户的通知通道，调用方负责 Close
func (n *NoticeStorage) Subscribe(ctx context.Context) *redis.PubSub {
	return n.redis.PSubscribe(ctx, noticeChannelPrefix+"*")
}

// NoticeChannel notice:user:<uid>
func NoticeChannel(uid uint64) string {
	return fmt.Sprintf("%s%d", noticeChannelPrefix, uid)
}

// ParseNoticeChannel 从通道名解析用户 ID
func ParseNoticeChannel(channel string) (uint64, bool) {
	if !strings.HasPrefix(channel, noticeChannelPrefix) {
		return 0, false
	}
	uid, err := strconv.ParseUint(strings.TrimPrefix(channel, noticeChannelPrefix), 10, 64)
	if err != nil {
		return 0, false
	}
	return uid, true
}
