package socket

import (
	"context"
	"strconv"
	"sync"

	"Spotlight/pkg/log"

	"github.com/gorilla/websocket"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var noticeDelivered = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "spotlight_notice_delivered_total",
	Help: "Notifications pushed to live websocket connections",
})

func init() {
	prometheus.MustRegister(noticeDelivered)
}

// userClients 同一用户的全部连接
type userClients struct {
	mu      sync.RWMutex
	clients map[int64]*Client
}

// Hub 本进程的在线连接表，key = uid
type Hub struct {
	users cmap.ConcurrentMap[string, *userClients]
}

func NewHub() *Hub {
	return &Hub{users: cmap.New[*userClients]()}
}

func uidKey(uid uint64) string {
	return strconv.FormatUint(uid, 10)
}

// Serve 注册连接并阻塞到连接关闭
func (h *Hub) Serve(uid uint64, conn *websocket.Conn) {
	c := newClient(uid, conn)
	h.add(c)
	defer h.remove(c)

	go c.loopWrite()
	c.loopRead()
}

func (h *Hub) add(c *Client) {
	h.users.Upsert(uidKey(c.uid), nil, func(exist bool, current *userClients, _ *userClients) *userClients {
		if !exist {
			current = &userClients{clients: make(map[int64]*Client)}
		}
		current.mu.Lock()
		current.clients[c.cid] = c
		current.mu.Unlock()
		return current
	})
}

func (h *Hub) remove(c *Client) {
	h.users.RemoveCb(uidKey(c.uid), func(_ string, current *userClients, exist bool) bool {
		if !exist {
			return false
		}
		current.mu.Lock()
		defer current.mu.Unlock()
		delete(current.clients, c.cid)
		return len(current.clients) == 0
	})
}

// Online 用户在本进程的连接数
func (h *Hub) Online(uid uint64) int {
	uc, ok := h.users.Get(uidKey(uid))
	if !ok {
		return 0
	}
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.clients)
}

// Push 推送给用户在本进程的全部连接，返回成功写入的连接数
func (h *Hub) Push(uid uint64, data []byte) int {
	uc, ok := h.users.Get(uidKey(uid))
	if !ok {
		return 0
	}

	uc.mu.RLock()
	clients := make([]*Client, 0, len(uc.clients))
	for _, c := range uc.clients {
		clients = append(clients, c)
	}
	uc.mu.RUnlock()

	n := 0
	for _, c := range clients {
		if c.Write(data) {
			n++
		}
	}
	noticeDelivered.Add(float64(n))
	return n
}

// Run 消费 redis 通知通道并分发，直到 ctx 结束
func (h *Hub) Run(ctx context.Context, sub *redis.PubSub, parse func(channel string) (uint64, bool)) error {
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			uid, ok := parse(msg.Channel)
			if !ok {
				log.L.Warn("unexpected notice channel", zap.String("channel", msg.Channel))
				continue
			}
			h.Push(uid, []byte(msg.Payload))
		}
	}
}

// Shutdown 关闭全部连接
func (h *Hub) Shutdown() {
	for item := range h.users.IterBuffered() {
		item.Val.mu.RLock()
		for _, c := range item.Val.clients {
			c.Close(websocket.CloseGoingAway, "server shutdown")
		}
		item.Val.mu.RUnlock()
	}
}
