package socket

import (
	"sync"
	"sync/atomic"
	"time"

	"Spotlight/pkg/log"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	heartbeatInterval = 10 * time.Second // 心跳检测间隔时间
	heartbeatTimeout  = 35 * time.Second // 心跳检测超时时间（超时时间是隔间检测时间的2.5倍以上）
	writeWait         = 5 * time.Second
	sendBuffer        = 32
)

var clientSeq atomic.Int64

// Client 单个 websocket 连接
type Client struct {
	cid     int64
	uid     uint64
	conn    *websocket.Conn
	outChan chan []byte
	once    sync.Once
	closed  atomic.Bool
	done    chan struct{}
}

func newClient(uid uint64, conn *websocket.Conn) *Client {
	return &Client{
		cid:     clientSeq.Add(1),
		uid:     uid,
		conn:    conn,
		outChan: make(chan []byte, sendBuffer),
		done:    make(chan struct{}),
	}
}

func (c *Client) Cid() int64 { return c.cid }

func (c *Client) Uid() uint64 { return c.uid }

func (c *Client) Closed() bool { return c.closed.Load() }

// Write 非阻塞写入，缓冲区满视为慢连接直接关闭
func (c *Client) Write(data []byte) bool {
	if c.Closed() {
		return false
	}
	select {
	case c.outChan <- data:
		return true
	default:
		log.L.Warn("websocket client too slow", zap.Uint64("uid", c.uid), zap.Int64("cid", c.cid))
		c.Close(websocket.ClosePolicyViolation, "send buffer full")
		return false
	}
}

func (c *Client) Close(code int, text string) {
	c.once.Do(func() {
		c.closed.Store(true)
		close(c.done)
		_ = c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), time.Now().Add(writeWait))
		_ = c.conn.Close()
	})
}

// loopWrite 发送队列与心跳
func (c *Client) loopWrite() {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case data := <-c.outChan:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				c.Close(websocket.CloseAbnormalClosure, "write failed")
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				c.Close(websocket.CloseAbnormalClosure, "ping failed")
				return
			}
		}
	}
}

// loopRead 只处理 pong 与关闭，客户端不通过该连接上行数据
func (c *Client) loopRead() {
	_ = c.conn.SetReadDeadline(time.Now().Add(heartbeatTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(heartbeatTimeout))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			c.Close(websocket.CloseNormalClosure, "bye")
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(heartbeatTimeout))
	}
}
