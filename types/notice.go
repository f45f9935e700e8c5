package types

import "time"

type NotificationResponse struct {
	ID        uint64      `json:"id,string"`
	Type      string      `json:"type"`
	Sender    UserProfile `json:"sender"`
	PostID    *uint64     `json:"post_id,string,omitempty"`
	PostImage string      `json:"post_image,omitempty"`
	CommentID *uint64     `json:"comment_id,string,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type ListNotificationsRequest struct {
	Limit int `form:"limit"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

// NoticeEvent is the frame pushed over redis pub/sub, the websocket and rocketmq.
type NoticeEvent struct {
	ID         uint64    `json:"id,string"`
	Type       string    `json:"type"`
	ReceiverID uint64    `json:"receiver_id,string"`
	SenderID   uint64    `json:"sender_id,string"`
	PostID     *uint64   `json:"post_id,string,omitempty"`
	CommentID  *uint64   `json:"comment_id,string,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
