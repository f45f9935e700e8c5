package models

import "time"

const (
	NoticeTypeComment = "comment"
	NoticeTypeLike    = "like"
	NoticeTypeFollow  = "follow"
)

// Notification 通知，receiver 与 sender 不会相同
type Notification struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	ReceiverID uint64    `gorm:"column:receiver_id;not null;index:idx_receiver_created,priority:1" json:"receiver_id,string"`
	SenderID   uint64    `gorm:"column:sender_id;not null" json:"sender_id,string"`
	Type       string    `gorm:"column:type;type:varchar(16);not null" json:"type"`
	PostID     *uint64   `gorm:"column:post_id" json:"post_id,string,omitempty"`
	CommentID  *uint64   `gorm:"column:comment_id" json:"comment_id,string,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime;index:idx_receiver_created,priority:2" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
