package models

import "time"

type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_comments_user_id" json:"user_id,string"`
	PostID    uint64    `gorm:"column:post_id;not null;index:idx_post_created,priority:1" json:"post_id,string"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_post_created,priority:2" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
