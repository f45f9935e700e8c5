package models

import "time"

// Like 点赞记录，唯一键: user_id + post_id
type Like struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_like_user_post,priority:1" json:"user_id,string"`
	PostID    uint64    `gorm:"column:post_id;not null;uniqueIndex:uk_like_user_post,priority:2;index:idx_likes_post_id" json:"post_id,string"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
