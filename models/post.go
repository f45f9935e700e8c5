package models

import "time"

// Post 帖子，likes/comments 为冗余计数，与明细表在同一事务内维护
type Post struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_posts_user_id" json:"user_id,string"`
	ImageURL  string    `gorm:"column:image_url;type:varchar(1024);not null" json:"image_url"`
	StorageID string    `gorm:"column:storage_id;type:varchar(255);not null" json:"storage_id"`
	Caption   *string   `gorm:"column:caption;type:text" json:"caption,omitempty"`
	Likes     int64     `gorm:"column:likes;not null;default:0" json:"likes"`
	Comments  int64     `gorm:"column:comments;not null;default:0" json:"comments"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_posts_created_at" json:"created_at"`
}

func (Post) TableName() string {
	return "posts"
}
