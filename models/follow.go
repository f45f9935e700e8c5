package models

import "time"

// Follow 关注关系，follower 关注 following
type Follow struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	FollowerID  uint64    `gorm:"column:follower_id;not null;uniqueIndex:uk_follower_following,priority:1" json:"follower_id,string"`
	FollowingID uint64    `gorm:"column:following_id;not null;uniqueIndex:uk_follower_following,priority:2;index:idx_following_id" json:"following_id,string"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
