package models

import "time"

// User 用户表，由身份提供方 webhook 同步创建
type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	ClerkID   string    `gorm:"column:clerk_id;type:varchar(64);not null;uniqueIndex:uk_clerk_id" json:"-"`
	Username  string    `gorm:"column:username;type:varchar(64);not null" json:"username"`
	Fullname  string    `gorm:"column:fullname;type:varchar(128);not null;default:''" json:"fullname"`
	Email     string    `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Bio       *string   `gorm:"column:bio;type:varchar(512)" json:"bio,omitempty"`
	Image     string    `gorm:"column:image;type:varchar(1024);not null;default:''" json:"image"`
	Followers int64     `gorm:"column:followers;not null;default:0" json:"followers"`
	Following int64     `gorm:"column:following;not null;default:0" json:"following"`
	Posts     int64     `gorm:"column:posts;not null;default:0" json:"posts"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
