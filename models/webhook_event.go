package models

import (
	"time"

	"gorm.io/datatypes"
)

// WebhookEvent 已验签的 webhook 投递记录，用于去重与审计
type WebhookEvent struct {
	ID        string         `gorm:"column:id;type:varchar(64);primaryKey" json:"id"`
	Type      string         `gorm:"column:type;type:varchar(64);not null" json:"type"`
	Payload   datatypes.JSON `gorm:"column:payload" json:"payload"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (WebhookEvent) TableName() string {
	return "webhook_events"
}
