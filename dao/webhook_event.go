package dao

import (
	"context"

	"Spotlight/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WebhookEventDAO struct {
	Repo[models.WebhookEvent]
}

func NewWebhookEventDAO(db *gorm.DB) *WebhookEventDAO {
	return &WebhookEventDAO{
		Repo: NewRepo[models.WebhookEvent](db),
	}
}

// Record 记录一次投递，返回 false 表示该消息 id 已经处理过
func (d *WebhookEventDAO) Record(ctx context.Context, event *models.WebhookEvent) (bool, error) {
	res := d.Db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(event)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
