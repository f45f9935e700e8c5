package dao

import (
	"context"

	"Spotlight/models"

	"gorm.io/gorm"
)

type NotificationDAO struct {
	Repo[models.Notification]
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{
		Repo: NewRepo[models.Notification](db),
	}
}

func (d *NotificationDAO) WithTx(tx *gorm.DB) *NotificationDAO {
	return &NotificationDAO{Repo: NewRepo[models.Notification](tx)}
}

// ListByReceiver 最新的在前
func (d *NotificationDAO) ListByReceiver(ctx context.Context, receiverID uint64, limit int) ([]*models.Notification, error) {
	var items []*models.Notification
	err := d.Db.WithContext(ctx).
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (d *NotificationDAO) CountByReceiver(ctx context.Context, receiverID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Notification{}).Where("receiver_id = ?", receiverID).Count(&count).Error
	return count, err
}
